// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"

	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/internal/helper/certfile"
	"github.com/spf13/cobra"
)

func newKeyCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     "key CRT KEY [KEY ...]",
		Aliases: aliases("key"),
		Short:   "Print the correct key for the given certificate",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return usageError(msgKeyUsage)
			}

			s, err := o.session(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			files, err := certfile.ReadAll(ctx, args)
			if err != nil {
				return err
			}

			var key string
			err = s.action("Testing for signing key", func() error {
				key, err = s.doctor.GetKey(ctx, files[0], files[1:])
				return err
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(s.out, key)
			return err
		},
	}
}
