// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"

	x509chain "github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/internal/x509/chain"
	"github.com/spf13/cobra"
)

func newChainCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     "chain CRT [CRT ...]",
		Aliases: aliases("chain"),
		Short:   "Print an ordered & complete chain for a certificate",
		RunE:    o.runChain,
	}
}

func (o *options) runChain(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return usageError(msgChainUsage)
	}

	s, err := o.session(cmd)
	if err != nil {
		return err
	}

	chain, err := x509chain.New(s.doctor).ResolveFiles(cmd.Context(), args)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(s.out, chain)
	return err
}
