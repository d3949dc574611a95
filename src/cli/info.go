// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/internal/endpoint"
	"github.com/spf13/cobra"
)

func newInfoCommand(o *options) *cobra.Command {
	var sel selectFlags

	cmd := &cobra.Command{
		Use:     "info",
		Aliases: aliases("info"),
		Short:   "Show certificate information for an SSL certificate",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := sel.criteria()
			if err := c.Validate(); err != nil {
				return err
			}

			s, err := o.session(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			selected, err := s.selectEndpoint(ctx, c)
			if err != nil {
				return err
			}

			var full endpoint.Endpoint
			err = s.action("Fetching "+label(selected)+" info for "+s.app, func() error {
				full, err = s.api.GetEndpoint(ctx, s.app, selected.Kind, selected.Name)
				return err
			})
			if err != nil {
				return err
			}

			return writeDetails(s.out, "Certificate details:", full)
		},
	}

	sel.register(cmd)
	return cmd
}
