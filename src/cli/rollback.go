// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"errors"

	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/internal/endpoint"
	"github.com/spf13/cobra"
)

func newRollbackCommand(o *options) *cobra.Command {
	var (
		sel     selectFlags
		confirm string
	)

	cmd := &cobra.Command{
		Use:     "rollback",
		Aliases: aliases("rollback"),
		Short:   "Roll back an SSL endpoint to its previous certificate",
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
			if err := confirmApp(s.app, confirm); err != nil {
				return err
			}

			ctx := cmd.Context()
			selected, err := s.selectEndpoint(ctx, c)
			if err != nil {
				return err
			}
			if selected.Kind == endpoint.SNI {
				return errors.New(msgSNIRollback)
			}

			var restored endpoint.Endpoint
			err = s.action("Rolling back "+label(selected)+" for "+s.app, func() error {
				restored, err = s.api.RollbackEndpoint(ctx, s.app, selected.Name)
				return err
			})
			if err != nil {
				return err
			}

			return writeDetails(s.out, "New active certificate details:", restored)
		},
	}

	sel.register(cmd)
	cmd.Flags().StringVar(&confirm, "confirm", "", "app name to confirm the rollback")
	return cmd
}
