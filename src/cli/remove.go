// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import "github.com/spf13/cobra"

func newRemoveCommand(o *options) *cobra.Command {
	var (
		sel     selectFlags
		confirm string
	)

	cmd := &cobra.Command{
		Use:     "remove",
		Aliases: aliases("remove"),
		Short:   "Remove an SSL certificate from an app",
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

			return s.action("Removing "+label(selected)+" from "+s.app, func() error {
				return s.api.RemoveEndpoint(ctx, s.app, selected.Kind, selected.Name)
			})
		},
	}

	sel.register(cmd)
	cmd.Flags().StringVar(&confirm, "confirm", "", "app name to confirm the removal")
	return cmd
}
