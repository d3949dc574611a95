// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/internal/endpoint"
	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/internal/helper/certfile"
	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/internal/ssldoctor"
	"github.com/spf13/cobra"
)

func newUpdateCommand(o *options) *cobra.Command {
	var (
		sel     selectFlags
		bypass  bool
		confirm string
	)

	cmd := &cobra.Command{
		Use:     "update CRT KEY",
		Aliases: aliases("update"),
		Short:   "Update an SSL certificate on an app",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return usageError(msgUpdateUsage)
			}
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

			files, err := certfile.ReadAll(ctx, args)
			if err != nil {
				return err
			}

			bundle := &ssldoctor.Bundle{PEM: files[0], Key: files[1]}
			if !bypass {
				err = s.action("Resolving trust chain", func() error {
					bundle, err = s.doctor.ResolveChainAndKey(ctx, files[:1], files[1:])
					return err
				})
				if err != nil {
					return err
				}
			}

			var updated endpoint.Endpoint
			err = s.action("Updating "+label(selected)+" for "+s.app, func() error {
				updated, err = s.api.UpdateEndpoint(ctx, s.app, selected.Kind, selected.Name, bundle.PEM, bundle.Key)
				return err
			})
			if err != nil {
				return err
			}

			return writeDetails(s.out, "Updated certificate details:", updated)
		},
	}

	sel.register(cmd)
	cmd.Flags().BoolVar(&bypass, "bypass", false, "bypass the trust chain completion step")
	cmd.Flags().StringVar(&confirm, "confirm", "", "app name to confirm the update")
	return cmd
}
