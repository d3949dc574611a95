// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"certs", "_certs"},
		Short:   "List SSL certificates for an app",
		Args:    cobra.NoArgs,
		RunE:    o.runList,
	}
}

func (o *options) runList(cmd *cobra.Command, _ []string) error {
	s, err := o.session(cmd)
	if err != nil {
		return err
	}

	set, err := s.api.Endpoints(cmd.Context(), s.app)
	if err != nil {
		return err
	}

	if set.Len() == 0 {
		_, err := fmt.Fprintf(s.out, "%s has no SSL certificates.\n", s.app)
		return err
	}
	return renderEndpoints(s.out, set.All())
}
