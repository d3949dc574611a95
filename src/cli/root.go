// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"

	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/internal/helper/posix"
	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/logger"
	"github.com/spf13/cobra"
)

// options carries the global flags and collaborators shared by every command.
type options struct {
	version    string
	log        logger.Logger
	app        string
	configPath string
}

// NewRootCommand builds the command tree. log receives progress lines such as
// "Resolving trust chain... done"; command results go to the command's
// standard output.
func NewRootCommand(version string, log logger.Logger) *cobra.Command {
	opts := &options{version: version, log: log}

	root := &cobra.Command{
		Use:           posix.GetExecutableName(),
		Short:         "Manage SSL certificates of Heroku apps",
		Long:          "List, inspect, update, remove and roll back the SSL and SNI certificate endpoints of an app.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          opts.runList,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.app, "app", "a", "", "app to run command against (default: $HEROKU_APP)")
	flags.StringVar(&opts.configPath, "config", "", "JSON or YAML config file (default: $HEROKU_CERTS_CONFIG_FILE)")

	root.AddCommand(
		newListCommand(opts),
		newChainCommand(opts),
		newInfoCommand(opts),
		newUpdateCommand(opts),
		newRemoveCommand(opts),
		newRollbackCommand(opts),
		newKeyCommand(opts),
	)

	return root
}

// Execute runs the command tree with the process arguments. Errors are
// returned unformatted; use [FormatError] to print them.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewRootCommand(version, log).ExecuteContext(ctx)
}

// aliases returns the topic spellings of a command: "certs:<name>" and the
// hidden "_certs:<name>".
func aliases(name string) []string {
	return []string{"certs:" + name, "_certs:" + name}
}
