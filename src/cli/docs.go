// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the Cobra command tree of heroku-certs.
//
// Each command is reachable by its short name (for example "chain"), by its
// topic name ("certs:chain") and by the hidden topic "_certs:chain".
// Commands that act on one endpoint accept --name or --endpoint and pick the
// endpoint from the app's SSL and SNI endpoints; destructive commands also
// require --confirm with the app name.
//
// Results are written to the command's standard output. Progress lines go to
// the [logger.Logger] handed to [NewRootCommand], and debug traces of HTTP
// calls go to standard error as JSON when debugging is enabled. Errors are
// returned to the caller, which prints them with [FormatError].
package cli
