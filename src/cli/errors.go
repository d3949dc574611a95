// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUsage marks errors caused by how the command was invoked.
var ErrUsage = errors.New("cli: usage error")

// errorMarker prefixes every line written to stderr by [FormatError].
const errorMarker = " ▸    "

type usageErr struct{ msg string }

func (e *usageErr) Error() string { return e.msg }

func (e *usageErr) Unwrap() error { return ErrUsage }

// usageError returns an error matching [ErrUsage] whose message is exactly msg.
func usageError(format string, a ...any) error {
	return &usageErr{msg: fmt.Sprintf(format, a...)}
}

// FormatError renders err the way it is printed on stderr: each line of the
// message behind the marker, each terminated by a newline.
func FormatError(err error) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(err.Error(), "\n"), "\n") {
		b.WriteString(errorMarker)
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

const (
	msgNotLoggedIn  = "Not logged in. Set HEROKU_API_KEY or api.token in the config file."
	msgMissingApp   = "Missing required flag:\n -a, --app APP  app to run command against"
	msgChainUsage   = "Usage: heroku certs:chain CRT [CRT ...]\nMust specify at least one certificate file."
	msgUpdateUsage  = "Usage: heroku certs:update CRT KEY\nMust specify a certificate file and a key file."
	msgKeyUsage     = "Usage: heroku certs:key CRT KEY [KEY ...]\nMust specify one certificate file and at least one key file."
	msgSNIRollback  = "SNI Endpoints cannot be rolled back, please update with a new certificate."
	msgConfirmUsage = "This command is destructive. Re-run with --confirm %s."
	msgConfirmFail  = "Confirmation %s did not match %s. Aborted."
)

// confirmApp guards destructive commands.
func confirmApp(app, confirm string) error {
	switch confirm {
	case "":
		return usageError(msgConfirmUsage, app)
	case app:
		return nil
	default:
		return usageError(msgConfirmFail, confirm, app)
	}
}
