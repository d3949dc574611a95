// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// fallbackName is used when os.Args carries no program name.
const fallbackName = "heroku-certs"

// GetExecutableName returns the executable name without extension, cross-platform compatible.
// The root command uses it as its Use string so that help and usage lines show
// the binary the user actually invoked (for example "heroku-certs" or a
// renamed copy such as "certs").
//
//   - Linux/macOS: "heroku-certs" from "/usr/local/bin/heroku-certs"
//   - Windows: "heroku-certs" from "C:\bin\heroku-certs.exe"
//   - Fallback: "heroku-certs" if os.Args[0] is unavailable
func GetExecutableName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return fallbackName
	}

	name := filepath.Base(os.Args[0])

	// A path built with the other platform's separator survives filepath.Base
	// untouched, so split it by hand.
	if strings.Contains(name, "\\") || (strings.Contains(name, "/") && !strings.Contains(name, string(filepath.Separator))) {
		parts := strings.FieldsFunc(name, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			name = parts[len(parts)-1]
		}
	}

	return strings.TrimSuffix(name, ".exe")
}
