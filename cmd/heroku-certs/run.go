// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/cli"
	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/logger"
	verpkg "github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

// exitCode prints err the way users see it and returns the process exit code.
func exitCode(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprint(w, cli.FormatError(err))
	return 1
}

func main() {
	// Progress lines go to stderr; stdout carries command results only
	log := logger.NewCLILogger()

	// Set up signal handling using signal.NotifyContext for cleaner cancellation
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)

	// Run the CLI in a separate goroutine
	go func() {
		done <- cli.Execute(ctx, version, log)
	}()

	select {
	case err := <-done:
		stop()
		os.Exit(exitCode(os.Stderr, err))
	case <-ctx.Done():
		log.Println("Operation cancelled by signal. Exiting...")
		// Give the in-flight request a moment to observe the cancellation
		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
		}
		os.Exit(130) // Standard exit code for SIGINT
	}
}
