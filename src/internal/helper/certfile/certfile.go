// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/internal/helper/gc"
	"golang.org/x/sync/errgroup"
)

// ErrFileNotFound indicates that a named certificate or key file does not exist.
var ErrFileNotFound = errors.New("no such file or directory")

// Read returns the contents of the file at path as text.
//
// A missing file yields an error wrapping [ErrFileNotFound] that names the path.
func Read(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", path, ErrFileNotFound)
		}
		return "", err
	}
	defer f.Close()

	data, err := gc.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", path, err)
	}

	return string(data), nil
}

// ReadAll reads every path concurrently and returns the contents in the
// order the paths were given.
//
// The first failure cancels the reads that have not started yet and is
// returned; no partial result is produced.
func ReadAll(ctx context.Context, paths []string) ([]string, error) {
	contents := make([]string, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := Read(path)
			if err != nil {
				return err
			}
			contents[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return contents, nil
}
