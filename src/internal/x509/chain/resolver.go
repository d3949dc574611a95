// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"context"
	"errors"

	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/internal/helper/certfile"
)

// ErrNoCertificates indicates that no certificate was supplied.
var ErrNoCertificates = errors.New("x509chain: must specify at least one certificate file")

// Service orders certificates into a complete chain, adding any
// intermediates or roots it can find.
//
// The SSL Doctor client is the production implementation.
type Service interface {
	ResolveChain(ctx context.Context, certs []string) (string, error)
}

// FileReader returns the contents of paths in the order given.
type FileReader func(ctx context.Context, paths []string) ([]string, error)

// Resolver produces ordered, complete [X.509] certificate chains.
//
// [X.509]: https://grokipedia.com/page/X.509
type Resolver struct {
	service Service
	read    FileReader
}

// New creates a Resolver backed by service that reads local files with
// [certfile.ReadAll].
func New(service Service) *Resolver {
	return &Resolver{service: service, read: certfile.ReadAll}
}

// WithFileReader returns a copy of r that reads files with read.
func (r *Resolver) WithFileReader(read FileReader) *Resolver {
	return &Resolver{service: r.service, read: read}
}

// Resolve submits certs, leaf first or in any order, in a single request and
// returns the chain as the service produced it.
//
// Certificates are not parsed or checked locally. Service errors are
// returned unchanged so callers can show them verbatim.
//
// Parameters:
//   - ctx: Context for cancellation
//   - certs: Raw certificate texts, at least one
//
// Returns:
//   - string: Newline-delimited PEM blocks, leaf first
//   - error: [ErrNoCertificates] before any I/O, or the service error
func (r *Resolver) Resolve(ctx context.Context, certs []string) (string, error) {
	if len(certs) == 0 {
		return "", ErrNoCertificates
	}
	return r.service.ResolveChain(ctx, certs)
}

// ResolveFiles reads paths and resolves their combined chain.
//
// An empty path list fails with [ErrNoCertificates] before any file is
// touched. A missing file fails with [certfile.ErrFileNotFound] and the
// service is not called.
func (r *Resolver) ResolveFiles(ctx context.Context, paths []string) (string, error) {
	if len(paths) == 0 {
		return "", ErrNoCertificates
	}

	certs, err := r.read(ctx, paths)
	if err != nil {
		return "", err
	}

	return r.Resolve(ctx, certs)
}
