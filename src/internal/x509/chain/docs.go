// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509chain resolves [X.509] certificate chains for the certs:chain command.
//
// Chain construction is delegated to a remote chain-resolution [Service]:
// the package validates its input, reads the certificate files concurrently
// and hands the texts over in one request. It performs no local validation of
// signatures or expiry.
//
// [X.509]: https://grokipedia.com/page/X.509
package x509chain
