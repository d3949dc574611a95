// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package ssldoctor is the client of the SSL Doctor service, which orders
// certificates into a chain, fetches missing intermediates and matches
// private keys to certificates.
//
// Every operation takes raw PEM texts, sends them newline-joined in a single
// POST and returns the service answer without local validation.
package ssldoctor
