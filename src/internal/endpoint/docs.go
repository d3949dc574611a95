// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package endpoint models an app's SSL and SNI certificate endpoints and
// resolves the --name and --endpoint flags to exactly one of them.
//
// [Select] is a pure function of its inputs: it performs no I/O and never
// mutates the [Set] it is given.
package endpoint
