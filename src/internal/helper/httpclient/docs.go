// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package httpclient holds the HTTP client settings shared by the remote
// collaborators: timeout, User-Agent and debug tracing. Requests are sent
// exactly once; there is no retry layer.
package httpclient
