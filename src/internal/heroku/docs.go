// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package heroku is a small client for the certificate endpoints of the
// Heroku Platform API (ssl-endpoints and sni-endpoints). Responses are
// mapped onto [endpoint.Endpoint] values; any non-2xx answer becomes a
// [*RemoteError] carrying the status and the API's message.
package heroku
