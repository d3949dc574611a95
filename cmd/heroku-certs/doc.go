// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// heroku-certs manages the SSL and SNI certificate endpoints of Heroku apps.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/balajikrishdev/heroku-cli-plugin-certs-v5/cmd/heroku-certs@latest
//
// # Usage
//
//	heroku-certs [COMMAND] --app APP [FLAGS]
//
// # Commands
//
//	certs            List SSL certificates for an app (default)
//	certs:chain      Print an ordered & complete chain for a certificate
//	certs:info       Show certificate information for an SSL certificate
//	certs:update     Update an SSL certificate on an app
//	certs:remove     Remove an SSL certificate from an app
//	certs:rollback   Roll back an SSL endpoint to its previous certificate
//	certs:key        Print the correct key for the given certificate
//
// Commands that act on one endpoint take --name or --endpoint when the app
// has more than one. update, remove and rollback require --confirm APP.
//
// # Environment
//
//	HEROKU_API_KEY            API token (required)
//	HEROKU_APP                default app
//	HEROKU_API_URL            Platform API base URL
//	HEROKU_SSL_DOCTOR_URL     SSL Doctor base URL
//	HEROKU_CERTS_CONFIG_FILE  JSON or YAML config file
//	HEROKU_DEBUG              trace HTTP calls as JSON on stderr
//
// # Examples
//
// Complete a certificate chain:
//
//	heroku-certs certs:chain -a example server.crt intermediate.crt > chain.pem
//
// Replace a certificate:
//
//	heroku-certs certs:update server.crt server.key -a example --confirm example
//
// Errors are printed on stderr behind a " ▸    " marker and exit with status 1.
package main
