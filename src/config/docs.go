// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads heroku-certs settings from an optional JSON or YAML
// file and the HEROKU_* environment variables.
//
// Example YAML file:
//
//	api:
//	  token: 01234567-89ab-cdef-0123-456789abcdef
//	sslDoctor:
//	  url: https://ssl-doctor.heroku.com
//	timeoutSeconds: 60
//	app: example
package config
