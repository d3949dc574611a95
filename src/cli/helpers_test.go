// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/cli"
	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/config"
	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	version = "1.3.3.7-testing"
	token   = "01234567-89ab-cdef-0123-456789abcdef"
)

// endpointJSON is the SSL endpoint used throughout the tests.
const endpointJSON = `{
  "name": "tokyo-1050",
  "cname": "tokyo-1050.herokussl.com",
  "certificate_chain": "-----BEGIN CERTIFICATE-----\n",
  "updated_at": "2013-08-01T21:34:23Z",
  "ssl_cert": {
    "cert_domains": ["example.org"],
    "starts_at": "2012-08-01T21:34:23Z",
    "expires_at": "2013-08-01T21:34:23Z",
    "issuer": "/C=US/ST=California/L=San Francisco/O=Heroku by Salesforce/CN=secure.example.org",
    "subject": "/C=US/ST=California/L=San Francisco/O=Heroku by Salesforce/CN=secure.example.org",
    "ca_signed?": false,
    "self_signed?": true
  }
}`

// endpoint2JSON is an SNI endpoint.
const endpoint2JSON = `{
  "name": "akita-7777",
  "cname": null,
  "certificate_chain": "-----BEGIN CERTIFICATE-----\n",
  "updated_at": "2013-08-01T21:34:23Z",
  "ssl_cert": {
    "cert_domains": ["foo.example.org"],
    "starts_at": "2012-08-01T21:34:23Z",
    "expires_at": "2013-08-01T21:34:23Z",
    "issuer": "/CN=foo.example.org",
    "subject": "/CN=foo.example.org",
    "ca_signed?": true,
    "self_signed?": false
  }
}`

const certificateDetails = `Common Name(s): example.org
Expires At:     2013-08-01 21:34 UTC
Issuer:         /C=US/ST=California/L=San Francisco/O=Heroku by Salesforce/CN=secure.example.org
Starts At:      2012-08-01 21:34 UTC
Subject:        /C=US/ST=California/L=San Francisco/O=Heroku by Salesforce/CN=secure.example.org
SSL certificate is self signed.
`

type request struct {
	method string
	path   string
	body   string
}

type route struct {
	status int
	body   string
}

// fakeServer stands in for both the Platform API and SSL Doctor. Routes are
// keyed by "METHOD path"; anything else fails the test.
type fakeServer struct {
	mu       sync.Mutex
	requests []request
	routes   map[string]route
	url      string
}

func newFakeServer(t *testing.T, routes map[string]route) *fakeServer {
	t.Helper()
	fs := &fakeServer{routes: routes}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		key := r.Method + " " + r.URL.Path

		fs.mu.Lock()
		fs.requests = append(fs.requests, request{method: r.Method, path: r.URL.Path, body: string(data)})
		rt, ok := fs.routes[key]
		fs.mu.Unlock()

		if !ok {
			assert.Failf(t, "unexpected request", "%s", key)
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"id":"not_found","message":"Not found."}`)
			return
		}
		w.WriteHeader(rt.status)
		io.WriteString(w, rt.body)
	}))
	t.Cleanup(srv.Close)
	fs.url = srv.URL
	return fs
}

func (fs *fakeServer) calls() []string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	var out []string
	for _, r := range fs.requests {
		out = append(out, r.method+" "+r.path)
	}
	return out
}

func (fs *fakeServer) bodyOf(method, path string) string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	for _, r := range fs.requests {
		if r.method == method && r.path == path {
			return r.body
		}
	}
	return ""
}

func ok(body string) route { return route{status: http.StatusOK, body: body} }

// lists answers the two endpoint listings of app "example".
func lists(ssl, sni string) map[string]route {
	return map[string]route{
		"GET /apps/example/ssl-endpoints": ok("[" + ssl + "]"),
		"GET /apps/example/sni-endpoints": ok("[" + sni + "]"),
	}
}

func with(routes map[string]route, extra map[string]route) map[string]route {
	for k, v := range extra {
		routes[k] = v
	}
	return routes
}

// setup points the CLI at api and doctor with a valid token.
func setup(t *testing.T, api, doctor *fakeServer) {
	t.Helper()
	t.Setenv(config.EnvConfigFile, "")
	t.Setenv(config.EnvApp, "")
	t.Setenv(config.EnvDebug, "")
	t.Setenv(config.EnvAPIKey, token)
	t.Setenv(config.EnvAPIURL, api.url)
	t.Setenv(config.EnvSSLDoctorURL, doctor.url)
}

type result struct {
	stdout   string
	stderr   string
	progress string
	err      error
}

func run(t *testing.T, args ...string) result {
	t.Helper()
	var stdout, stderr, progress bytes.Buffer

	log := logger.NewCLILogger()
	log.SetOutput(&progress)

	cmd := cli.NewRootCommand(version, log)
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(context.Background())
	return result{stdout: stdout.String(), stderr: stderr.String(), progress: progress.String(), err: err}
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
