// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/cli"
	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/config"
	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/internal/endpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "Single line",
			err:  errors.New("Record not found."),
			want: " ▸    Record not found.\n",
		},
		{
			name: "Multi line",
			err:  errors.New("Usage: heroku certs:chain CRT [CRT ...]\nMust specify at least one certificate file."),
			want: " ▸    Usage: heroku certs:chain CRT [CRT ...]\n ▸    Must specify at least one certificate file.\n",
		},
		{
			name: "Trailing newline",
			err:  errors.New("boom\n"),
			want: " ▸    boom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cli.FormatError(tt.err))
		})
	}
}

// TestEndpointSelection runs the shared selection scenarios against every
// command that acts on one endpoint.
func TestEndpointSelection(t *testing.T) {
	crt := writeTemp(t, "server.crt", "crt")
	key := writeTemp(t, "server.key", "key")

	commands := map[string][]string{
		"info":     {"certs:info"},
		"remove":   {"certs:remove", "--confirm", "example"},
		"rollback": {"certs:rollback", "--confirm", "example"},
		"update":   {"certs:update", crt, key, "--bypass", "--confirm", "example"},
	}

	scenarios := []struct {
		name     string
		routes   map[string]route
		flags    []string
		wantMsg  string
		wantKind error
		offline  bool
	}{
		{
			name:     "No endpoints",
			routes:   lists("", ""),
			wantMsg:  "example has no SSL endpoints",
			wantKind: endpoint.ErrNoEndpoints,
		},
		{
			name:     "More than one endpoint without criteria",
			routes:   lists(endpointJSON, endpoint2JSON),
			wantMsg:  "Must pass --name when more than one endpoint",
			wantKind: endpoint.ErrMultipleEndpoints,
		},
		{
			name:     "Endpoint domain matches nothing",
			routes:   lists("", endpoint2JSON),
			flags:    []string{"--endpoint", "tokyo-1050.herokussl.com"},
			wantMsg:  "Record not found.",
			wantKind: endpoint.ErrNotFound,
		},
		{
			name:     "Name matches more than one",
			routes:   lists(endpointJSON, endpointJSON),
			flags:    []string{"--name", "tokyo-1050"},
			wantMsg:  "More than one endpoint matches tokyo-1050, please file a support ticket",
			wantKind: endpoint.ErrAmbiguousName,
		},
		{
			name:     "Name and endpoint together",
			routes:   map[string]route{},
			flags:    []string{"--name", "tokyo-1050", "--endpoint", "tokyo-1050.herokussl.com"},
			wantMsg:  "Specified both --name and --endpoint, please use just one",
			wantKind: endpoint.ErrConflictingCriteria,
			offline:  true,
		},
	}

	for command, base := range commands {
		for _, sc := range scenarios {
			t.Run(command+"/"+sc.name, func(t *testing.T) {
				api := newFakeServer(t, sc.routes)
				doctor := newFakeServer(t, map[string]route{})
				setup(t, api, doctor)

				args := append(append(append([]string{}, base...), "--app", "example"), sc.flags...)
				res := run(t, args...)

				require.Error(t, res.err)
				assert.ErrorIs(t, res.err, sc.wantKind)
				assert.Equal(t, " ▸    "+sc.wantMsg+"\n", cli.FormatError(res.err))
				assert.Empty(t, res.stdout)
				assert.Empty(t, res.progress)
				assert.Empty(t, doctor.calls())
				if sc.offline {
					assert.Empty(t, api.calls(), "no request may precede the conflict check")
				} else {
					assert.Equal(t, []string{
						"GET /apps/example/ssl-endpoints",
						"GET /apps/example/sni-endpoints",
					}, api.calls())
				}
			})
		}
	}
}

func TestInfoByEndpoint(t *testing.T) {
	api := newFakeServer(t, with(lists(endpointJSON, ""), map[string]route{
		"GET /apps/example/ssl-endpoints/tokyo-1050": ok(endpointJSON),
	}))
	setup(t, api, newFakeServer(t, map[string]route{}))

	res := run(t, "certs:info", "--app", "example", "--endpoint", "tokyo-1050.herokussl.com")
	require.NoError(t, res.err)

	assert.Equal(t, "Certificate details:\n"+certificateDetails, res.stdout)
	assert.Equal(t, "Fetching SSL Endpoint tokyo-1050 (tokyo-1050.herokussl.com) info for example... done\n", res.progress)
	assert.Equal(t, []string{
		"GET /apps/example/ssl-endpoints",
		"GET /apps/example/sni-endpoints",
		"GET /apps/example/ssl-endpoints/tokyo-1050",
	}, api.calls())
}

func TestInfoSNIByName(t *testing.T) {
	api := newFakeServer(t, with(lists(endpointJSON, endpoint2JSON), map[string]route{
		"GET /apps/example/sni-endpoints/akita-7777": ok(endpoint2JSON),
	}))
	setup(t, api, newFakeServer(t, map[string]route{}))

	res := run(t, "_certs:info", "--app", "example", "--name", "AKITA-7777")
	require.NoError(t, res.err)

	assert.Contains(t, res.stdout, "Common Name(s): foo.example.org\n")
	assert.Contains(t, res.stdout, "SSL certificate is verified by a root authority.\n")
	assert.Equal(t, "Fetching SNI Endpoint akita-7777 info for example... done\n", res.progress)
}

func TestChain(t *testing.T) {
	tests := []struct {
		name     string
		args     func(t *testing.T) []string
		routes   map[string]route
		testFunc func(t *testing.T, res result, doctor *fakeServer)
	}{
		{
			name: "No certificates",
			args: func(t *testing.T) []string { return []string{"certs:chain", "--app", "example"} },
			testFunc: func(t *testing.T, res result, doctor *fakeServer) {
				require.Error(t, res.err)
				assert.ErrorIs(t, res.err, cli.ErrUsage)
				assert.Equal(t,
					" ▸    Usage: heroku certs:chain CRT [CRT ...]\n ▸    Must specify at least one certificate file.\n",
					cli.FormatError(res.err))
				assert.Empty(t, res.stdout)
				assert.Empty(t, doctor.calls())
			},
		},
		{
			name: "Two certificates in order",
			args: func(t *testing.T) []string {
				return []string{"certs:chain", "--app", "example",
					writeTemp(t, "cert1.pem", "cert-one"), writeTemp(t, "cert2.pem", "cert-two")}
			},
			routes: map[string]route{"POST /resolve-chain": ok("-----BEGIN CERTIFICATE-----\nresolved\n-----END CERTIFICATE-----")},
			testFunc: func(t *testing.T, res result, doctor *fakeServer) {
				require.NoError(t, res.err)
				assert.Equal(t, "-----BEGIN CERTIFICATE-----\nresolved\n-----END CERTIFICATE-----\n", res.stdout)
				assert.Equal(t, []string{"POST /resolve-chain"}, doctor.calls())
				assert.Equal(t, "cert-one\ncert-two", doctor.bodyOf(http.MethodPost, "/resolve-chain"))
			},
		},
		{
			name: "Missing file",
			args: func(t *testing.T) []string {
				return []string{"chain", "--app", "example", writeTemp(t, "cert1.pem", "cert-one"), "/nonexistent/cert2.pem"}
			},
			testFunc: func(t *testing.T, res result, doctor *fakeServer) {
				require.Error(t, res.err)
				assert.Equal(t, "/nonexistent/cert2.pem: no such file or directory", res.err.Error())
				assert.Empty(t, doctor.calls())
			},
		},
		{
			name: "Service rejects chain",
			args: func(t *testing.T) []string {
				return []string{"_certs:chain", "--app", "example", writeTemp(t, "cert1.pem", "cert-one")}
			},
			routes: map[string]route{"POST /resolve-chain": {status: http.StatusUnprocessableEntity, body: "No certificate given is a domain name certificate\n"}},
			testFunc: func(t *testing.T, res result, doctor *fakeServer) {
				require.Error(t, res.err)
				assert.Equal(t, " ▸    No certificate given is a domain name certificate\n", cli.FormatError(res.err))
				assert.Empty(t, res.stdout)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			routes := tt.routes
			if routes == nil {
				routes = map[string]route{}
			}
			doctor := newFakeServer(t, routes)
			setup(t, newFakeServer(t, map[string]route{}), doctor)

			tt.testFunc(t, run(t, tt.args(t)...), doctor)
		})
	}
}

func TestUpdate(t *testing.T) {
	const patchPath = "/apps/example/ssl-endpoints/tokyo-1050"

	tests := []struct {
		name     string
		flags    []string
		doctor   map[string]route
		testFunc func(t *testing.T, res result, api, doctor *fakeServer)
	}{
		{
			name:   "Resolves chain and key",
			doctor: map[string]route{"POST /resolve-chain-and-key": ok(`{"pem":"resolved-pem","key":"resolved-key"}`)},
			testFunc: func(t *testing.T, res result, api, doctor *fakeServer) {
				require.NoError(t, res.err)
				assert.Equal(t, "crt\nkey", doctor.bodyOf(http.MethodPost, "/resolve-chain-and-key"))
				assert.JSONEq(t, `{"certificate_chain":"resolved-pem","private_key":"resolved-key"}`, api.bodyOf(http.MethodPatch, patchPath))
				assert.Equal(t, "Updated certificate details:\n"+certificateDetails, res.stdout)
				assert.Equal(t,
					"Resolving trust chain... done\nUpdating SSL Endpoint tokyo-1050 (tokyo-1050.herokussl.com) for example... done\n",
					res.progress)
			},
		},
		{
			name:  "Bypass sends files as given",
			flags: []string{"--bypass"},
			testFunc: func(t *testing.T, res result, api, doctor *fakeServer) {
				require.NoError(t, res.err)
				assert.Empty(t, doctor.calls())
				assert.JSONEq(t, `{"certificate_chain":"crt","private_key":"key"}`, api.bodyOf(http.MethodPatch, patchPath))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			crt := writeTemp(t, "server.crt", "crt")
			key := writeTemp(t, "server.key", "key")

			api := newFakeServer(t, with(lists(endpointJSON, ""), map[string]route{
				"PATCH " + patchPath: ok(endpointJSON),
			}))
			doctorRoutes := tt.doctor
			if doctorRoutes == nil {
				doctorRoutes = map[string]route{}
			}
			doctor := newFakeServer(t, doctorRoutes)
			setup(t, api, doctor)

			args := append([]string{"certs:update", crt, key, "--app", "example", "--confirm", "example"}, tt.flags...)
			tt.testFunc(t, run(t, args...), api, doctor)
		})
	}
}

func TestUpdateUsage(t *testing.T) {
	setup(t, newFakeServer(t, map[string]route{}), newFakeServer(t, map[string]route{}))

	res := run(t, "certs:update", "only-one.crt", "--app", "example", "--confirm", "example")
	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, cli.ErrUsage)
}

func TestConfirmation(t *testing.T) {
	tests := []struct {
		name    string
		flags   []string
		wantMsg string
	}{
		{
			name:    "Missing",
			wantMsg: "This command is destructive. Re-run with --confirm example.",
		},
		{
			name:    "Mismatch",
			flags:   []string{"--confirm", "other"},
			wantMsg: "Confirmation other did not match example. Aborted.",
		},
	}

	for _, command := range []string{"certs:remove", "certs:rollback"} {
		for _, tt := range tests {
			t.Run(command+"/"+tt.name, func(t *testing.T) {
				api := newFakeServer(t, map[string]route{})
				setup(t, api, newFakeServer(t, map[string]route{}))

				res := run(t, append([]string{command, "--app", "example"}, tt.flags...)...)
				require.Error(t, res.err)
				assert.ErrorIs(t, res.err, cli.ErrUsage)
				assert.Equal(t, tt.wantMsg, res.err.Error())
				assert.Empty(t, api.calls())
			})
		}
	}
}

func TestRemove(t *testing.T) {
	api := newFakeServer(t, with(lists("", endpoint2JSON), map[string]route{
		"DELETE /apps/example/sni-endpoints/akita-7777": ok(endpoint2JSON),
	}))
	setup(t, api, newFakeServer(t, map[string]route{}))

	res := run(t, "certs:remove", "--app", "example", "--confirm", "example")
	require.NoError(t, res.err)

	assert.Empty(t, res.stdout)
	assert.Equal(t, "Removing SNI Endpoint akita-7777 from example... done\n", res.progress)
	assert.Contains(t, api.calls(), "DELETE /apps/example/sni-endpoints/akita-7777")
}

func TestRollback(t *testing.T) {
	t.Run("SSL endpoint", func(t *testing.T) {
		api := newFakeServer(t, with(lists(endpointJSON, ""), map[string]route{
			"POST /apps/example/ssl-endpoints/tokyo-1050/rollback": ok(endpointJSON),
		}))
		setup(t, api, newFakeServer(t, map[string]route{}))

		res := run(t, "certs:rollback", "--app", "example", "--confirm", "example")
		require.NoError(t, res.err)
		assert.Equal(t, "New active certificate details:\n"+certificateDetails, res.stdout)
		assert.Equal(t, "Rolling back SSL Endpoint tokyo-1050 (tokyo-1050.herokussl.com) for example... done\n", res.progress)
	})

	t.Run("SNI endpoint", func(t *testing.T) {
		api := newFakeServer(t, lists("", endpoint2JSON))
		setup(t, api, newFakeServer(t, map[string]route{}))

		res := run(t, "certs:rollback", "--app", "example", "--confirm", "example")
		require.Error(t, res.err)
		assert.Equal(t, "SNI Endpoints cannot be rolled back, please update with a new certificate.", res.err.Error())
		assert.Len(t, api.calls(), 2)
	})
}

func TestKey(t *testing.T) {
	t.Run("Prints matching key", func(t *testing.T) {
		doctor := newFakeServer(t, map[string]route{"POST /get-key": ok("the-key")})
		setup(t, newFakeServer(t, map[string]route{}), doctor)

		res := run(t, "certs:key", "--app", "example",
			writeTemp(t, "server.crt", "crt"), writeTemp(t, "a.key", "key-a"), writeTemp(t, "b.key", "key-b"))
		require.NoError(t, res.err)
		assert.Equal(t, "the-key\n", res.stdout)
		assert.Equal(t, "crt\nkey-a\nkey-b", doctor.bodyOf(http.MethodPost, "/get-key"))
		assert.Equal(t, "Testing for signing key... done\n", res.progress)
	})

	t.Run("Needs a key file", func(t *testing.T) {
		doctor := newFakeServer(t, map[string]route{})
		setup(t, newFakeServer(t, map[string]route{}), doctor)

		res := run(t, "certs:key", "--app", "example", writeTemp(t, "server.crt", "crt"))
		require.Error(t, res.err)
		assert.ErrorIs(t, res.err, cli.ErrUsage)
		assert.Empty(t, doctor.calls())
	})
}

func TestList(t *testing.T) {
	t.Run("Endpoints", func(t *testing.T) {
		api := newFakeServer(t, lists(endpointJSON, endpoint2JSON))
		setup(t, api, newFakeServer(t, map[string]route{}))

		for _, args := range [][]string{{"--app", "example"}, {"certs", "--app", "example"}} {
			res := run(t, args...)
			require.NoError(t, res.err)
			for _, want := range []string{"tokyo-1050", "tokyo-1050.herokussl.com", "akita-7777", "(Not applicable for SNI)", "2013-08-01 21:34 UTC"} {
				assert.Contains(t, res.stdout, want)
			}
		}
	})

	t.Run("Empty", func(t *testing.T) {
		api := newFakeServer(t, lists("", ""))
		setup(t, api, newFakeServer(t, map[string]route{}))
		t.Setenv(config.EnvApp, "example")

		res := run(t)
		require.NoError(t, res.err)
		assert.Equal(t, "example has no SSL certificates.\n", res.stdout)
	})

	t.Run("Remote error", func(t *testing.T) {
		api := newFakeServer(t, map[string]route{
			"GET /apps/example/ssl-endpoints": {status: http.StatusForbidden, body: `{"id":"forbidden","message":"You do not have access to the app example."}`},
		})
		setup(t, api, newFakeServer(t, map[string]route{}))

		res := run(t, "--app", "example")
		require.Error(t, res.err)
		assert.Equal(t, " ▸    You do not have access to the app example.\n", cli.FormatError(res.err))
		assert.Empty(t, res.stdout)
	})
}

func TestSession(t *testing.T) {
	t.Run("Not logged in", func(t *testing.T) {
		api := newFakeServer(t, map[string]route{})
		setup(t, api, newFakeServer(t, map[string]route{}))
		t.Setenv(config.EnvAPIKey, "")

		res := run(t, "--app", "example")
		require.Error(t, res.err)
		assert.ErrorIs(t, res.err, cli.ErrUsage)
		assert.Equal(t, "Not logged in. Set HEROKU_API_KEY or api.token in the config file.", res.err.Error())
		assert.Empty(t, api.calls())
	})

	t.Run("No app", func(t *testing.T) {
		setup(t, newFakeServer(t, map[string]route{}), newFakeServer(t, map[string]route{}))

		res := run(t, "certs:info")
		require.Error(t, res.err)
		assert.ErrorIs(t, res.err, cli.ErrUsage)
	})

	t.Run("App from config file", func(t *testing.T) {
		api := newFakeServer(t, lists("", ""))
		setup(t, api, newFakeServer(t, map[string]route{}))
		path := writeTemp(t, "certs.yaml", "app: example\n")

		res := run(t, "--config", path)
		require.NoError(t, res.err)
		assert.Equal(t, "example has no SSL certificates.\n", res.stdout)
	})

	t.Run("Debug trace", func(t *testing.T) {
		api := newFakeServer(t, lists("", ""))
		setup(t, api, newFakeServer(t, map[string]route{}))
		t.Setenv(config.EnvDebug, "1")

		res := run(t, "--app", "example")
		require.NoError(t, res.err)
		assert.Contains(t, res.stderr, `"level":"debug"`)
		assert.Contains(t, res.stderr, "/apps/example/ssl-endpoints")
	})
}

func TestChainUsageBeforeConfig(t *testing.T) {
	doctor := newFakeServer(t, map[string]route{})
	setup(t, newFakeServer(t, map[string]route{}), doctor)
	t.Setenv(config.EnvAPIKey, "")
	t.Setenv(config.EnvConfigFile, "/nonexistent/certs.yaml")

	res := run(t, "certs:chain")
	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, cli.ErrUsage)
	assert.Equal(t, "Usage: heroku certs:chain CRT [CRT ...]\nMust specify at least one certificate file.", res.err.Error())
	assert.Empty(t, doctor.calls())
}
