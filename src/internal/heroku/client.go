// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package heroku

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/internal/endpoint"
	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/internal/helper/httpclient"
)

const (
	// DefaultURL is the public Heroku Platform API.
	DefaultURL = "https://api.heroku.com"

	acceptV3  = "application/vnd.heroku+json; version=3"
	acceptSNI = "application/vnd.heroku+json; version=3.sni_ssl_cert"
)

// RemoteError is a non-2xx answer from the Platform API.
type RemoteError struct {
	Status  int
	ID      string
	Message string
}

func (e *RemoteError) Error() string { return e.Message }

// Client is a minimal Platform API client for certificate endpoints.
type Client struct {
	baseURL string
	token   string
	http    *httpclient.Config
}

// New creates a Client for baseURL (DefaultURL when empty) authenticating
// with token.
func New(baseURL, token string, cfg *httpclient.Config) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    cfg,
	}
}

// ListSSLEndpoints returns the app's SSL endpoints in API order.
func (c *Client) ListSSLEndpoints(ctx context.Context, app string) ([]endpoint.Endpoint, error) {
	return c.list(ctx, app, endpoint.SSL)
}

// ListSNIEndpoints returns the app's SNI endpoints in API order.
func (c *Client) ListSNIEndpoints(ctx context.Context, app string) ([]endpoint.Endpoint, error) {
	return c.list(ctx, app, endpoint.SNI)
}

// Endpoints fetches SSL then SNI endpoints, one after the other, and joins
// them into a Set.
func (c *Client) Endpoints(ctx context.Context, app string) (endpoint.Set, error) {
	ssl, err := c.ListSSLEndpoints(ctx, app)
	if err != nil {
		return endpoint.Set{}, err
	}
	sni, err := c.ListSNIEndpoints(ctx, app)
	if err != nil {
		return endpoint.Set{}, err
	}
	return endpoint.NewSet(ssl, sni), nil
}

// GetEndpoint fetches a single endpoint.
func (c *Client) GetEndpoint(ctx context.Context, app string, kind endpoint.Kind, name string) (endpoint.Endpoint, error) {
	var w wireEndpoint
	if err := c.do(ctx, http.MethodGet, endpointPath(app, kind, name), kind, nil, &w); err != nil {
		return endpoint.Endpoint{}, err
	}
	return w.toEndpoint(kind), nil
}

// UpdateEndpoint replaces the certificate chain and private key of an endpoint.
func (c *Client) UpdateEndpoint(ctx context.Context, app string, kind endpoint.Kind, name, chain, key string) (endpoint.Endpoint, error) {
	payload := map[string]string{
		"certificate_chain": chain,
		"private_key":       key,
	}

	var w wireEndpoint
	if err := c.do(ctx, http.MethodPatch, endpointPath(app, kind, name), kind, payload, &w); err != nil {
		return endpoint.Endpoint{}, err
	}
	return w.toEndpoint(kind), nil
}

// RemoveEndpoint deletes an endpoint.
func (c *Client) RemoveEndpoint(ctx context.Context, app string, kind endpoint.Kind, name string) error {
	return c.do(ctx, http.MethodDelete, endpointPath(app, kind, name), kind, nil, nil)
}

// RollbackEndpoint restores the previous certificate of an SSL endpoint.
// SNI endpoints keep no history on the platform.
func (c *Client) RollbackEndpoint(ctx context.Context, app, name string) (endpoint.Endpoint, error) {
	var w wireEndpoint
	path := endpointPath(app, endpoint.SSL, name) + "/rollback"
	if err := c.do(ctx, http.MethodPost, path, endpoint.SSL, nil, &w); err != nil {
		return endpoint.Endpoint{}, err
	}
	return w.toEndpoint(endpoint.SSL), nil
}

func (c *Client) list(ctx context.Context, app string, kind endpoint.Kind) ([]endpoint.Endpoint, error) {
	var ws []wireEndpoint
	if err := c.do(ctx, http.MethodGet, collectionPath(app, kind), kind, nil, &ws); err != nil {
		return nil, err
	}

	endpoints := make([]endpoint.Endpoint, 0, len(ws))
	for _, w := range ws {
		endpoints = append(endpoints, w.toEndpoint(kind))
	}
	return endpoints, nil
}

// do performs one API call. payload, when non-nil, is sent as JSON; out,
// when non-nil, receives the decoded response.
func (c *Client) do(ctx context.Context, method, path string, kind endpoint.Kind, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}

	accept := acceptV3
	if kind == endpoint.SNI {
		accept = acceptSNI
	}
	req.Header.Set("Accept", accept)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}

	if !resp.OK() {
		return decodeRemoteError(resp)
	}

	if out == nil || len(resp.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

func decodeRemoteError(resp *httpclient.Response) error {
	remote := &RemoteError{Status: resp.StatusCode}

	var body struct {
		ID      string `json:"id"`
		Message string `json:"message"`
	}
	if json.Unmarshal(resp.Body, &body) == nil {
		remote.ID = body.ID
		remote.Message = body.Message
	}
	if remote.Message == "" {
		remote.Message = resp.Status
	}
	return remote
}

func kindSegment(kind endpoint.Kind) string {
	if kind == endpoint.SNI {
		return "sni-endpoints"
	}
	return "ssl-endpoints"
}

func collectionPath(app string, kind endpoint.Kind) string {
	return "/apps/" + url.PathEscape(app) + "/" + kindSegment(kind)
}

func endpointPath(app string, kind endpoint.Kind, name string) string {
	return collectionPath(app, kind) + "/" + url.PathEscape(name)
}
