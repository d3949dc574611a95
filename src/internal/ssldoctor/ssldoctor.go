// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ssldoctor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/internal/helper/httpclient"
)

// DefaultURL is the public SSL Doctor service.
const DefaultURL = "https://ssl-doctor.heroku.com"

// RemoteError is a non-2xx answer from SSL Doctor. Message is shown to the
// user verbatim.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string { return e.Message }

// Bundle is a resolved chain together with the private key that matches its leaf.
type Bundle struct {
	PEM string `json:"pem"`
	Key string `json:"key"`
}

// Client talks to the SSL Doctor chain-resolution service.
type Client struct {
	baseURL string
	http    *httpclient.Config
}

// New creates a Client for baseURL (DefaultURL when empty).
func New(baseURL string, cfg *httpclient.Config) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    cfg,
	}
}

// ResolveChain submits all certificate texts in one request and returns the
// ordered, completed chain exactly as the service produced it.
func (c *Client) ResolveChain(ctx context.Context, certs []string) (string, error) {
	body, err := c.post(ctx, "resolve-chain", certs)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// ResolveChainAndKey resolves the chain of certs and picks the key among
// keys that belongs to the leaf certificate.
func (c *Client) ResolveChainAndKey(ctx context.Context, certs, keys []string) (*Bundle, error) {
	parts := make([]string, 0, len(certs)+len(keys))
	parts = append(parts, certs...)
	parts = append(parts, keys...)

	body, err := c.post(ctx, "resolve-chain-and-key", parts)
	if err != nil {
		return nil, err
	}

	var bundle Bundle
	if err := json.Unmarshal(body, &bundle); err != nil {
		return nil, fmt.Errorf("failed to decode resolve-chain-and-key response: %w", err)
	}
	return &bundle, nil
}

// GetKey returns the private key among keys that matches cert.
func (c *Client) GetKey(ctx context.Context, cert string, keys []string) (string, error) {
	parts := append([]string{cert}, keys...)

	body, err := c.post(ctx, "get-key", parts)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// post sends the newline-joined texts to the named operation.
func (c *Client) post(ctx context.Context, op string, texts []string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+op, strings.NewReader(strings.Join(texts, "\n")))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}

	if !resp.OK() {
		msg := strings.TrimSpace(string(resp.Body))
		if msg == "" {
			msg = resp.Status
		}
		return nil, &RemoteError{Status: resp.StatusCode, Message: msg}
	}

	return resp.Body, nil
}
