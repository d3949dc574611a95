// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package httpclient

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/internal/helper/gc"
	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/logger"
)

// DefaultTimeout is applied when a Config is created without an explicit timeout.
const DefaultTimeout = 30 * time.Second

// Config holds HTTP client configuration shared by the Platform API and
// SSL Doctor clients.
type Config struct {
	Timeout   time.Duration // HTTP request timeout
	Version   string        // Application version for User-Agent
	UserAgent string        // Custom User-Agent string, if empty will be constructed from Version
	Log       logger.Logger // Debug trace destination, nil disables tracing

	mu     sync.Mutex
	client *http.Client
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// OK reports whether the response carries a 2xx status.
func (r *Response) OK() bool { return r.StatusCode >= 200 && r.StatusCode < 300 }

// NewConfig creates a new HTTP configuration with [DefaultTimeout] and the
// provided application version.
func NewConfig(version string) *Config {
	return &Config{
		Timeout: DefaultTimeout,
		Version: version,
	}
}

// GetUserAgent returns the User-Agent string, constructing it if not set.
func (c *Config) GetUserAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}
	return fmt.Sprintf("heroku-certs/%s (+https://github.com/balajikrishdev/heroku-cli-plugin-certs-v5)", c.Version)
}

// Client returns an HTTP client configured with the current timeout.
//
// Thread Safety: Safe for concurrent use.
func (c *Config) Client() *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		c.client = &http.Client{Timeout: c.Timeout}
		return c.client
	}

	if c.client.Timeout != c.Timeout {
		c.client.Timeout = c.Timeout
	}

	return c.client
}

// Do sends req once and reads the whole body through the buffer pool.
//
// Only transport failures are returned as errors; callers decide what a
// non-2xx status means for them.
func (c *Config) Do(req *http.Request) (*Response, error) {
	req.Header.Set("User-Agent", c.GetUserAgent())

	c.tracef("%s %s", req.Method, req.URL.Redacted())

	resp, err := c.Client().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := gc.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	c.tracef("%s %s -> %d (%d bytes)", req.Method, req.URL.Redacted(), resp.StatusCode, len(body))

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

func (c *Config) tracef(format string, v ...any) {
	if c.Log != nil {
		c.Log.Printf(format, v...)
	}
}
