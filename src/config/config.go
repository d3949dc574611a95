// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables read by [Load].
const (
	EnvConfigFile   = "HEROKU_CERTS_CONFIG_FILE"
	EnvAPIKey       = "HEROKU_API_KEY"
	EnvAPIURL       = "HEROKU_API_URL"
	EnvSSLDoctorURL = "HEROKU_SSL_DOCTOR_URL"
	EnvApp          = "HEROKU_APP"
	EnvDebug        = "HEROKU_DEBUG"
)

// Default values applied before the file and the environment.
const (
	DefaultAPIURL         = "https://api.heroku.com"
	DefaultSSLDoctorURL   = "https://ssl-doctor.heroku.com"
	DefaultTimeoutSeconds = 30
)

// format represents supported configuration file formats.
type format int

const (
	// formatJSON represents JSON configuration format (.json)
	formatJSON format = iota
	// formatYAML represents YAML configuration format (.yaml, .yml)
	formatYAML
)

// Config holds the settings of a heroku-certs invocation.
type Config struct {
	// API: Platform API connection settings
	API struct {
		// URL: Base URL of the Platform API
		URL string `json:"url,omitempty" yaml:"url,omitempty"`
		// Token: API token (can also be set via HEROKU_API_KEY env var)
		Token string `json:"token,omitempty" yaml:"token,omitempty"`
	} `json:"api" yaml:"api"`

	// SSLDoctor: chain-resolution service settings
	SSLDoctor struct {
		// URL: Base URL of SSL Doctor
		URL string `json:"url,omitempty" yaml:"url,omitempty"`
	} `json:"sslDoctor" yaml:"sslDoctor"`

	// Timeout: HTTP timeout in seconds for every remote call
	Timeout int `json:"timeoutSeconds" yaml:"timeoutSeconds"`

	// Debug: trace HTTP requests as JSON lines on stderr
	Debug bool `json:"debug" yaml:"debug"`

	// App: default application when --app is not given
	App string `json:"app,omitempty" yaml:"app,omitempty"`
}

// TimeoutDuration returns Timeout as a [time.Duration].
func (c *Config) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// detectFormat determines the configuration file format based on file extension.
func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// unmarshal parses data into cfg using the given format.
func unmarshal(data []byte, cfg *Config, f format) error {
	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load builds the configuration for one invocation.
//
// Configuration Priority:
//  1. Default values are set
//  2. HEROKU_CERTS_CONFIG_FILE is used if path is empty
//  3. Config file values override defaults
//  4. Environment variables override config file values
//
// A missing path is not an error; a path that cannot be read or parsed is.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.API.URL = DefaultAPIURL
	cfg.SSLDoctor.URL = DefaultSSLDoctorURL
	cfg.Timeout = DefaultTimeoutSeconds

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := unmarshal(data, cfg, detectFormat(path)); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	// Validate and restore defaults for invalid values
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeoutSeconds
	}
	if cfg.API.URL == "" {
		cfg.API.URL = DefaultAPIURL
	}
	if cfg.SSLDoctor.URL == "" {
		cfg.SSLDoctor.URL = DefaultSSLDoctorURL
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.API.Token = v
	}
	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.API.URL = v
	}
	if v := os.Getenv(EnvSSLDoctorURL); v != "" {
		cfg.SSLDoctor.URL = v
	}
	if v := os.Getenv(EnvApp); v != "" {
		cfg.App = v
	}
	if v := os.Getenv(EnvDebug); v != "" {
		// Anything that is not a recognised boolean counts as enabled.
		debug, err := strconv.ParseBool(v)
		cfg.Debug = err != nil || debug
	}
}
