// Package config handles environment configuration for the server.
package config

import (
	"fmt"
	"os"
)

const (
	// EnvAPIToken is the environment variable holding the ClickUp API
	// token. The token is sent verbatim as the Authorization header.
	EnvAPIToken = "CLICKUP_API_TOKEN"

	// EnvAPIURL optionally overrides the API base URL.
	EnvAPIURL = "CLICKUP_API_URL"

	// EnvDebug enables debug logging when set to any non-empty value.
	EnvDebug = "CLICKUP_DEBUG"

	// DefaultBaseURL is the ClickUp REST API base URL.
	DefaultBaseURL = "https://api.clickup.com/api/v2"
)

// Config holds the server configuration.
type Config struct {
	// APIToken is the ClickUp personal API token. Required.
	APIToken string

	// BaseURL is the API base URL, without a trailing slash.
	BaseURL string

	// Debug enables debug logging.
	Debug bool
}

// Load reads configuration from the environment. It fails if the API
// token is absent: the server is useless without a credential and must
// not start.
func Load() (*Config, error) {
	token := os.Getenv(EnvAPIToken)
	if token == "" {
		return nil, fmt.Errorf("%s is not set", EnvAPIToken)
	}

	baseURL := os.Getenv(EnvAPIURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Config{
		APIToken: token,
		BaseURL:  baseURL,
		Debug:    os.Getenv(EnvDebug) != "",
	}, nil
}
