package config

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

const (
	// EnvClientBaseURL overrides the API base URL.
	EnvClientBaseURL = "DOCSIGHT_BASE_URL"

	// EnvClientTimeout overrides the per-request timeout.
	EnvClientTimeout = "DOCSIGHT_TIMEOUT"
)

// ClientConfig contains settings for the API gateway client.
type ClientConfig struct {
	// BaseURL is the root of the remote analysis service API.
	// Default: "http://localhost:8000/api/v1"
	BaseURL    string `toml:"base_url"`
	Timeout    string `toml:"timeout"`
	timeoutVal time.Duration
}

// TimeoutDuration returns the parsed per-request timeout.
func (c *ClientConfig) TimeoutDuration() time.Duration {
	return c.timeoutVal
}

// Finalize applies defaults, loads environment overrides, and validates the client configuration.
func (c *ClientConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *ClientConfig) Merge(overlay *ClientConfig) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

func (c *ClientConfig) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "http://localhost:8000/api/v1"
	}
	if c.Timeout == "" {
		c.Timeout = "30s"
	}
}

func (c *ClientConfig) loadEnv() {
	if v := os.Getenv(EnvClientBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvClientTimeout); v != "" {
		c.Timeout = v
	}
}

func (c *ClientConfig) validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base_url scheme: %s", u.Scheme)
	}

	timeout, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	c.timeoutVal = timeout

	return nil
}
