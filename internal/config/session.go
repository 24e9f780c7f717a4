package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// EnvSessionTokenPath overrides where the bearer token is persisted.
	EnvSessionTokenPath = "DOCSIGHT_TOKEN_PATH"
)

// SessionConfig contains settings for persisted session state.
type SessionConfig struct {
	// TokenPath is the file the bearer token is stored in between runs.
	// Default: <user config dir>/docsight/token
	TokenPath string `toml:"token_path"`
}

// Finalize applies defaults, loads environment overrides, and validates the session configuration.
func (c *SessionConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *SessionConfig) Merge(overlay *SessionConfig) {
	if overlay.TokenPath != "" {
		c.TokenPath = overlay.TokenPath
	}
}

func (c *SessionConfig) loadDefaults() {
	if c.TokenPath == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base = "."
		}
		c.TokenPath = filepath.Join(base, "docsight", "token")
	}
}

func (c *SessionConfig) loadEnv() {
	if v := os.Getenv(EnvSessionTokenPath); v != "" {
		c.TokenPath = v
	}
}

func (c *SessionConfig) validate() error {
	if c.TokenPath == "" {
		return fmt.Errorf("token_path required")
	}
	return nil
}
