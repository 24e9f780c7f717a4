// Package config provides application configuration management with support for
// TOML files, environment variable overrides, and configuration overlays.
package config

import (
	"fmt"
	"os"

	"github.com/docsight/docsight/pkg/logging"
	"github.com/pelletier/go-toml/v2"
)

const (
	// BaseConfigFile is the primary configuration file name.
	BaseConfigFile = "config.toml"

	// OverlayConfigPattern is the file name pattern for environment-specific overlays.
	OverlayConfigPattern = "config.%s.toml"

	// EnvDocsightEnv specifies the environment name for configuration overlays.
	EnvDocsightEnv = "DOCSIGHT_ENV"

	// EnvLogLevel overrides the logging level.
	EnvLogLevel = "DOCSIGHT_LOG_LEVEL"

	// EnvLogFormat overrides the logging format.
	EnvLogFormat = "DOCSIGHT_LOG_FORMAT"
)

// Config represents the root client configuration.
type Config struct {
	Client  ClientConfig   `toml:"client"`
	Uploads UploadsConfig  `toml:"uploads"`
	Session SessionConfig  `toml:"session"`
	Logging logging.Config `toml:"logging"`
}

// Load reads and parses the base configuration file and applies any
// environment-specific overlay. A missing base file is not an error; the
// defaults applied by Finalize describe a complete working configuration.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		path = BaseConfigFile
	}

	loaded, err := load(path)
	if err == nil {
		cfg = loaded
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if overlay := overlayPath(); overlay != "" {
		overlayCfg, err := load(overlay)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", overlay, err)
		}
		cfg.Merge(overlayCfg)
	}

	return cfg, nil
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize() error {
	if err := c.Client.Finalize(); err != nil {
		return fmt.Errorf("client: %w", err)
	}
	if err := c.Uploads.Finalize(); err != nil {
		return fmt.Errorf("uploads: %w", err)
	}
	if err := c.Session.Finalize(); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if err := c.Logging.Finalize(&logging.Env{Level: EnvLogLevel, Format: EnvLogFormat}); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	c.Client.Merge(&overlay.Client)
	c.Uploads.Merge(&overlay.Uploads)
	c.Session.Merge(&overlay.Session)
	c.Logging.Merge(&overlay.Logging)
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvDocsightEnv); env != "" {
		overlayPath := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(overlayPath); err == nil {
			return overlayPath
		}
	}
	return ""
}
