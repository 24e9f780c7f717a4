package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/docker/go-units"
)

const (
	// EnvUploadsMaxSize overrides the maximum upload size.
	EnvUploadsMaxSize = "DOCSIGHT_MAX_UPLOAD_SIZE"

	// EnvUploadsAllowedTypes overrides the media type allow-list (comma separated).
	EnvUploadsAllowedTypes = "DOCSIGHT_ALLOWED_TYPES"
)

// defaultAllowedTypes mirrors the document formats the analysis service
// understands: PDF, plain text, and both Word document formats.
var defaultAllowedTypes = []string{
	"application/pdf",
	"text/plain",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// UploadsConfig contains upload validation policy.
type UploadsConfig struct {
	// MaxUploadSize is a human-readable size limit for a single file.
	// Default: "10MiB"
	MaxUploadSize    string   `toml:"max_upload_size"`
	AllowedTypes     []string `toml:"allowed_types"`
	maxUploadSizeVal int64
}

// MaxUploadSizeBytes returns the parsed upload size limit.
func (c *UploadsConfig) MaxUploadSizeBytes() int64 {
	return c.maxUploadSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the upload policy.
func (c *UploadsConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *UploadsConfig) Merge(overlay *UploadsConfig) {
	if size, err := units.RAMInBytes(overlay.MaxUploadSize); err == nil {
		c.MaxUploadSize = overlay.MaxUploadSize
		c.maxUploadSizeVal = size
	}
	if len(overlay.AllowedTypes) > 0 {
		c.AllowedTypes = overlay.AllowedTypes
	}
}

func (c *UploadsConfig) loadDefaults() {
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "10MiB"
	}
	if len(c.AllowedTypes) == 0 {
		c.AllowedTypes = append([]string(nil), defaultAllowedTypes...)
	}
}

func (c *UploadsConfig) loadEnv() {
	if v := os.Getenv(EnvUploadsMaxSize); v != "" {
		c.MaxUploadSize = v
	}
	if v := os.Getenv(EnvUploadsAllowedTypes); v != "" {
		var types []string
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				types = append(types, t)
			}
		}
		if len(types) > 0 {
			c.AllowedTypes = types
		}
	}
}

func (c *UploadsConfig) validate() error {
	size, err := units.RAMInBytes(c.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_upload_size must be positive")
	}
	c.maxUploadSizeVal = size

	if len(c.AllowedTypes) == 0 {
		return fmt.Errorf("allowed_types required")
	}

	return nil
}
