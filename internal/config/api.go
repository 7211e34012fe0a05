package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/Sushanth18052005/mt5-EA/pkg/endpoints"
)

// EnvAPIBaseURL overrides the backend base URL.
const EnvAPIBaseURL = endpoints.EnvBaseURL

// APIConfig describes the backend the endpoint registry points at.
type APIConfig struct {
	BaseURL string `toml:"base_url"`
}

// Finalize applies defaults and loads environment overrides. The base URL is kept verbatim,
// so Finalize never rejects it; use CheckAbsolute to report suspicious values.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
}

// Override replaces the base URL with v when v is non-empty.
func (c *APIConfig) Override(v string) {
	if v != "" {
		c.BaseURL = v
	}
}

func (c *APIConfig) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = endpoints.DefaultBaseURL
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		c.BaseURL = v
	}
}

// CheckAbsolute reports whether the base URL parses as an absolute URL with scheme and host.
// Endpoints built from a non-absolute base URL are relative or malformed.
func (c *APIConfig) CheckAbsolute() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base_url %q: must be an absolute URL", c.BaseURL)
	}
	return nil
}
