package config

import (
	"fmt"
	"strings"
)

// Normalize trims string values, expands paths, and fills empty values with
// defaults. It is safe to call again after flag overrides are applied.
func (c *Config) Normalize() error {
	if err := c.normalizeInput(); err != nil {
		return err
	}
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeInput() error {
	var err error
	if c.Input.Path, err = expandPath(strings.TrimSpace(c.Input.Path)); err != nil {
		return fmt.Errorf("input.path: %w", err)
	}
	c.Input.Encoding = strings.ToLower(strings.TrimSpace(c.Input.Encoding))
	if c.Input.Encoding == "" {
		c.Input.Encoding = defaultEncoding
	}
	return nil
}

func (c *Config) normalizeOutput() error {
	var err error
	if c.Output.Path, err = expandPath(strings.TrimSpace(c.Output.Path)); err != nil {
		return fmt.Errorf("output.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
