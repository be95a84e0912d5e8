package config

import (
	"errors"
	"fmt"

	"wordsieve/internal/textenc"
)

// Validate ensures the configuration is usable for a filter run.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	return c.ValidateSettings()
}

// ValidateSettings checks every value except the required input and output
// paths. `config validate` uses it so a config file without paths still passes.
func (c *Config) ValidateSettings() error {
	if err := c.validateEncoding(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Input.Path == "" {
		return errors.New("input.path is required (pass --path or set it in the config file)")
	}
	if c.Output.Path == "" {
		return errors.New("output.path is required (pass --outpath or set it in the config file)")
	}
	return nil
}

func (c *Config) validateEncoding() error {
	if _, err := textenc.Lookup(c.Input.Encoding); err != nil {
		return fmt.Errorf("input.encoding: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q (use debug, info, warn, or error)", c.Logging.Level)
	}
}
