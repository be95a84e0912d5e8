package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"wordsieve/internal/config"
	"wordsieve/internal/logging"
)

// filterFlags holds the root command's flag values. Only flags the user set
// explicitly override the configuration file.
type filterFlags struct {
	path      string
	outPath   string
	cutoff    int64
	asciiOnly bool
	encoding  string
	summary   bool
	logLevel  string
	logFormat string
}

type commandContext struct {
	configFlag *string
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

// loadConfig reads the configuration file (if any) and applies explicitly set
// flags on top of it.
func (c *commandContext) loadConfig(cmd *cobra.Command, flags *filterFlags) (*config.Config, error) {
	cfg, _, _, err := config.Load(c.configPath())
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("path") {
		cfg.Input.Path = flags.path
	}
	if changed("outpath") {
		cfg.Output.Path = flags.outPath
	}
	if changed("cutoff") {
		cfg.Filter.Cutoff = flags.cutoff
	}
	if changed("ascii-only") {
		cfg.Filter.ASCIIOnly = flags.asciiOnly
	}
	if changed("encoding") {
		cfg.Input.Encoding = flags.encoding
	}
	if changed("log-level") {
		cfg.Logging.Level = flags.logLevel
	}
	if changed("log-format") {
		cfg.Logging.Format = flags.logFormat
	}

	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runLogger builds the logger for one invocation, tagged with a fresh run ID.
func runLogger(cfg *config.Config, out io.Writer) (*slog.Logger, error) {
	logger, err := logging.NewFromConfig(cfg, out)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger.With(logging.String(logging.FieldRunID, uuid.NewString())), nil
}
