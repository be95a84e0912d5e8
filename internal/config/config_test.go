package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"wordsieve/internal/config"
)

func TestLoadWithoutConfigFileUsesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("WORDSIEVE_LOG_LEVEL", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	wantPath := filepath.Join(tempHome, ".config", "wordsieve", "config.toml")
	if resolved != wantPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, wantPath)
	}
	if cfg.Filter.Cutoff != 10 {
		t.Fatalf("expected default cutoff 10, got %d", cfg.Filter.Cutoff)
	}
	if cfg.Filter.ASCIIOnly {
		t.Fatal("expected unicode word matching by default")
	}
	if cfg.Input.Encoding != "utf-8" {
		t.Fatalf("unexpected default encoding: %q", cfg.Input.Encoding)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "warn" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Input.Path != "" || cfg.Output.Path != "" {
		t.Fatalf("expected empty paths, got %q and %q", cfg.Input.Path, cfg.Output.Path)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected Validate to require paths")
	}
	if err := cfg.ValidateSettings(); err != nil {
		t.Fatalf("ValidateSettings: %v", err)
	}
}

func TestLoadExpandsPathsFromFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	configPath := filepath.Join(t.TempDir(), "config.toml")
	content := `
[input]
path = "~/lists/en_full.txt"
encoding = "  Latin1 "

[output]
path = "~/lists/en_clean.txt"

[filter]
cutoff = 25
ascii_only = true

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected config at %q, got %q (exists=%v)", configPath, resolved, exists)
	}
	if want := filepath.Join(tempHome, "lists", "en_full.txt"); cfg.Input.Path != want {
		t.Fatalf("unexpected input path: got %q want %q", cfg.Input.Path, want)
	}
	if want := filepath.Join(tempHome, "lists", "en_clean.txt"); cfg.Output.Path != want {
		t.Fatalf("unexpected output path: got %q want %q", cfg.Output.Path, want)
	}
	if cfg.Filter.Cutoff != 25 || !cfg.Filter.ASCIIOnly {
		t.Fatalf("unexpected filter section: %+v", cfg.Filter)
	}
	if cfg.Input.Encoding != "latin1" {
		t.Fatalf("expected normalized encoding, got %q", cfg.Input.Encoding)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging section: %+v", cfg.Logging)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[filter]\nthreshold = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, _, err := config.Load(configPath)
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadMissingExplicitPathFallsBackToDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := config.Load(missing)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if resolved != missing {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if cfg.Filter.Cutoff != 10 {
		t.Fatalf("unexpected cutoff %d", cfg.Filter.Cutoff)
	}
}

func TestLogLevelFromEnvironment(t *testing.T) {
	t.Setenv("WORDSIEVE_LOG_LEVEL", "INFO")
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[filter]\ncutoff = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("expected level from env, got %q", cfg.Logging.Level)
	}

	if err := os.WriteFile(configPath, []byte("[logging]\nlevel = \"error\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err = config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Fatalf("expected config file to override env, got %q", cfg.Logging.Level)
	}
}

func TestValidateSettingsErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{
			name:   "unknown encoding",
			mutate: func(c *config.Config) { c.Input.Encoding = "klingon-8" },
			want:   "input.encoding",
		},
		{
			name:   "unknown level",
			mutate: func(c *config.Config) { c.Logging.Level = "verbose" },
			want:   "logging.level",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.ValidateSettings()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateRequiresOutputPath(t *testing.T) {
	cfg := config.Default()
	cfg.Input.Path = "/tmp/in.txt"
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "output.path") {
		t.Fatalf("expected output.path error, got %v", err)
	}
}

func TestSampleConfigParses(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}

	cfg := config.Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("sample config does not parse: %v", err)
	}
	if cfg.Filter.Cutoff != config.Default().Filter.Cutoff {
		t.Fatalf("sample cutoff %d differs from default", cfg.Filter.Cutoff)
	}

	loaded, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if err := loaded.ValidateSettings(); err != nil {
		t.Fatalf("sample settings invalid: %v", err)
	}
}
