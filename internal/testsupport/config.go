package testsupport

import (
	"path/filepath"
	"strconv"
	"testing"

	"wordsieve/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose input and output paths live in a unique
// temp directory per test. It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Input.Path = filepath.Join(base, "wordlist.txt")
	cfgVal.Output.Path = filepath.Join(base, "words.txt")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithCutoff overrides the frequency cutoff on the test config.
func WithCutoff(cutoff int64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Filter.Cutoff = cutoff
	}
}

// WithEncoding overrides the input encoding label on the test config.
func WithEncoding(label string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Input.Encoding = label
	}
}

// WithASCIIOnly enables ASCII-only word matching on the test config.
func WithASCIIOnly() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Filter.ASCIIOnly = true
	}
}

// WithOutputPath points the output at name inside the test's base directory.
func WithOutputPath(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Path = filepath.Join(b.baseDir, name)
	}
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
