// Package config loads, normalizes, and validates wordsieve configuration data.
//
// It supplies repository defaults (a cutoff of 10, UTF-8 text, quiet console
// logging), expands user paths including tilde shortcuts, and reads an
// optional TOML file. WORDSIEVE_LOG_LEVEL is honoured as a fallback for the log
// level. A missing file is not an error: the CLI usually supplies the input
// and output paths as flags, then calls Normalize and Validate again.
//
// Always obtain settings through this package so the filter receives
// absolute paths, canonical encoding labels, and clear validation errors
// keyed by their TOML names.
package config
