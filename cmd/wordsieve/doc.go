// Package main hosts the wordsieve CLI entrypoint and command graph.
//
// The root command resolves configuration (defaults, an optional TOML file,
// then flags), builds a logger, and runs the wordlist filter. The config
// subcommands scaffold and check configuration files.
package main
