// Package logging assembles structured slog loggers used across wordsieve.
//
// It owns the console and JSON handlers, centralizes level parsing, and
// exposes a no-op logger for tests and wiring code that cannot fail. Logs
// always go to stderr (or a writer supplied by the caller); stdout and the
// output wordlist never carry log lines.
package logging
