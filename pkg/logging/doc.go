// Package logging provides structured logging utilities shared by the
// quote-engine binaries.
//
// It wraps the standard library slog package with project defaults: JSON
// output to stderr, module/version context on every record, LOG_LEVEL
// environment configuration, and source location tracking for debug logs.
//
// Typical usage in main():
//
//	logging.SetDefaultStructuredLogger("fairfixd", version)
//	slog.Info("starting", "port", 8080)
//
// The LOG_LEVEL environment variable (debug, info, warn, error) controls
// verbosity; the CLI additionally exposes a --log-level flag that takes
// precedence via SetDefaultStructuredLoggerWithLevel.
package logging
