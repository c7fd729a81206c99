// Package log builds the structured logger used across sfac.
//
// Loggers are plain *slog.Logger values backed by a SecureHandler that masks
// secrets before they reach the output: request headers carrying credentials,
// enumeration API keys, and the user:password part of proxy URLs. Debug and
// Info records are only emitted in verbose mode.
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Warn("source failed", "source", "crtsh", "error", err)
package log
