// Package logging provides structured logging configuration for cucmapi.
//
// This package wraps log/slog so every client in the module logs the same
// way. It supports configurable log levels and output formats.
//
// # Usage
//
// Create a logger with desired configuration:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatText,
//	})
//
//	logger.Debug("soap call", "op", "getPhone", "status", 200)
//
// # Integration
//
// Clients accept a *slog.Logger through their options. If no logger is
// provided they use logging.Nop(), so logging is strictly opt-in. A logger
// shared between several clients should be wrapped per service:
//
//	risLogger := logging.WithService(logger, "ris")
package logging
