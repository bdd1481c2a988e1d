// Package logging provides structured logging configuration for echod.
//
// This package wraps log/slog to provide consistent logging across all
// echod components. It supports configurable log levels and output
// formats.
//
// # Usage
//
// Create a logger with desired configuration:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelInfo,
//	    Format: logging.FormatText,
//	})
//
//	logger.Info("server started", "port", 3001)
//	logger.Error("failed to listen", "error", err)
//
// # Log Levels
//
// Four log levels are supported:
//   - Debug: Detailed information for debugging
//   - Info: General operational information
//   - Warn: Warning conditions that should be addressed
//   - Error: Error conditions that need attention
//
// # Output Formats
//
//   - Text: Human-readable format for development
//   - JSON: Structured format for log aggregation systems
//
// # Integration
//
// Components should accept a *slog.Logger in their constructor or via
// a setter. If no logger is provided, use logging.Nop() for a no-op
// logger. Operational logs go to stderr so they never mix with the
// request traces the server prints on stdout in verbose mode.
package logging
