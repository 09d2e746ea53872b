// Package logging provides structured logging configuration for patternctl
// and the pattern-set loader.
//
// This package wraps log/slog. Components accept a *slog.Logger in their
// constructor and fall back to Nop when none is given; the core pattern
// package never logs.
//
// # Usage
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatText,
//	})
//
//	logger.Debug("pattern did not match", "pattern", name, "input", input)
//
// # Output Formats
//
//   - Text: Human-readable format for terminals
//   - JSON: Structured format for log aggregation systems
//
// Config.Tee adds a second, JSON-encoded destination (for example a log
// file) next to the primary output.
package logging
