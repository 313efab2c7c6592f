// Package logging provides structured logging configuration for gsq.
//
// This package wraps log/slog to keep logging consistent across the
// toolkit. It supports configurable log levels and output formats.
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
//	logger.Info("endpoint ready", "id", srv.ID(), "query_port", srv.PortQuery())
//
// # Integration
//
// Components accept a *slog.Logger in their constructor or via a
// setter. Where a logger is required but logging is unwanted, use
// logging.Nop().
package logging
