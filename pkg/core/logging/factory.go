// ============================================================================
// unitcal - Einheiten- und Kalenderrechner
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating foundation loggers
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	mdwlog "github.com/msto63/unitcal/foundation/core/log"
	"github.com/msto63/unitcal/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: "json", "text" or "logfmt" (default: text)
	Format string

	// Output writer (default: stderr)
	Output io.Writer

	// Attach file:line of the caller
	EnableCaller bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// FromConfig derives the logger configuration from the application config
func FromConfig(cfg *config.Config) LoggerConfig {
	lc := DefaultLoggerConfig(cfg.General.Name)
	if cfg.General.LogLevel != "" {
		lc.Level = cfg.General.LogLevel
	}
	if cfg.General.LogFormat != "" {
		lc.Format = cfg.General.LogFormat
	}
	return lc
}

// NewLogger creates a new foundation logger. Output goes to stderr so that
// command results on stdout stay machine readable.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mdwlog.FormatText
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:        parseLevel(cfg.Level),
		Format:       format,
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.EnableCaller,
	})
}

// NewRequestLogger returns a logger tagged with a fresh request ID together
// with that ID
func NewRequestLogger(cfg LoggerConfig) (*mdwlog.Logger, string) {
	requestID := uuid.New().String()
	return NewLogger(cfg).WithRequestID(requestID), requestID
}

// parseLevel converts a string level to mdwlog.Level, falling back to warn
func parseLevel(level string) mdwlog.Level {
	l, err := mdwlog.ParseLevel(level)
	if err != nil {
		return mdwlog.LevelWarn
	}
	return l
}
