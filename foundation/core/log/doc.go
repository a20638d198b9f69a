// Package log provides structured logging for unitcal.
//
// Package: log
// Title: unitcal Structured Logging
// Description: Leveled, structured logging with immutable context builders,
//              JSON, text and logfmt output, and integration with the error
//              package so that coded errors are logged at a level matching
//              their severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Removed async buffering, audit level and timers
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormat(log.FormatText).
//		WithRequestID("6f1c...")
//
//	logger.Debug("conversion", log.Fields{"from": "m", "to": "cm", "value": 1.0})
//	logger.LogError(err)
package log
