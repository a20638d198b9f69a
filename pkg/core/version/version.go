// ============================================================================
// unitcal - Einheiten- und Kalenderrechner
// ============================================================================
//
// Package:     version
// Description: Central version management
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants
const (
	// Application version
	Application = "1.0.0"

	// Version of the builtin unit table
	UnitTable = "1.0.0"
)

// Build information, set via -ldflags at build time
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// String returns the full version line
func String() string {
	return fmt.Sprintf("unitcal %s (Einheiten %s, commit %s, gebaut %s)", Application, UnitTable, GitCommit, BuildDate)
}
