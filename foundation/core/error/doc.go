// Package error provides structured error handling for unitcal.
//
// Package: error
// Title: unitcal Error Handling
// Description: This package implements an error type carrying a code, a
//              severity, an operation name and free-form details. The engine
//              packages return these errors so that callers can distinguish
//              an unknown unit from an invalid date without string matching.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Trimmed to the codes used by the conversion and calendar engines
//
// Usage:
//
//	import mdwerror "github.com/msto63/unitcal/foundation/core/error"
//
//	err := mdwerror.New("unit not found in category").
//		WithCode(mdwerror.CodeUnknownUnit).
//		WithDetail("unit", "furlong").
//		WithOperation("units.Convert")
//
//	if mdwerror.HasCode(err, mdwerror.CodeUnknownUnit) {
//		// ask the user for another unit
//	}
package error
