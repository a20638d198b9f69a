// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides the numeric helpers shared by the unit
//              converter, the calendar engine and the presentation layer.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-19 v0.3.0: float64 rounding, tolerance comparison and floor division

// Package mathx provides extended mathematical operations.
//
// Rounding
//
// Round supports the usual commercial and banker's modes:
//
//	mathx.Round(2.5, 0, mathx.RoundingModeHalfUp)   // 3
//	mathx.Round(2.5, 0, mathx.RoundingModeHalfEven) // 2
//
// Comparison
//
// Conversions through a base unit accumulate floating-point error, so
// results are compared with ApproxEqual instead of ==:
//
//	mathx.ApproxEqual(got, 2.20462, 1e-5)
//
// Integer division
//
// FloorDiv and FloorMod round toward negative infinity, which calendar
// arithmetic relies on for dates before the epoch.
package mathx
