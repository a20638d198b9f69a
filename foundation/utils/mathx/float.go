// File: float.go
// Title: Floating-Point Helpers
// Description: Rounding with selectable modes, tolerance-based comparison
//              and floor division for the conversion and calendar engines.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core decimal operations
// - 2026-10-19 v0.2.0: Replaced big.Rat decimals with float64 helpers

package mathx

import (
	"math"
)

// RoundingMode defines how numbers should be rounded
type RoundingMode int

const (
	// RoundingModeHalfUp rounds 0.5 away from zero (commercial rounding)
	RoundingModeHalfUp RoundingMode = iota

	// RoundingModeHalfEven rounds to the nearest even number (banker's rounding)
	RoundingModeHalfEven

	// RoundingModeHalfDown rounds 0.5 toward zero
	RoundingModeHalfDown

	// RoundingModeUp always rounds away from zero
	RoundingModeUp

	// RoundingModeDown always rounds toward zero (truncate)
	RoundingModeDown
)

// DefaultTolerance is the relative tolerance used by ApproxEqual callers
// that have no better bound
const DefaultTolerance = 1e-9

// Round rounds value to the given number of decimal places.
// Negative places are treated as zero. NaN and infinities are returned unchanged.
func Round(value float64, places int, mode RoundingMode) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	if places < 0 {
		places = 0
	}

	multiplier := math.Pow(10, float64(places))
	scaled := value * multiplier
	if math.IsInf(scaled, 0) {
		return value
	}

	var rounded float64
	switch mode {
	case RoundingModeHalfEven:
		rounded = math.RoundToEven(scaled)
	case RoundingModeHalfDown:
		rounded = halfDown(scaled)
	case RoundingModeUp:
		if scaled < 0 {
			rounded = math.Floor(scaled)
		} else {
			rounded = math.Ceil(scaled)
		}
	case RoundingModeDown:
		rounded = math.Trunc(scaled)
	default:
		rounded = math.Round(scaled)
	}

	return rounded / multiplier
}

func halfDown(v float64) float64 {
	trunc := math.Trunc(v)
	frac := math.Abs(v - trunc)
	if frac > 0.5 {
		return trunc + math.Copysign(1, v)
	}
	return trunc
}

// ApproxEqual reports whether a and b differ by at most tol relative to the
// larger magnitude. Values near zero are compared with tol as absolute bound.
func ApproxEqual(a, b, tol float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1 {
		return diff <= tol
	}
	return diff <= tol*scale
}

// IsFinite reports whether v is neither NaN nor an infinity
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FloorDiv returns a/b rounded toward negative infinity. b must not be zero.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod returns the remainder matching FloorDiv; its sign follows b.
func FloorMod(a, b int64) int64 {
	return a - FloorDiv(a, b)*b
}
