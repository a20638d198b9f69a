// File: float_test.go
// Title: Unit Tests for Floating-Point Helpers
// Description: Tests for rounding modes, tolerance comparison and floor division.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation for decimal arithmetic
// - 2026-10-19 v0.2.0: Tests for float64 helpers

package mathx

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		places int
		mode   RoundingMode
		want   float64
	}{
		{"half up positive", 2.5, 0, RoundingModeHalfUp, 3},
		{"half up negative", -2.5, 0, RoundingModeHalfUp, -3},
		{"half even down", 2.5, 0, RoundingModeHalfEven, 2},
		{"half even up", 3.5, 0, RoundingModeHalfEven, 4},
		{"half down", 2.5, 0, RoundingModeHalfDown, 2},
		{"half down above half", 2.6, 0, RoundingModeHalfDown, 3},
		{"half down negative", -2.6, 0, RoundingModeHalfDown, -3},
		{"up", 2.1, 0, RoundingModeUp, 3},
		{"up negative", -2.1, 0, RoundingModeUp, -3},
		{"down", 2.9, 0, RoundingModeDown, 2},
		{"two places", 2.20462262, 2, RoundingModeHalfUp, 2.2},
		{"four places", 2.20462262, 4, RoundingModeHalfUp, 2.2046},
		{"negative places", 12.7, -1, RoundingModeHalfUp, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round(tt.value, tt.places, tt.mode); !ApproxEqual(got, tt.want, 1e-12) {
				t.Errorf("Round(%v, %d) = %v, want %v", tt.value, tt.places, got, tt.want)
			}
		})
	}
}

func TestRoundNonFinite(t *testing.T) {
	if got := Round(math.Inf(1), 2, RoundingModeHalfUp); !math.IsInf(got, 1) {
		t.Errorf("Round(+Inf) = %v, want +Inf", got)
	}
	if got := Round(math.NaN(), 2, RoundingModeHalfUp); !math.IsNaN(got) {
		t.Errorf("Round(NaN) = %v, want NaN", got)
	}
}

func TestApproxEqual(t *testing.T) {
	tests := []struct {
		a, b, tol float64
		want      bool
	}{
		{1, 1, 0, true},
		{100, 100.0000001, 1e-9, true},
		{100, 100.001, 1e-9, false},
		{0, 1e-12, 1e-9, true},
		{0, 1e-3, 1e-9, false},
		{1e12, 1e12 + 1, 1e-9, true},
	}

	for _, tt := range tests {
		if got := ApproxEqual(tt.a, tt.b, tt.tol); got != tt.want {
			t.Errorf("ApproxEqual(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.tol, got, tt.want)
		}
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1.5) {
		t.Error("IsFinite(1.5) = false, want true")
	}
	if IsFinite(math.NaN()) || IsFinite(math.Inf(-1)) {
		t.Error("IsFinite() should reject NaN and infinities")
	}
}

func TestFloorDivMod(t *testing.T) {
	tests := []struct {
		a, b    int64
		div     int64
		mod     int64
	}{
		{7, 2, 3, 1},
		{-7, 2, -4, 1},
		{7, -2, -4, -1},
		{-7, -2, 3, -1},
		{-146097, 146097, -1, 0},
		{0, 5, 0, 0},
	}

	for _, tt := range tests {
		if got := FloorDiv(tt.a, tt.b); got != tt.div {
			t.Errorf("FloorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.div)
		}
		if got := FloorMod(tt.a, tt.b); got != tt.mod {
			t.Errorf("FloorMod(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.mod)
		}
	}
}
