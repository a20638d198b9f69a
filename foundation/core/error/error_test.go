// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and metadata.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-19 v0.2.0: Adapted to the reduced error type

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "context",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original"),
			message: "context",
			wantMsg: "context: original",
		},
		{
			name:    "wrap coded error",
			err:     New("original").WithCode(CodeInvalidDate),
			message: "context",
			wantMsg: "context: original",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if result != nil {
					t.Errorf("Wrap() = %v, want nil", result)
				}
				return
			}

			if result.Error() != tt.wantMsg {
				t.Errorf("Wrap().Error() = %q, want %q", result.Error(), tt.wantMsg)
			}

			if !errors.Is(result, tt.err) {
				t.Error("Wrap() result should match the original with errors.Is")
			}
		})
	}
}

func TestWrapPreservesCodeAndDetails(t *testing.T) {
	inner := New("bad day").
		WithCode(CodeInvalidDate).
		WithDetail("day", 31).
		WithOperation("calendar.NewDate")

	wrapped := Wrap(inner, "parsing input")

	if wrapped.Code() != CodeInvalidDate {
		t.Errorf("Code() = %v, want %v", wrapped.Code(), CodeInvalidDate)
	}
	if wrapped.Operation() != "calendar.NewDate" {
		t.Errorf("Operation() = %q, want calendar.NewDate", wrapped.Operation())
	}
	if v, ok := wrapped.Detail("day"); !ok || v != 31 {
		t.Errorf("Detail(day) = %v, %v; want 31, true", v, ok)
	}
}

func TestWrapTruncatesDeepChains(t *testing.T) {
	var err error = New("root").WithCode(CodeUnknownUnit)
	for i := 0; i < MaxErrorChainDepth+5; i++ {
		err = Wrap(err, fmt.Sprintf("level %d", i))
	}

	if chainDepth(err) > MaxErrorChainDepth+1 {
		t.Errorf("chain depth = %d, want <= %d", chainDepth(err), MaxErrorChainDepth+1)
	}
	if !HasCode(err, CodeUnknownUnit) {
		t.Error("truncated chain should keep the root code")
	}
}

func TestWithCode(t *testing.T) {
	err := New("test").WithCode(CodeUnknownUnit)

	if err.Code() != CodeUnknownUnit {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknownUnit)
	}
	if err.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityLow)
	}

	explicit := New("test").WithSeverity(SeverityCritical).WithCode(CodeUnknownUnit)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit Severity() = %v, want %v", explicit.Severity(), SeverityCritical)
	}
}

func TestWithDetails(t *testing.T) {
	err := New("test").WithDetails(map[string]interface{}{
		"unit":     "furlong",
		"category": "length",
	})

	details := err.Details()
	if len(details) != 2 {
		t.Fatalf("Details() len = %d, want 2", len(details))
	}

	// returned map is a copy
	details["unit"] = "changed"
	if v, _ := err.Detail("unit"); v != "furlong" {
		t.Errorf("Detail(unit) = %v, want furlong", v)
	}
}

func TestHasCode(t *testing.T) {
	base := New("base").WithCode(CodeInvalidDate)
	wrappedStd := fmt.Errorf("outer: %w", base)

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct match", base, CodeInvalidDate, true},
		{"direct mismatch", base, CodeUnknownUnit, false},
		{"through fmt wrap", wrappedStd, CodeInvalidDate, true},
		{"standard error", errors.New("plain"), CodeInvalidDate, false},
		{"nil error", nil, CodeInvalidDate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCodeAndSeverity(t *testing.T) {
	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Errorf("GetCode(plain) = %v, want %v", got, CodeUnknown)
	}
	if got := GetSeverity(errors.New("plain")); got != SeverityMedium {
		t.Errorf("GetSeverity(plain) = %v, want %v", got, SeverityMedium)
	}

	err := New("table").WithCode(CodeInvalidUnitTable)
	if got := GetCode(err); got != CodeInvalidUnitTable {
		t.Errorf("GetCode() = %v, want %v", got, CodeInvalidUnitTable)
	}
	if got := GetSeverity(err); got != SeverityHigh {
		t.Errorf("GetSeverity() = %v, want %v", got, SeverityHigh)
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeUnknownUnit, "conversion"},
		{CodeInvalidDate, "calendar"},
		{CodeConfigError, "configuration"},
		{CodeValueOutOfRange, "validation"},
		{CodeUnknown, "generic"},
	}

	for _, tt := range tests {
		if got := tt.code.Category(); got != tt.want {
			t.Errorf("%s.Category() = %q, want %q", tt.code, got, tt.want)
		}
		if !tt.code.IsValid() {
			t.Errorf("%s.IsValid() = false, want true", tt.code)
		}
	}

	if Code("NOPE").IsValid() {
		t.Error("unknown code should not be valid")
	}
}

func TestString(t *testing.T) {
	err := New("test message").
		WithCode(CodeUnknownUnit).
		WithOperation("units.Convert").
		WithDetail("unit", "furlong").
		WithDetail("category", "length")

	str := err.String()

	for _, want := range []string{
		"Error: test message",
		"Code: UNKNOWN_UNIT",
		"Severity: low",
		"Operation: units.Convert",
		"Details: {category=length, unit=furlong}",
	} {
		if !strings.Contains(str, want) {
			t.Errorf("String() missing %q in:\n%s", want, str)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("root cause"), "test message").
		WithCode(CodeInvalidDate).
		WithOperation("calendar.Parse").
		WithDetail("input", "2025-02-30")

	data, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatalf("json.Marshal() error = %v", jsonErr)
	}

	var result map[string]interface{}
	if jsonErr := json.Unmarshal(data, &result); jsonErr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jsonErr)
	}

	if result["message"] != "test message" {
		t.Errorf("JSON message = %v, want test message", result["message"])
	}
	if result["code"] != "INVALID_DATE" {
		t.Errorf("JSON code = %v, want INVALID_DATE", result["code"])
	}
	if result["operation"] != "calendar.Parse" {
		t.Errorf("JSON operation = %v, want calendar.Parse", result["operation"])
	}
	if result["cause"] != "root cause" {
		t.Errorf("JSON cause = %v, want root cause", result["cause"])
	}
}
