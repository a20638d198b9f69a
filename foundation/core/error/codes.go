// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the unitcal engine and its
//              command line front end. Codes classify failures so callers can
//              react to them without parsing messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Reduced to conversion and calendar codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Unit conversion
	CodeUnknownUnit      Code = "UNKNOWN_UNIT"
	CodeUnknownCategory  Code = "UNKNOWN_CATEGORY"
	CodeInvalidUnitTable Code = "INVALID_UNIT_TABLE"

	// Calendar arithmetic
	CodeInvalidDate Code = "INVALID_DATE"

	// Configuration
	CodeConfigError Code = "CONFIG_ERROR"

	// Validation
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeUnknownUnit, CodeUnknownCategory, CodeInvalidUnitTable,
		CodeInvalidDate, CodeConfigError,
		CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeUnknownUnit, CodeUnknownCategory, CodeInvalidUnitTable:
		return "conversion"
	case CodeInvalidDate:
		return "calendar"
	case CodeConfigError:
		return "configuration"
	case CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}
