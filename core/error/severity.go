// File: severity.go
// Title: Error Severity Definitions
// Description: Defines severity levels for errors and the mapping from
//              error codes to default severities.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial severity definitions

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error caused by the input itself
	// Examples: malformed document text, invalid escape sequences
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: unreadable file, export failure for one format
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: watcher cannot access its target, internal invariant violated
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the library unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code.Category() {
	case "lexical", "syntax":
		// Parse failures are caused by the input, not the system
		return SeverityLow
	case "io", "tooling":
		return SeverityMedium
	default:
		switch code {
		case CodeInternal:
			return SeverityHigh
		default:
			return SeverityMedium
		}
	}
}
