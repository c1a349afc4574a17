// File: stringx_test.go
// Title: String Utilities Unit Tests
// Description: Unit tests for the string helper functions covering blank
//              checks, Unicode-aware truncation, and line splitting.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial test suite

package stringx

import (
	"reflect"
	"testing"
)

func TestBlankChecks(t *testing.T) {
	tests := []struct {
		input string
		empty bool
		blank bool
	}{
		{"", true, true},
		{"   ", false, true},
		{"\t\n", false, true},
		{"x", false, false},
		{" x ", false, false},
	}

	for _, tt := range tests {
		if IsEmpty(tt.input) != tt.empty {
			t.Errorf("IsEmpty(%q): expected %v", tt.input, tt.empty)
		}
		if IsBlank(tt.input) != tt.blank {
			t.Errorf("IsBlank(%q): expected %v", tt.input, tt.blank)
		}
		if IsNotEmpty(tt.input) == tt.empty {
			t.Errorf("IsNotEmpty(%q): expected %v", tt.input, !tt.empty)
		}
		if IsNotBlank(tt.input) == tt.blank {
			t.Errorf("IsNotBlank(%q): expected %v", tt.input, !tt.blank)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		ellipsis string
		expected string
	}{
		{"short", 10, "...", "short"},
		{"exactly10!", 10, "...", "exactly10!"},
		{"this is too long", 10, "...", "this is..."},
		{"héllö wörld", 8, "...", "héllö..."},
		{"anything", 0, "...", ""},
		{"abcdef", 2, "...", "ab"},
	}

	for _, tt := range tests {
		if got := Truncate(tt.input, tt.maxLen, tt.ellipsis); got != tt.expected {
			t.Errorf("Truncate(%q, %d): expected %q, got %q",
				tt.input, tt.maxLen, tt.expected, got)
		}
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"a\nb", []string{"a", "b"}},
		{"a\r\nb", []string{"a", "b"}},
		{"a\rb", []string{"a", "b"}},
		{"single", []string{"single"}},
		{"", []string{""}},
	}

	for _, tt := range tests {
		if got := SplitLines(tt.input); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("SplitLines(%q): expected %v, got %v", tt.input, tt.expected, got)
		}
	}
}

func TestFirstNonBlank(t *testing.T) {
	if got := FirstNonBlank("", "  ", "x", "y"); got != "x" {
		t.Errorf("expected x, got %q", got)
	}
	if got := FirstNonBlank("", "  "); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}
