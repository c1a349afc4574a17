// File: error_test.go
// Title: Core Error Unit Tests
// Description: Unit tests for the structured error type covering creation,
//              wrapping, codes, severities, details, and JSON marshaling.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial test suite

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("something went wrong")

	if err.Error() != "something went wrong" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if err.Code() != CodeUnknown {
		t.Errorf("expected code %s, got %s", CodeUnknown, err.Code())
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("expected severity %s, got %s", SeverityMedium, err.Severity())
	}
	if len(err.StackTrace()) == 0 {
		t.Error("expected captured stack trace")
	}
}

func TestWrap(t *testing.T) {
	base := fmt.Errorf("io failure")
	err := Wrap(base, "failed to read file")

	if err.Error() != "failed to read file: io failure" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("expected wrapped error to unwrap to the base error")
	}
}

func TestWrap_Nil(t *testing.T) {
	if Wrap(nil, "message") != nil {
		t.Error("wrapping nil must return nil")
	}
}

func TestWrap_PreservesStructuredContext(t *testing.T) {
	inner := New("inner").
		WithCode(CodeUnterminatedString).
		WithDetail("line", 3)

	outer := Wrap(inner, "parse failed")

	if outer.Code() != CodeUnterminatedString {
		t.Errorf("expected preserved code, got %s", outer.Code())
	}
	if outer.Details()["line"] != 3 {
		t.Errorf("expected preserved detail, got %v", outer.Details()["line"])
	}
}

func TestWithCode_AutoSeverity(t *testing.T) {
	err := New("bad literal").WithCode(CodeInvalidHexLiteral)
	if err.Severity() != SeverityLow {
		t.Errorf("expected auto severity %s, got %s", SeverityLow, err.Severity())
	}

	explicit := New("bad literal").
		WithSeverity(SeverityCritical).
		WithCode(CodeInvalidHexLiteral)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity must not be overridden, got %s", explicit.Severity())
	}
}

func TestWithDetailsAndOperation(t *testing.T) {
	err := New("export failed").
		WithOperation("export.Write").
		WithDetail("format", "toml").
		WithDetails(map[string]interface{}{"path": "/tmp/x"})

	if err.Operation() != "export.Write" {
		t.Errorf("unexpected operation %q", err.Operation())
	}

	details := err.Details()
	if details["format"] != "toml" || details["path"] != "/tmp/x" {
		t.Errorf("unexpected details %v", details)
	}

	// Details returns a copy.
	details["format"] = "json"
	if err.Details()["format"] != "toml" {
		t.Error("Details must return a copy")
	}
}

func TestRootCause(t *testing.T) {
	base := fmt.Errorf("disk full")
	middle := Wrap(base, "write failed")
	outer := Wrap(middle, "export failed")

	if outer.RootCause() != base {
		t.Errorf("expected root cause %v, got %v", base, outer.RootCause())
	}

	standalone := New("alone")
	if standalone.RootCause() != standalone {
		t.Error("error without cause must be its own root cause")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("boom").
		WithCode(CodeExportError).
		WithOperation("export.Write")

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("marshal failed: %v", marshalErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("unmarshal failed: %v", jsonErr)
	}
	if decoded["message"] != "boom" {
		t.Errorf("unexpected message %v", decoded["message"])
	}
	if decoded["code"] != CodeExportError.String() {
		t.Errorf("unexpected code %v", decoded["code"])
	}
	if decoded["operation"] != "export.Write" {
		t.Errorf("unexpected operation %v", decoded["operation"])
	}
}

func TestHelperAccessors(t *testing.T) {
	err := New("x").WithCode(CodeIOError)

	if !HasCode(err, CodeIOError) {
		t.Error("HasCode failed for matching code")
	}
	if HasCode(err, CodeExportError) {
		t.Error("HasCode matched wrong code")
	}
	if HasCode(fmt.Errorf("plain"), CodeIOError) {
		t.Error("HasCode must fail for plain errors")
	}

	if GetCode(err) != CodeIOError {
		t.Errorf("unexpected code %s", GetCode(err))
	}
	if GetCode(fmt.Errorf("plain")) != CodeUnknown {
		t.Error("GetCode must default to CodeUnknown")
	}
	if GetSeverity(fmt.Errorf("plain")) != SeverityMedium {
		t.Error("GetSeverity must default to SeverityMedium")
	}
}

func TestCode_Category(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		parse    bool
	}{
		{CodeInvalidHexLiteral, "lexical", true},
		{CodeUnterminatedString, "lexical", true},
		{CodeExpectedSemicolon, "syntax", true},
		{CodeInvalidUnicodeEscape, "syntax", true},
		{CodeExportError, "tooling", false},
		{CodeIOError, "io", false},
		{CodeUnknown, "generic", false},
	}

	for _, tt := range tests {
		if got := tt.code.Category(); got != tt.category {
			t.Errorf("%s: expected category %s, got %s", tt.code, tt.category, got)
		}
		if got := tt.code.IsParseFailure(); got != tt.parse {
			t.Errorf("%s: expected IsParseFailure %v, got %v", tt.code, tt.parse, got)
		}
		if !tt.code.IsValid() {
			t.Errorf("%s: expected valid code", tt.code)
		}
	}

	if Code("NOPE").IsValid() {
		t.Error("unknown code must not be valid")
	}
}

func TestGetSeverityFromCode(t *testing.T) {
	if GetSeverityFromCode(CodeExpectedValue) != SeverityLow {
		t.Error("parse failures must map to low severity")
	}
	if GetSeverityFromCode(CodeIOError) != SeverityMedium {
		t.Error("io failures must map to medium severity")
	}
	if GetSeverityFromCode(CodeInternal) != SeverityHigh {
		t.Error("internal failures must map to high severity")
	}
}
