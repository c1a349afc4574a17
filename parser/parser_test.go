// File: parser_test.go
// Title: CCL Parser Unit Tests
// Description: Unit tests for the CCL recursive descent parser. Tests cover
//              documents with root variables and categories, every value
//              type, escape decoding, duplicate handling, and the complete
//              failure taxonomy.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial test suite

package parser

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/msto63/ccl/ast"
	cclerror "github.com/msto63/ccl/core/error"
	ccllog "github.com/msto63/ccl/core/log"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()

	logger := ccllog.NewWithConfig(ccllog.Config{
		Level:  ccllog.LevelError,
		Output: io.Discard,
	})

	p, err := New(Options{Logger: logger})
	if err != nil {
		t.Fatalf("failed to create parser: %v", err)
	}
	return p
}

func mustParse(t *testing.T, input string) *ast.Document {
	t.Helper()

	doc, err := newTestParser(t).Parse(input)
	if err != nil {
		t.Fatalf("parse of %q failed: %v", input, err)
	}
	return doc
}

// expectParseFailure parses the input and asserts failure with the given code
func expectParseFailure(t *testing.T, input string, code cclerror.Code) *ParseError {
	t.Helper()

	_, err := newTestParser(t).Parse(input)
	if err == nil {
		t.Fatalf("expected parse of %q to fail", input)
	}

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	if pe.Code != code {
		t.Errorf("expected code %s, got %s (%v)", code, pe.Code, pe)
	}
	return pe
}

func TestParser_EmptyDocument(t *testing.T) {
	doc := mustParse(t, "")

	if len(doc.RootVariables) != 0 {
		t.Errorf("expected no root variables, got %d", len(doc.RootVariables))
	}
	if len(doc.Categories) != 0 {
		t.Errorf("expected no categories, got %d", len(doc.Categories))
	}
}

func TestParser_RootVariables(t *testing.T) {
	doc := mustParse(t, `name = "demo"; port = 8080; debug = true; ratio = 0.75;`)

	if len(doc.RootVariables) != 4 {
		t.Fatalf("expected 4 root variables, got %d", len(doc.RootVariables))
	}

	if s, ok := doc.RootVariables[0].Value.AsString(); !ok || s != "demo" {
		t.Errorf("expected name %q, got %v", "demo", doc.RootVariables[0].Value)
	}
	if i, ok := doc.RootVariables[1].Value.AsInteger(); !ok || i != 8080 {
		t.Errorf("expected port 8080, got %v", doc.RootVariables[1].Value)
	}
	if b, ok := doc.RootVariables[2].Value.AsBoolean(); !ok || !b {
		t.Errorf("expected debug true, got %v", doc.RootVariables[2].Value)
	}
	if f, ok := doc.RootVariables[3].Value.AsFloat(); !ok || f != 0.75 {
		t.Errorf("expected ratio 0.75, got %v", doc.RootVariables[3].Value)
	}
}

func TestParser_Categories(t *testing.T) {
	doc := mustParse(t, `
		global = 1;
		-server-
		host = "localhost";
		port = 8080;
		-client-
		timeout = 30;
	`)

	if len(doc.RootVariables) != 1 {
		t.Fatalf("expected 1 root variable, got %d", len(doc.RootVariables))
	}
	if len(doc.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(doc.Categories))
	}

	server, ok := doc.Category("server")
	if !ok {
		t.Fatal("expected category server")
	}
	if len(server.Variables) != 2 {
		t.Errorf("expected 2 variables in server, got %d", len(server.Variables))
	}
	if host, ok := server.Lookup("host"); !ok {
		t.Error("expected variable host in server")
	} else if s, _ := host.Value.AsString(); s != "localhost" {
		t.Errorf("expected host %q, got %q", "localhost", s)
	}

	names := doc.CategoryNames()
	if len(names) != 2 || names[0] != "server" || names[1] != "client" {
		t.Errorf("unexpected category names %v", names)
	}
}

func TestParser_EmptyCategory(t *testing.T) {
	doc := mustParse(t, "-empty- -next- a = 1;")

	if len(doc.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(doc.Categories))
	}
	if len(doc.Categories[0].Variables) != 0 {
		t.Errorf("expected empty first category, got %d variables", len(doc.Categories[0].Variables))
	}
	if len(doc.Categories[1].Variables) != 1 {
		t.Errorf("expected 1 variable in second category, got %d", len(doc.Categories[1].Variables))
	}
}

func TestParser_NumericLiterals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ast.Value
	}{
		{"Decimal", "v = 42;", ast.Value{Type: ast.ValueTypeInteger, Value: int64(42)}},
		{"Negative decimal", "v = -5;", ast.Value{Type: ast.ValueTypeInteger, Value: int64(-5)}},
		{"Hexadecimal", "v = 0x1F;", ast.Value{Type: ast.ValueTypeInteger, Value: int64(31)}},
		{"Octal", "v = 0o17;", ast.Value{Type: ast.ValueTypeInteger, Value: int64(15)}},
		{"Float", "v = 3.14;", ast.Value{Type: ast.ValueTypeFloat, Value: 3.14}},
		{"Float without integer part", "v = .5;", ast.Value{Type: ast.ValueTypeFloat, Value: 0.5}},
		{"Float without fraction part", "v = 5.;", ast.Value{Type: ast.ValueTypeFloat, Value: 5.0}},
		{"Negative partial float", "v = -.25;", ast.Value{Type: ast.ValueTypeFloat, Value: -0.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, tt.input)

			v, ok := doc.Lookup("v")
			if !ok {
				t.Fatal("expected variable v")
			}
			if v.Value.Type != tt.expected.Type {
				t.Errorf("expected type %s, got %s", tt.expected.Type, v.Value.Type)
			}
			if v.Value.Value != tt.expected.Value {
				t.Errorf("expected payload %v, got %v", tt.expected.Value, v.Value.Value)
			}
		})
	}
}

func TestParser_IntegerOverflow(t *testing.T) {
	// One past MaxInt64: must fail the parse, not wrap around.
	expectParseFailure(t, "v = 9223372036854775808;", cclerror.CodeInvalidNumber)
}

func TestParser_StringEscapes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain", `v = "hello";`, "hello"},
		{"Escaped quote", `v = "say \"hi\"";`, `say "hi"`},
		{"Backslash", `v = "a\\b";`, `a\b`},
		{"Tab newline return", `v = "a\tb\nc\rd";`, "a\tb\nc\rd"},
		{"Unicode escape", "v = \"A\\u00E9\";", "Aé"},
		{"Empty", `v = "";`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, tt.input)

			v, ok := doc.Lookup("v")
			if !ok {
				t.Fatal("expected variable v")
			}
			s, ok := v.Value.AsString()
			if !ok {
				t.Fatalf("expected string, got %s", v.Value.Type)
			}
			if s != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, s)
			}
		})
	}
}

func TestParser_Arrays(t *testing.T) {
	doc := mustParse(t, `v = [1, "two", 3.0, true, [4, 5]];`)

	v, ok := doc.Lookup("v")
	if !ok {
		t.Fatal("expected variable v")
	}
	elements, ok := v.Value.AsArray()
	if !ok {
		t.Fatalf("expected array, got %s", v.Value.Type)
	}
	if len(elements) != 5 {
		t.Fatalf("expected 5 elements, got %d", len(elements))
	}

	if i, ok := elements[0].AsInteger(); !ok || i != 1 {
		t.Errorf("element 0: expected 1, got %v", elements[0])
	}
	if s, ok := elements[1].AsString(); !ok || s != "two" {
		t.Errorf("element 1: expected %q, got %v", "two", elements[1])
	}
	if f, ok := elements[2].AsFloat(); !ok || f != 3.0 {
		t.Errorf("element 2: expected 3.0, got %v", elements[2])
	}
	if b, ok := elements[3].AsBoolean(); !ok || !b {
		t.Errorf("element 3: expected true, got %v", elements[3])
	}

	nested, ok := elements[4].AsArray()
	if !ok {
		t.Fatalf("element 4: expected nested array, got %s", elements[4].Type)
	}
	if len(nested) != 2 {
		t.Errorf("nested array: expected 2 elements, got %d", len(nested))
	}
}

func TestParser_DuplicatesArePreserved(t *testing.T) {
	doc := mustParse(t, "a = 1; a = 2; -cat- x = 1; -cat- x = 2;")

	first, ok := doc.Lookup("a")
	if !ok {
		t.Fatal("expected variable a")
	}
	if i, _ := first.Value.AsInteger(); i != 1 {
		t.Errorf("Lookup must return the first match, got %d", i)
	}

	all := doc.AllOf("a")
	if len(all) != 2 {
		t.Fatalf("expected 2 occurrences of a, got %d", len(all))
	}
	if i, _ := all[1].Value.AsInteger(); i != 2 {
		t.Errorf("expected second occurrence to be 2, got %d", i)
	}

	if len(doc.Categories) != 2 {
		t.Errorf("duplicate categories must not be merged, got %d", len(doc.Categories))
	}
}

func TestParser_Positions(t *testing.T) {
	doc := mustParse(t, "a = 1;\n-cat-\nb = 2;")

	if doc.RootVariables[0].Pos != (ast.Position{Line: 1, Column: 1, Offset: 0}) {
		t.Errorf("unexpected position for a: %+v", doc.RootVariables[0].Pos)
	}
	if doc.Categories[0].Pos != (ast.Position{Line: 2, Column: 2, Offset: 8}) {
		t.Errorf("unexpected position for cat: %+v", doc.Categories[0].Pos)
	}
	if doc.Categories[0].Variables[0].Pos != (ast.Position{Line: 3, Column: 1, Offset: 13}) {
		t.Errorf("unexpected position for b: %+v", doc.Categories[0].Variables[0].Pos)
	}
}

func TestParser_Failures(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  cclerror.Code
	}{
		{"Value at statement position", "42;", cclerror.CodeExpectedStatement},
		{"Missing assign", "a 1;", cclerror.CodeExpectedAssign},
		{"Missing value", "a = ;", cclerror.CodeExpectedValue},
		{"Missing semicolon", "a = 1 b = 2;", cclerror.CodeExpectedSemicolon},
		{"Empty array", "a = [];", cclerror.CodeExpectedValue},
		{"Trailing comma", "a = [1,];", cclerror.CodeExpectedValue},
		{"Array without delimiter", "a = [1 2];", cclerror.CodeArrayDelimiter},
		{"Unclosed array", "a = [1;", cclerror.CodeArrayDelimiter},
		{"Category without name", "- -", cclerror.CodeCategoryName},
		{"Category without closing minus", "-server a = 1;", cclerror.CodeCategoryDelimiter},
		{"Hex literal without digits", "a = 0x;", cclerror.CodeInvalidHexLiteral},
		{"Octal literal without digits", "a = 0o8;", cclerror.CodeInvalidOctalLiteral},
		{"Unterminated string", `a = "abc`, cclerror.CodeUnterminatedString},
		{"Illegal character", "a = @;", cclerror.CodeIllegalCharacter},
		{"Unknown escape", `a = "\x41";`, cclerror.CodeInvalidEscape},
		{"Escaped quote shields terminator", `a = "abc\";`, cclerror.CodeUnterminatedString},
		{"Bad unicode digit", `a = "\u12G4";`, cclerror.CodeInvalidUnicodeEscape},
		{"Truncated unicode escape", `a = "\u12";`, cclerror.CodeInvalidUnicodeEscape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectParseFailure(t, tt.input, tt.code)
		})
	}
}

func TestParser_FailurePosition(t *testing.T) {
	pe := expectParseFailure(t, "a = 1;\nb = ;", cclerror.CodeExpectedValue)

	if pe.Pos.Line != 2 {
		t.Errorf("expected failure on line 2, got %d", pe.Pos.Line)
	}
	if !strings.Contains(pe.Error(), "line 2") {
		t.Errorf("expected position in message, got %q", pe.Error())
	}
}

func TestParser_StructuredError(t *testing.T) {
	pe := expectParseFailure(t, "a = ;", cclerror.CodeExpectedValue)

	structured := pe.Structured()
	if !cclerror.HasCode(structured, cclerror.CodeExpectedValue) {
		t.Errorf("expected code %s on structured error", cclerror.CodeExpectedValue)
	}
	if structured.Details()["line"] != 1 {
		t.Errorf("expected line detail 1, got %v", structured.Details()["line"])
	}
}

func TestParser_IsReusable(t *testing.T) {
	p := newTestParser(t)

	for i := 0; i < 3; i++ {
		doc, err := p.Parse("a = 1; -cat- b = 2;")
		if err != nil {
			t.Fatalf("parse %d failed: %v", i, err)
		}
		if doc.VariableCount() != 2 {
			t.Errorf("parse %d: expected 2 variables, got %d", i, doc.VariableCount())
		}
	}

	// A failing parse must not poison the next one.
	if _, err := p.Parse("a = ;"); err == nil {
		t.Fatal("expected failure")
	}
	if _, err := p.Parse("a = 1;"); err != nil {
		t.Fatalf("parse after failure: %v", err)
	}
}

func TestParser_ConcurrentParses(t *testing.T) {
	p := newTestParser(t)

	inputs := []string{
		"a = 1; -server- host = \"localhost\"; port = 8080;",
		"b = 2.5; flags = [true, false];",
		"c = \"text\";",
		"d = ;", // must fail without disturbing the others
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		for _, input := range inputs {
			wg.Add(1)
			go func(input string) {
				defer wg.Done()
				for i := 0; i < 50; i++ {
					doc, err := p.Parse(input)
					if input == "d = ;" {
						if err == nil {
							t.Error("expected failure for invalid input")
						}
						continue
					}
					if err != nil {
						t.Errorf("parse of %q failed: %v", input, err)
						return
					}
					v, ok := doc.Lookup(input[:1])
					if !ok || v.Pos.Offset != 0 {
						t.Errorf("parse of %q produced wrong document: %+v", input, doc)
						return
					}
				}
			}(input)
		}
	}
	wg.Wait()
}

func TestParser_ResultIsDeterministic(t *testing.T) {
	input := `
		name = "demo";
		ratio = -.25;
		limits = [1, [2.5, "deep"], true];
		-server-
		host = "a\tbé";
		port = 0x1F;
		-server-
		port = 8080;
	`
	p := newTestParser(t)

	first, err := p.Parse(input)
	if err != nil {
		t.Fatalf("first parse failed: %v", err)
	}
	second, err := p.Parse(input)
	if err != nil {
		t.Fatalf("second parse failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated parses of the same input must be structurally equal:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestParser_InputLengthLimit(t *testing.T) {
	logger := ccllog.NewWithConfig(ccllog.Config{Level: ccllog.LevelError, Output: io.Discard})

	p, err := New(Options{Logger: logger, MaxInputLength: 8})
	if err != nil {
		t.Fatalf("failed to create parser: %v", err)
	}

	if _, err := p.Parse("a = 111111111;"); err == nil {
		t.Fatal("expected input length failure")
	}
	if _, err := p.Parse("a = 1;"); err != nil {
		t.Fatalf("short input should parse: %v", err)
	}
}
