// File: nodes_test.go
// Title: CCL AST Node Unit Tests
// Description: Unit tests for AST node types covering value constructors
//              and accessors, lookup semantics with duplicates, string
//              rendering, and validation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial test suite

package ast

import (
	"testing"
)

func TestPosition_String(t *testing.T) {
	p := Position{Line: 3, Column: 7, Offset: 42}
	if p.String() != "3:7" {
		t.Errorf("expected 3:7, got %s", p.String())
	}
}

func TestValue_Accessors(t *testing.T) {
	pos := Position{Line: 1, Column: 1}

	b := BooleanValue(true, pos)
	if v, ok := b.AsBoolean(); !ok || !v {
		t.Error("AsBoolean failed on boolean value")
	}
	if _, ok := b.AsInteger(); ok {
		t.Error("AsInteger must fail on boolean value")
	}

	i := IntegerValue(-42, pos)
	if v, ok := i.AsInteger(); !ok || v != -42 {
		t.Error("AsInteger failed on integer value")
	}

	f := FloatValue(2.5, pos)
	if v, ok := f.AsFloat(); !ok || v != 2.5 {
		t.Error("AsFloat failed on float value")
	}

	s := StringValue("hi", pos)
	if v, ok := s.AsString(); !ok || v != "hi" {
		t.Error("AsString failed on string value")
	}

	a := ArrayValue([]Value{i, s}, pos)
	if elements, ok := a.AsArray(); !ok || len(elements) != 2 {
		t.Error("AsArray failed on array value")
	}
}

func TestValue_String(t *testing.T) {
	pos := Position{}

	tests := []struct {
		value    Value
		expected string
	}{
		{BooleanValue(false, pos), "false"},
		{IntegerValue(42, pos), "42"},
		{FloatValue(2.5, pos), "2.5"},
		{StringValue("a\"b", pos), `"a\"b"`},
		{ArrayValue([]Value{IntegerValue(1, pos), StringValue("x", pos)}, pos), `[1, "x"]`},
	}

	for _, tt := range tests {
		if got := tt.value.String(); got != tt.expected {
			t.Errorf("expected %s, got %s", tt.expected, got)
		}
	}
}

func TestValue_Validate(t *testing.T) {
	pos := Position{}

	if err := IntegerValue(1, pos).Validate(); err != nil {
		t.Errorf("valid value rejected: %v", err)
	}

	broken := Value{Type: ValueTypeInteger, Value: "not an int", Pos: pos}
	if err := broken.Validate(); err == nil {
		t.Error("expected validation failure for mismatched payload")
	}

	nested := ArrayValue([]Value{broken}, pos)
	if err := nested.Validate(); err == nil {
		t.Error("expected validation failure for broken array element")
	}
}

func newTestDocument() *Document {
	pos := Position{Line: 1, Column: 1}
	return &Document{
		RootVariables: []Variable{
			{Name: "a", Value: IntegerValue(1, pos), Pos: pos},
			{Name: "b", Value: IntegerValue(2, pos), Pos: pos},
			{Name: "a", Value: IntegerValue(3, pos), Pos: pos},
		},
		Categories: []Category{
			{Name: "server", Variables: []Variable{
				{Name: "host", Value: StringValue("localhost", pos), Pos: pos},
			}, Pos: pos},
			{Name: "server", Variables: []Variable{
				{Name: "host", Value: StringValue("fallback", pos), Pos: pos},
			}, Pos: pos},
		},
	}
}

func TestDocument_LookupReturnsFirstMatch(t *testing.T) {
	doc := newTestDocument()

	v, ok := doc.Lookup("a")
	if !ok {
		t.Fatal("expected variable a")
	}
	if i, _ := v.Value.AsInteger(); i != 1 {
		t.Errorf("expected first occurrence 1, got %d", i)
	}

	if _, ok := doc.Lookup("missing"); ok {
		t.Error("expected miss for unknown name")
	}
}

func TestDocument_AllOf(t *testing.T) {
	doc := newTestDocument()

	all := doc.AllOf("a")
	if len(all) != 2 {
		t.Fatalf("expected 2 occurrences, got %d", len(all))
	}
	if i, _ := all[0].Value.AsInteger(); i != 1 {
		t.Errorf("expected first occurrence 1, got %d", i)
	}
	if i, _ := all[1].Value.AsInteger(); i != 3 {
		t.Errorf("expected second occurrence 3, got %d", i)
	}

	if len(doc.AllOf("missing")) != 0 {
		t.Error("expected no occurrences for unknown name")
	}
}

func TestDocument_CategoryHelpers(t *testing.T) {
	doc := newTestDocument()

	cat, ok := doc.Category("server")
	if !ok {
		t.Fatal("expected category server")
	}
	if host, _ := cat.Variables[0].Value.AsString(); host != "localhost" {
		t.Errorf("Category must return the first match, got %q", host)
	}

	names := doc.CategoryNames()
	if len(names) != 2 || names[0] != "server" || names[1] != "server" {
		t.Errorf("duplicate category names must be preserved, got %v", names)
	}

	if doc.VariableCount() != 5 {
		t.Errorf("expected 5 variables, got %d", doc.VariableCount())
	}
}

func TestCategory_Lookup(t *testing.T) {
	pos := Position{}
	cat := Category{Name: "c", Variables: []Variable{
		{Name: "x", Value: IntegerValue(1, pos)},
		{Name: "x", Value: IntegerValue(2, pos)},
	}}

	v, ok := cat.Lookup("x")
	if !ok {
		t.Fatal("expected variable x")
	}
	if i, _ := v.Value.AsInteger(); i != 1 {
		t.Errorf("expected first occurrence 1, got %d", i)
	}

	if len(cat.AllOf("x")) != 2 {
		t.Error("expected both occurrences from AllOf")
	}
}

func TestDocument_Validate(t *testing.T) {
	doc := newTestDocument()
	if err := doc.Validate(); err != nil {
		t.Errorf("valid document rejected: %v", err)
	}

	doc.RootVariables[0].Name = "  "
	if err := doc.Validate(); err == nil {
		t.Error("expected validation failure for blank name")
	}
}
