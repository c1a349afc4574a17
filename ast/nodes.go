// File: nodes.go
// Title: CCL AST Node Definitions
// Description: Defines all node types for representing parsed CCL documents
//              including the document root, categories, variables, and the
//              typed value union. Provides string representations, lookup
//              helpers, and validation methods.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strconv"
	"strings"

	cclstringx "github.com/msto63/ccl/utils/stringx"
)

// Position represents a position in the source text
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

// String returns a string representation of the position
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// ValueType represents the type of a value
type ValueType int

const (
	ValueTypeBoolean ValueType = iota
	ValueTypeInteger
	ValueTypeFloat
	ValueTypeString
	ValueTypeArray
)

// String returns string representation of ValueType
func (vt ValueType) String() string {
	switch vt {
	case ValueTypeBoolean:
		return "boolean"
	case ValueTypeInteger:
		return "integer"
	case ValueTypeFloat:
		return "float"
	case ValueTypeString:
		return "string"
	case ValueTypeArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value represents a single CCL value (boolean, integer, float, string, array)
type Value struct {
	Type  ValueType   // Type of the value
	Raw   string      // Raw source representation (empty for arrays)
	Value interface{} // Parsed value (bool, int64, float64, string, []Value)
	Pos   Position    // Source position
}

// BooleanValue creates a boolean value
func BooleanValue(b bool, pos Position) Value {
	return Value{
		Type:  ValueTypeBoolean,
		Raw:   strconv.FormatBool(b),
		Value: b,
		Pos:   pos,
	}
}

// IntegerValue creates an integer value
func IntegerValue(i int64, pos Position) Value {
	return Value{
		Type:  ValueTypeInteger,
		Raw:   strconv.FormatInt(i, 10),
		Value: i,
		Pos:   pos,
	}
}

// FloatValue creates a float value
func FloatValue(f float64, pos Position) Value {
	return Value{
		Type:  ValueTypeFloat,
		Raw:   strconv.FormatFloat(f, 'g', -1, 64),
		Value: f,
		Pos:   pos,
	}
}

// StringValue creates a string value
func StringValue(s string, pos Position) Value {
	return Value{
		Type:  ValueTypeString,
		Raw:   s,
		Value: s,
		Pos:   pos,
	}
}

// ArrayValue creates an array value
func ArrayValue(elements []Value, pos Position) Value {
	return Value{
		Type:  ValueTypeArray,
		Value: elements,
		Pos:   pos,
	}
}

// AsBoolean returns the boolean payload, or false if the value is not a boolean
func (v Value) AsBoolean() (bool, bool) {
	b, ok := v.Value.(bool)
	return b, ok && v.Type == ValueTypeBoolean
}

// AsInteger returns the integer payload, or false if the value is not an integer
func (v Value) AsInteger() (int64, bool) {
	i, ok := v.Value.(int64)
	return i, ok && v.Type == ValueTypeInteger
}

// AsFloat returns the float payload, or false if the value is not a float
func (v Value) AsFloat() (float64, bool) {
	f, ok := v.Value.(float64)
	return f, ok && v.Type == ValueTypeFloat
}

// AsString returns the string payload, or false if the value is not a string
func (v Value) AsString() (string, bool) {
	s, ok := v.Value.(string)
	return s, ok && v.Type == ValueTypeString
}

// AsArray returns the array elements, or false if the value is not an array
func (v Value) AsArray() ([]Value, bool) {
	a, ok := v.Value.([]Value)
	return a, ok && v.Type == ValueTypeArray
}

// String returns a string representation of the value
func (v Value) String() string {
	switch v.Type {
	case ValueTypeBoolean:
		if b, ok := v.Value.(bool); ok {
			return strconv.FormatBool(b)
		}
	case ValueTypeInteger:
		if i, ok := v.Value.(int64); ok {
			return strconv.FormatInt(i, 10)
		}
	case ValueTypeFloat:
		if f, ok := v.Value.(float64); ok {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
	case ValueTypeString:
		if s, ok := v.Value.(string); ok {
			return strconv.Quote(s)
		}
	case ValueTypeArray:
		if elements, ok := v.Value.([]Value); ok {
			parts := make([]string, len(elements))
			for i, elem := range elements {
				parts[i] = elem.String()
			}
			return "[" + strings.Join(parts, ", ") + "]"
		}
	}
	return "<invalid>"
}

// Validate performs basic validation of the value
func (v Value) Validate() error {
	switch v.Type {
	case ValueTypeBoolean:
		if _, ok := v.Value.(bool); !ok {
			return fmt.Errorf("boolean value holds %T payload", v.Value)
		}
	case ValueTypeInteger:
		if _, ok := v.Value.(int64); !ok {
			return fmt.Errorf("integer value holds %T payload", v.Value)
		}
	case ValueTypeFloat:
		if _, ok := v.Value.(float64); !ok {
			return fmt.Errorf("float value holds %T payload", v.Value)
		}
	case ValueTypeString:
		if _, ok := v.Value.(string); !ok {
			return fmt.Errorf("string value holds %T payload", v.Value)
		}
	case ValueTypeArray:
		elements, ok := v.Value.([]Value)
		if !ok {
			return fmt.Errorf("array value holds %T payload", v.Value)
		}
		for i, elem := range elements {
			if err := elem.Validate(); err != nil {
				return fmt.Errorf("array element %d: %w", i, err)
			}
		}
	default:
		return fmt.Errorf("unknown value type %d", v.Type)
	}
	return nil
}

// Variable represents a named variable assignment
type Variable struct {
	Name  string   // Variable name
	Value Value    // Assigned value
	Pos   Position // Source position of the name
}

// String returns a string representation of the variable
func (v Variable) String() string {
	return fmt.Sprintf("%s = %s", v.Name, v.Value.String())
}

// Validate performs basic validation of the variable
func (v Variable) Validate() error {
	if cclstringx.IsBlank(v.Name) {
		return fmt.Errorf("variable at %s has blank name", v.Pos)
	}
	return v.Value.Validate()
}

// Category represents a named, flat group of variables
type Category struct {
	Name      string     // Category name
	Variables []Variable // Variables in source order
	Pos       Position   // Source position of the name
}

// Lookup returns the first variable with the given name
func (c *Category) Lookup(name string) (*Variable, bool) {
	for i := range c.Variables {
		if c.Variables[i].Name == name {
			return &c.Variables[i], true
		}
	}
	return nil, false
}

// AllOf returns every variable with the given name in source order.
// Duplicate names are legal in CCL and are never merged.
func (c *Category) AllOf(name string) []Variable {
	var result []Variable
	for _, v := range c.Variables {
		if v.Name == name {
			result = append(result, v)
		}
	}
	return result
}

// String returns a string representation of the category
func (c *Category) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "-%s-", c.Name)
	for _, v := range c.Variables {
		sb.WriteString("\n  ")
		sb.WriteString(v.String())
	}
	return sb.String()
}

// Validate performs basic validation of the category
func (c *Category) Validate() error {
	if cclstringx.IsBlank(c.Name) {
		return fmt.Errorf("category at %s has blank name", c.Pos)
	}
	for _, v := range c.Variables {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("category %s: %w", c.Name, err)
		}
	}
	return nil
}

// Document represents a fully parsed CCL document.
//
// A Document is built by a single parse pass and is immutable afterwards.
// Insertion order of root variables and categories is preserved. Duplicate
// variable and category names are legal: lookups return the first match,
// AllOf returns every match.
type Document struct {
	RootVariables []Variable // Variables declared before any category
	Categories    []Category // Categories in source order
}

// Lookup returns the first root variable with the given name
func (d *Document) Lookup(name string) (*Variable, bool) {
	for i := range d.RootVariables {
		if d.RootVariables[i].Name == name {
			return &d.RootVariables[i], true
		}
	}
	return nil, false
}

// AllOf returns every root variable with the given name in source order
func (d *Document) AllOf(name string) []Variable {
	var result []Variable
	for _, v := range d.RootVariables {
		if v.Name == name {
			result = append(result, v)
		}
	}
	return result
}

// Category returns the first category with the given name
func (d *Document) Category(name string) (*Category, bool) {
	for i := range d.Categories {
		if d.Categories[i].Name == name {
			return &d.Categories[i], true
		}
	}
	return nil, false
}

// CategoryNames returns the names of all categories in source order,
// including duplicates
func (d *Document) CategoryNames() []string {
	names := make([]string, len(d.Categories))
	for i, c := range d.Categories {
		names[i] = c.Name
	}
	return names
}

// VariableCount returns the total number of variables in the document
// including all categories
func (d *Document) VariableCount() int {
	count := len(d.RootVariables)
	for _, c := range d.Categories {
		count += len(c.Variables)
	}
	return count
}

// String returns a string representation of the document
func (d *Document) String() string {
	var parts []string
	for _, v := range d.RootVariables {
		parts = append(parts, v.String())
	}
	for i := range d.Categories {
		parts = append(parts, d.Categories[i].String())
	}
	return strings.Join(parts, "\n")
}

// Validate performs basic validation of the document
func (d *Document) Validate() error {
	for _, v := range d.RootVariables {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	for i := range d.Categories {
		if err := d.Categories[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
