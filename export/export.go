// File: export.go
// Title: CCL Document Export
// Description: Implements conversion of parsed CCL documents to JSON, YAML,
//              and TOML. Collapses duplicate names with first-occurrence
//              wins and flattens AST values to plain Go values.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial export implementation

package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/ccl/ast"
	cclerror "github.com/msto63/ccl/core/error"
)

// Format represents an export target format
type Format int

const (
	// FormatJSON exports as indented JSON
	FormatJSON Format = iota

	// FormatYAML exports as YAML
	FormatYAML

	// FormatTOML exports as TOML
	FormatTOML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into an export format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return FormatJSON, cclerror.New(fmt.Sprintf("unknown export format %q", format)).
			WithCode(cclerror.CodeInvalidInput).
			WithOperation("export.ParseFormat")
	}
}

// Document renders the document in the given format
func Document(doc *ast.Document, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, doc, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write renders the document in the given format to the writer
func Write(w io.Writer, doc *ast.Document, format Format) error {
	if doc == nil {
		return cclerror.New("document is nil").
			WithCode(cclerror.CodeInvalidInput).
			WithOperation("export.Write")
	}

	data := ToMap(doc)

	var err error
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(data)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err = encoder.Encode(data); err == nil {
			err = encoder.Close()
		}
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(data)
	default:
		return cclerror.New(fmt.Sprintf("unsupported export format %d", format)).
			WithCode(cclerror.CodeInvalidInput).
			WithOperation("export.Write")
	}

	if err != nil {
		return cclerror.Wrap(err, "failed to encode document").
			WithCode(cclerror.CodeExportError).
			WithOperation("export.Write").
			WithDetail("format", format.String())
	}

	return nil
}

// ToMap converts a document to a plain nested map. Root variables become
// top-level keys and categories become nested maps. For duplicate names
// the first occurrence wins.
func ToMap(doc *ast.Document) map[string]interface{} {
	result := make(map[string]interface{}, len(doc.RootVariables)+len(doc.Categories))

	for _, v := range doc.RootVariables {
		if _, exists := result[v.Name]; !exists {
			result[v.Name] = valueToInterface(v.Value)
		}
	}

	for i := range doc.Categories {
		category := &doc.Categories[i]
		if _, exists := result[category.Name]; exists {
			continue
		}

		vars := make(map[string]interface{}, len(category.Variables))
		for _, v := range category.Variables {
			if _, exists := vars[v.Name]; !exists {
				vars[v.Name] = valueToInterface(v.Value)
			}
		}
		result[category.Name] = vars
	}

	return result
}

// valueToInterface flattens an AST value to a plain Go value
func valueToInterface(v ast.Value) interface{} {
	if v.Type != ast.ValueTypeArray {
		return v.Value
	}

	elements, _ := v.AsArray()
	result := make([]interface{}, len(elements))
	for i, elem := range elements {
		result[i] = valueToInterface(elem)
	}
	return result
}
