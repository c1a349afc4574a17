// File: visitor.go
// Title: CCL AST Visitor Implementation
// Description: Implements the visitor pattern for traversing CCL documents.
//              Provides a base visitor with full traversal plus concrete
//              visitors for collecting document statistics and names.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial visitor implementation

package ast

// Visitor interface for traversing document nodes using the visitor pattern
type Visitor interface {
	VisitDocument(doc *Document) interface{}
	VisitCategory(cat *Category) interface{}
	VisitVariable(variable *Variable) interface{}
	VisitValue(value *Value) interface{}
}

// Accept implements the visitor pattern for Document
func (d *Document) Accept(visitor Visitor) interface{} {
	return visitor.VisitDocument(d)
}

// Accept implements the visitor pattern for Category
func (c *Category) Accept(visitor Visitor) interface{} {
	return visitor.VisitCategory(c)
}

// Accept implements the visitor pattern for Variable
func (v *Variable) Accept(visitor Visitor) interface{} {
	return visitor.VisitVariable(v)
}

// Accept implements the visitor pattern for Value
func (v *Value) Accept(visitor Visitor) interface{} {
	return visitor.VisitValue(v)
}

// BaseVisitor provides default implementations for all visitor methods.
// Embed this in concrete visitors to only override needed methods.
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitDocument(doc *Document) interface{} {
	for i := range doc.RootVariables {
		doc.RootVariables[i].Accept(bv)
	}
	for i := range doc.Categories {
		doc.Categories[i].Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitCategory(cat *Category) interface{} {
	for i := range cat.Variables {
		cat.Variables[i].Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitVariable(variable *Variable) interface{} {
	return variable.Value.Accept(bv)
}

func (bv *BaseVisitor) VisitValue(value *Value) interface{} {
	if elements, ok := value.AsArray(); ok {
		for i := range elements {
			elements[i].Accept(bv)
		}
	}
	return nil
}

// Stats contains aggregate information about a document
type Stats struct {
	RootVariables int               // Number of root variables
	Categories    int               // Number of categories
	Variables     int               // Total number of variables (root + categories)
	Values        int               // Total number of values including array elements
	ByType        map[ValueType]int // Value count per type
}

// StatsVisitor collects document statistics during traversal
type StatsVisitor struct {
	stats Stats
}

// NewStatsVisitor creates a new statistics visitor
func NewStatsVisitor() *StatsVisitor {
	return &StatsVisitor{
		stats: Stats{
			ByType: make(map[ValueType]int),
		},
	}
}

// Stats returns the collected statistics
func (sv *StatsVisitor) Stats() Stats {
	return sv.stats
}

func (sv *StatsVisitor) VisitDocument(doc *Document) interface{} {
	sv.stats.RootVariables = len(doc.RootVariables)
	sv.stats.Categories = len(doc.Categories)
	for i := range doc.RootVariables {
		doc.RootVariables[i].Accept(sv)
	}
	for i := range doc.Categories {
		doc.Categories[i].Accept(sv)
	}
	return sv.stats
}

func (sv *StatsVisitor) VisitCategory(cat *Category) interface{} {
	for i := range cat.Variables {
		cat.Variables[i].Accept(sv)
	}
	return nil
}

func (sv *StatsVisitor) VisitVariable(variable *Variable) interface{} {
	sv.stats.Variables++
	return variable.Value.Accept(sv)
}

func (sv *StatsVisitor) VisitValue(value *Value) interface{} {
	sv.stats.Values++
	sv.stats.ByType[value.Type]++
	if elements, ok := value.AsArray(); ok {
		for i := range elements {
			elements[i].Accept(sv)
		}
	}
	return nil
}

// NamesVisitor collects all variable names during traversal in source order
type NamesVisitor struct {
	names []string
}

// NewNamesVisitor creates a new name-collecting visitor
func NewNamesVisitor() *NamesVisitor {
	return &NamesVisitor{}
}

// Names returns the collected variable names
func (nv *NamesVisitor) Names() []string {
	return nv.names
}

func (nv *NamesVisitor) VisitDocument(doc *Document) interface{} {
	for i := range doc.RootVariables {
		doc.RootVariables[i].Accept(nv)
	}
	for i := range doc.Categories {
		doc.Categories[i].Accept(nv)
	}
	return nv.names
}

func (nv *NamesVisitor) VisitCategory(cat *Category) interface{} {
	for i := range cat.Variables {
		cat.Variables[i].Accept(nv)
	}
	return nil
}

func (nv *NamesVisitor) VisitVariable(variable *Variable) interface{} {
	nv.names = append(nv.names, variable.Name)
	return nil
}

func (nv *NamesVisitor) VisitValue(value *Value) interface{} {
	return nil
}
