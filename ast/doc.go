// File: doc.go
// Title: CCL AST Package Documentation
// Description: Documents the AST node types used to represent parsed CCL
//              documents including the document root, categories, variables,
//              and the typed value union.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial AST node definitions

/*
Package ast defines the in-memory representation of a parsed CCL document.

A Document is the root of the value tree produced by a single parse pass.
It holds the root variables (declared before any category delimiter) and the
named categories, both in source order. Values form a closed tagged union of
boolean, integer, float, string, and array variants; arrays may contain
heterogeneous element types.

All names and string payloads reachable from a Document are owned by the
Document itself. The parser copies token payloads before the lexer input
buffer goes out of scope, so a Document remains valid independently of the
source text it was parsed from.

Duplicate variable names within a scope and duplicate category names are
intentionally legal. Insertion order is preserved and observable; Lookup
returns the first match and AllOf returns every match in source order.
*/
package ast
