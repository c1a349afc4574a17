// File: doc.go
// Title: CCL Package Documentation
// Description: Documents the top-level CCL package that ties the lexer,
//              parser, and AST together behind a small facade API.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial facade implementation

/*
Package ccl parses CCL (Categorized Configuration Language) documents.

CCL is a small line-oriented configuration language: a document is a flat
list of root variable assignments followed by any number of flat categories,
each introduced by a -name- delimiter pair. Values are booleans, 64-bit
integers (decimal, hexadecimal, octal), floats, strings with escape
sequences, and heterogeneous arrays.

The simplest entry points are the package-level functions:

	doc, err := ccl.Parse(`port = 8080; -server- host = "localhost";`)
	doc, err := ccl.ParseFile("app.ccl")

For repeated parsing with shared configuration create an Engine:

	engine, err := ccl.NewEngine(ccl.Options{MaxInputLength: 1 << 20})
	doc, err := engine.Parse(input)

Hot reloading of configuration files is available through the Watcher type,
which polls a file and re-parses it when the modification time changes.
*/
package ccl
