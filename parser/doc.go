// File: doc.go
// Title: CCL Parser Package Documentation
// Description: Documents the lexical analyzer and recursive descent parser
//              that transform CCL source text into AST documents.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial lexer and parser implementation

/*
Package parser implements lexical analysis and parsing of CCL documents.

The Lexer is pull-based: each NextToken call materializes exactly one token
with its source span, and the stream is strictly forward-only. The Parser
draws tokens through a two-token lookahead window (current, peek) and builds
an ast.Document by recursive descent over the grammar:

	Document      := RootVariables CategoryList
	RootVariables := (VariableAssign ';')*
	Category      := '-' identifier '-' (VariableAssign ';')*
	VariableAssign:= identifier '=' Value
	Value         := boolean | integer | float | string | Array
	Array         := '[' Value (',' Value)* ']'

The grammar is LL(1); the one ambiguity around '-' (numeric sign versus
category delimiter) is resolved inside the lexer by a single byte of
lookahead, so the parser never sees it.

Parsing is all-or-nothing: the first lexical or syntactic failure aborts the
parse and is returned as a *ParseError carrying an error code and the
offending token's position. There is no recovery and no partial document.
*/
package parser
