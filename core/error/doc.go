// File: doc.go
// Title: Core Error Package Documentation
// Description: Documents the structured error handling system used across
//              the CCL library including error codes, severities, and the
//              contextual Error type.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial error package

/*
Package error provides structured error handling for the CCL library.

Errors carry a Code identifying the failure class (lexical, syntax, I/O,
export), a Severity, a details map for diagnostic context, and an optional
wrapped cause. The type implements the standard error interface and supports
errors.Is/errors.As unwrapping via Unwrap.

The lexical and syntactic codes form a closed taxonomy: every way a CCL
parse can fail maps to exactly one code, so callers can build diagnostics
without string matching.
*/
package error
