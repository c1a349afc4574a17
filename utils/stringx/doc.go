// File: doc.go
// Title: String Utilities Package Documentation
// Description: Documents the string helper functions shared across the CCL
//              library and tooling.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial string utilities

/*
Package stringx provides small string helpers used across the CCL library:
blank checks for validation, Unicode-aware truncation for log and error
output, and line splitting for diagnostics rendering.
*/
package stringx
