// File: doc.go
// Title: Core Log Package Documentation
// Description: Documents the structured logging system used across the CCL
//              library including levels, entries, formatters, and the
//              Logger type.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial log package

/*
Package log provides structured, leveled logging for the CCL library.

Loggers are immutable: the With* methods return clones so a configured
logger can be shared freely. Entries carry a message, a level, contextual
Fields, and an optional error, and are rendered by a pluggable Formatter
(JSON for machines, text and colored console output for humans).

The parser and the surrounding tooling accept a *Logger through their
Options; when none is provided they fall back to the package default.
*/
package log
