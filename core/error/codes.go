// File: codes.go
// Title: Error Code Definitions
// Description: Defines structured error codes for the CCL library. The
//              lexical and syntactic codes form the closed failure taxonomy
//              of the parser; the remaining codes cover I/O, export, and
//              watcher failures of the surrounding tooling.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial error code definitions

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes for the CCL library
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeIOError      Code = "IO_ERROR"

	// Lexical failures
	CodeInvalidHexLiteral   Code = "LEX_INVALID_HEX_LITERAL"
	CodeInvalidOctalLiteral Code = "LEX_INVALID_OCTAL_LITERAL"
	CodeInvalidNumber       Code = "LEX_INVALID_NUMBER"
	CodeUnterminatedString  Code = "LEX_UNTERMINATED_STRING"
	CodeIllegalCharacter    Code = "LEX_ILLEGAL_CHARACTER"

	// Syntactic failures
	CodeExpectedStatement     Code = "SYN_EXPECTED_STATEMENT"
	CodeExpectedAssign        Code = "SYN_EXPECTED_ASSIGN"
	CodeExpectedValue         Code = "SYN_EXPECTED_VALUE"
	CodeExpectedSemicolon     Code = "SYN_EXPECTED_SEMICOLON"
	CodeArrayDelimiter        Code = "SYN_ARRAY_DELIMITER"
	CodeCategoryName          Code = "SYN_CATEGORY_NAME"
	CodeCategoryDelimiter     Code = "SYN_CATEGORY_DELIMITER"
	CodeInvalidEscape         Code = "SYN_INVALID_ESCAPE"
	CodeInvalidUnicodeEscape  Code = "SYN_INVALID_UNICODE_ESCAPE"

	// Tooling
	CodeExportError Code = "EXPORT_ERROR"
	CodeWatchError  Code = "WATCH_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeIOError,
		CodeInvalidHexLiteral, CodeInvalidOctalLiteral, CodeInvalidNumber,
		CodeUnterminatedString, CodeIllegalCharacter,
		CodeExpectedStatement, CodeExpectedAssign, CodeExpectedValue,
		CodeExpectedSemicolon, CodeArrayDelimiter, CodeCategoryName,
		CodeCategoryDelimiter, CodeInvalidEscape, CodeInvalidUnicodeEscape,
		CodeExportError, CodeWatchError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidHexLiteral, CodeInvalidOctalLiteral, CodeInvalidNumber,
		CodeUnterminatedString, CodeIllegalCharacter:
		return "lexical"
	case CodeExpectedStatement, CodeExpectedAssign, CodeExpectedValue,
		CodeExpectedSemicolon, CodeArrayDelimiter, CodeCategoryName,
		CodeCategoryDelimiter, CodeInvalidEscape, CodeInvalidUnicodeEscape:
		return "syntax"
	case CodeExportError, CodeWatchError:
		return "tooling"
	case CodeIOError:
		return "io"
	default:
		return "generic"
	}
}

// IsParseFailure returns true if the code belongs to the parser's
// lexical or syntactic failure taxonomy
func (c Code) IsParseFailure() bool {
	cat := c.Category()
	return cat == "lexical" || cat == "syntax"
}
