// File: lexer.go
// Title: CCL Lexical Analyzer
// Description: Implements a pull-based lexer producing the token stream for
//              the CCL parser. Handles signed decimal, hexadecimal, and octal
//              numbers, partial floats, raw string scanning, and the
//              minus-sign ambiguity between negative numbers and category
//              delimiters.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"

	"github.com/msto63/ccl/ast"
	cclstringx "github.com/msto63/ccl/utils/stringx"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// TokenEOF indicates the end of input. NextToken keeps returning it.
	TokenEOF TokenType = iota

	// TokenIllegal indicates a lexical failure; Hint names what was expected
	TokenIllegal

	// TokenIdentifier is an ASCII identifier (variable or category name)
	TokenIdentifier

	// TokenString is a string literal; Value holds the raw payload between
	// the quotes with escape sequences still undecoded
	TokenString

	// TokenInteger is an integer literal; Value holds the digits without
	// radix prefix, Base holds the radix
	TokenInteger

	// TokenFloat is a float literal; Value holds the normalized decimal text
	TokenFloat

	// TokenBoolean is the literal true or false
	TokenBoolean

	// TokenMinus is a standalone '-' (category delimiter)
	TokenMinus

	// TokenSemicolon is the statement terminator ';'
	TokenSemicolon

	// TokenComma is the array element separator ','
	TokenComma

	// TokenEquals is the assignment operator '='
	TokenEquals

	// TokenLeftBracket is the array opener '['
	TokenLeftBracket

	// TokenRightBracket is the array closer ']'
	TokenRightBracket
)

// String returns the string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenString:
		return "STRING"
	case TokenInteger:
		return "INTEGER"
	case TokenFloat:
		return "FLOAT"
	case TokenBoolean:
		return "BOOLEAN"
	case TokenMinus:
		return "MINUS"
	case TokenSemicolon:
		return "SEMICOLON"
	case TokenComma:
		return "COMMA"
	case TokenEquals:
		return "EQUALS"
	case TokenLeftBracket:
		return "LBRACKET"
	case TokenRightBracket:
		return "RBRACKET"
	default:
		return "UNKNOWN"
	}
}

// Hints carried by illegal tokens, naming what the lexer expected
const (
	HintHexDigit     = "hexadecimal digit"
	HintOctalDigit   = "octal digit"
	HintClosingQuote = "closing quote"
)

// Token represents a single lexical token with its source span
type Token struct {
	Type  TokenType    // Token type
	Value string       // Lexeme, normalized numeric text, or raw string payload
	Base  int          // Radix for integer literals (10, 16, or 8)
	Hint  string       // For illegal tokens: what the lexer expected
	Start ast.Position // Position of the first byte (inclusive)
	End   ast.Position // Position one past the last byte (exclusive)
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Type, t.Value, t.Start)
}

// Lexer performs lexical analysis of CCL input
type Lexer struct {
	input    string
	position int  // current position in input (points to current char)
	readPos  int  // current reading position (after current char)
	ch       byte // current char under examination
	line     int  // current line number (1-based)
	column   int  // current column number (1-based)
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.readChar()
	return l
}

// readChar advances to the next character, maintaining line and column
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.position = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// currentPosition returns the position of the current character
func (l *Lexer) currentPosition() ast.Position {
	return ast.Position{
		Line:   l.line,
		Column: l.column,
		Offset: l.position,
	}
}

// skipWhitespace skips spaces, tabs, and newlines
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// NextToken scans and returns the next token from the input.
// After the input is exhausted it keeps returning TokenEOF.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	start := l.currentPosition()

	switch l.ch {
	case 0:
		return Token{Type: TokenEOF, Start: start, End: start}
	case ';':
		return l.singleCharToken(TokenSemicolon, start)
	case ',':
		return l.singleCharToken(TokenComma, start)
	case '=':
		return l.singleCharToken(TokenEquals, start)
	case '[':
		return l.singleCharToken(TokenLeftBracket, start)
	case ']':
		return l.singleCharToken(TokenRightBracket, start)
	case '-':
		// A '-' directly followed by a digit or '.' is a numeric sign,
		// otherwise it is a standalone category delimiter.
		if isDigit(l.peekChar()) || l.peekChar() == '.' {
			l.readChar()
			return l.lexNumber(start, true)
		}
		return l.singleCharToken(TokenMinus, start)
	case '"':
		return l.lexString(start)
	}

	if isLetter(l.ch) {
		return l.lexIdentifier(start)
	}

	if l.ch == '0' && l.peekChar() == 'x' {
		return l.lexRadixNumber(start, 16)
	}
	if l.ch == '0' && l.peekChar() == 'o' {
		return l.lexRadixNumber(start, 8)
	}
	if isDigit(l.ch) || l.ch == '.' {
		return l.lexNumber(start, false)
	}

	return l.singleCharToken(TokenIllegal, start)
}

// singleCharToken consumes the current character and returns a token for it
func (l *Lexer) singleCharToken(tt TokenType, start ast.Position) Token {
	value := string(l.ch)
	l.readChar()
	return Token{Type: tt, Value: value, Start: start, End: l.currentPosition()}
}

// lexIdentifier scans an identifier or boolean literal
func (l *Lexer) lexIdentifier(start ast.Position) Token {
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}

	value := l.input[start.Offset:l.position]

	tt := TokenIdentifier
	if value == "true" || value == "false" {
		tt = TokenBoolean
	}

	return Token{Type: tt, Value: value, Start: start, End: l.currentPosition()}
}

// lexNumber scans a decimal integer or float literal. The optional leading
// sign has already been consumed when neg is true. Partial floats are
// normalized: ".5" becomes "0.5" and "5." becomes "5.0".
func (l *Lexer) lexNumber(start ast.Position, neg bool) Token {
	intPart := l.readDigits()

	if l.ch != '.' {
		value := intPart
		if neg {
			value = "-" + value
		}
		return Token{
			Type:  TokenInteger,
			Value: value,
			Base:  10,
			Start: start,
			End:   l.currentPosition(),
		}
	}

	l.readChar()
	fracPart := l.readDigits()

	if intPart == "" {
		intPart = "0"
	}
	if fracPart == "" {
		fracPart = "0"
	}

	value := intPart + "." + fracPart
	if neg {
		value = "-" + value
	}

	return Token{
		Type:  TokenFloat,
		Value: value,
		Start: start,
		End:   l.currentPosition(),
	}
}

// lexRadixNumber scans a hexadecimal (0x) or octal (0o) integer literal.
// The returned Value holds the digits without the radix prefix.
func (l *Lexer) lexRadixNumber(start ast.Position, base int) Token {
	l.readChar() // consume '0'
	l.readChar() // consume 'x' or 'o'

	isRadixDigit := isHexDigit
	hint := HintHexDigit
	if base == 8 {
		isRadixDigit = isOctalDigit
		hint = HintOctalDigit
	}

	if !isRadixDigit(l.ch) {
		// Prefix without digits: report the byte that broke the literal.
		value := ""
		if l.ch != 0 {
			value = string(l.ch)
		}
		return Token{
			Type:  TokenIllegal,
			Value: value,
			Hint:  hint,
			Start: start,
			End:   l.currentPosition(),
		}
	}

	digitsStart := l.position
	for isRadixDigit(l.ch) {
		l.readChar()
	}

	return Token{
		Type:  TokenInteger,
		Value: l.input[digitsStart:l.position],
		Base:  base,
		Start: start,
		End:   l.currentPosition(),
	}
}

// lexString scans a string literal. The payload between the quotes is kept
// verbatim: escape sequences are carried through undecoded and resolved by
// the parser. A backslash shields the following byte from terminating the
// scan, so \" stays inside the literal. Reaching end of input before the
// closing quote yields an illegal token, never an endless scan.
func (l *Lexer) lexString(start ast.Position) Token {
	for {
		l.readChar()

		if l.ch == 0 {
			return Token{
				Type:  TokenIllegal,
				Value: l.input[start.Offset+1 : l.position],
				Hint:  HintClosingQuote,
				Start: start,
				End:   l.currentPosition(),
			}
		}

		if l.ch == '"' {
			break
		}

		if l.ch == '\\' && l.peekChar() != 0 {
			l.readChar()
		}
	}

	value := l.input[start.Offset+1 : l.position]
	l.readChar() // consume closing quote

	return Token{Type: TokenString, Value: value, Start: start, End: l.currentPosition()}
}

// readDigits reads a maximal run of decimal digits
func (l *Lexer) readDigits() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// Tokenize scans the whole input and returns all tokens up to and including
// EOF. It stops at the first illegal token and returns it along with an
// error. Mainly useful for tests and diagnostics.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Type == TokenIllegal {
			return tokens, fmt.Errorf("illegal token at %s: expected %s",
				tok.Start, cclstringx.FirstNonBlank(tok.Hint, "valid token"))
		}
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}

// isLetter reports whether ch can start or continue an identifier
// (ASCII letters and underscore; digits may continue but not start one)
func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}

// isDigit reports whether ch is a decimal digit
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// isHexDigit reports whether ch is a hexadecimal digit
func isHexDigit(ch byte) bool {
	return isDigit(ch) || ch >= 'a' && ch <= 'f' || ch >= 'A' && ch <= 'F'
}

// isOctalDigit reports whether ch is an octal digit
func isOctalDigit(ch byte) bool {
	return ch >= '0' && ch <= '7'
}
