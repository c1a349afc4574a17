// File: parser.go
// Title: CCL Recursive Descent Parser
// Description: Implements the recursive descent parser that turns a CCL
//              token stream into an ast.Document. Covers root variables,
//              categories, all value types including nested arrays, and
//              string escape decoding. Parsing is all-or-nothing with a
//              closed failure taxonomy.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/msto63/ccl/ast"
	cclerror "github.com/msto63/ccl/core/error"
	ccllog "github.com/msto63/ccl/core/log"
	cclstringx "github.com/msto63/ccl/utils/stringx"
)

// DefaultMaxInputLength limits input size to guard against runaway inputs
const DefaultMaxInputLength = 16 * 1024 * 1024

// Options configures parser behavior
type Options struct {
	// Logger for parse diagnostics; defaults to the package default logger
	Logger *ccllog.Logger

	// MaxInputLength is the maximum accepted input size in bytes;
	// zero selects DefaultMaxInputLength
	MaxInputLength int
}

// Parser parses CCL input into an ast.Document.
// A Parser is reusable and safe for concurrent use: every Parse call runs
// on its own lexer and lookahead window, the Parser itself only carries
// the immutable configuration.
type Parser struct {
	logger  *ccllog.Logger
	options Options
}

// parseRun is the per-call parse state: one lexer and the two-token
// lookahead window. Nothing in here outlives the Parse call.
type parseRun struct {
	lexer   *Lexer
	current Token
	peek    Token
}

// ParseError describes a lexical or syntactic parse failure
type ParseError struct {
	Message string        // Human-readable description
	Code    cclerror.Code // Failure code from the parse taxonomy
	Pos     ast.Position  // Position of the offending token
	Token   Token         // The offending token
}

// Error implements the error interface
func (pe *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s (near '%s')",
		pe.Pos.Line, pe.Pos.Column, pe.Message, pe.Token.Value)
}

// Structured converts the parse error into a *cclerror.Error with full
// position details attached
func (pe *ParseError) Structured() *cclerror.Error {
	return cclerror.Wrap(pe, "parse failed").
		WithCode(pe.Code).
		WithOperation("parse").
		WithDetails(map[string]interface{}{
			"line":   pe.Pos.Line,
			"column": pe.Pos.Column,
			"offset": pe.Pos.Offset,
			"near":   cclstringx.Truncate(pe.Token.Value, 32, "..."),
		})
}

// New creates a new parser with the given options
func New(options Options) (*Parser, error) {
	if options.Logger == nil {
		options.Logger = ccllog.GetDefault()
	}
	if options.MaxInputLength <= 0 {
		options.MaxInputLength = DefaultMaxInputLength
	}

	return &Parser{
		logger:  options.Logger.WithName("ccl.parser"),
		options: options,
	}, nil
}

// Parse parses the given input into a document. The first failure aborts
// the parse; on failure the returned error is a *ParseError.
func (p *Parser) Parse(input string) (*ast.Document, error) {
	if len(input) > p.options.MaxInputLength {
		return nil, fmt.Errorf("input length %d exceeds maximum %d",
			len(input), p.options.MaxInputLength)
	}

	p.logger.Debug("parse started", ccllog.Fields{
		"input_length": len(input),
		"input":        cclstringx.Truncate(input, 64, "..."),
	})

	run := &parseRun{lexer: NewLexer(input)}
	// Prime the two-token lookahead window.
	run.advance()
	run.advance()

	doc, err := run.parseDocument()
	if err != nil {
		p.logger.WarnWithErr("parse failed", err)
		return nil, err
	}

	p.logger.Debug("parse completed", ccllog.Fields{
		"root_variables": len(doc.RootVariables),
		"categories":     len(doc.Categories),
	})

	return doc, nil
}

// advance shifts the lookahead window by one token
func (p *parseRun) advance() {
	p.current = p.peek
	p.peek = p.lexer.NextToken()
}

// parseDocument parses the whole document: root variables followed by
// zero or more categories
func (p *parseRun) parseDocument() (*ast.Document, error) {
	doc := &ast.Document{}

	vars, err := p.parseVariableList()
	if err != nil {
		return nil, err
	}
	doc.RootVariables = vars

	for p.current.Type == TokenMinus {
		category, err := p.parseCategory()
		if err != nil {
			return nil, err
		}
		doc.Categories = append(doc.Categories, category)
	}

	if p.current.Type != TokenEOF {
		return nil, p.parseError(cclerror.CodeExpectedStatement, "expected statement")
	}

	return doc, nil
}

// parseVariableList parses assignments until a category delimiter or EOF
func (p *parseRun) parseVariableList() ([]ast.Variable, error) {
	var vars []ast.Variable

	for {
		switch p.current.Type {
		case TokenIdentifier:
			variable, err := p.parseAssignment()
			if err != nil {
				return nil, err
			}
			vars = append(vars, variable)
		case TokenMinus, TokenEOF:
			return vars, nil
		default:
			return nil, p.parseError(cclerror.CodeExpectedStatement, "expected statement")
		}
	}
}

// parseAssignment parses "identifier = value ;"
func (p *parseRun) parseAssignment() (ast.Variable, error) {
	// Clone detaches the name from the input buffer.
	name := strings.Clone(p.current.Value)
	pos := p.current.Start
	p.advance()

	if p.current.Type != TokenEquals {
		return ast.Variable{}, p.parseError(cclerror.CodeExpectedAssign,
			fmt.Sprintf("expected '=' after variable name %q", name))
	}
	p.advance()

	value, err := p.parseValue()
	if err != nil {
		return ast.Variable{}, err
	}

	if p.current.Type != TokenSemicolon {
		return ast.Variable{}, p.parseError(cclerror.CodeExpectedSemicolon,
			"expected ';' after statement")
	}
	p.advance()

	return ast.Variable{Name: name, Value: value, Pos: pos}, nil
}

// parseCategory parses "- identifier - variable-list"
func (p *parseRun) parseCategory() (ast.Category, error) {
	p.advance() // consume opening '-'

	if p.current.Type != TokenIdentifier {
		return ast.Category{}, p.parseError(cclerror.CodeCategoryName,
			"expected category name after '-'")
	}
	name := strings.Clone(p.current.Value)
	pos := p.current.Start
	p.advance()

	if p.current.Type != TokenMinus {
		return ast.Category{}, p.parseError(cclerror.CodeCategoryDelimiter,
			fmt.Sprintf("expected '-' after category name %q", name))
	}
	p.advance()

	vars, err := p.parseVariableList()
	if err != nil {
		return ast.Category{}, err
	}

	return ast.Category{Name: name, Variables: vars, Pos: pos}, nil
}

// parseValue parses a single value of any type
func (p *parseRun) parseValue() (ast.Value, error) {
	pos := p.current.Start

	switch p.current.Type {
	case TokenBoolean:
		value := ast.BooleanValue(p.current.Value == "true", pos)
		p.advance()
		return value, nil

	case TokenInteger:
		i, err := strconv.ParseInt(p.current.Value, p.current.Base, 64)
		if err != nil {
			return ast.Value{}, p.parseError(cclerror.CodeInvalidNumber,
				fmt.Sprintf("invalid integer literal %q", p.current.Value))
		}
		value := ast.IntegerValue(i, pos)
		value.Raw = strings.Clone(p.current.Value)
		p.advance()
		return value, nil

	case TokenFloat:
		f, err := strconv.ParseFloat(p.current.Value, 64)
		if err != nil {
			return ast.Value{}, p.parseError(cclerror.CodeInvalidNumber,
				fmt.Sprintf("invalid float literal %q", p.current.Value))
		}
		value := ast.FloatValue(f, pos)
		value.Raw = strings.Clone(p.current.Value)
		p.advance()
		return value, nil

	case TokenString:
		decoded, perr := p.decodeString(p.current)
		if perr != nil {
			return ast.Value{}, perr
		}
		value := ast.StringValue(decoded, pos)
		value.Raw = strings.Clone(p.current.Value)
		p.advance()
		return value, nil

	case TokenLeftBracket:
		return p.parseArray()

	default:
		return ast.Value{}, p.parseError(cclerror.CodeExpectedValue, "expected value")
	}
}

// parseArray parses "[ value (, value)* ]". Arrays may mix value types and
// nest, but must contain at least one element.
func (p *parseRun) parseArray() (ast.Value, error) {
	pos := p.current.Start
	p.advance() // consume '['

	first, err := p.parseValue()
	if err != nil {
		return ast.Value{}, err
	}
	elements := []ast.Value{first}

	for {
		switch p.current.Type {
		case TokenComma:
			p.advance()
			element, err := p.parseValue()
			if err != nil {
				return ast.Value{}, err
			}
			elements = append(elements, element)
		case TokenRightBracket:
			p.advance()
			return ast.ArrayValue(elements, pos), nil
		default:
			return ast.Value{}, p.parseError(cclerror.CodeArrayDelimiter,
				"expected ',' or ']' in array")
		}
	}
}

// Escape decoder states
const (
	escapeStateNormal = iota
	escapeStateBackslash
	escapeStateUnicode
)

// decodeString resolves escape sequences in a raw string token payload.
// Supported escapes: \\ \t \n \r \" and \uXXXX with exactly four hex
// digits. Anything else after a backslash, or a payload ending inside an
// escape, is a parse failure.
func (p *parseRun) decodeString(tok Token) (string, *ParseError) {
	raw := tok.Value

	var sb strings.Builder
	sb.Grow(len(raw))

	state := escapeStateNormal
	var hexDigits []byte

	for i := 0; i < len(raw); i++ {
		c := raw[i]

		switch state {
		case escapeStateNormal:
			if c == '\\' {
				state = escapeStateBackslash
			} else {
				sb.WriteByte(c)
			}

		case escapeStateBackslash:
			switch c {
			case '\\':
				sb.WriteByte('\\')
				state = escapeStateNormal
			case 't':
				sb.WriteByte('\t')
				state = escapeStateNormal
			case 'n':
				sb.WriteByte('\n')
				state = escapeStateNormal
			case 'r':
				sb.WriteByte('\r')
				state = escapeStateNormal
			case '"':
				sb.WriteByte('"')
				state = escapeStateNormal
			case 'u':
				hexDigits = hexDigits[:0]
				state = escapeStateUnicode
			default:
				return "", &ParseError{
					Message: fmt.Sprintf("invalid escape sequence '\\%c'", c),
					Code:    cclerror.CodeInvalidEscape,
					Pos:     tok.Start,
					Token:   tok,
				}
			}

		case escapeStateUnicode:
			if !isHexDigit(c) {
				return "", &ParseError{
					Message: fmt.Sprintf("invalid hex digit %q in unicode escape", c),
					Code:    cclerror.CodeInvalidUnicodeEscape,
					Pos:     tok.Start,
					Token:   tok,
				}
			}
			hexDigits = append(hexDigits, c)
			if len(hexDigits) == 4 {
				code, err := strconv.ParseUint(string(hexDigits), 16, 32)
				if err != nil {
					return "", &ParseError{
						Message: "invalid unicode escape",
						Code:    cclerror.CodeInvalidUnicodeEscape,
						Pos:     tok.Start,
						Token:   tok,
					}
				}
				sb.WriteRune(rune(code))
				state = escapeStateNormal
			}
		}
	}

	switch state {
	case escapeStateBackslash:
		return "", &ParseError{
			Message: "string ends inside escape sequence",
			Code:    cclerror.CodeInvalidEscape,
			Pos:     tok.Start,
			Token:   tok,
		}
	case escapeStateUnicode:
		return "", &ParseError{
			Message: "string ends inside unicode escape",
			Code:    cclerror.CodeInvalidUnicodeEscape,
			Pos:     tok.Start,
			Token:   tok,
		}
	}

	return sb.String(), nil
}

// parseError builds a ParseError for the current token. An illegal token
// overrides the syntactic code: the lexical failure is the real cause.
func (p *parseRun) parseError(code cclerror.Code, message string) *ParseError {
	if p.current.Type == TokenIllegal {
		return p.lexicalError(p.current)
	}

	return &ParseError{
		Message: message,
		Code:    code,
		Pos:     p.current.Start,
		Token:   p.current,
	}
}

// lexicalError maps an illegal token to its lexical failure code
func (p *parseRun) lexicalError(tok Token) *ParseError {
	var code cclerror.Code
	var message string

	switch tok.Hint {
	case HintHexDigit:
		code = cclerror.CodeInvalidHexLiteral
		message = "hexadecimal literal requires at least one digit"
	case HintOctalDigit:
		code = cclerror.CodeInvalidOctalLiteral
		message = "octal literal requires at least one digit"
	case HintClosingQuote:
		code = cclerror.CodeUnterminatedString
		message = "unterminated string literal"
	default:
		code = cclerror.CodeIllegalCharacter
		message = fmt.Sprintf("illegal character %q", tok.Value)
	}

	return &ParseError{
		Message: message,
		Code:    code,
		Pos:     tok.Start,
		Token:   tok,
	}
}
