// File: ccl.go
// Title: CCL Main Interface and Engine
// Description: Provides the main CCL engine and high-level API for parsing
//              CCL documents from strings, byte slices, and files.
//              Integrates the parser and AST components.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial CCL engine implementation

package ccl

import (
	"os"

	"github.com/msto63/ccl/ast"
	cclerror "github.com/msto63/ccl/core/error"
	ccllog "github.com/msto63/ccl/core/log"
	cclparser "github.com/msto63/ccl/parser"
)

// Engine coordinates parsing of CCL documents with shared configuration.
// An Engine is safe for concurrent use; the package-level functions share
// one default engine and carry the same guarantee.
type Engine struct {
	parser  *cclparser.Parser
	logger  *ccllog.Logger
	options Options
}

// Options configures the CCL engine behavior
type Options struct {
	// Logger for CCL operations (optional, defaults to default logger)
	Logger *ccllog.Logger

	// MaxInputLength limits input size in bytes (default: 16 MiB)
	MaxInputLength int

	// MaxFileSize limits the size of files read by ParseFile in bytes;
	// zero means MaxInputLength applies
	MaxFileSize int64
}

// NewEngine creates a new CCL engine with the specified options
func NewEngine(opts ...Options) (*Engine, error) {
	options := Options{
		Logger:         ccllog.GetDefault(),
		MaxInputLength: cclparser.DefaultMaxInputLength,
	}

	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.MaxInputLength > 0 {
			options.MaxInputLength = provided.MaxInputLength
		}
		if provided.MaxFileSize > 0 {
			options.MaxFileSize = provided.MaxFileSize
		}
	}
	if options.MaxFileSize == 0 {
		options.MaxFileSize = int64(options.MaxInputLength)
	}

	logger := options.Logger.WithField("component", "ccl-engine")

	p, err := cclparser.New(cclparser.Options{
		Logger:         logger,
		MaxInputLength: options.MaxInputLength,
	})
	if err != nil {
		return nil, cclerror.Wrap(err, "failed to initialize CCL parser").
			WithCode(cclerror.CodeInternal).
			WithOperation("ccl.NewEngine")
	}

	return &Engine{
		parser:  p,
		logger:  logger,
		options: options,
	}, nil
}

// Parse parses CCL input into a document
func (e *Engine) Parse(input string) (*ast.Document, error) {
	return e.parser.Parse(input)
}

// ParseBytes parses CCL input from a byte slice
func (e *Engine) ParseBytes(input []byte) (*ast.Document, error) {
	return e.parser.Parse(string(input))
}

// ParseFile reads and parses a CCL file
func (e *Engine) ParseFile(path string) (*ast.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, cclerror.Wrap(err, "failed to stat CCL file").
			WithCode(cclerror.CodeIOError).
			WithOperation("ccl.ParseFile").
			WithDetail("path", path)
	}
	if info.Size() > e.options.MaxFileSize {
		return nil, cclerror.New("CCL file exceeds maximum size").
			WithCode(cclerror.CodeInvalidInput).
			WithOperation("ccl.ParseFile").
			WithDetail("path", path).
			WithDetail("size", info.Size()).
			WithDetail("max_size", e.options.MaxFileSize)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, cclerror.Wrap(err, "failed to read CCL file").
			WithCode(cclerror.CodeIOError).
			WithOperation("ccl.ParseFile").
			WithDetail("path", path)
	}

	doc, err := e.parser.Parse(string(content))
	if err != nil {
		e.logger.WarnWithErr("file parse failed", err, ccllog.Fields{
			"path": path,
		})
		return nil, err
	}

	e.logger.Debug("file parsed", ccllog.Fields{
		"path":           path,
		"root_variables": len(doc.RootVariables),
		"categories":     len(doc.Categories),
	})

	return doc, nil
}

// Validate checks whether the input is a syntactically valid CCL document
func (e *Engine) Validate(input string) error {
	_, err := e.Parse(input)
	return err
}

// Default engine used by the package-level functions
var defaultEngine = mustDefaultEngine()

func mustDefaultEngine() *Engine {
	engine, err := NewEngine()
	if err != nil {
		panic(err)
	}
	return engine
}

// Parse parses CCL input using the default engine
func Parse(input string) (*ast.Document, error) {
	return defaultEngine.Parse(input)
}

// ParseBytes parses CCL input from a byte slice using the default engine
func ParseBytes(input []byte) (*ast.Document, error) {
	return defaultEngine.ParseBytes(input)
}

// ParseFile reads and parses a CCL file using the default engine
func ParseFile(path string) (*ast.Document, error) {
	return defaultEngine.ParseFile(path)
}

// Validate checks input validity using the default engine
func Validate(input string) error {
	return defaultEngine.Validate(input)
}
