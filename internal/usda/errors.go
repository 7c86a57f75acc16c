package usda

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for layer parsing.
var (
	// ErrNotUSDA indicates the file does not start with a #usda header.
	ErrNotUSDA = errors.New("missing #usda header")

	// ErrUnsupportedFormat indicates a binary crate (.usdc) or package (.usdz) file.
	ErrUnsupportedFormat = errors.New("unsupported USD format")

	// ErrSyntax indicates malformed text-format content.
	ErrSyntax = errors.New("syntax error")
)

// ParseError represents an error that occurred while parsing a layer file.
type ParseError struct {
	Path string
	Line int
	Col  int
	Err  error
}

func (e *ParseError) Error() string {
	loc := e.Path
	if loc == "" {
		loc = "<input>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("parsing layer %s:%d:%d: %v", loc, e.Line, e.Col, e.Err)
	}
	return fmt.Sprintf("parsing layer %s: %v", loc, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
