package parser

import (
	"fmt"

	"github.com/hubro/yangfmt/ast"
)

// LexError reports a malformed token, such as an unterminated string or
// block comment. The position points at the start of the offending token.
type LexError struct {
	Pos     ast.Position
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// GetPosition returns the position where the error occurred.
func (e *LexError) GetPosition() ast.Position {
	return e.Pos
}

// ParseError reports a structural error: a missing terminator, an
// unbalanced brace, a stray token. Expected and Found are human-readable
// descriptions; either may be empty when Message says it all.
type ParseError struct {
	Pos      ast.Position
	Message  string
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("%s: expected %s, found %s", e.Pos, e.Expected, e.Found)
	}
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// GetPosition returns the position where the error occurred.
func (e *ParseError) GetPosition() ast.Position {
	return e.Pos
}
