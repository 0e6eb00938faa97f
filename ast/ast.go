// Package ast defines the concrete syntax tree for YANG modules.
//
// Unlike an abstract syntax tree, the CST keeps every detail needed to
// re-emit the source losslessly: comments, the quote character each string
// was written with, whether a string spanned multiple lines, and string
// concatenations as ordered segments. The tree is built once by the parser
// and never mutated afterwards; the formatter only reads it.
package ast

// Node is any element that can appear in a statement body: a nested
// statement or a comment occupying its own line(s).
type Node interface {
	Position() Position

	// BlankLinesBefore reports how many blank source lines directly
	// preceded this node. The formatter caps this when rendering.
	BlankLinesBefore() int
}

// Module is the root of the CST: the top-level node list of one source
// file. YANG allows exactly one module or submodule statement per file, but
// comments may appear before and after it, so the root is a list.
type Module struct {
	Children []Node
}

// Statement returns the module or submodule statement, or nil if the file
// contained only comments.
func (m *Module) Statement() *Statement {
	for _, node := range m.Children {
		if stmt, ok := node.(*Statement); ok {
			return stmt
		}
	}
	return nil
}

// Statement is the fundamental YANG syntactic unit:
//
//	prefix:keyword argument { substatements }
//	prefix:keyword argument;
//
// Prefix is empty for core-language statements and holds the module prefix
// for extension statements (e.g. "tailf" in tailf:info).
type Statement struct {
	Pos     Position
	Prefix  string
	Keyword string

	// Arg is nil when the statement has no argument (e.g. "input {").
	Arg *StringValue

	// HasBlock distinguishes "foo;" (false) from "foo {}" (true). Children
	// may be empty in both cases.
	HasBlock bool
	Children []Node

	// Trailing holds comments emitted after the statement terminator on the
	// same output line: comments that appeared between the keyword, the
	// argument and the terminator, and comments on the same source line
	// after the terminator.
	Trailing []*Comment

	BlankBefore int
}

var _ Node = (*Statement)(nil)

func (s *Statement) Position() Position    { return s.Pos }
func (s *Statement) BlankLinesBefore() int { return s.BlankBefore }

// Name returns the full statement keyword, including the prefix if any.
func (s *Statement) Name() string {
	if s.Prefix != "" {
		return s.Prefix + ":" + s.Keyword
	}
	return s.Keyword
}

// CommentKind distinguishes the two YANG comment forms.
type CommentKind int

const (
	// LineComment is a "// ..." comment running to the end of the line.
	LineComment CommentKind = iota
	// BlockComment is a "/* ... */" comment, possibly spanning lines.
	BlockComment
)

func (k CommentKind) String() string {
	if k == BlockComment {
		return "block"
	}
	return "line"
}

// Comment is a comment occupying its own line(s), kept as a first-class
// sibling of statements so its position relative to them survives
// formatting. Text includes the comment markers.
type Comment struct {
	Pos  Position
	Text string
	Kind CommentKind

	BlankBefore int
}

var _ Node = (*Comment)(nil)

func (c *Comment) Position() Position    { return c.Pos }
func (c *Comment) BlankLinesBefore() int { return c.BlankBefore }
