// Package formatter renders a YANG syntax tree back to canonical text.
//
// Formatting is all-or-nothing: the parser either produced a complete
// tree or an error, so the formatter never sees partial input and never
// emits partial output. Running the output through parse+format again
// yields the same bytes (formatting is idempotent).
package formatter

import (
	"io"
	"strings"

	"github.com/hubro/yangfmt/ast"
)

const (
	// DefaultIndentWidth is the number of spaces per nesting level.
	DefaultIndentWidth = 2

	// DefaultMaxBlankLines caps consecutive blank lines in the output.
	DefaultMaxBlankLines = 1

	// DefaultLineLength is the target line length. Arguments that would
	// overflow it move to their own line one level deeper.
	DefaultLineLength = 79
)

// Formatter renders CST nodes with depth-based indentation.
type Formatter struct {
	// IndentWidth is the number of spaces per nesting level.
	IndentWidth int

	// MaxBlankLines is the maximum run of blank lines kept between
	// sibling nodes. Blank lines never survive at the start or end of
	// a block.
	MaxBlankLines int

	// LineLength is the column budget for single-line arguments.
	// 0 disables line-length handling.
	LineLength int
}

// Option is a functional option for configuring a Formatter.
type Option func(*Formatter)

// WithIndentWidth sets the number of spaces per nesting level.
func WithIndentWidth(width int) Option {
	return func(f *Formatter) {
		f.IndentWidth = width
	}
}

// WithMaxBlankLines sets the maximum run of consecutive blank lines.
func WithMaxBlankLines(n int) Option {
	return func(f *Formatter) {
		f.MaxBlankLines = n
	}
}

// WithLineLength sets the column budget for single-line arguments.
// Pass 0 to disable line-length handling.
func WithLineLength(n int) Option {
	return func(f *Formatter) {
		f.LineLength = n
	}
}

// New creates a new Formatter with the given options.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		IndentWidth:   DefaultIndentWidth,
		MaxBlankLines: DefaultMaxBlankLines,
		LineLength:    DefaultLineLength,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Format renders the module tree and writes the output to the writer.
// The output always ends with exactly one newline.
func (f *Formatter) Format(module *ast.Module, w io.Writer) error {
	// Use a string builder to buffer all output, then write once
	var buf strings.Builder
	buf.Grow(4096)

	f.renderNodes(&buf, module.Children, 0)

	out := buf.String()
	if out == "" {
		out = "\n"
	}

	_, err := io.WriteString(w, out)
	return err
}

// renderNodes renders a run of sibling nodes: the file body at depth 0,
// a block body otherwise. Blank runs are capped at MaxBlankLines and
// dropped entirely before the first sibling; nothing is emitted after
// the last sibling, so blocks never end with a blank line either.
func (f *Formatter) renderNodes(buf *strings.Builder, nodes []ast.Node, depth int) {
	for i, node := range nodes {
		if i > 0 {
			for n := min(node.BlankLinesBefore(), f.MaxBlankLines); n > 0; n-- {
				buf.WriteByte('\n')
			}
		}

		switch n := node.(type) {
		case *ast.Comment:
			f.renderComment(buf, n, depth)
		case *ast.Statement:
			f.renderStatement(buf, n, depth)
		}
	}
}

// renderComment renders an own-line comment. The first line is indented
// to the current depth; the interior lines of a block comment are
// reproduced verbatim, their hand alignment is not ours to fix.
func (f *Formatter) renderComment(buf *strings.Builder, c *ast.Comment, depth int) {
	f.writeIndent(buf, depth)

	first, rest, multiline := strings.Cut(c.Text, "\n")
	buf.WriteString(first)
	if multiline {
		buf.WriteByte('\n')
		buf.WriteString(rest)
	}
	buf.WriteByte('\n')
}

// renderStatement renders one statement: keyword, argument, then either
// ";" or a braced block of children.
func (f *Formatter) renderStatement(buf *strings.Builder, s *ast.Statement, depth int) {
	f.writeIndent(buf, depth)
	buf.WriteString(s.Name())

	if s.Arg != nil {
		f.renderArgument(buf, s, depth)
	}

	if s.HasBlock {
		buf.WriteString(" {")
		f.renderTrailing(buf, s.Trailing)
		buf.WriteByte('\n')

		f.renderNodes(buf, s.Children, depth+1)

		f.writeIndent(buf, depth)
		buf.WriteByte('}')
	} else {
		buf.WriteByte(';')
		f.renderTrailing(buf, s.Trailing)
	}
	buf.WriteByte('\n')
}

// renderArgument renders the statement argument after the keyword. The
// terminator is written by the caller, directly after the last segment.
func (f *Formatter) renderArgument(buf *strings.Builder, s *ast.Statement, depth int) {
	name := s.Name()

	if s.Arg.IsConcatenation() {
		f.renderConcatenation(buf, s.Arg.Segments, name, depth)
		return
	}

	seg := s.Arg.Segments[0]
	if seg.Quote == ast.QuoteNone {
		f.renderSimpleValue(buf, seg.Content, depth, len(name))
		return
	}

	content := trimLiteral(seg.Content)
	quoted := quoteSegment(ast.StringSegment{Content: content, Quote: seg.Quote})

	if strings.Contains(content, "\n") {
		// A multi-line string starts on its own line one level deeper;
		// its interior lines are emitted byte for byte.
		buf.WriteByte('\n')
		f.writeIndent(buf, depth+1)
		buf.WriteString(quoted)
		return
	}

	f.renderSimpleValue(buf, quoted, depth, len(name))
}

// renderSimpleValue writes a single-line argument. When the line would
// overflow the length budget the value moves to its own line one level
// deeper instead, leaving room for the terminator.
func (f *Formatter) renderSimpleValue(buf *strings.Builder, value string, depth, nameWidth int) {
	used := depth*f.IndentWidth + nameWidth
	if f.LineLength > 0 && used+1+len(value)+1 > f.LineLength {
		buf.WriteByte('\n')
		f.writeIndent(buf, depth+1)
		buf.WriteString(value)
		return
	}
	buf.WriteByte(' ')
	buf.WriteString(value)
}

// renderConcatenation writes a "+" concatenation: the first segment on
// the keyword line, each further segment on a continuation line padded
// so its opening quote lines up under the first segment's quote.
func (f *Formatter) renderConcatenation(buf *strings.Builder, segs []ast.StringSegment, name string, depth int) {
	buf.WriteByte(' ')
	buf.WriteString(quoteSegment(segs[0]))

	pad := len(name) - 2
	if pad < 0 {
		pad = 0
	}

	for _, seg := range segs[1:] {
		buf.WriteByte('\n')
		f.writeIndent(buf, depth)
		for i := 0; i < pad; i++ {
			buf.WriteByte(' ')
		}
		buf.WriteString(" + ")
		buf.WriteString(quoteSegment(seg))
	}
}

// renderTrailing writes comments that follow the statement terminator,
// each preceded by a single space.
func (f *Formatter) renderTrailing(buf *strings.Builder, comments []*ast.Comment) {
	for _, c := range comments {
		buf.WriteByte(' ')
		buf.WriteString(c.Text)
	}
}

func (f *Formatter) writeIndent(buf *strings.Builder, depth int) {
	for i := depth * f.IndentWidth; i > 0; i-- {
		buf.WriteByte(' ')
	}
}

// quoteSegment reproduces a segment with its original quote character.
// Re-quoting is never attempted: escape rules differ between the two
// quote kinds, so changing the quote could change the value.
func quoteSegment(seg ast.StringSegment) string {
	q := seg.Quote.Rune()
	if q == 0 {
		return seg.Content
	}
	return string(q) + seg.Content + string(q)
}

// trimLiteral drops leading and trailing whitespace, newlines included,
// from quoted string content. Interior bytes are untouched.
func trimLiteral(s string) string {
	return strings.Trim(s, " \t\r\n")
}
