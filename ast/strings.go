package ast

import "strings"

// QuoteKind records how a string argument was written in the source. The
// formatter reproduces it unchanged; re-quoting could alter semantics since
// escape rules differ between single- and double-quoted YANG strings
// (RFC 7950 §6.1.3).
type QuoteKind int

const (
	// QuoteNone marks an unquoted argument (identifiers, numbers, dates,
	// keypaths and so on).
	QuoteNone QuoteKind = iota
	QuoteSingle
	QuoteDouble
)

// Rune returns the quote character, or 0 for unquoted values.
func (q QuoteKind) Rune() byte {
	switch q {
	case QuoteSingle:
		return '\''
	case QuoteDouble:
		return '"'
	}
	return 0
}

// StringSegment is one piece of a statement argument. Content holds the raw
// source bytes between the quotes (or the whole token for unquoted values);
// escape sequences are not processed, so the segment can be re-emitted
// byte-for-byte.
type StringSegment struct {
	Content string
	Quote   QuoteKind

	// Multiline is true when the segment spanned more than one source line.
	Multiline bool
}

// StringValue is a statement argument: a single segment, or several joined
// by the "+" concatenation operator. Segment order is preserved verbatim
// and segments are never merged.
type StringValue struct {
	Segments []StringSegment
}

// Single returns the sole segment if the value is not a concatenation.
func (v *StringValue) Single() (StringSegment, bool) {
	if len(v.Segments) == 1 {
		return v.Segments[0], true
	}
	return StringSegment{}, false
}

// IsConcatenation reports whether the value joins two or more segments.
func (v *StringValue) IsConcatenation() bool {
	return len(v.Segments) > 1
}

// Text returns the logical argument text with quotes and concatenation
// removed. Only useful for diagnostics; the formatter works from segments.
func (v *StringValue) Text() string {
	if len(v.Segments) == 1 {
		return v.Segments[0].Content
	}

	var buf strings.Builder
	for _, seg := range v.Segments {
		buf.WriteString(seg.Content)
	}
	return buf.String()
}
