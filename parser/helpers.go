package parser

import (
	"fmt"
	"strings"

	"github.com/hubro/yangfmt/ast"
)

// Navigation and construction helpers shared by the grammar methods.

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	return p.tokens[p.pos]
}

// advance consumes the current token and returns it. The EOF token is
// never consumed, so peek stays valid at end of input.
func (p *Parser) advance() Token {
	tok := p.tokens[p.pos]
	if tok.Type != EOF {
		p.pos++
	}
	p.lastLine = tok.EndLine
	return tok
}

// atComment reports whether the current token is a comment.
func (p *Parser) atComment() bool {
	return p.peek().isComment()
}

// blankBefore computes how many blank lines separate tok from the last
// consumed token. Call before consuming tok.
func (p *Parser) blankBefore(tok Token) int {
	gap := tok.Line - p.lastLine - 1
	if gap < 0 {
		return 0
	}
	return gap
}

// tokenPosition converts a token's location to an ast.Position.
func (p *Parser) tokenPosition(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Start,
		Line:     tok.Line,
		Column:   tok.Column,
	}
}

// unexpected builds a ParseError describing a token that does not fit
// the grammar at this point.
func (p *Parser) unexpected(expected string, tok Token) *ParseError {
	return &ParseError{
		Pos:      p.tokenPosition(tok),
		Expected: expected,
		Found:    describeToken(tok, p.source),
	}
}

// describeToken renders a token for error messages.
func describeToken(tok Token, source []byte) string {
	if tok.Type == EOF {
		return "end of file"
	}
	text := tok.String(source)
	if len(text) > 20 {
		text = text[:20] + "..."
	}
	return fmt.Sprintf("%q", text)
}

// splitKeyword splits "prefix:keyword" into its parts. Core-language
// keywords have no prefix.
func splitKeyword(name string) (prefix, keyword string) {
	if before, after, ok := strings.Cut(name, ":"); ok {
		return before, after
	}
	return "", name
}

// commentText normalizes raw comment text: trailing whitespace of each
// line is dropped (it is invisible and only causes diff churn), interior
// bytes stay untouched.
func commentText(raw string) string {
	if !strings.ContainsAny(raw, " \t\r") {
		return raw
	}
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.Join(lines, "\n")
}

// newComment builds a Comment node from a comment token.
func (p *Parser) newComment(tok Token, blankBefore int) *ast.Comment {
	kind := ast.LineComment
	if tok.Type == BLOCK_COMMENT {
		kind = ast.BlockComment
	}
	return &ast.Comment{
		Pos:         p.tokenPosition(tok),
		Text:        commentText(tok.String(p.source)),
		Kind:        kind,
		BlankBefore: blankBefore,
	}
}
