// Package parser turns YANG source text into the lossless syntax tree
// defined by the ast package.
//
// The grammar is the RFC 7950 statement grammar, nothing more: every
// YANG construct is "keyword [argument] (; | { substatements })", so a
// single recursive descent over the token stream covers the whole
// language. The parser keeps comments and blank-line counts because the
// formatter must reproduce them.
package parser

import (
	"github.com/hubro/yangfmt/ast"
)

// Parser builds a CST from the token stream produced by the Lexer.
type Parser struct {
	source   []byte
	filename string
	tokens   []Token
	pos      int

	// lastLine is the end line of the most recently consumed token,
	// used to derive blank-line counts.
	lastLine int
}

// New creates a parser over an already-scanned token stream. The stream
// must end with an EOF token, as produced by Lexer.ScanAll.
func New(source []byte, filename string, tokens []Token) *Parser {
	return &Parser{
		source:   source,
		filename: filename,
		tokens:   tokens,
	}
}

// Parse lexes and parses source in one call.
func Parse(source []byte, filename string) (*ast.Module, error) {
	tokens, err := NewLexer(source, filename).ScanAll()
	if err != nil {
		return nil, err
	}
	return New(source, filename, tokens).Parse()
}

// Parse consumes the whole token stream and returns the module tree.
// Any structural problem aborts with a ParseError; there is no partial
// result.
func (p *Parser) Parse() (*ast.Module, error) {
	children, err := p.parseNodes(0)
	if err != nil {
		return nil, err
	}
	return &ast.Module{Children: children}, nil
}

// parseNodes parses a run of statements and comments: the file body at
// depth 0, a { } block body otherwise. It stops before the closing
// brace, which the caller consumes.
func (p *Parser) parseNodes(depth int) ([]ast.Node, error) {
	var nodes []ast.Node

	for {
		tok := p.peek()
		switch tok.Type {
		case EOF:
			if depth > 0 {
				return nil, p.unexpected(`"}"`, tok)
			}
			return nodes, nil

		case RBRACE:
			if depth == 0 {
				return nil, &ParseError{
					Pos:     p.tokenPosition(tok),
					Message: `unmatched "}"`,
				}
			}
			return nodes, nil

		case LINE_COMMENT, BLOCK_COMMENT:
			blank := p.blankBefore(tok)
			nodes = append(nodes, p.newComment(p.advance(), blank))

		case KEYWORD:
			stmt, err := p.parseStatement(depth)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, stmt)

		default:
			return nil, p.unexpected("statement keyword", tok)
		}
	}
}

// parseStatement parses one statement: keyword, optional argument, then
// either ";" or a braced block of substatements.
func (p *Parser) parseStatement(depth int) (*ast.Statement, error) {
	kwTok := p.peek()
	blank := p.blankBefore(kwTok)
	p.advance()

	prefix, keyword := splitKeyword(kwTok.String(p.source))
	stmt := &ast.Statement{
		Pos:         p.tokenPosition(kwTok),
		Prefix:      prefix,
		Keyword:     keyword,
		BlankBefore: blank,
	}

	// Comments between the keyword and its argument have no slot of
	// their own; they ride along as trailing comments.
	for p.atComment() {
		stmt.Trailing = append(stmt.Trailing, p.newComment(p.advance(), 0))
	}

	if tok := p.peek(); tok.Type == STRING || tok.Type == UNQUOTED || tok.Type == KEYWORD {
		arg, err := p.parseArgument(stmt)
		if err != nil {
			return nil, err
		}
		stmt.Arg = arg
	}

	term := p.peek()
	switch term.Type {
	case SEMICOLON:
		p.advance()
		p.absorbTrailing(stmt, p.lastLine)

	case LBRACE:
		p.advance()
		stmt.HasBlock = true
		p.absorbTrailing(stmt, term.Line)

		children, err := p.parseNodes(depth + 1)
		if err != nil {
			return nil, err
		}
		stmt.Children = children
		p.advance() // closing brace, guaranteed by parseNodes

	default:
		return nil, p.unexpected(`";" or "{"`, term)
	}

	return stmt, nil
}

// parseArgument parses a statement argument: one value, or several
// quoted strings joined by "+". Comments found between the argument and
// the terminator become trailing comments of stmt, but comments inside
// a concatenation have no place in the tree and are rejected.
func (p *Parser) parseArgument(stmt *ast.Statement) (*ast.StringValue, error) {
	segs := []ast.StringSegment{p.segment(p.advance())}

	for {
		var pending []*ast.Comment
		for p.atComment() {
			pending = append(pending, p.newComment(p.advance(), 0))
		}

		if p.peek().Type != PLUS {
			stmt.Trailing = append(stmt.Trailing, pending...)
			return &ast.StringValue{Segments: segs}, nil
		}

		plus := p.advance()
		if len(pending) > 0 {
			return nil, &ParseError{
				Pos:     p.tokenPosition(plus),
				Message: "comments are not supported inside string concatenations",
			}
		}
		if segs[len(segs)-1].Quote == ast.QuoteNone {
			return nil, &ParseError{
				Pos:     p.tokenPosition(plus),
				Message: "only quoted strings can be concatenated",
			}
		}
		if p.atComment() {
			return nil, &ParseError{
				Pos:     p.tokenPosition(p.peek()),
				Message: "comments are not supported inside string concatenations",
			}
		}

		next := p.peek()
		if next.Type != STRING {
			return nil, p.unexpected(`quoted string after "+"`, next)
		}
		segs = append(segs, p.segment(p.advance()))
	}
}

// absorbTrailing collects comments that sit on the same line as the
// statement's terminator.
func (p *Parser) absorbTrailing(stmt *ast.Statement, line int) {
	for p.atComment() && p.peek().Line == line {
		stmt.Trailing = append(stmt.Trailing, p.newComment(p.advance(), 0))
	}
}

// segment converts a value token into a string segment. Quoted content
// is stored raw, without the quotes and with no escape processing, so
// it can be re-emitted byte for byte.
func (p *Parser) segment(tok Token) ast.StringSegment {
	if tok.Type != STRING {
		return ast.StringSegment{Content: tok.String(p.source), Quote: ast.QuoteNone}
	}

	text := tok.Bytes(p.source)
	quote := ast.QuoteDouble
	if text[0] == '\'' {
		quote = ast.QuoteSingle
	}
	return ast.StringSegment{
		Content:   string(text[1 : len(text)-1]),
		Quote:     quote,
		Multiline: tok.EndLine > tok.Line,
	}
}
