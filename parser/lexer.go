package parser

// Lexer implements a zero-copy lexer for YANG files.
//
// The zero-copy approach:
// - Tokens store byte offsets, not string values
// - No intermediate token format conversions
// - Pre-allocated token buffer
//
// Comments are real tokens here, not skipped trivia: the parser needs
// them to rebuild the file with comments in place.

import (
	"github.com/hubro/yangfmt/ast"
)

// Lexer tokenizes YANG source code.
type Lexer struct {
	source   []byte  // Source buffer
	filename string  // Filename for error reporting
	pos      int     // Current byte position
	line     int     // Current line (1-indexed)
	column   int     // Current column (1-indexed)
	tokens   []Token // Token buffer (pre-allocated)
}

// NewLexer creates a new lexer for the given source.
func NewLexer(source []byte, filename string) *Lexer {
	// Estimate token count: empirically ~1 token per 15 bytes of YANG.
	// This pre-allocation eliminates many slice growth operations.
	estimatedTokens := len(source)/15 + 256

	return &Lexer{
		source:   source,
		filename: filename,
		line:     1,
		column:   1,
		tokens:   make([]Token, 0, estimatedTokens),
	}
}

// ScanAll lexes the entire source file and returns all tokens, EOF
// included. This is a single-pass scanner with no backtracking. An
// unterminated string or block comment aborts the scan with a LexError.
func (l *Lexer) ScanAll() ([]Token, error) {
	for l.pos < len(l.source) {
		l.skipWhitespace()

		if l.pos >= len(l.source) {
			break
		}

		tok, err := l.scanToken()
		if err != nil {
			return nil, err
		}
		l.tokens = append(l.tokens, tok)
	}

	// Add EOF token
	l.tokens = append(l.tokens, Token{
		Type:    EOF,
		Start:   l.pos,
		End:     l.pos,
		Line:    l.line,
		Column:  l.column,
		EndLine: l.line,
	})

	return l.tokens, nil
}

// scanToken scans the next token from the current position.
func (l *Lexer) scanToken() (Token, error) {
	start := l.pos
	startLine := l.line
	startCol := l.column

	ch := l.peek()

	switch {
	// Strings: "..." or '...'
	case ch == '"' || ch == '\'':
		return l.scanString(start, startLine, startCol)

	// Comments: // ... or /* ... */
	case ch == '/' && l.peekAt(1) == '/':
		return l.scanLineComment(start, startLine, startCol), nil
	case ch == '/' && l.peekAt(1) == '*':
		return l.scanBlockComment(start, startLine, startCol)

	// Single-character tokens
	case ch == ';':
		l.advance()
		return l.symbol(SEMICOLON, start, startLine, startCol), nil
	case ch == '{':
		l.advance()
		return l.symbol(LBRACE, start, startLine, startCol), nil
	case ch == '}':
		l.advance()
		return l.symbol(RBRACE, start, startLine, startCol), nil

	// A lone + is the concatenation operator. A + glued to more text
	// ("+5") is just part of an unquoted value.
	case ch == '+' && l.atWordBoundary(1):
		l.advance()
		return l.symbol(PLUS, start, startLine, startCol), nil

	default:
		return l.scanWord(start, startLine, startCol), nil
	}
}

func (l *Lexer) symbol(typ TokenType, start, line, col int) Token {
	return Token{typ, start, l.pos, line, col, line}
}

// scanString scans a quoted string. Double-quoted strings honor
// backslash escapes when looking for the terminator; single-quoted
// strings have no escape mechanism at all (RFC 7950 section 6.1.3).
// Either kind may span multiple lines.
func (l *Lexer) scanString(start, line, col int) (Token, error) {
	quote := l.advance() // consume opening quote

	for l.pos < len(l.source) {
		ch := l.source[l.pos]
		if ch == quote {
			l.advance() // consume closing quote
			return Token{STRING, start, l.pos, line, col, l.line}, nil
		}
		if ch == '\\' && quote == '"' && l.pos+1 < len(l.source) {
			l.advance() // skip backslash
			l.advance() // skip escaped char
		} else {
			l.advance()
		}
	}

	return Token{}, &LexError{
		Pos:     l.position(start, line, col),
		Message: "unterminated string",
	}
}

// scanLineComment scans // to the end of the line, newline excluded.
func (l *Lexer) scanLineComment(start, line, col int) Token {
	for l.pos < len(l.source) && l.source[l.pos] != '\n' {
		l.advance()
	}
	return Token{LINE_COMMENT, start, l.pos, line, col, line}
}

// scanBlockComment scans /* ... */ including the closing marker.
func (l *Lexer) scanBlockComment(start, line, col int) (Token, error) {
	l.advance() // consume /
	l.advance() // consume *

	for l.pos < len(l.source) {
		if l.source[l.pos] == '*' && l.peekAt(1) == '/' {
			l.advance()
			l.advance()
			return Token{BLOCK_COMMENT, start, l.pos, line, col, l.line}, nil
		}
		l.advance()
	}

	return Token{}, &LexError{
		Pos:     l.position(start, line, col),
		Message: "unterminated block comment",
	}
}

// scanWord scans an unquoted run: everything up to whitespace, a
// structural character, a quote, or the start of a comment. The run is
// classified as KEYWORD when it has identifier shape (optionally
// prefixed), UNQUOTED otherwise.
func (l *Lexer) scanWord(start, line, col int) Token {
	for l.pos < len(l.source) {
		ch := l.source[l.pos]
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			break
		}
		if ch == ';' || ch == '{' || ch == '}' || ch == '"' || ch == '\'' {
			break
		}
		if ch == '/' && (l.peekAt(1) == '/' || l.peekAt(1) == '*') {
			break
		}
		l.advance()
	}

	typ := UNQUOTED
	if isKeyword(l.source[start:l.pos]) {
		typ = KEYWORD
	}
	return Token{typ, start, l.pos, line, col, line}
}

// isKeyword reports whether word is an identifier or prefix:identifier
// per RFC 7950 section 6.2: [A-Za-z_][A-Za-z0-9._-]* on both sides of
// the optional colon.
func isKeyword(word []byte) bool {
	rest, ok := scanIdentifier(word)
	if !ok {
		return false
	}
	if len(rest) == 0 {
		return true
	}
	if rest[0] != ':' {
		return false
	}
	rest, ok = scanIdentifier(rest[1:])
	return ok && len(rest) == 0
}

func scanIdentifier(word []byte) ([]byte, bool) {
	if len(word) == 0 {
		return nil, false
	}
	ch := word[0]
	if !(ch >= 'A' && ch <= 'Z' || ch >= 'a' && ch <= 'z' || ch == '_') {
		return nil, false
	}
	i := 1
	for i < len(word) {
		ch = word[i]
		if ch >= 'A' && ch <= 'Z' || ch >= 'a' && ch <= 'z' ||
			ch >= '0' && ch <= '9' || ch == '.' || ch == '_' || ch == '-' {
			i++
			continue
		}
		break
	}
	return word[i:], true
}

// skipWhitespace skips whitespace and updates line/column tracking.
func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.source) {
		ch := l.source[l.pos]
		if ch != ' ' && ch != '\t' && ch != '\n' && ch != '\r' {
			break
		}
		if ch == '\n' {
			l.line++
			l.column = 1
			l.pos++
		} else {
			l.column++
			l.pos++
		}
	}
}

// Helper methods

func (l *Lexer) peek() byte {
	if l.pos >= len(l.source) {
		return 0
	}
	return l.source[l.pos]
}

func (l *Lexer) peekAt(offset int) byte {
	if l.pos+offset >= len(l.source) {
		return 0
	}
	return l.source[l.pos+offset]
}

// atWordBoundary reports whether the byte at the given offset ends a
// word: whitespace, a structural character, a quote, or end of input.
func (l *Lexer) atWordBoundary(offset int) bool {
	if l.pos+offset >= len(l.source) {
		return true
	}
	switch l.source[l.pos+offset] {
	case ' ', '\t', '\r', '\n', ';', '{', '}', '"', '\'':
		return true
	}
	return false
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.source) {
		return 0
	}
	ch := l.source[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) position(offset, line, col int) ast.Position {
	return ast.Position{
		Filename: l.filename,
		Offset:   offset,
		Line:     line,
		Column:   col,
	}
}
