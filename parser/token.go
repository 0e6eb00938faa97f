package parser

// TokenType represents the type of token scanned from the input.
type TokenType uint8

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// KEYWORD is an identifier-shaped word, optionally with a module
	// prefix: "leaf", "container", "tailf:info". Statement keywords and
	// identifier arguments both lex as KEYWORD; the parser decides which
	// role a token plays from its position.
	KEYWORD

	// Literals
	STRING   // "..." or '...', possibly spanning lines
	UNQUOTED // any other run of non-delimiter bytes: 1..64, current(), *

	// Symbols
	PLUS      // + (string concatenation)
	LBRACE    // {
	RBRACE    // }
	SEMICOLON // ;

	// Comments are tokens, not trivia: the parser places them in the tree.
	LINE_COMMENT  // // ...
	BLOCK_COMMENT // /* ... */
)

var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	KEYWORD:  "KEYWORD",
	STRING:   "STRING",
	UNQUOTED: "UNQUOTED",

	PLUS:      "+",
	LBRACE:    "{",
	RBRACE:    "}",
	SEMICOLON: ";",

	LINE_COMMENT:  "LINE_COMMENT",
	BLOCK_COMMENT: "BLOCK_COMMENT",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token represents a lexical token with zero-copy semantics.
// Instead of storing the token text as a string (which would allocate),
// we store byte offsets into the original source buffer.
type Token struct {
	Type   TokenType
	Start  int // Byte offset into source buffer
	End    int // End offset (exclusive)
	Line   int // Line number (1-indexed)
	Column int // Column number (1-indexed)

	// EndLine is the line the token ends on. Strings and block comments
	// may span lines; for everything else EndLine == Line. The parser
	// derives blank-line counts from the gap between a token's Line and
	// the previous token's EndLine.
	EndLine int
}

// String materializes the token text from the source buffer.
// This allocation only happens when the token text is actually needed,
// not during lexing (zero-copy).
func (t Token) String(source []byte) string {
	if t.Start >= len(source) || t.End > len(source) || t.Start > t.End {
		return ""
	}
	return string(source[t.Start:t.End])
}

// Bytes returns a zero-copy view of the token text.
// No allocation occurs - this is a slice into the source buffer.
func (t Token) Bytes(source []byte) []byte {
	if t.Start >= len(source) || t.End > len(source) || t.Start > t.End {
		return nil
	}
	return source[t.Start:t.End]
}

// Len returns the length of the token in bytes.
func (t Token) Len() int {
	return t.End - t.Start
}

func (t Token) isComment() bool {
	return t.Type == LINE_COMMENT || t.Type == BLOCK_COMMENT
}
