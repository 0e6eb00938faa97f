package parser

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/hubro/yangfmt/ast"
)

func parse(t *testing.T, input string) *ast.Module {
	t.Helper()
	module, err := Parse([]byte(input), "test.yang")
	assert.NoError(t, err)
	return module
}

func parseErr(t *testing.T, input string) *ParseError {
	t.Helper()
	_, err := Parse([]byte(input), "test.yang")
	assert.Error(t, err)
	parseErr, ok := err.(*ParseError)
	assert.True(t, ok, "expected *ParseError, got %T (%v)", err, err)
	return parseErr
}

func TestParseLeafStatement(t *testing.T) {
	module := parse(t, "leaf x;")

	assert.Equal(t, 1, len(module.Children))
	stmt, ok := module.Children[0].(*ast.Statement)
	assert.True(t, ok)
	assert.Equal(t, "leaf", stmt.Keyword)
	assert.Equal(t, "", stmt.Prefix)
	assert.False(t, stmt.HasBlock)

	seg, single := stmt.Arg.Single()
	assert.True(t, single)
	assert.Equal(t, "x", seg.Content)
	assert.Equal(t, ast.QuoteNone, seg.Quote)
}

func TestParsePrefixedKeyword(t *testing.T) {
	module := parse(t, `tailf:info "some text";`)

	stmt := module.Children[0].(*ast.Statement)
	assert.Equal(t, "tailf", stmt.Prefix)
	assert.Equal(t, "info", stmt.Keyword)
	assert.Equal(t, "tailf:info", stmt.Name())

	seg, _ := stmt.Arg.Single()
	assert.Equal(t, "some text", seg.Content)
	assert.Equal(t, ast.QuoteDouble, seg.Quote)
}

func TestParseStatementWithoutArgument(t *testing.T) {
	module := parse(t, "input { leaf a; }")

	stmt := module.Children[0].(*ast.Statement)
	assert.Equal(t, "input", stmt.Keyword)
	assert.Zero(t, stmt.Arg)
	assert.True(t, stmt.HasBlock)
	assert.Equal(t, 1, len(stmt.Children))
}

func TestParseNestedBlocks(t *testing.T) {
	module := parse(t, `
		module m {
			container c {
				leaf x {
					type string;
				}
			}
		}
	`)

	m := module.Children[0].(*ast.Statement)
	assert.Equal(t, "module", m.Keyword)
	c := m.Children[0].(*ast.Statement)
	assert.Equal(t, "container", c.Keyword)
	x := c.Children[0].(*ast.Statement)
	assert.Equal(t, "leaf", x.Keyword)
	typ := x.Children[0].(*ast.Statement)
	assert.Equal(t, "type", typ.Keyword)
	assert.False(t, typ.HasBlock)
}

func TestParseEmptyBlock(t *testing.T) {
	module := parse(t, "container c {}")

	stmt := module.Children[0].(*ast.Statement)
	assert.True(t, stmt.HasBlock)
	assert.Equal(t, 0, len(stmt.Children))
}

func TestParseQuoteKindsPreserved(t *testing.T) {
	module := parse(t, "leaf x { default 'single'; description \"double\"; }")

	stmt := module.Children[0].(*ast.Statement)
	def := stmt.Children[0].(*ast.Statement)
	desc := stmt.Children[1].(*ast.Statement)

	seg, _ := def.Arg.Single()
	assert.Equal(t, ast.QuoteSingle, seg.Quote)
	seg, _ = desc.Arg.Single()
	assert.Equal(t, ast.QuoteDouble, seg.Quote)
}

func TestParseEscapesKeptRaw(t *testing.T) {
	module := parse(t, `pattern "[a-z]\"x\"";`)

	seg, _ := module.Children[0].(*ast.Statement).Arg.Single()
	assert.Equal(t, `[a-z]\"x\"`, seg.Content)
}

func TestParseMultilineArgument(t *testing.T) {
	module := parse(t, "description\n  \"line one\n   line two\";")

	seg, _ := module.Children[0].(*ast.Statement).Arg.Single()
	assert.True(t, seg.Multiline)
	assert.Equal(t, "line one\n   line two", seg.Content)
}

func TestParseConcatenation(t *testing.T) {
	module := parse(t, `pattern "a" + 'b' + "c";`)

	arg := module.Children[0].(*ast.Statement).Arg
	assert.True(t, arg.IsConcatenation())
	assert.Equal(t, 3, len(arg.Segments))
	assert.Equal(t, "a", arg.Segments[0].Content)
	assert.Equal(t, ast.QuoteSingle, arg.Segments[1].Quote)
	assert.Equal(t, "abc", arg.Text())
}

func TestParseCommentNodes(t *testing.T) {
	module := parse(t, "// header\nmodule m {\n  /* block */\n  leaf x;\n}")

	assert.Equal(t, 2, len(module.Children))
	header, ok := module.Children[0].(*ast.Comment)
	assert.True(t, ok)
	assert.Equal(t, "// header", header.Text)
	assert.Equal(t, ast.LineComment, header.Kind)

	m := module.Children[1].(*ast.Statement)
	block, ok := m.Children[0].(*ast.Comment)
	assert.True(t, ok)
	assert.Equal(t, "/* block */", block.Text)
	assert.Equal(t, ast.BlockComment, block.Kind)
}

func TestParseTrailingComment(t *testing.T) {
	module := parse(t, "leaf x; // why\nleaf y;")

	x := module.Children[0].(*ast.Statement)
	assert.Equal(t, 1, len(x.Trailing))
	assert.Equal(t, "// why", x.Trailing[0].Text)

	// The comment belongs to x, not to the sibling list.
	assert.Equal(t, 2, len(module.Children))
}

func TestParseTrailingCommentAfterOpenBrace(t *testing.T) {
	module := parse(t, "module m { // note\n  leaf x;\n}")

	m := module.Children[0].(*ast.Statement)
	assert.Equal(t, 1, len(m.Trailing))
	assert.Equal(t, "// note", m.Trailing[0].Text)
	assert.Equal(t, 1, len(m.Children))
}

func TestParseMidStatementComments(t *testing.T) {
	module := parse(t, "leaf /* a */ x /* b */;")

	stmt := module.Children[0].(*ast.Statement)
	assert.Equal(t, 2, len(stmt.Trailing))
	assert.Equal(t, "/* a */", stmt.Trailing[0].Text)
	assert.Equal(t, "/* b */", stmt.Trailing[1].Text)

	seg, _ := stmt.Arg.Single()
	assert.Equal(t, "x", seg.Content)
}

func TestParseCommentOnNextLineStaysSibling(t *testing.T) {
	module := parse(t, "leaf x;\n// standalone\nleaf y;")

	assert.Equal(t, 3, len(module.Children))
	x := module.Children[0].(*ast.Statement)
	assert.Equal(t, 0, len(x.Trailing))
	_, ok := module.Children[1].(*ast.Comment)
	assert.True(t, ok)
}

func TestParseBlankLineCounts(t *testing.T) {
	module := parse(t, "leaf a;\n\n\nleaf b;\nleaf c;\n\nmodule m {\n\n  leaf d;\n}")

	b := module.Children[1].(*ast.Statement)
	assert.Equal(t, 2, b.BlankBefore)
	c := module.Children[2].(*ast.Statement)
	assert.Equal(t, 0, c.BlankBefore)
	m := module.Children[3].(*ast.Statement)
	assert.Equal(t, 1, m.BlankBefore)

	d := m.Children[0].(*ast.Statement)
	assert.Equal(t, 1, d.BlankBefore)
}

func TestParseBlankLinesAfterMultilineString(t *testing.T) {
	// The gap is measured from where the previous statement ended, not
	// where it started.
	module := parse(t, "description\n  \"a\n   b\";\nleaf x;")

	x := module.Children[1].(*ast.Statement)
	assert.Equal(t, 0, x.BlankBefore)
}

func TestParseCommentTrailingWhitespaceTrimmed(t *testing.T) {
	module := parse(t, "// padded   \nleaf x;")

	comment := module.Children[0].(*ast.Comment)
	assert.Equal(t, "// padded", comment.Text)
}

func TestParseModuleHelper(t *testing.T) {
	module := parse(t, "// header\nmodule m {}\n// footer")

	stmt := module.Statement()
	assert.NotZero(t, stmt)
	assert.Equal(t, "module", stmt.Keyword)
}

func TestParseErrorUnclosedBlock(t *testing.T) {
	err := parseErr(t, "module m {\n  leaf x;\n")
	assert.Equal(t, `"}"`, err.Expected)
	assert.Equal(t, "end of file", err.Found)
	assert.Equal(t, 3, err.Pos.Line)
}

func TestParseErrorUnmatchedClosingBrace(t *testing.T) {
	err := parseErr(t, "module m {\n  leaf x;\n}\n}")
	assert.True(t, strings.Contains(err.Error(), `unmatched "}"`))
	assert.Equal(t, 4, err.Pos.Line)
}

func TestParseErrorMissingTerminator(t *testing.T) {
	err := parseErr(t, "leaf x")
	assert.Equal(t, `";" or "{"`, err.Expected)
	assert.Equal(t, "end of file", err.Found)
}

func TestParseErrorStatementStartsWithValue(t *testing.T) {
	err := parseErr(t, "123 foo;")
	assert.Equal(t, "statement keyword", err.Expected)
}

func TestParseErrorCommentInsideConcatenation(t *testing.T) {
	inputs := []string{
		"pattern \"a\" /* c */ + \"b\";",
		"pattern \"a\" + /* c */ \"b\";",
		"pattern \"a\" // c\n + \"b\";",
	}
	for _, input := range inputs {
		err := parseErr(t, input)
		assert.True(t, strings.Contains(err.Message, "concatenation"),
			"input %q: unexpected message %q", input, err.Message)
	}
}

func TestParseErrorConcatenationOfUnquotedValue(t *testing.T) {
	err := parseErr(t, `range 1..10 + "b";`)
	assert.True(t, strings.Contains(err.Message, "quoted strings"))
}

func TestParseErrorPlusWithoutSecondString(t *testing.T) {
	err := parseErr(t, `pattern "a" + ;`)
	assert.Equal(t, `quoted string after "+"`, err.Expected)
}

func TestParseErrorPlusBeforeUnquoted(t *testing.T) {
	err := parseErr(t, `pattern "a" + b;`)
	assert.Equal(t, `quoted string after "+"`, err.Expected)
}

func TestParseErrorPositionsCarryFilename(t *testing.T) {
	_, err := Parse([]byte("}"), "broken.yang")
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "broken.yang:1:1"))
}
