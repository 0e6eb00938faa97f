package yangfmt

import (
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/hubro/yangfmt/formatter"
	"github.com/hubro/yangfmt/parser"
	"github.com/hubro/yangfmt/telemetry"
)

func TestFormat(t *testing.T) {
	input := []byte("module m {\n    leaf x { type string; }\n}\n")

	got, err := Format(context.Background(), "m.yang", input)
	assert.NoError(t, err)

	want := `module m {
  leaf x {
    type string;
  }
}
`
	assert.Equal(t, want, string(got))
}

func TestFormatIdempotent(t *testing.T) {
	inputs := []string{
		"module m { leaf x; }",
		"module m {\n\n\n\nleaf x;\n// c\n}",
		"pattern \"a\" + 'b' + \"c\";",
		"description \"line one\n   line two\";",
		"container c {}",
		"// only a comment",
		"",
		"leaf x; // trailing\n/* block\n   comment */\nleaf y;",
	}

	ctx := context.Background()
	for _, input := range inputs {
		once, err := Format(ctx, "", []byte(input))
		assert.NoError(t, err, "input %q", input)

		twice, err := Format(ctx, "", once)
		assert.NoError(t, err, "formatted output of %q must parse", input)
		assert.Equal(t, string(once), string(twice), "input %q", input)
	}
}

func TestFormatPreservesSemantics(t *testing.T) {
	// Formatting must not invent, drop or reorder statements.
	input := []byte(`module m {
  container b { leaf z; leaf a; }
  container a { leaf q; }
}`)

	out, err := Format(context.Background(), "", input)
	assert.NoError(t, err)

	module, err := parser.Parse(out, "")
	assert.NoError(t, err)

	m := module.Statement()
	assert.Equal(t, 2, len(m.Children))

	// Child order survives verbatim.
	assert.True(t, strings.Index(string(out), "container b") < strings.Index(string(out), "container a"))
	assert.True(t, strings.Index(string(out), "leaf z") < strings.Index(string(out), "leaf a;"))
}

func TestFormatReturnsErrorWithoutOutput(t *testing.T) {
	inputs := []string{
		"module m {",
		"}",
		"leaf x",
		`pattern "a" /* c */ + "b";`,
		`"unterminated`,
		"/* unterminated",
	}

	for _, input := range inputs {
		out, err := Format(context.Background(), "bad.yang", []byte(input))
		assert.Error(t, err, "input %q", input)
		assert.Zero(t, out, "no partial output for %q", input)
	}
}

func TestFormatOptionsPassThrough(t *testing.T) {
	input := []byte("module m { leaf x; }")

	got, err := Format(context.Background(), "", input, formatter.WithIndentWidth(8))
	assert.NoError(t, err)
	assert.Equal(t, "module m {\n        leaf x;\n}\n", string(got))
}

func TestFormatString(t *testing.T) {
	got, err := FormatString(context.Background(), "", "leaf  x ;")
	assert.NoError(t, err)
	assert.Equal(t, "leaf x;\n", got)

	_, err = FormatString(context.Background(), "", "leaf {")
	assert.Error(t, err)
}

func TestFormatReportsPhaseTimings(t *testing.T) {
	collector := telemetry.NewTimingCollector()
	ctx := telemetry.WithCollector(context.Background(), collector)

	_, err := Format(ctx, "", []byte("module m { leaf x; }"))
	assert.NoError(t, err)

	var report strings.Builder
	collector.Report(&report)

	for _, phase := range []string{"format", "lex", "parse", "render"} {
		assert.True(t, strings.Contains(report.String(), phase), "missing %q in report:\n%s", phase, report.String())
	}
}
