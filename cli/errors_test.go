package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/hubro/yangfmt/parser"
)

func TestRenderPlainError(t *testing.T) {
	r := NewErrorRenderer(nil)
	got := r.Render(errors.New("boom"))
	assert.Equal(t, "boom", got)
}

func TestRenderParseErrorWithSourceContext(t *testing.T) {
	source := []byte("module m {\n  leaf x;\n")
	_, err := parser.Parse(source, "m.yang")
	assert.Error(t, err)

	got := NewErrorRenderer(source).Render(err)

	assert.True(t, strings.Contains(got, "m.yang:3:1"), "missing position in:\n%s", got)
	assert.True(t, strings.Contains(got, "leaf x;"), "missing source context in:\n%s", got)
	assert.True(t, strings.Contains(got, "^"), "missing caret in:\n%s", got)
}

func TestRenderLexErrorWithSourceContext(t *testing.T) {
	source := []byte("leaf x;\ndescription \"oops\n")
	_, err := parser.Parse(source, "m.yang")
	assert.Error(t, err)

	got := NewErrorRenderer(source).Render(err)
	assert.True(t, strings.Contains(got, "unterminated string"), "got:\n%s", got)
	assert.True(t, strings.Contains(got, "m.yang:2:13"), "got:\n%s", got)
}

func TestRenderWithoutSourceFallsBack(t *testing.T) {
	_, err := parser.Parse([]byte("}"), "m.yang")
	assert.Error(t, err)

	got := NewErrorRenderer(nil).Render(err)
	assert.Equal(t, err.Error(), got)
}

func TestCaretOffset(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		column int
		want   int
	}{
		{"ascii", "leaf x;", 6, 5},
		{"start of line", "leaf x;", 1, 0},
		{"column past end", "ab", 10, 2},
		{"tab expands to next stop", "\tleaf", 2, 8},
		{"wide runes count double", "描述 x", 8, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, caretOffset(tt.line, tt.column))
		})
	}
}
