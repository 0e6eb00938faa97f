// Package yangfmt formats YANG modules (RFC 7950).
//
// The pipeline is lex, parse, render: source text becomes a lossless
// syntax tree which the formatter writes back out in canonical form.
// Nothing is reordered and no comment or string content is lost, so
// formatting is safe to apply blindly, and applying it twice gives the
// same result as applying it once.
package yangfmt

import (
	"bytes"
	"context"

	"github.com/hubro/yangfmt/formatter"
	"github.com/hubro/yangfmt/parser"
	"github.com/hubro/yangfmt/telemetry"
)

// Format parses source and renders it in canonical form. The filename
// is only used in error positions; pass "" for anonymous input. On any
// lex or parse error the input is returned unformatted as nil with the
// error, never partially formatted.
func Format(ctx context.Context, filename string, source []byte, opts ...formatter.Option) ([]byte, error) {
	timer := telemetry.FromContext(ctx).Start("format")
	defer timer.End()

	lexTimer := timer.Child("lex")
	tokens, err := parser.NewLexer(source, filename).ScanAll()
	lexTimer.End()
	if err != nil {
		return nil, err
	}

	parseTimer := timer.Child("parse")
	module, err := parser.New(source, filename, tokens).Parse()
	parseTimer.End()
	if err != nil {
		return nil, err
	}

	renderTimer := timer.Child("render")
	defer renderTimer.End()

	var buf bytes.Buffer
	buf.Grow(len(source) + len(source)/4)
	if err := formatter.New(opts...).Format(module, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FormatString is Format for string input and output.
func FormatString(ctx context.Context, filename, source string, opts ...formatter.Option) (string, error) {
	out, err := Format(ctx, filename, []byte(source), opts...)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
