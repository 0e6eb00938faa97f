package telemetry

import (
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestFromContextDefaultsToNoOp(t *testing.T) {
	collector := FromContext(context.Background())

	// Must be safe to use without a configured collector.
	timer := collector.Start("anything")
	timer.Child("nested").End()
	timer.End()

	var buf strings.Builder
	collector.Report(&buf)
	assert.Equal(t, "", buf.String())
}

func TestWithCollectorRoundTrip(t *testing.T) {
	collector := NewTimingCollector()
	ctx := WithCollector(context.Background(), collector)

	got := FromContext(ctx)
	assert.Equal(t, Collector(collector), got)
}

func TestTimingCollectorReportsTree(t *testing.T) {
	collector := NewTimingCollector()

	root := collector.Start("format")
	lex := root.Child("lex")
	lex.End()
	parse := root.Child("parse")
	parse.Child("statements").End()
	parse.End()
	root.End()

	var buf strings.Builder
	collector.Report(&buf)
	report := buf.String()

	for _, name := range []string{"format", "lex", "parse", "statements"} {
		assert.True(t, strings.Contains(report, name), "missing %q in:\n%s", name, report)
	}

	// Nested operations are indented under their parents.
	lines := strings.Split(strings.TrimSpace(report), "\n")
	assert.Equal(t, 4, len(lines))
	assert.True(t, strings.HasPrefix(lines[0], "format:"))
	assert.True(t, strings.Contains(lines[1], "├─ lex"))
	assert.True(t, strings.Contains(lines[2], "└─ parse"))
	assert.True(t, strings.Contains(lines[3], "└─ statements"))
}

func TestEmptyCollectorReportsNothing(t *testing.T) {
	collector := NewTimingCollector()

	var buf strings.Builder
	collector.Report(&buf)
	assert.Equal(t, "", buf.String())
}
