package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/hubro/yangfmt/ast"
)

var (
	errCaretStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	errContextStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
)

// ErrorRenderer renders errors with terminal styling and source context.
type ErrorRenderer struct {
	source []byte
}

// NewErrorRenderer creates a renderer with source content for context.
func NewErrorRenderer(source []byte) *ErrorRenderer {
	return &ErrorRenderer{source: source}
}

// Render formats a single error with styling and context.
func (r *ErrorRenderer) Render(err error) string {
	if e, ok := err.(interface {
		GetPosition() ast.Position
		Error() string
	}); ok {
		if r.source != nil {
			return r.renderWithSourceContext(e.GetPosition(), e.Error())
		}
	}

	return err.Error()
}

func (r *ErrorRenderer) renderWithSourceContext(pos ast.Position, message string) string {
	var buf strings.Builder

	buf.WriteString(errorStyle.Render(message))
	buf.WriteString("\n\n")

	sourceLines := strings.Split(string(r.source), "\n")

	startLine := pos.Line - 3
	endLine := pos.Line + 1

	if startLine < 0 {
		startLine = 0
	}
	if endLine >= len(sourceLines) {
		endLine = len(sourceLines) - 1
	}

	for i := startLine; i <= endLine; i++ {
		if i >= len(sourceLines) {
			break
		}
		buf.WriteString("   ")
		buf.WriteString(errContextStyle.Render(sourceLines[i]))
		buf.WriteByte('\n')

		if i == pos.Line-1 && pos.Column > 0 {
			buf.WriteString("   ")
			buf.WriteString(strings.Repeat(" ", caretOffset(sourceLines[i], pos.Column)))
			buf.WriteString(errCaretStyle.Render("^"))
			buf.WriteByte('\n')
		}
	}

	return buf.String()
}

// caretOffset converts a 1-based byte column into the display width of
// the line up to that column, so the caret lands under the right rune
// even with tabs or wide characters before it.
func caretOffset(line string, column int) int {
	if column-1 > len(line) {
		return runewidth.StringWidth(line)
	}
	prefix := line[:column-1]

	// Expand tabs the way most terminals display them.
	width := 0
	for _, r := range prefix {
		if r == '\t' {
			width += 8 - width%8
			continue
		}
		width += runewidth.RuneWidth(r)
	}
	return width
}
