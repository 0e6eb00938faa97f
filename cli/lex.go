package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/hubro/yangfmt/parser"
)

// LexCmd shows lexical tokens from a YANG file.
type LexCmd struct {
	File FileOrStdin `help:"YANG input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

// Run executes the lex command.
func (cmd *LexCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	source, err := cmd.File.GetSourceContent()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	lexer := parser.NewLexer(source, cmd.File.Filename)
	tokens, err := lexer.ScanAll()
	if err != nil {
		renderer := NewErrorRenderer(source)
		_, _ = fmt.Fprint(ctx.Stderr, renderer.Render(err))
		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, "lex error")
		return NewCommandError(1)
	}

	// Display tokens in the format: TYPE line:col "content"
	for _, token := range tokens {
		// Skip EOF token for clean output
		if token.Type == parser.EOF {
			continue
		}

		_, _ = fmt.Fprintf(ctx.Stdout, "%-13s %d:%d    %q\n",
			token.Type.String(),
			token.Line,
			token.Column,
			token.String(source))
	}

	return nil
}
