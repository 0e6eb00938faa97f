package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/hubro/yangfmt/parser"
)

// TreeCmd shows the syntax tree of a YANG file.
type TreeCmd struct {
	File FileOrStdin `help:"YANG input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

// Run executes the tree command.
func (cmd *TreeCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	source, err := cmd.File.GetSourceContent()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	module, err := parser.Parse(source, cmd.File.Filename)
	if err != nil {
		renderer := NewErrorRenderer(source)
		_, _ = fmt.Fprint(ctx.Stderr, renderer.Render(err))
		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, "parse error")
		return NewCommandError(1)
	}

	repr.New(ctx.Stdout, repr.Indent("  ")).Println(module)

	return nil
}
