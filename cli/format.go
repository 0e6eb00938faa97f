package cli

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/alecthomas/kong"

	"github.com/hubro/yangfmt"
	"github.com/hubro/yangfmt/formatter"
	"github.com/hubro/yangfmt/telemetry"
)

// FmtCmd formats a YANG file to canonical style.
type FmtCmd struct {
	File          FileOrStdin `help:"YANG input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	InPlace       bool        `help:"Rewrite the file instead of printing to stdout." short:"i"`
	Interactive   bool        `help:"Ask for confirmation before overwriting the file."`
	Watch         bool        `help:"Keep running and re-format whenever the file changes (requires --in-place)."`
	Indent        int         `help:"Spaces per nesting level." default:"2"`
	MaxBlankLines int         `help:"Maximum run of consecutive blank lines." default:"1"`
	LineLength    int         `help:"Target line length, 0 to disable." default:"79"`
}

// Run executes the fmt command.
func (cmd *FmtCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	if cmd.InPlace && cmd.File.IsStdin() {
		return fmt.Errorf("--in-place requires a file, not stdin")
	}
	if cmd.Watch && !cmd.InPlace {
		return fmt.Errorf("--watch requires --in-place")
	}

	runCtx := context.Background()

	var collector telemetry.Collector
	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		defer func() {
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr)
		}()
	}

	if cmd.Watch {
		return cmd.watch(runCtx, ctx)
	}
	return cmd.formatOnce(runCtx, ctx)
}

// options maps the command flags to formatter options.
func (cmd *FmtCmd) options() []formatter.Option {
	return []formatter.Option{
		formatter.WithIndentWidth(cmd.Indent),
		formatter.WithMaxBlankLines(cmd.MaxBlankLines),
		formatter.WithLineLength(cmd.LineLength),
	}
}

// formatOnce formats the input a single time: to stdout, or back into
// the file with --in-place. Nothing is written when the file is already
// formatted, which also keeps watch mode from triggering itself.
func (cmd *FmtCmd) formatOnce(runCtx context.Context, ctx *kong.Context) error {
	source, err := cmd.File.GetSourceContent()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	formatted, err := yangfmt.Format(runCtx, cmd.File.Filename, source, cmd.options()...)
	if err != nil {
		renderer := NewErrorRenderer(source)
		_, _ = fmt.Fprint(ctx.Stderr, renderer.Render(err))
		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, "parse error")
		return NewCommandError(1)
	}

	if !cmd.InPlace {
		_, err := ctx.Stdout.Write(formatted)
		return err
	}

	if bytes.Equal(formatted, source) {
		return nil
	}

	if cmd.Interactive {
		overwrite, err := promptYesNo(fmt.Sprintf("Overwrite %s?", cmd.File.Filename))
		if err != nil {
			return err
		}
		if !overwrite {
			printInfof(ctx.Stderr, "left %s untouched", pathStyle.Render(cmd.File.Filename))
			return nil
		}
	}

	if err := os.WriteFile(cmd.File.Filename, formatted, filePerm(cmd.File.Filename)); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	printSuccess(ctx.Stderr, fmt.Sprintf("formatted %s", pathStyle.Render(cmd.File.Filename)))

	return nil
}

// filePerm returns the file's current permissions, so rewriting keeps them.
func filePerm(filename string) fs.FileMode {
	if info, err := os.Stat(filename); err == nil {
		return info.Mode().Perm()
	}
	return 0o644
}
