package cli

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"
)

// watch re-formats the file whenever it changes on disk. Parse errors
// are reported but do not stop the loop; the next save gets another
// chance.
func (cmd *FmtCmd) watch(runCtx context.Context, ctx *kong.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory rather than the file: editors typically save
	// by renaming a temp file over the original, which would silently
	// drop a watch on the file itself.
	target, err := filepath.Abs(cmd.File.Filename)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}

	if err := cmd.formatOnce(runCtx, ctx); err != nil && !isCommandError(err) {
		return err
	}
	printInfof(ctx.Stderr, "watching %s", pathStyle.Render(cmd.File.Filename))

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if abs, err := filepath.Abs(event.Name); err != nil || abs != target {
				continue
			}
			if err := cmd.formatOnce(runCtx, ctx); err != nil && !isCommandError(err) {
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, err.Error())
		}
	}
}

func isCommandError(err error) bool {
	var cmdErr *CommandError
	return errors.As(err, &cmdErr)
}
