package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/stackchart/pkg/errors"
)

// DefaultDebounce is how long Watch waits for a burst of file events to
// settle before re-rendering.
const DefaultDebounce = 150 * time.Millisecond

// Watch runs the pipeline once and again after every change to the chart
// description or its data file, until ctx is cancelled. Each run's outcome
// goes to fn; a failed run does not stop the loop.
//
// The parent directories are watched rather than the files themselves so
// that editors which save by renaming a temporary file are noticed.
func (r *Runner) Watch(ctx context.Context, opts Options, debounce time.Duration, fn func(*Result, error)) error {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	r.applyLogger(&opts)
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create file watcher")
	}
	defer w.Close()

	watched, err := r.watchedFiles(opts)
	if err != nil {
		return err
	}
	for dir := range dirs(watched) {
		if err := w.Add(dir); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "watch %s", dir)
		}
	}
	opts.Logger.Info("watching", "files", len(watched))

	fn(r.Execute(ctx, opts))

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(ev.Name)] || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			opts.Logger.Debug("file changed", "file", ev.Name, "op", ev.Op)
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			opts.Logger.Warn("watch error", "err", err)
		case <-timer.C:
			fn(r.Execute(ctx, opts))
		}
	}
}

// watchedFiles returns the cleaned paths of the description and data file.
func (r *Runner) watchedFiles(opts Options) (map[string]bool, error) {
	_, dataPath, _, err := r.hashInputs(opts)
	if err != nil {
		return nil, err
	}
	return map[string]bool{
		filepath.Clean(opts.Config): true,
		filepath.Clean(dataPath):    true,
	}, nil
}

func dirs(files map[string]bool) map[string]bool {
	out := make(map[string]bool, len(files))
	for f := range files {
		out[filepath.Dir(f)] = true
	}
	return out
}
