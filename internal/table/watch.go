package table

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher reports changes to a fixed set of files. Events are collected
// for one debounce interval so an editor's write-rename sequence fires once.
type FileWatcher struct {
	paths    map[string]bool
	debounce time.Duration
	onChange func(string) // called with path that changed
}

// NewFileWatcher creates a watcher for given paths and debounce interval.
func NewFileWatcher(paths []string, debounce time.Duration, onChange func(string)) *FileWatcher {
	w := &FileWatcher{
		paths:    make(map[string]bool, len(paths)),
		debounce: debounce,
		onChange: onChange,
	}
	for _, p := range paths {
		w.paths[filepath.Clean(p)] = true
	}
	return w
}

// Run watches the parent directories of the files until ctx is done.
// Directories that do not exist are skipped with a warning.
func (w *FileWatcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	dirs := make(map[string]bool)
	for p := range w.paths {
		dirs[filepath.Dir(p)] = true
	}
	for d := range dirs {
		if err := fw.Add(d); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.WarnContext(ctx, "config directory missing, not watching", "dir", d)
				continue
			}
			return fmt.Errorf("watch %s: %w", d, err)
		}
	}

	pending := make(map[string]bool)
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			name := filepath.Clean(ev.Name)
			if !w.paths[name] || ev.Op == fsnotify.Chmod {
				continue
			}
			pending[name] = true
			if fire == nil {
				fire = time.After(w.debounce)
			}
		case <-fire:
			fire = nil
			for p := range pending {
				if w.onChange != nil {
					w.onChange(p)
				}
			}
			clear(pending)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.WarnContext(ctx, "config watcher error", "err", err)
		}
	}
}
