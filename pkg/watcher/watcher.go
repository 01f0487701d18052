// Package watcher re-runs a build callback whenever files under the
// translations root change.
package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay batches the event bursts editors and file syncs produce
// into a single rebuild.
const debounceDelay = 200 * time.Millisecond

// Watch monitors root and its subdirectories and invokes fn after changes
// settle. New directories are picked up as they appear. Watch blocks until
// ctx is done and returns nil on a clean shutdown.
func Watch(ctx context.Context, root string, log *slog.Logger, fn func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watcher: %w", err)
	}
	defer w.Close()

	if err := addRecursive(w, root); err != nil {
		return err
	}

	debounce := time.NewTimer(debounceDelay)
	if !debounce.Stop() {
		<-debounce.C
	}

	log.Info("watching for changes", "root", root)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addRecursive(w, event.Name); err != nil {
						log.Warn("cannot watch new directory", "path", event.Name, "error", err)
					}
				}
			}
			log.Debug("change detected", "path", event.Name, "op", event.Op.String())
			debounce.Reset(debounceDelay)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "error", err)

		case <-debounce.C:
			fn()
		}
	}
}

func addRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("watcher: walking %q: %w", path, err)
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.Add(path); err != nil {
			return fmt.Errorf("watcher: watching %q: %w", path, err)
		}
		return nil
	})
}
