// Purpose: Re-run a callback when a document file changes.
// Exports: none (package-private helpers).
// Role: Backs `render --watch`.
// Invariants: Bursts of events collapse into one call after the debounce
// delay; the callback never runs after watchFile returns.
// Notes: The parent directory is watched, not the file, so editors that
// save by rename-and-replace keep triggering.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
)

func watchFile(ctx context.Context, path string, delay time.Duration, logger *slog.Logger, fn func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	logger.Info("watching", "path", abs)

	// stopped guards fn so a pending debounced call is dropped on exit.
	var mu sync.Mutex
	stopped := false
	defer func() {
		mu.Lock()
		stopped = true
		mu.Unlock()
	}()
	trigger := debounce.New(delay)
	run := func() {
		mu.Lock()
		defer mu.Unlock()
		if !stopped {
			fn()
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isChange(ev, abs) {
				continue
			}
			debugf(logger, "file event", "path", ev.Name, "op", ev.Op.String())
			trigger(run)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		}
	}
}

func isChange(ev fsnotify.Event, abs string) bool {
	name, err := filepath.Abs(ev.Name)
	if err != nil || name != abs {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
