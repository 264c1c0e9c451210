// Package watcher reloads the content catalog when its file changes.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Reloader re-reads a catalog.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Watcher watches the catalog's directory (editors replace files by rename)
// and calls Reload once per burst of events.
type Watcher struct {
	path     string
	debounce time.Duration
	reloader Reloader
	logger   *zap.Logger
	fsw      *fsnotify.Watcher
}

// New creates a watcher for path. Call Run to start processing events.
func New(path string, debounce time.Duration, reloader Reloader, logger *zap.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve catalog path: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}
	return &Watcher{path: abs, debounce: debounce, reloader: reloader, logger: logger, fsw: fsw}, nil
}

// Run blocks until ctx is cancelled, then closes the underlying watcher.
func (w *Watcher) Run(ctx context.Context) {
	defer func() { _ = w.fsw.Close() }()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("catalog watcher error", zap.Error(err))

		case <-timer.C:
			if err := w.reloader.Reload(ctx); err != nil {
				w.logger.Error("catalog reload failed, keeping previous snapshot", zap.Error(err))
				continue
			}
			w.logger.Info("catalog reloaded", zap.String("path", w.path))
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
