package matrix

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher invalidates the process-wide matrix cache when its source file
// changes on disk. Events are debounced so editors that write in several
// steps (truncate, write, rename) trigger a single reload.
type Watcher struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	logger   *slog.Logger

	// onReload is called after the cache has been invalidated. Optional;
	// used by long-running commands to re-run checks.
	onReload func()
}

// NewWatcher creates a watcher for the matrix source file at path.
func NewWatcher(path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the directory, not the file: rename-based writes replace the
	// inode and would silently detach a file-level watch.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %q: %w", filepath.Dir(path), err)
	}

	return &Watcher{
		path:     path,
		debounce: 200 * time.Millisecond,
		watcher:  fw,
		logger:   logger.With("component", "matrix.watcher"),
	}, nil
}

// OnReload registers a callback invoked after each cache invalidation.
func (w *Watcher) OnReload(fn func()) {
	w.onReload = fn
}

// Run processes file events until ctx is canceled. It blocks; callers
// run it in a goroutine.
func (w *Watcher) Run(ctx context.Context) {
	defer w.watcher.Close()

	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("matrix watcher error", "error", err)

		case <-fire:
			w.logger.Info("matrix source changed, invalidating cache", "path", w.path)
			Invalidate()
			if w.onReload != nil {
				w.onReload()
			}
		}
	}
}
