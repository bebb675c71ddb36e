package drive

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexjbarnes/drive-sync/internal/syncengine"
	"github.com/fsnotify/fsnotify"
)

const (
	debounceTick  = 500 * time.Millisecond
	debounceQuiet = 300 * time.Millisecond
)

// Watcher monitors the sync root and emits a change-size queue item for
// every file that was written and then left alone for a short while.
type Watcher struct {
	root    *Root
	ignore  *IgnoreList
	out     chan<- syncengine.QueueItem
	logger  *slog.Logger
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher that sends items on out. A nil ignore
// list applies only the built-in hidden-file rule.
func NewWatcher(root *Root, ignore *IgnoreList, out chan<- syncengine.QueueItem, logger *slog.Logger) *Watcher {
	return &Watcher{
		root:   root,
		ignore: ignore,
		out:    out,
		logger: logger,
	}
}

// Watch starts watching the sync root. It blocks until the context is
// cancelled. Directories are watched recursively.
func (w *Watcher) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	w.watcher = watcher
	defer watcher.Close()

	dir := w.root.Dir()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating sync dir: %w", err)
	}

	if err := w.addRecursive(dir); err != nil {
		return fmt.Errorf("watching sync dir: %w", err)
	}

	w.logger.Info("file watcher started", slog.String("dir", dir))

	// Debounce: batch rapid writes into a single item per file.
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounceTick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("fsnotify events channel closed unexpectedly")
			}

			if w.shouldIgnore(event.Name) {
				continue
			}

			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) {
				info, err := os.Stat(event.Name)
				if err == nil && info.IsDir() {
					if event.Has(fsnotify.Create) {
						w.addRecursive(event.Name)
					}

					continue
				}

				pending[event.Name] = time.Now()
			}

			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				delete(pending, event.Name)
				_ = watcher.Remove(event.Name)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("fsnotify errors channel closed unexpectedly")
			}

			w.logger.Warn("watcher error", slog.String("error", err.Error()))

		case <-ticker.C:
			now := time.Now()
			for absPath, t := range pending {
				if now.Sub(t) < debounceQuiet {
					continue
				}

				delete(pending, absPath)

				if err := w.emit(ctx, absPath); err != nil {
					return err
				}
			}
		}
	}
}

// emit sends a change-size item for absPath. It only fails when ctx is
// cancelled while the queue is full.
func (w *Watcher) emit(ctx context.Context, absPath string) error {
	path, err := w.root.DrivePath(absPath)
	if err != nil {
		w.logger.Warn("computing drive path", slog.String("path", absPath), slog.String("error", err.Error()))
		return nil
	}

	select {
	case w.out <- syncengine.QueueItem{Path: path, Kind: syncengine.KindChangeSize}:
		w.logger.Debug("queued change", slog.String("path", path))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != w.root.Dir() && w.shouldIgnore(path) {
				return filepath.SkipDir
			}

			return w.watcher.Add(path)
		}

		return nil
	})
}

func (w *Watcher) shouldIgnore(absPath string) bool {
	if strings.HasPrefix(filepath.Base(absPath), ".") {
		return true
	}

	if w.ignore == nil {
		return false
	}

	path, err := w.root.DrivePath(absPath)
	if err != nil {
		return true
	}

	return w.ignore.Matches(path)
}
