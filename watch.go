package inkwash

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces editor save bursts into a single reload.
const watchDebounce = 200 * time.Millisecond

// NewShapeLibraryDir creates a shape library reading assets from a
// directory on disk. Unlike NewShapeLibrary, the resulting library can
// hot-reload with Watch.
func NewShapeLibraryDir(dir string) *ShapeLibrary {
	l := NewShapeLibrary(os.DirFS(dir))
	l.dir = dir
	return l
}

// Watch reloads the library whenever a brush asset in its directory
// changes, until ctx is cancelled. Events are debounced so a burst of
// writes triggers one reload. Watch blocks; run it in its own goroutine.
//
// Only libraries created with NewShapeLibraryDir can watch; for others
// Watch returns an error immediately.
func (l *ShapeLibrary) Watch(ctx context.Context) error {
	if l.dir == "" {
		return fmt.Errorf("inkwash: shape library has no directory to watch")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("inkwash: watcher: %w", err)
	}
	defer func() {
		_ = w.Close()
	}()

	if err := w.Add(l.dir); err != nil {
		return fmt.Errorf("inkwash: watch %s: %w", l.dir, err)
	}
	Logger().Info("watching brush shape directory", "dir", l.dir)

	var pending *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if !isShapeAsset(ev.Name) {
				continue
			}
			Logger().Debug("brush asset changed", "file", ev.Name, "op", ev.Op.String())
			if pending == nil {
				pending = time.NewTimer(watchDebounce)
			} else {
				pending.Reset(watchDebounce)
			}
			fire = pending.C

		case <-fire:
			fire = nil
			pending = nil
			Logger().Info("reloading brush shapes", "dir", l.dir)
			l.Load()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			Logger().Warn("shape watcher error", "error", err)
		}
	}
}

// isShapeAsset reports whether a changed path is one of the named brush
// asset files.
func isShapeAsset(path string) bool {
	base := filepath.Base(path)
	for _, file := range shapeAssets {
		if base == file {
			return true
		}
	}
	return false
}
