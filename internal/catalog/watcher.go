package catalog

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/osse101/ColonyPlanner_Go/internal/logger"
)

// Watcher calls onChange after the catalog file settles following a write,
// create or rename
type Watcher struct {
	path     string
	onChange func(ctx context.Context)
	debounce time.Duration
}

// NewWatcher creates a watcher for path
func NewWatcher(path string, onChange func(ctx context.Context)) *Watcher {
	return &Watcher{
		path:     path,
		onChange: onChange,
		debounce: DefaultDebounce,
	}
}

// WithDebounce sets the quiet period before onChange fires
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Watch blocks until ctx is cancelled. The parent directory is watched so that
// editors replacing the file are still seen.
func (w *Watcher) Watch(ctx context.Context) error {
	log := logger.FromContext(ctx)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	absPath, err := filepath.Abs(w.path)
	if err != nil {
		return err
	}
	if err := fw.Add(filepath.Dir(absPath)); err != nil {
		return err
	}
	log.Info(LogMsgWatching, "path", absPath, "debounce", w.debounce)

	var (
		mu    sync.Mutex
		timer *time.Timer
		wg    sync.WaitGroup
	)
	defer func() {
		mu.Lock()
		if timer != nil && timer.Stop() {
			wg.Done()
		}
		mu.Unlock()
		wg.Wait()
	}()

	for {
		select {
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			mu.Lock()
			if timer != nil && timer.Stop() {
				wg.Done()
			}
			wg.Add(1)
			timer = time.AfterFunc(w.debounce, func() {
				defer wg.Done()
				log.Info(LogMsgFileChanged, "path", absPath)
				w.onChange(ctx)
			})
			mu.Unlock()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn(LogMsgWatcherError, "error", err)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Reloader is anything that can re-read its catalog
type Reloader interface {
	Reload(ctx context.Context) (*ReloadResult, error)
}

// ReloadOnChange returns an onChange callback that reloads r and logs
// failures without stopping the watcher
func ReloadOnChange(r Reloader) func(ctx context.Context) {
	return func(ctx context.Context) {
		if _, err := r.Reload(ctx); err != nil {
			logger.FromContext(ctx).Error(LogMsgCatalogReloadErr, "error", err)
		}
	}
}
