// Package watch revalidates a configuration file whenever it changes.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/asheshgoplani/tmux-doctor/internal/logging"
)

var watchLog = logging.ForComponent(logging.CompWatch)

// Watcher watches one file and invokes onChange after edits settle.
// Editors typically write via rename, so the parent directory is watched
// and events are filtered by name.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	onChange func()
	debounce time.Duration
	limiter  *rate.Limiter
	stopCh   chan struct{}
	stopOnce sync.Once
}

// New creates a watcher for path. debounce coalesces rapid write bursts;
// the rate limiter caps revalidation at 5/s no matter how noisy the
// editor is.
func New(path string, debounce time.Duration, onChange func()) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}

	w := &Watcher{
		path:     path,
		watcher:  fsWatcher,
		onChange: onChange,
		debounce: debounce,
		limiter:  rate.NewLimiter(rate.Limit(5), 1),
		stopCh:   make(chan struct{}),
	}
	return w, nil
}

// Start begins watching. It returns immediately; events are handled on a
// background goroutine until Stop.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	go w.watchLoop()
	return nil
}

// Stop stops the watcher. Safe to call more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) watchLoop() {
	var debounceTimer *time.Timer

	base := filepath.Base(w.path)
	for {
		select {
		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(w.debounce, func() {
				if err := w.limiter.Wait(context.Background()); err != nil {
					return
				}
				watchLog.Debug("file_changed", slog.String("path", w.path))
				w.onChange()
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			watchLog.Warn("watch_error", slog.String("error", err.Error()))
		}
	}
}
