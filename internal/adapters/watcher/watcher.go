package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"
	"go.webdroid.dev/webdroid/internal/core/ports"
)

const (
	eventChannelBuffer = 16
	debounceWindow     = 200 * time.Millisecond
)

var _ ports.Watcher = (*Watcher)(nil)

// Watcher observes a fixed set of files through fsnotify. The parent
// directories are watched rather than the files themselves, because editors
// commonly save through rename-over, which drops a direct file watch.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	watched   map[string]struct{}
	events    chan ports.WatchEvent
}

// NewWatcher creates a file watcher.
func NewWatcher() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to initialize file watcher")
	}
	w := &Watcher{
		fsWatcher: fsWatcher,
		watched:   make(map[string]struct{}),
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}
	w.debouncer = NewDebouncer(debounceWindow, w.emit)
	return w, nil
}

// Start begins watching the given files until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context, paths []string) error {
	dirs := make(map[string]struct{})
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve watch path"), "path", path)
		}
		w.watched[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to watch directory"), "dir", dir)
		}
	}

	go w.processEvents(ctx)
	return nil
}

// Events returns the debounced change event channel.
func (w *Watcher) Events() <-chan ports.WatchEvent {
	return w.events
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

func (w *Watcher) emit(paths []string) {
	for _, path := range paths {
		select {
		case w.events <- ports.WatchEvent{Path: path}:
		default:
			// A rebuild is already pending; dropping the event loses nothing.
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			w.debouncer.Flush()
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, tracked := w.watched[abs]; tracked {
				w.debouncer.Add(abs)
			}
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
		}
	}
}
