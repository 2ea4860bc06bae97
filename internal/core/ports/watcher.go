package ports

import "context"

// WatchEvent signals that a watched file changed.
type WatchEvent struct {
	// Path is the file that changed.
	Path string
}

// Watcher observes a fixed set of files for changes. Used by watch mode to
// re-run the pipeline when the entry file or icon is modified.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given files until ctx is cancelled.
	Start(ctx context.Context, paths []string) error

	// Events returns the debounced change event channel. It is closed when
	// the watcher stops.
	Events() <-chan WatchEvent

	// Stop stops the watcher and releases all resources.
	Stop() error
}
