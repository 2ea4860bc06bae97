package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.webdroid.dev/webdroid/internal/adapters/watcher"
)

func TestWatcher_ReportsTrackedFileChange(t *testing.T) {
	dir := t.TempDir()
	entry := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(entry, []byte("v1"), 0o644))

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, w.Start(ctx, []string{entry}))

	require.NoError(t, os.WriteFile(entry, []byte("v2"), 0o644))

	select {
	case event := <-w.Events():
		abs, err := filepath.Abs(entry)
		require.NoError(t, err)
		assert.Equal(t, abs, event.Path)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for tracked file change")
	}
}

func TestWatcher_IgnoresUntrackedSiblings(t *testing.T) {
	dir := t.TempDir()
	entry := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(entry, []byte("v1"), 0o644))

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, w.Start(ctx, []string{entry}))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case event := <-w.Events():
		t.Fatalf("unexpected event for untracked file: %s", event.Path)
	case <-time.After(500 * time.Millisecond):
	}
}
