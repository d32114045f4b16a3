package fs

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"

	"article-tui/internal/logger"
)

func TestWatchFileReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "post.md")
	other := filepath.Join(dir, "other.md")
	require.NoError(t, os.WriteFile(path, []byte("# one"), 0o644))

	fw, err := NewFileWatcher(context.Background(), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = fw.Close() })

	var mu sync.Mutex
	var got []FileChangeEvent
	require.NoError(t, fw.WatchFile(path, func(e FileChangeEvent) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e)
	}))

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("# two"), 0o644))

	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		for _, e := range got {
			if e.Path == abs && e.Reloadable() {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	for _, e := range got {
		require.Equal(t, abs, e.Path, "events for other files must be filtered")
	}
}

func TestUnwatchFileStopsCallbacks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "post.md")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	fw, err := NewFileWatcher(context.Background(), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = fw.Close() })

	require.NoError(t, fw.WatchFile(path, func(FileChangeEvent) {}))
	require.NoError(t, fw.UnwatchFile(path))
	require.NoError(t, fw.UnwatchFile(path))

	fw.mu.RLock()
	defer fw.mu.RUnlock()
	require.Empty(t, fw.callbacks)
	require.Empty(t, fw.dirs)
}

func TestConvertEvent(t *testing.T) {
	cases := map[fsnotify.Op]FileOperation{
		fsnotify.Create: FileCreated,
		fsnotify.Write:  FileModified,
		fsnotify.Remove: FileDeleted,
		fsnotify.Rename: FileRenamed,
		fsnotify.Chmod:  FileModified,
	}
	for op, want := range cases {
		got := convertEvent("/a", fsnotify.Event{Name: "/a", Op: op})
		require.Equal(t, want, got.Operation, op.String())
	}
	require.Equal(t, "renamed", FileRenamed.String())
	require.Equal(t, "unknown", FileOperation(42).String())
}
