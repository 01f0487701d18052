package watcher_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/localetree/localetree/pkg/logger"
	"github.com/localetree/localetree/pkg/watcher"
)

func TestWatch(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "en"), 0o755))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rebuilt := make(chan struct{}, 8)
	done := make(chan error, 1)

	go func() {
		done <- watcher.Watch(ctx, root, logger.NewWithWriter(io.Discard, false), func() {
			rebuilt <- struct{}{}
		})
	}()

	// Give the watcher a moment to register before triggering changes.
	time.Sleep(300 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(root, "en", "home.yml"), []byte("title: Home\n"), 0o644))

	select {
	case <-rebuilt:
	case <-time.After(10 * time.Second):
		t.Fatal("expected a rebuild after a file change")
	}

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("watcher did not shut down")
	}
}
