package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nac/internal/config"
)

func startWatcher(t *testing.T, paths ...string) <-chan string {
	t.Helper()
	changed := make(chan string, 16)

	cfg := config.Default()
	cfg.Watch.Debounce = config.Duration{}
	w, err := New(cfg, func(path string) { changed <- filepath.Base(path) })
	require.NoError(t, err)
	for _, p := range paths {
		require.NoError(t, w.Add(p))
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return changed
}

func waitFor(t *testing.T, changed <-chan string, name string) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case got := <-changed:
			if got == name {
				return
			}
		case <-timeout:
			t.Fatalf("no change reported for %s", name)
		}
	}
}

func TestWatchDirectory(t *testing.T) {
	dir := t.TempDir()
	changed := startWatcher(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("# x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.nac"), []byte("let x = 1\n"), 0o644))

	waitFor(t, changed, "main.nac")
}

func TestWatchSingleFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.nac")
	other := filepath.Join(dir, "other.nac")
	require.NoError(t, os.WriteFile(target, []byte("let a = 1\n"), 0o644))

	changed := startWatcher(t, target)

	require.NoError(t, os.WriteFile(other, []byte("let b = 1\n"), 0o644))
	require.NoError(t, os.WriteFile(target, []byte("let a = 2\n"), 0o644))

	waitFor(t, changed, "target.nac")
	select {
	case got := <-changed:
		assert.Equal(t, "target.nac", got)
	default:
	}
}

func TestAddMissingPath(t *testing.T) {
	w, err := New(nil, func(string) {})
	require.NoError(t, err)
	defer w.Close()

	assert.Error(t, w.Add(filepath.Join(t.TempDir(), "missing.nac")))
}
