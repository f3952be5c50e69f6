package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/tliron/commonlog"

	"nac/internal/config"
)

var log = commonlog.GetLogger("nac.watch")

// Handler is called with the path of a source file that was created or written.
type Handler func(path string)

// Watcher re-runs a handler whenever a watched source file changes. Files are
// watched through their directory so editors that save by renaming still
// trigger it. Calls to the handler are serialized.
type Watcher struct {
	cfg     *config.Config
	handler Handler
	watcher *fsnotify.Watcher

	mu    sync.Mutex
	files map[string]bool // explicitly watched files
	dirs  map[string]bool // directories whose matching files are all watched
}

// New creates a watcher. A nil config means the defaults.
func New(cfg *config.Config, handler Handler) (*Watcher, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	return &Watcher{
		cfg:     cfg,
		handler: handler,
		watcher: w,
		files:   make(map[string]bool),
		dirs:    make(map[string]bool),
	}, nil
}

// Add watches a single file or every source file in a directory.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return err
	}

	dir := abs
	w.mu.Lock()
	if info.IsDir() {
		w.dirs[abs] = true
	} else {
		w.files[abs] = true
		dir = filepath.Dir(abs)
	}
	w.mu.Unlock()

	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	log.Debugf("watching %s", abs)
	return nil
}

// Run dispatches change events until ctx is done. It closes the watcher on
// return.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	last := make(map[string]time.Time)
	delay := w.cfg.Watch.Debounce.Duration

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 || !w.matches(event.Name) {
				continue
			}

			if t, seen := last[event.Name]; seen && time.Since(t) < delay {
				continue
			}
			last[event.Name] = time.Now()

			log.Debugf("%s: %s", event.Op, event.Name)
			w.handler(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Errorf("watcher error: %s", err)
		}
	}
}

// Close stops watching without waiting for Run.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) matches(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.files[abs] {
		return true
	}
	return w.dirs[filepath.Dir(abs)] && w.cfg.Watches(abs)
}
