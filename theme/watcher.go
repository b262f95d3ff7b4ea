package theme

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher follows external edits of the preference file and publishes the
// new theme on Changes. It watches the parent directory because Store.Save
// replaces the file by rename.
type Watcher struct {
	mu      sync.Mutex
	store   *Store
	watcher *fsnotify.Watcher
	logger  *zap.Logger
	changes chan Theme
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
	last    Theme
}

// NewWatcher creates a watcher for the store's file. current is the theme the
// caller already has, so an unchanged file does not produce an event.
func NewWatcher(store *Store, current Theme, logger *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	return &Watcher{
		store:   store,
		watcher: fw,
		logger:  logger.Named("theme-watcher"),
		changes: make(chan Theme, 4),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		last:    current,
	}, nil
}

// Changes delivers themes loaded after the file changed
func (w *Watcher) Changes() <-chan Theme {
	return w.changes
}

// Expect records t as the theme the file is about to hold. A following
// change to t is not published.
func (w *Watcher) Expect(t Theme) {
	w.mu.Lock()
	w.last = t
	w.mu.Unlock()
}

// Start begins watching. It is non-blocking and idempotent.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	if err := w.watcher.Add(filepath.Dir(w.store.Path())); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.store.Path()), err)
	}
	w.running = true
	go w.run(ctx)
	return nil
}

// Stop ends the watch loop, waits for it to exit and releases the watcher
func (w *Watcher) Stop() {
	w.mu.Lock()
	running := w.running
	w.running = false
	w.mu.Unlock()

	if running {
		close(w.stopCh)
		<-w.doneCh
	}
	if err := w.watcher.Close(); err != nil {
		w.logger.Warn("failed to close file watcher", zap.Error(err))
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	target := filepath.Clean(w.store.Path())
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) reload() {
	w.mu.Lock()
	last := w.last
	w.mu.Unlock()

	t, err := w.store.Load(last)
	if err != nil {
		w.logger.Warn("ignoring unreadable theme file", zap.Error(err))
		return
	}

	w.mu.Lock()
	if t == w.last {
		w.mu.Unlock()
		return
	}
	w.last = t
	w.mu.Unlock()
	w.logger.Debug("theme file changed", zap.String("theme", t.String()))

	select {
	case w.changes <- t:
	default:
		// The game loop drains this every tick, dropping is fine
		w.logger.Debug("theme change dropped, consumer is behind")
	}
}
