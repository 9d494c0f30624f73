// Package watch reports when a set of files settles after a change.
//
// Files are watched through their parent directories, so a file that is
// replaced by rename (as git does with its index) keeps being observed.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"haikommit/internal/logging"
)

// DefaultDebounce is how long a file must stay quiet before it is reported.
const DefaultDebounce = 300 * time.Millisecond

// Watcher watches files and sends their path on Changes once writes to
// them have settled.
type Watcher struct {
	mu       sync.Mutex
	fsw      *fsnotify.Watcher
	files    map[string]bool
	debounce time.Duration
	pending  map[string]time.Time
	changes  chan string
	stats    Stats
}

// Stats tracks watcher activity.
type Stats struct {
	Events    int // Relevant filesystem events seen
	Fired     int // Settled changes sent on Changes
	Dropped   int // Settled changes coalesced into one already queued
	Errors    int
	LastEvent time.Time
	LastPath  string
}

// New creates a watcher for paths. A debounce of zero or less uses
// DefaultDebounce.
func New(paths []string, debounce time.Duration) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, errors.New("nothing to watch")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		fsw:      fsw,
		files:    make(map[string]bool, len(paths)),
		debounce: debounce,
		pending:  make(map[string]time.Time),
		changes:  make(chan string, 1),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		logging.WatchDebug("watching directory %s", dir)
	}
	return w, nil
}

// Changes delivers settled paths. At most one change is buffered; further
// changes while it is unread are coalesced. The channel is closed when Run
// returns.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Run processes filesystem events until ctx is done or the watcher is
// closed. It returns nil on a normal stop.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.changes)

	tick := time.NewTicker(max(w.debounce/4, 10*time.Millisecond))
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.WatchDebug("context cancelled")
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logging.Get(logging.CategoryWatch).Error("watcher error: %v", err)
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case <-tick.C:
			w.flush(time.Now())
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
		return
	}
	path, err := filepath.Abs(event.Name)
	if err != nil || !w.files[path] {
		return
	}

	logging.WatchDebug("%s %s", event.Op, path)

	w.mu.Lock()
	defer w.mu.Unlock()
	now := time.Now()
	w.stats.Events++
	w.stats.LastEvent = now
	w.stats.LastPath = path
	w.pending[path] = now
}

// flush sends every pending path that has been quiet for the debounce window.
func (w *Watcher) flush(now time.Time) {
	w.mu.Lock()
	var settled []string
	for path, at := range w.pending {
		if now.Sub(at) >= w.debounce {
			settled = append(settled, path)
			delete(w.pending, path)
		}
	}
	w.mu.Unlock()

	for _, path := range settled {
		select {
		case w.changes <- path:
			w.mu.Lock()
			w.stats.Fired++
			w.mu.Unlock()
		default:
			w.mu.Lock()
			w.stats.Dropped++
			w.mu.Unlock()
		}
	}
}

// Stats returns a snapshot of the watcher statistics.
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

// Close releases the underlying watcher. Run returns once it notices.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
