package experiment

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay batches the bursts of filesystem events editors
// produce while saving
const debounceDelay time.Duration = 250 * time.Millisecond

// Watcher reloads an experiment file whenever it changes on disk.
// When a reload fails the last good suite is kept, so readers always
// see a complete, valid suite.
type Watcher struct {
	path     string
	options  LoadOptions
	onChange func(*Suite, error)

	mu      sync.RWMutex
	current *Suite
}

// NewWatcher returns a watcher for the experiment file at path.
// After every reload attempt, onChange receives either the freshly
// loaded suite or the load error. It may be called from the watcher's
// internal goroutines and must be safe for concurrent use.
func NewWatcher(path string, options LoadOptions,
	onChange func(*Suite, error)) *Watcher {
	if onChange == nil {
		onChange = func(*Suite, error) {}
	}
	return &Watcher{
		path:     path,
		options:  options,
		onChange: onChange,
	}
}

// Suite returns the most recently loaded valid suite, or nil when no
// load has succeeded yet
func (w *Watcher) Suite() *Suite {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Watch loads the file once, then blocks reloading it on every
// change until ctx is cancelled
func (w *Watcher) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the file: editors that save by
	// renaming a temporary file over the original would silently
	// drop a watch registered on the file itself
	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %v: %w", dir, err)
	}

	w.reload()

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) {
				continue
			}

			// Debounce: editors emit several events per save
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, w.reload)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.onChange(nil, fmt.Errorf("watch %v: %w", w.path, err))
		}
	}
}

// reload loads the file, keeping the previous suite when the load
// fails
func (w *Watcher) reload() {
	suite, err := LoadWithOptions(w.path, w.options)
	if err != nil {
		w.onChange(nil, err)
		return
	}

	w.mu.Lock()
	w.current = suite
	w.mu.Unlock()

	w.onChange(suite, nil)
}
