package app

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ShaderWatcher reports shader files changed on disk. Editors often emit
// several events per save, so a file is only reported once it has been quiet
// for the debounce period.
type ShaderWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	log      *slog.Logger

	mu      sync.Mutex
	pending map[string]time.Time

	done chan struct{}
	wg   sync.WaitGroup
}

// NewShaderWatcher watches dir for .vert and .frag changes
func NewShaderWatcher(dir string, debounce time.Duration, log *slog.Logger) (*ShaderWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create shader watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	if log == nil {
		log = slog.Default()
	}

	sw := &ShaderWatcher{
		watcher:  w,
		debounce: debounce,
		log:      log,
		pending:  make(map[string]time.Time),
		done:     make(chan struct{}),
	}
	sw.wg.Add(1)
	go sw.loop()
	return sw, nil
}

func (sw *ShaderWatcher) loop() {
	defer sw.wg.Done()
	for {
		select {
		case <-sw.done:
			return
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			sw.note(event.Name, time.Now())
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			sw.log.Warn("shader watcher error", "error", err)
		}
	}
}

func (sw *ShaderWatcher) note(path string, at time.Time) {
	name := filepath.Base(path)
	switch filepath.Ext(name) {
	case ".vert", ".frag":
	default:
		return
	}
	sw.mu.Lock()
	sw.pending[name] = at
	sw.mu.Unlock()
}

// Drain returns, sorted, the files quiet for the debounce period as of now
// and forgets them
func (sw *ShaderWatcher) Drain(now time.Time) []string {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	var ready []string
	for name, at := range sw.pending {
		if now.Sub(at) >= sw.debounce {
			ready = append(ready, name)
			delete(sw.pending, name)
		}
	}
	sort.Strings(ready)
	return ready
}

// Close stops watching
func (sw *ShaderWatcher) Close() error {
	close(sw.done)
	err := sw.watcher.Close()
	sw.wg.Wait()
	return err
}
