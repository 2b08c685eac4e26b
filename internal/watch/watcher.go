// Package watch wakes the UI loop when the listed directory changes.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watcher follows a single directory at a time. Bursts of filesystem events
// collapse into one pending signal on Changes.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	changes   chan struct{}
	done      chan struct{}
	log       logrus.FieldLogger

	mu     sync.Mutex
	dir    string
	closed bool
	wg     sync.WaitGroup
}

// New creates a watcher with no directory attached.
func New(log logrus.FieldLogger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		changes:   make(chan struct{}, 1),
		done:      make(chan struct{}),
		log:       log,
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Changes delivers a value after one or more events in the watched directory.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Dir returns the directory currently watched, or "".
func (w *Watcher) Dir() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dir
}

// Watch re-targets the watcher at dir. Watching the same directory again is
// a no-op. On failure nothing is watched.
func (w *Watcher) Watch(dir string) error {
	dir = filepath.Clean(dir)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return fmt.Errorf("watcher closed")
	}
	if dir == w.dir {
		return nil
	}

	if w.dir != "" {
		// The old directory may be gone already; fsnotify drops it itself then.
		_ = w.fsWatcher.Remove(w.dir)
		w.dir = ""
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.dir = dir
	w.log.WithField("directory", dir).Debug("watching directory")
	return nil
}

// Close stops the watcher. Changes is never closed.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.done)
	err := w.fsWatcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			w.signal()
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("fsnotify watcher error")
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) signal() {
	select {
	case w.changes <- struct{}{}:
	default:
	}
}
