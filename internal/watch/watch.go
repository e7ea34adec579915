// Package watch reports when a single file changes on disk. The frame loop polls Changed once per frame,
// so the watcher goroutine never touches render state.
package watch

import (
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// File watches one file. Editors often replace a file instead of writing it in place, so the parent
// directory is watched and events are filtered by name.
type File struct {
	path    string
	w       *fsnotify.Watcher
	changed atomic.Bool
	done    chan struct{}

	// OnError, if set, receives watcher errors. Called on the watcher goroutine.
	OnError func(error)
}

// New starts watching path. Close must be called to release the watcher.
func New(path string) (*File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	f := &File{path: abs, w: w, done: make(chan struct{})}
	go f.run()
	return f, nil
}

func (f *File) run() {
	defer close(f.done)
	for {
		select {
		case ev, ok := <-f.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != f.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				f.changed.Store(true)
			}
		case err, ok := <-f.w.Errors:
			if !ok {
				return
			}
			if f.OnError != nil {
				f.OnError(err)
			}
		}
	}
}

// Path returns the absolute path being watched.
func (f *File) Path() string {
	return f.path
}

// Changed reports whether the file changed since the last call, and clears the flag.
func (f *File) Changed() bool {
	return f.changed.Swap(false)
}

// Close stops the watcher and waits for its goroutine to exit.
func (f *File) Close() error {
	err := f.w.Close()
	<-f.done
	return err
}
