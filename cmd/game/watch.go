package main

import (
	"log"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// CharacterWatcher watches the character data directory and flags a
// pending reload. Events arrive on fsnotify's goroutine; the game loop
// polls Dirty once per frame so the reload happens between steps.
type CharacterWatcher struct {
	watcher *fsnotify.Watcher
	dirty   atomic.Bool
	done    chan struct{}
}

// NewCharacterWatcher starts watching <configDir>/characters
func NewCharacterWatcher(configDir string) (*CharacterWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Join(configDir, "characters")); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	w := &CharacterWatcher{
		watcher: watcher,
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *CharacterWatcher) run() {
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			if !strings.HasSuffix(ev.Name, ".yaml") {
				continue
			}
			log.Printf("Character file changed: %s", filepath.Base(ev.Name))
			w.dirty.Store(true)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watch error: %v", err)
		case <-w.done:
			return
		}
	}
}

// Dirty reports and clears the pending-reload flag
func (w *CharacterWatcher) Dirty() bool {
	return w.dirty.Swap(false)
}

// Close stops the watcher
func (w *CharacterWatcher) Close() {
	close(w.done)
	_ = w.watcher.Close()
}
