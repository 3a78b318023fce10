package store

import (
	"log"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 2 * time.Second

// Watcher triggers a snapshot reload when the observation source changes on
// disk. Bursts of filesystem events (an editor save, a sync run) collapse
// into a single reload through a debounce timer.
type Watcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
}

func WatchPath(path string, reload func()) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatcher.Add(path); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	watcher := &Watcher{watcher: fsWatcher, done: make(chan struct{})}
	go watcher.run(reload)
	return watcher, nil
}

func (watcher *Watcher) run(reload func()) {
	timer := time.NewTimer(watchDebounce)
	if !timer.Stop() {
		<-timer.C
	}
	for {
		select {
		case event, ok := <-watcher.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				timer.Reset(watchDebounce)
			}
		case err, ok := <-watcher.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("observation watch error: %v", err)
		case <-timer.C:
			reload()
		case <-watcher.done:
			return
		}
	}
}

func (watcher *Watcher) Close() error {
	close(watcher.done)
	return watcher.watcher.Close()
}
