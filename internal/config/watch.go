package config

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 100 * time.Millisecond

// Watch monitors the config file in root and invokes onChange with the
// freshly loaded configuration whenever it is written or replaced. Events
// are debounced so editors that write in multiple steps trigger a single
// reload. The returned stop function releases the watcher.
func Watch(root string, onChange func(*Config)) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: most editors replace the file on
	// save, which would silently drop a file-level watch.
	if err := watcher.Add(root); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})

	go func() {
		defer watcher.Close()

		var debounceTimer *time.Timer
		for {
			select {
			case <-done:
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != ConfigFile {
					continue
				}
				relevant := event.Op&fsnotify.Create != 0 ||
					event.Op&fsnotify.Write != 0 ||
					event.Op&fsnotify.Rename != 0
				if !relevant {
					continue
				}

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDelay, func() {
					cfg, err := Load(root)
					if err != nil {
						return
					}
					onChange(cfg)
				})

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	var stopped bool
	stop = func() {
		if !stopped {
			stopped = true
			close(done)
		}
	}
	return stop, nil
}
