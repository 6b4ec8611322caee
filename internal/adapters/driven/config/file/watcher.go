package file

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/medlink-care/medlink-cli/internal/logger"
)

// Watcher observes the config file for writes from other processes and
// invokes a callback when session or config state may have changed on disk.
// Events are debounced because editors and atomic-save tools emit several
// events per logical write.
type Watcher struct {
	fw       *fsnotify.Watcher
	path     string
	onChange func()
	done     chan struct{}
}

// watchDebounce coalesces bursts of filesystem events into one callback.
const watchDebounce = 100 * time.Millisecond

// NewWatcher starts watching the config store's file. The callback runs on
// the watcher's goroutine; keep it short.
func NewWatcher(config *ConfigStore, onChange func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	// Watch the directory, not the file: atomic saves replace the inode
	// and a file watch would go stale after the first rewrite.
	dir := filepath.Dir(config.Path())
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := &Watcher{
		fw:       fw,
		path:     config.Path(),
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}

func (w *Watcher) loop() {
	var pending *time.Timer
	for {
		select {
		case <-w.done:
			if pending != nil {
				pending.Stop()
			}
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("config file changed on disk: %s", event.Op)
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(watchDebounce, w.onChange)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			logger.Warn("config watcher: %v", err)
		}
	}
}
