package kvstore

import (
	"fmt"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports keys rewritten by another process. Only the file backend
// can be watched; the sqlite backend funnels every key into one db file.
type Watcher struct {
	fsw    *fsnotify.Watcher
	logger *slog.Logger
	keys   chan string
	done   chan struct{}
}

func WatchFileStore(store *FileStore, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("new watcher: %w", err)
	}
	if err := fsw.Add(store.Dir()); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", store.Dir(), err)
	}
	w := &Watcher{
		fsw:    fsw,
		logger: logger,
		keys:   make(chan string, 16),
		done:   make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Keys delivers the key of every committed external write. Slow consumers
// miss events rather than block the watcher.
func (w *Watcher) Keys() <-chan string {
	return w.keys
}

func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Rename) {
				continue
			}
			key := KeyFromPath(ev.Name)
			if key == "" {
				continue
			}
			select {
			case w.keys <- key:
			default:
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("store watcher", "error", err)
		}
	}
}
