// control/hotreload.go
// Author: momentics <momentics@gmail.com>
//
// Manages global hot-reload hooks for config changes and an optional
// file watcher that fires them when a config file is rewritten.
// Keeps a TriggerHotReloadSync for deterministic test notification.

package control

import (
	"log/slog"
	"sync"

	"github.com/fsnotify/fsnotify"
)

var (
	reloadMu    sync.Mutex
	reloadHooks []func()
)

// RegisterReloadHook adds a new component reload listener.
func RegisterReloadHook(fn func()) {
	reloadMu.Lock()
	reloadHooks = append(reloadHooks, fn)
	reloadMu.Unlock()
}

// TriggerHotReload dispatches all reload hooks asynchronously.
func TriggerHotReload() {
	reloadMu.Lock()
	hooks := make([]func(), len(reloadHooks))
	copy(hooks, reloadHooks)
	reloadMu.Unlock()
	for _, fn := range hooks {
		go fn()
	}
}

// TriggerHotReloadSync invokes all reload hooks synchronously (for test determinism).
func TriggerHotReloadSync() {
	reloadMu.Lock()
	hooks := make([]func(), len(reloadHooks))
	copy(hooks, reloadHooks)
	reloadMu.Unlock()
	for _, fn := range hooks {
		fn()
	}
}

// ConfigWatcher triggers hot reload when a watched config file changes.
type ConfigWatcher struct {
	watcher *fsnotify.Watcher
	log     *slog.Logger
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewConfigWatcher watches path and fires the global reload hooks on
// every write or create event touching it.
func NewConfigWatcher(path string, log *slog.Logger) (*ConfigWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, err
	}

	cw := &ConfigWatcher{
		watcher: w,
		log:     log,
		done:    make(chan struct{}),
	}
	cw.wg.Add(1)
	go cw.loop()
	return cw, nil
}

func (cw *ConfigWatcher) loop() {
	defer cw.wg.Done()
	for {
		select {
		case ev, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				cw.log.Debug("config changed, dispatching reload", "file", ev.Name)
				TriggerHotReload()
			}
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.log.Warn("config watcher error", "err", err)
		case <-cw.done:
			return
		}
	}
}

// Close stops watching. Pending reload hooks keep running.
func (cw *ConfigWatcher) Close() error {
	close(cw.done)
	err := cw.watcher.Close()
	cw.wg.Wait()
	return err
}
