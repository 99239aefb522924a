package config

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/okseby/huntr/errors"
	"github.com/okseby/huntr/logger"
)

// Watcher watches a config file for changes and triggers reload callbacks.
// Rapid successive writes (editors, rsync) are debounced into one reload.
type Watcher struct {
	configPath     string
	watcher        *fsnotify.Watcher
	callbacks      []ReloadCallback
	mu             sync.RWMutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
}

// ReloadCallback is called with the freshly loaded config after a change.
type ReloadCallback func(*Config) error

// NewWatcher creates a watcher for the given config file.
func NewWatcher(configPath string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	if err := fsw.Add(configPath); err != nil {
		fsw.Close()
		return nil, errors.Wrapf(err, "failed to watch config file %s", configPath)
	}

	return &Watcher{
		configPath:     configPath,
		watcher:        fsw,
		debouncePeriod: 500 * time.Millisecond,
	}, nil
}

// OnReload registers a callback to be called when config is reloaded
func (w *Watcher) OnReload(callback ReloadCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Start begins watching for config file changes
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Stop stops watching for config changes
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
				logger.Logger.Infow("config change detected",
					logger.FieldFile, event.Name,
					"op", event.Op.String())
				w.scheduleReload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Logger.Warnw("config watcher error",
				logger.FieldError, err)
		}
	}
}

// scheduleReload debounces rapid file changes and triggers reload
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		if err := w.reload(); err != nil {
			logger.Logger.Errorw("config reload failed",
				logger.FieldError, err)
		}
	})
}

func (w *Watcher) reload() error {
	Reset()

	newConfig, err := Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger.Logger.Infow("config reloaded",
		logger.FieldPath, w.configPath)

	w.mu.RLock()
	callbacks := make([]ReloadCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()

	for _, callback := range callbacks {
		if err := callback(newConfig); err != nil {
			// Keep calling the remaining callbacks.
			logger.Logger.Warnw("config reload callback error",
				logger.FieldError, err)
		}
	}

	return nil
}
