package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/erpbridge/odoorest/logging"

	"github.com/fsnotify/fsnotify"
)

const namedLogger = "cfgwatcher"

// Watcher is looking for updates in the configuration file.
type Watcher struct {
	log    *logging.Logger
	loader *Loader
	cfg    Config

	// applied after every load, this is how flags and environment keep
	// precedence over the file
	overrides func(*Config) error

	cfgUpdateListeners []func(Config)
	mu                 sync.Mutex
}

type WatcherOption func(*Watcher)

// Use registers a function applied to the configuration after each load.
func Use(overrides func(*Config) error) WatcherOption {
	return func(w *Watcher) {
		w.overrides = overrides
	}
}

// NewWatcher loads the configuration then watches its file until ctx is done.
func NewWatcher(ctx context.Context, log *logging.Logger, loader *Loader, opts ...WatcherOption) (*Watcher, error) {
	watcherlog := log.Named(namedLogger)
	// set this logger to debug level as we want to be notified for any configuration changes at any time
	watcherlog.SetLevel(logging.DebugLevel)
	w := &Watcher{
		log:                watcherlog,
		loader:             loader,
		cfgUpdateListeners: []func(Config){},
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := w.load(); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// watch the directory, editors replace the file rather than writing it
	if err := watcher.Add(filepath.Dir(loader.ConfigFilePath())); err != nil {
		watcher.Close()
		return nil, err
	}

	w.log.Info("config watcher started successfully",
		logging.String("config", loader.ConfigFilePath()))

	go w.watch(ctx, watcher)

	return w, nil
}

// Get return the last update of the configuration
func (w *Watcher) Get() Config {
	w.mu.Lock()
	conf := w.cfg
	w.mu.Unlock()
	return conf
}

// OnConfigUpdate register a function to be called when the configuration is getting updated
func (w *Watcher) OnConfigUpdate(fns ...func(Config)) {
	w.mu.Lock()
	w.cfgUpdateListeners = append(w.cfgUpdateListeners, fns...)
	w.mu.Unlock()
}

func (w *Watcher) load() error {
	cfg := NewDefaultConfig()
	if err := w.loader.Load(&cfg); err != nil {
		return err
	}
	if w.overrides != nil {
		if err := w.overrides(&cfg); err != nil {
			return err
		}
	}

	w.mu.Lock()
	w.cfg = cfg
	w.mu.Unlock()
	return nil
}

func (w *Watcher) notify() {
	w.mu.Lock()
	cfg := w.cfg
	listeners := make([]func(Config), len(w.cfgUpdateListeners))
	copy(listeners, w.cfgUpdateListeners)
	w.mu.Unlock()

	for _, f := range listeners {
		f(cfg)
	}
}

func (w *Watcher) watch(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()
	path := filepath.Clean(w.loader.ConfigFilePath())
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if event.Has(fsnotify.Rename) || event.Has(fsnotify.Create) {
				// vi writes a temporary file then renames it, give it
				// time to land
				time.Sleep(50 * time.Millisecond)
			}
			w.log.Info("configuration updated", logging.String("event", event.Name))
			if err := w.load(); err != nil {
				w.log.Error("unable to load configuration", logging.Error(err))
				continue
			}
			w.notify()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.log.Error("config watcher received error event", logging.Error(err))
		case <-ctx.Done():
			w.log.Debug("config watcher ctx done")
			return
		}
	}
}
