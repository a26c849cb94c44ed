package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pthm/bulma/lib/logger"
)

// DefaultDebounce is how long the Watcher waits for writes to settle.
const DefaultDebounce = 500 * time.Millisecond

// Watcher reloads a config file when it changes and hands every valid
// result to a callback. Invalid edits are logged and skipped; the last good
// config stays in effect.
type Watcher struct {
	path     string
	envFile  string
	onChange func(*Config)
	log      *logger.Logger
	watcher  *fsnotify.Watcher
	reload   chan struct{}
	stopOnce sync.Once
	stop     chan struct{}

	// Debounce overrides DefaultDebounce. Set before Start.
	Debounce time.Duration
}

// NewWatcher creates a watcher for path. onChange runs on the watcher's
// goroutine.
func NewWatcher(path, envFile string, onChange func(*Config), log *logger.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: create watcher: %w", err)
	}
	return &Watcher{
		path:     abs,
		envFile:  envFile,
		onChange: onChange,
		log:      log.With("config", abs),
		watcher:  fw,
		reload:   make(chan struct{}, 1),
		stop:     make(chan struct{}),
		Debounce: DefaultDebounce,
	}, nil
}

// Start watches the directory holding the file. Editors replace files
// rather than writing them in place, which a watch on the file itself
// would miss.
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("config: watch %s: %w", dir, err)
	}
	w.log.Debug("watching config")
	go w.watchLoop(ctx)
	go w.reloadLoop(ctx)
	return nil
}

// Stop ends both loops and releases the file watcher.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stop)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) watchLoop(ctx context.Context) {
	name := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.trigger()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error(err, "config watcher error")
		}
	}
}

func (w *Watcher) trigger() {
	select {
	case w.reload <- struct{}{}:
	default:
	}
}

func (w *Watcher) reloadLoop(ctx context.Context) {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		case <-w.reload:
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.Debounce, w.apply)
		}
	}
}

func (w *Watcher) apply() {
	cfg, err := Load(w.path, w.envFile)
	if err != nil {
		w.log.Error(err, "config reload rejected")
		return
	}
	w.log.Info("config reloaded")
	w.onChange(cfg)
}
