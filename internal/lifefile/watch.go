package lifefile

import (
	"fmt"
	"os"
	"sync"

	"toruslife/internal/pattern"

	"github.com/fsnotify/fsnotify"
)

// Watcher parses pattern files as they appear in a store's configs directory.
// Parsed patterns are delivered on Configs; registering them is left to the
// receiver so the library is only touched from one goroutine.
type Watcher struct {
	fsw *fsnotify.Watcher

	configs chan *pattern.Config
	errors  chan error

	closeOnce sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

// WatchConfigs starts watching the configs directory, creating it if needed.
func (s *Store) WatchConfigs() (*Watcher, error) {
	dir := s.Dir(KindConfigs)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("starting watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}
	w := &Watcher{
		fsw:     fsw,
		configs: make(chan *pattern.Config, 16),
		errors:  make(chan error, 16),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Configs delivers patterns parsed from created or rewritten files.
func (w *Watcher) Configs() <-chan *pattern.Config { return w.configs }

// Errors delivers watcher and parse failures.
func (w *Watcher) Errors() <-chan error { return w.errors }

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			info, err := os.Stat(ev.Name)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			cfg, err := ImportFile(ev.Name)
			if err != nil {
				w.sendErr(err)
				continue
			}
			if cfg == nil {
				continue
			}
			select {
			case w.configs <- cfg:
			case <-w.done:
				return
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.sendErr(err)
		}
	}
}

func (w *Watcher) sendErr(err error) {
	select {
	case w.errors <- err:
	default:
	}
}
