// Package watch triggers master-library rebuilds when the component
// directories change on disk.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/hellenic-development/kicad-librarian/pkg/aggregate"
)

// DefaultDebounce batches rapid bursts of filesystem events (a component
// download touches several files) into a single rebuild.
const DefaultDebounce = 500 * time.Millisecond

// Logger receives watcher progress messages. A nil Logger means silent
// operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

// Watcher observes a library root and invokes a rebuild callback after
// changes settle.
type Watcher struct {
	root     string
	rebuild  func()
	logger   Logger
	watcher  *fsnotify.Watcher
	debounce time.Duration

	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

// New creates a Watcher over root that calls rebuild after events settle
// for the debounce interval. A zero debounce uses DefaultDebounce.
func New(root string, debounce time.Duration, rebuild func(), logger Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		root:     root,
		rebuild:  rebuild,
		logger:   logger,
		watcher:  fsw,
		debounce: debounce,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}

	if err := w.addRecursively(root); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

// Start begins watching. It returns immediately; events are handled on a
// background goroutine until Stop is called or ctx is canceled.
func (w *Watcher) Start(ctx context.Context) {
	go w.loop(ctx)
}

// Stop halts the watcher and waits for the event loop to drain.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		<-w.doneCh
		w.watcher.Close()
	})
}

func (w *Watcher) infof(format string, args ...any) {
	if w.logger != nil {
		w.logger.Infof(format, args...)
	}
}

func (w *Watcher) warnf(format string, args ...any) {
	if w.logger != nil {
		w.logger.Warnf(format, args...)
	}
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.doneCh)

	var debounceTimer *time.Timer
	fire := make(chan struct{}, 1)
	pending := 0

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.shouldProcess(event) {
				continue
			}
			pending++

			// A freshly created component directory needs its own watch.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addRecursively(event.Name); err != nil {
						w.warnf("Could not watch new directory %s: %v", event.Name, err)
					}
				}
			}

			if debounceTimer != nil {
				if !debounceTimer.Stop() {
					select {
					case <-debounceTimer.C:
					default:
					}
				}
			}
			debounceTimer = time.AfterFunc(w.debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			if pending == 0 {
				continue
			}
			w.infof("Rebuilding after %d change(s)...", pending)
			pending = 0
			w.rebuild()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.warnf("Watcher error: %v", err)
		}
	}
}

// shouldProcess filters events down to content changes outside the
// aggregate outputs. Events under the reserved footprint directory or on
// the aggregate symbol file are produced by the rebuild itself and must
// not re-trigger it.
func (w *Watcher) shouldProcess(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}

	rel, err := filepath.Rel(w.root, event.Name)
	if err != nil {
		return false
	}
	return !ignored(rel)
}

// ignored reports whether a root-relative path belongs to the aggregate
// outputs.
func ignored(rel string) bool {
	rel = filepath.ToSlash(rel)
	if rel == aggregate.SymbolLibName {
		return true
	}
	first, _, _ := strings.Cut(rel, "/")
	return first == aggregate.FootprintDirName
}

func (w *Watcher) addRecursively(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.root {
			if rel, relErr := filepath.Rel(w.root, path); relErr == nil && ignored(rel) {
				return filepath.SkipDir
			}
		}
		return w.watcher.Add(path)
	})
}
