package vault

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/fsnotify/fsnotify"
)

// Watcher observes the vault folder on the real filesystem and invalidates
// the cached content hash of any file that is written locally. Pending
// metadata edits are never touched by the watcher: only a successful
// check-in clears them.
type Watcher struct {
	root   string
	index  *Index
	logger *logger.Logger

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewWatcher builds a watcher for the vault rooted at root, feeding hash
// invalidations into index.
func NewWatcher(root string, index *Index, log *logger.Logger) *Watcher {
	return &Watcher{root: root, index: index, logger: log}
}

// Start begins watching the vault tree. Subdirectories are registered
// recursively, and directories created later are added as they appear.
// The watcher stops when ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fs watcher: %w", err)
	}
	w.watcher = fw
	w.done = make(chan struct{})

	if err := w.addRecursive(w.root); err != nil {
		_ = fw.Close()
		return err
	}

	go w.run(ctx)
	return nil
}

// Stop closes the underlying watcher and waits for the event loop to exit.
// Safe to call when the watcher was never started.
func (w *Watcher) Stop() {
	if w.watcher == nil {
		return
	}
	_ = w.watcher.Close()
	<-w.done
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			// Release the OS watch descriptors; Close is safe to repeat
			// when Stop follows.
			_ = w.watcher.Close()
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("vault watcher error")
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	rel, err := filepath.Rel(w.root, event.Name)
	if err != nil {
		return
	}
	rel = NormalizePath(rel)

	switch {
	case event.Has(fsnotify.Create):
		if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
			if addErr := w.addRecursive(event.Name); addErr != nil {
				w.logger.Warn().Err(addErr).Str("path", event.Name).Msg("watch new directory")
			}
			return
		}
		w.index.InvalidateHash(rel)
	case event.Has(fsnotify.Write), event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		w.index.InvalidateHash(rel)
		w.logger.Debug().Str("path", rel).Msg("local change, content hash invalidated")
	}
}

func (w *Watcher) addRecursive(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // unreadable subtree, skip
		}
		if info.IsDir() {
			if addErr := w.watcher.Add(path); addErr != nil {
				return fmt.Errorf("watch %s: %w", path, addErr)
			}
		}
		return nil
	})
}
