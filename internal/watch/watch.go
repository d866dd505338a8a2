// Package watch re-runs a callback when VHDL files under a set of roots change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/yaklabco/govsg/internal/logging"
	"github.com/yaklabco/govsg/pkg/fsutil"
)

// DefaultDebounce is how long the watcher waits for more events before
// reporting a batch.
const DefaultDebounce = 300 * time.Millisecond

// Options configures a Watcher.
type Options struct {
	// Roots are the files and directories to watch. Directories are
	// watched recursively; hidden directories are skipped.
	Roots []string

	// Debounce is the quiet period before a batch is flushed.
	// Zero means DefaultDebounce.
	Debounce time.Duration

	// Accept filters changed paths. Nil accepts every file.
	Accept func(path string) bool
}

// Handler receives the sorted absolute paths of files whose content changed.
type Handler func(ctx context.Context, paths []string) error

// Watcher batches file system events into content changes.
type Watcher struct {
	opts    Options
	fsw     *fsnotify.Watcher
	pending map[string]struct{}
	hashes  map[string][32]byte
}

// New creates a Watcher and registers every directory under opts.Roots.
func New(opts Options) (*Watcher, error) {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		opts:    opts,
		fsw:     fsw,
		pending: make(map[string]struct{}),
		hashes:  make(map[string][32]byte),
	}

	for _, root := range opts.Roots {
		if err := w.addRoot(root); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	return w, nil
}

// Close stops the underlying file system watcher.
func (w *Watcher) Close() error {
	if err := w.fsw.Close(); err != nil {
		return fmt.Errorf("close watcher: %w", err)
	}
	return nil
}

// Prime records the current content of paths so that only later edits
// are reported.
func (w *Watcher) Prime(ctx context.Context, paths []string) {
	for _, path := range paths {
		w.remember(ctx, path)
	}
}

// Run delivers batches of changed files to handle until ctx is done.
// A handler error stops the loop and is returned.
func (w *Watcher) Run(ctx context.Context, handle Handler) error {
	logger := logging.FromContext(ctx)

	ticker := time.NewTicker(w.opts.Debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", logging.FieldError, err)

		case <-ticker.C:
			changed := w.flush(ctx)
			if len(changed) == 0 {
				continue
			}
			logger.Debug("files changed", logging.FieldFiles, len(changed))
			if err := handle(ctx, changed); err != nil {
				return err
			}
			// Fixes written by the handler must not trigger another batch.
			w.Prime(ctx, changed)
		}
	}
}

func (w *Watcher) addRoot(root string) error {
	abs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}
	if !info.IsDir() {
		// Editors replace files on save, so the parent directory is watched.
		return w.add(filepath.Dir(abs))
	}

	return filepath.WalkDir(abs, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			return nil
		}
		if path != abs && hidden(path) {
			return filepath.SkipDir
		}
		return w.add(path)
	})
}

func (w *Watcher) add(dir string) error {
	if err := w.fsw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	return nil
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if !hidden(event.Name) {
				if err := w.addRoot(event.Name); err != nil {
					logging.FromContext(ctx).Debug("watch new directory failed",
						logging.FieldPath, event.Name, logging.FieldError, err)
				}
			}
			return
		}
	}

	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		delete(w.hashes, event.Name)
		delete(w.pending, event.Name)
		return
	}

	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	if hidden(event.Name) || (w.opts.Accept != nil && !w.opts.Accept(event.Name)) {
		return
	}
	w.pending[event.Name] = struct{}{}
}

// flush returns the pending paths whose content differs from the last
// recorded version.
func (w *Watcher) flush(ctx context.Context) []string {
	if len(w.pending) == 0 {
		return nil
	}

	var changed []string
	for path := range w.pending {
		delete(w.pending, path)
		if w.remember(ctx, path) {
			changed = append(changed, path)
		}
	}

	sort.Strings(changed)
	return changed
}

// remember stores the content hash of path and reports whether it changed.
func (w *Watcher) remember(ctx context.Context, path string) bool {
	_, snap, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		if !errors.Is(err, fsutil.ErrNotFound) {
			logging.FromContext(ctx).Debug("watch read failed", logging.FieldPath, path, logging.FieldError, err)
		}
		delete(w.hashes, path)
		return false
	}

	old, seen := w.hashes[path]
	w.hashes[path] = snap.Hash
	return !seen || old != snap.Hash
}

func hidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") && base != "." && base != ".."
}
