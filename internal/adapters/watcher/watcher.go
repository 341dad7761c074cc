// Package watcher implements file system watching for continuous re-stamping.
package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/assetstamp/stamp/internal/core/domain"
	"github.com/assetstamp/stamp/internal/core/ports"
	"github.com/fsnotify/fsnotify"
)

var _ ports.Watcher = (*Watcher)(nil)

// skippedDirectories are directories that are never watched. The stamp
// directory is excluded so manifest writes do not feed back as change events.
var skippedDirectories = map[string]bool{
	".git":              true,
	".jj":               true,
	"node_modules":      true,
	domain.StampDirName: true,
}

const eventChannelBuffer = 100

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	events    chan ports.WatchEvent
}

// NewWatcher creates a new file system watcher.
func NewWatcher(logger ports.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		logger:    logger,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start begins watching the given root directory recursively.
func (w *Watcher) Start(ctx context.Context, root string) error {
	for dir := range w.directories(root) {
		if err := w.fsWatcher.Add(dir); err != nil {
			return err
		}
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of file system events.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// directories yields every watchable directory under root.
func (w *Watcher) directories(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable directories are skipped, not fatal.
				return nil //nolint:nilerr // Intentional, keep walking
			}
			if !d.IsDir() {
				return nil
			}
			if skippedDirectories[d.Name()] {
				return fs.SkipDir
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(ctx, event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error: " + err.Error())
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	watchEvent, ok := convertEvent(event)
	if !ok {
		return
	}

	select {
	case w.events <- watchEvent:
	case <-ctx.Done():
		return
	}

	// Newly created directories need their own watches.
	if watchEvent.Operation == ports.OpCreate {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !skippedDirectories[info.Name()] {
			for dir := range w.directories(event.Name) {
				_ = w.fsWatcher.Add(dir)
			}
		}
	}
}

// convertEvent maps an fsnotify event onto a ports.WatchEvent.
// Chmod-only events carry no content change and are dropped.
func convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	var op ports.WatchOperation
	switch {
	case event.Op.Has(fsnotify.Write):
		op = ports.OpWrite
	case event.Op.Has(fsnotify.Create):
		op = ports.OpCreate
	case event.Op.Has(fsnotify.Remove):
		op = ports.OpRemove
	case event.Op.Has(fsnotify.Rename):
		op = ports.OpRename
	default:
		return ports.WatchEvent{}, false
	}

	return ports.WatchEvent{Path: event.Name, Operation: op}, true
}
