package ports

import (
	"context"
	"iter"
)

// WatchOperation describes the kind of file system change observed.
type WatchOperation int

const (
	// OpWrite indicates file content was modified.
	OpWrite WatchOperation = iota
	// OpCreate indicates a file or directory was created.
	OpCreate
	// OpRemove indicates a file or directory was removed.
	OpRemove
	// OpRename indicates a file or directory was renamed.
	OpRename
)

// WatchEvent is a single file system change.
type WatchEvent struct {
	// Path is the affected file path.
	Path string
	// Operation is the kind of change.
	Operation WatchOperation
}

// Watcher observes a directory tree for changes to unit inputs.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given root directory recursively.
	Start(ctx context.Context, root string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of file system events. The iterator ends
	// when the watcher is stopped or the context passed to Start is done.
	Events() iter.Seq[WatchEvent]
}
