// Package fs provides file system adapters for walking and hashing unit inputs.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// alwaysSkipDirectories are directories never considered unit input.
var alwaysSkipDirectories = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
}

// Walker provides deterministic file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files under root in lexical order, skipping VCS
// directories and any entry matching one of the ignore patterns.
// filepath.WalkDir walks lexically, which is what keeps unit hashes
// independent of directory read order.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if skip := w.skipAction(d, ignores); skip != nil {
				return skip
			}
			if d.IsDir() {
				return nil
			}
			if w.matchesIgnore(d.Name(), ignores) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// skipAction returns filepath.SkipDir for directories that must not be
// descended into, nil otherwise.
func (w *Walker) skipAction(d fs.DirEntry, ignores []string) error {
	if !d.IsDir() {
		return nil
	}
	if alwaysSkipDirectories[d.Name()] {
		return filepath.SkipDir
	}
	if w.matchesIgnore(d.Name(), ignores) {
		return filepath.SkipDir
	}
	return nil
}

func (w *Walker) matchesIgnore(name string, ignores []string) bool {
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
