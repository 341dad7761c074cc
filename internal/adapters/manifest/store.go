// Package manifest persists resolved version tags as a JSON manifest.
package manifest

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/assetstamp/stamp/internal/core/domain"
	"github.com/assetstamp/stamp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestStore = (*FileStore)(nil)

// FileStore implements ports.ManifestStore backed by a single manifest file
// under the project's stamp directory. The whole manifest is read and written
// on each operation; the file stays small (one entry per unit) and the
// read-modify-write keeps it consumable by templating code outside this tool.
type FileStore struct {
	root string
	mu   sync.Mutex
}

// NewFileStore creates a FileStore rooted at the given project directory.
func NewFileStore(root string) *FileStore {
	return &FileStore{root: root}
}

// Get retrieves the record for a given unit name.
// Returns nil, nil if the manifest or the entry does not exist.
func (s *FileStore) Get(unitName string) (*domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}

	record, ok := records[unitName]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record, creating the stamp directory on first write.
func (s *FileStore) Put(record domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}
	records[record.UnitName] = record

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}

	filename := s.filename()
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}

	//nolint:gosec // Path is constructed from the trusted project root
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}

	return nil
}

func (s *FileStore) load() (map[string]domain.Record, error) {
	//nolint:gosec // Path is constructed from the trusted project root
	data, err := os.ReadFile(s.filename())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]domain.Record{}, nil
		}
		return nil, zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
	}

	records := map[string]domain.Record{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
	}
	return records, nil
}

func (s *FileStore) filename() string {
	return domain.DefaultManifestPath(s.root)
}
