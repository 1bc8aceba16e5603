// Package cas implements the build artifact index for compiled sources.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/wl/internal/core/domain"
	"go.trai.ch/wl/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactStore = (*Store)(nil)

// Store implements ports.ArtifactStore with one flat JSON file per cache layout.
type Store struct {
	mu      sync.Mutex
	indexes map[string]*index
}

// NewStore creates an empty Store. Index files are loaded lazily on first use.
func NewStore() *Store {
	return &Store{indexes: make(map[string]*index)}
}

// Get retrieves the artifact record for a resolved source path.
func (s *Store) Get(cache domain.CacheLayout, sourcePath string) (*domain.ArtifactRecord, error) {
	idx, err := s.index(cache.ArtifactIndexPath())
	if err != nil {
		return nil, err
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	rec, ok := idx.records[sourcePath]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// Put stores the record and rewrites the index file.
func (s *Store) Put(cache domain.CacheLayout, rec domain.ArtifactRecord) error {
	idx, err := s.index(cache.ArtifactIndexPath())
	if err != nil {
		return err
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.records[rec.SourcePath] = rec
	return idx.save()
}

func (s *Store) index(path string) (*index, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path = filepath.Clean(path)
	if idx, ok := s.indexes[path]; ok {
		return idx, nil
	}

	idx := &index{path: path, records: make(map[string]domain.ArtifactRecord)}
	if err := idx.load(); err != nil {
		return nil, err
	}
	s.indexes[path] = idx
	return idx, nil
}

type index struct {
	path    string
	mu      sync.RWMutex
	records map[string]domain.ArtifactRecord
}

func (i *index) load() error {
	//nolint:gosec // Path is cleaned and derived from the cache layout
	data, err := os.ReadFile(i.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read artifact index"), "path", i.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &i.records); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unmarshal artifact index"), "path", i.path)
	}
	return nil
}

// save writes the index. The caller must hold i.mu.
func (i *index) save() error {
	data, err := json.MarshalIndent(i.records, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal artifact index")
	}

	if err := os.MkdirAll(filepath.Dir(i.path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for artifact index")
	}

	tmp := i.path + ".tmp"
	//nolint:gosec // Path is cleaned and derived from the cache layout
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write artifact index")
	}
	if err := os.Rename(tmp, i.path); err != nil {
		return zerr.Wrap(err, "failed to replace artifact index")
	}
	return nil
}
