package ports

import (
	"context"

	"go.trai.ch/wl/internal/core/domain"
)

// SourceResolver turns a step location into a local file path.
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type SourceResolver interface {
	// Resolve returns the local source path for the step, downloading remote locations into cache.
	Resolve(ctx context.Context, step *domain.Step, rt domain.Runtime, cache domain.CacheLayout) (string, error)
}

// ArtifactStore indexes compiled artifacts so unchanged sources are not rebuilt.
type ArtifactStore interface {
	// Get returns the record for sourcePath, or nil, nil when none exists.
	Get(cache domain.CacheLayout, sourcePath string) (*domain.ArtifactRecord, error)
	// Put stores the record.
	Put(cache domain.CacheLayout, rec domain.ArtifactRecord) error
}

// SampleWriter writes the bundled sample workloads.
type SampleWriter interface {
	// Write creates dir and writes every sample into it, returning the file count.
	Write(dir string) (int, error)
}
