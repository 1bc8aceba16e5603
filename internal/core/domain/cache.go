package domain

import (
	"fmt"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
)

// CacheLayout derives the content-hash keyed directories for downloaded and built sources.
type CacheLayout struct {
	Base string
	// PlanDigest is the hash of the raw plan text.
	PlanDigest string
}

// NewCacheLayout returns the layout rooted at base for the given plan digest.
func NewCacheLayout(base, planDigest string) CacheLayout {
	return CacheLayout{Base: filepath.Clean(base), PlanDigest: planDigest}
}

// URLDir holds raw downloads shared by every plan.
func (c CacheLayout) URLDir() string {
	return filepath.Join(c.Base, "url")
}

// SourceDir holds resolved sources and build artifacts.
func (c CacheLayout) SourceDir() string {
	return filepath.Join(c.Base, "source")
}

// ArtifactIndexPath is the JSON index of compiled artifacts.
func (c CacheLayout) ArtifactIndexPath() string {
	return filepath.Join(c.Base, "artifacts.json")
}

// URLSourcePath is where the raw download for url is stored.
func (c CacheLayout) URLSourcePath(url, ext string) string {
	return filepath.Join(c.URLDir(), HashString(url), "source."+ext)
}

// ResolvedSourcePath is where a downloaded url is copied for execution.
func (c CacheLayout) ResolvedSourcePath(url, ext string) string {
	return filepath.Join(c.SourceDir(), HashString(url), "source."+ext)
}

// BuildPath is the compiled artifact location for a resolved source path.
func (c CacheLayout) BuildPath(sourcePath string) string {
	return filepath.Join(c.SourceDir(), HashString(sourcePath), "build")
}

// HashString returns the hex xxhash digest of s.
func HashString(s string) string {
	return FormatDigest(xxhash.Sum64String(s))
}

// HashBytes returns the hex xxhash digest of b.
func HashBytes(b []byte) string {
	return FormatDigest(xxhash.Sum64(b))
}

// FormatDigest renders a 64 bit digest as 16 hex characters.
func FormatDigest(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}
