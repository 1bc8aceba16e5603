// Package source resolves step locations into local files, downloading remote ones into the cache.
package source

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/wl/internal/core/domain"
	"go.trai.ch/wl/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultDir is the directory holding the default workload of each language.
	DefaultDir = "runtimes"

	httpClientTimeout = 30 * time.Second
	dirPerm           = 0o750
	filePerm          = 0o644
)

var _ ports.SourceResolver = (*Resolver)(nil)

// Resolver implements ports.SourceResolver.
type Resolver struct {
	httpClient *http.Client
}

// NewResolver creates a Resolver with a bounded http client.
func NewResolver() *Resolver {
	return newResolverWithClient(&http.Client{Timeout: httpClientTimeout})
}

func newResolverWithClient(client *http.Client) *Resolver {
	return &Resolver{httpClient: client}
}

// DefaultLocation returns runtimes/<lang>/main.<ext> for language runtimes.
func DefaultLocation(rt domain.Runtime) string {
	return filepath.Join(DefaultDir, string(rt.Language), "main."+rt.Extension())
}

// IsHTTPURL reports whether location is fetched over http(s).
func IsHTTPURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Resolve returns the local path of the step's source.
// Remote sources are downloaded once into the url dir and copied into the source dir;
// both copies are reused by later runs.
func (r *Resolver) Resolve(ctx context.Context, step *domain.Step, rt domain.Runtime, cache domain.CacheLayout) (string, error) {
	location := strings.TrimSpace(step.Location)
	if location == "" {
		path := DefaultLocation(rt)
		if err := requireFile(path); err != nil {
			return "", zerr.With(err, "hint", "write the bundled workloads with `wl samples -o "+DefaultDir+"`")
		}
		return path, nil
	}

	if !IsHTTPURL(location) {
		if err := requireFile(location); err != nil {
			return "", err
		}
		return location, nil
	}

	ext := rt.Extension()
	raw := cache.URLSourcePath(location, ext)
	if !exists(raw) {
		if err := r.download(ctx, location, raw); err != nil {
			return "", err
		}
	}

	resolved := cache.ResolvedSourcePath(location, ext)
	if !exists(resolved) {
		if err := copyFile(raw, resolved); err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to copy downloaded source"), "path", resolved)
		}
	}
	return resolved, nil
}

func (r *Resolver) download(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrSourceDownload, err.Error()), "url", url)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrSourceDownload, err.Error()), "url", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := zerr.With(zerr.Wrap(domain.ErrSourceDownload, "unexpected status"), "status_code", resp.StatusCode)
		return zerr.With(statusErr, "url", url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrSourceDownload, err.Error()), "url", url)
	}

	if err := atomicWriteFile(dest, body); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to store download"), "path", dest)
	}
	return nil
}

func requireFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(domain.ErrSourceNotFound, "no such file"), "path", path)
		}
		return zerr.With(zerr.Wrap(err, "failed to stat source"), "path", path)
	}
	if info.IsDir() {
		return zerr.With(zerr.Wrap(domain.ErrSourceNotFound, "location is a directory"), "path", path)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func copyFile(src, dest string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return atomicWriteFile(dest, data)
}

// atomicWriteFile writes through a temp file in the same directory so readers
// never see a partial source.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "source-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
