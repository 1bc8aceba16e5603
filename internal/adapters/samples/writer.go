// Package samples bundles the default workloads and writes them to disk.
package samples

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/wl/internal/core/ports"
	"go.trai.ch/zerr"
)

// ErrOutputExists is returned when the output directory is already present.
var ErrOutputExists = zerr.New("output directory already exists")

//go:embed workloads
var bundled embed.FS

const root = "workloads"

var _ ports.SampleWriter = (*Writer)(nil)

// Writer implements ports.SampleWriter over an fs.FS rooted at the sample tree.
type Writer struct {
	files fs.FS
}

// NewWriter returns a Writer over the bundled workloads.
func NewWriter() *Writer {
	sub, err := fs.Sub(bundled, root)
	if err != nil {
		panic(err) // embedded tree is fixed at build time
	}
	return NewWriterFrom(sub)
}

// NewWriterFrom returns a Writer over files.
func NewWriterFrom(files fs.FS) *Writer {
	return &Writer{files: files}
}

// Files lists the relative paths of every sample, in lexical order.
func (w *Writer) Files() ([]string, error) {
	var out []string
	err := fs.WalkDir(w.files, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list samples")
	}
	return out, nil
}

// Write creates dir and copies every sample into it. An existing dir is refused
// so a previous edit of the samples is never overwritten.
func (w *Writer) Write(dir string) (int, error) {
	if _, err := os.Stat(dir); err == nil {
		return 0, zerr.With(zerr.Wrap(ErrOutputExists, "refusing to overwrite"), "path", dir)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return 0, zerr.With(zerr.Wrap(err, "failed to stat output directory"), "path", dir)
	}

	files, err := w.Files()
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", dir)
	}

	for _, rel := range files {
		data, err := fs.ReadFile(w.files, rel)
		if err != nil {
			return 0, zerr.With(zerr.Wrap(err, "failed to read sample"), "sample", rel)
		}
		dest := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
			return 0, zerr.With(zerr.Wrap(err, "failed to create sample directory"), "path", dest)
		}
		if err := os.WriteFile(dest, data, 0o644); err != nil { //nolint:gosec // samples are meant to be read by the user
			return 0, zerr.With(zerr.Wrap(err, "failed to write sample"), "path", dest)
		}
	}
	return len(files), nil
}
