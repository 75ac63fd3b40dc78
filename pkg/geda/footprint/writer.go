package footprint

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// Extension is appended to a footprint's name to form its filename.
const Extension = ".fp"

// Writer persists footprints as one file per footprint in a directory.
// The filesystem is abstracted so tests can run against an in-memory fs.
type Writer struct {
	fs  afero.Fs
	dir string
}

// NewWriter returns a Writer placing files in dir on the given filesystem.
func NewWriter(fs afero.Fs, dir string) *Writer {
	return &Writer{fs: fs, dir: dir}
}

// Write serializes f and writes it to <dir>/<name>.fp, overwriting any
// existing file and creating the directory if needed. Nothing is written
// if serialization fails, so a file on disk is never partial.
func (w *Writer) Write(f *Footprint) error {
	text, err := f.Format()
	if err != nil {
		return err
	}
	if w.dir != "" {
		if err := w.fs.MkdirAll(w.dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", w.dir, err)
		}
	}
	path := filepath.Join(w.dir, f.Name+Extension)
	if err := afero.WriteFile(w.fs, path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Generate creates a footprint with the given name, runs build to populate
// it, and writes the result exactly once on success. If build returns an
// error the write is skipped entirely and no file is created or touched.
func (w *Writer) Generate(name string, build func(*Footprint) error) error {
	f := New(name)
	if err := build(f); err != nil {
		return fmt.Errorf("footprint %q: %w", name, err)
	}
	return w.Write(f)
}
