// Package archive wraps zip creation and extraction for backup archives.
//
// Writers support a mock mode in which no file is ever opened or written;
// every mutating call still logs what it would have done, so dry runs
// produce a faithful account of a real backup. Mock mode is detected from
// the absence of the underlying file handle rather than a separate flag,
// which keeps the mutation methods honest: there is no way to have a handle
// and still skip the write.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Writer creates one zip archive. Not safe for concurrent use; each backup
// operation owns its writer for the operation's whole duration.
type Writer struct {
	path   string
	f      *os.File
	zw     *zip.Writer
	log    zerolog.Logger
	closed bool
}

// NewWriter opens path for writing and returns a Writer around it.
func NewWriter(path string, log zerolog.Logger) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive %s: %w", path, err)
	}
	return &Writer{path: path, f: f, zw: zip.NewWriter(f), log: log}, nil
}

// NewMockWriter returns a Writer that performs no archive I/O but still
// logs every call.
func NewMockWriter(path string, log zerolog.Logger) *Writer {
	return &Writer{path: path, log: log.With().Bool("mock", true).Logger()}
}

// IsMock reports whether this writer performs no real I/O.
func (w *Writer) IsMock() bool {
	return w.f == nil
}

// Path returns the destination path the archive is (or would be) written to.
func (w *Writer) Path() string {
	return w.path
}

// AddDir adds an empty directory entry under the given logical name.
func (w *Writer) AddDir(name string) error {
	name = filepath.ToSlash(name)
	if name != "" && name[len(name)-1] != '/' {
		name += "/"
	}
	w.log.Debug().Str("entry", name).Msg("adding directory entry")
	if w.IsMock() {
		return nil
	}
	if _, err := w.zw.Create(name); err != nil {
		return fmt.Errorf("failed to add directory entry %s: %w", name, err)
	}
	return nil
}

// AddDirMirror adds a directory entry named after the given filesystem
// path, relative to root.
func (w *Writer) AddDirMirror(root, dirPath string) error {
	rel, err := filepath.Rel(root, dirPath)
	if err != nil {
		return fmt.Errorf("failed to relativize %s: %w", dirPath, err)
	}
	return w.AddDir(rel)
}

// Create starts a new file entry and returns a writer for its bytes. In
// mock mode the returned writer discards everything.
func (w *Writer) Create(name string) (io.Writer, error) {
	name = filepath.ToSlash(name)
	w.log.Debug().Str("entry", name).Msg("adding file entry")
	if w.IsMock() {
		return io.Discard, nil
	}
	entry, err := w.zw.Create(name)
	if err != nil {
		return nil, fmt.Errorf("failed to create entry %s: %w", name, err)
	}
	return entry, nil
}

// AddFile copies the file at src into the archive under the entry name.
func (w *Writer) AddFile(name, src string) error {
	entry, err := w.Create(name)
	if err != nil {
		return err
	}
	if w.IsMock() {
		return nil
	}
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			w.log.Warn().Err(err).Str("path", src).Msg("failed to close source file")
		}
	}()
	if _, err := io.Copy(entry, f); err != nil {
		return fmt.Errorf("failed to write entry %s: %w", name, err)
	}
	return nil
}

// Close finalizes the archive. It is idempotent, so callers defer it as a
// safety net and may also call it explicitly on the success path; the
// deferred call then does nothing. A failed implicit close is logged at
// warn level by CloseQuietly.
func (w *Writer) Close() error {
	if w.closed || w.IsMock() {
		w.closed = true
		return nil
	}
	w.closed = true
	if err := w.zw.Close(); err != nil {
		w.f.Close()
		return fmt.Errorf("failed to finalize archive %s: %w", w.path, err)
	}
	if err := w.f.Close(); err != nil {
		return fmt.Errorf("failed to close archive %s: %w", w.path, err)
	}
	return nil
}

// CloseQuietly closes the writer, logging rather than returning any error.
// Meant for deferred cleanup after the happy path already closed.
func (w *Writer) CloseQuietly() {
	if err := w.Close(); err != nil {
		w.log.Warn().Err(err).Str("path", w.path).Msg("implicit archive finalize failed")
	}
}
