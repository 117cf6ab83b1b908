// Package materialize turns rendered prompt text into files on disk.
//
// Writes are atomic from the caller's point of view: content goes to a temp
// file in the target directory and is renamed over the destination, so a
// failed write leaves any previous file content intact. The filesystem is a
// billy.Filesystem so tests run against memfs and production against osfs.
package materialize

import (
	"errors"
	"fmt"

	billy "github.com/go-git/go-billy/v5"
)

// ErrFilesystem is the kind for all directory and file write failures.
var ErrFilesystem = errors.New("filesystem operation failed")

// FilesystemError wraps the underlying OS error, naming the operation and
// the path it failed on.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

func (e *FilesystemError) Is(target error) bool { return target == ErrFilesystem }

// Materializer writes files through a billy filesystem.
type Materializer struct {
	fs billy.Filesystem
}

func New(fs billy.Filesystem) *Materializer {
	return &Materializer{fs: fs}
}

// Materialize ensures dir exists and writes content to path atomically,
// replacing any previous content. Creating an already existing directory is
// not an error.
func (m *Materializer) Materialize(dir, path string, content []byte) error {
	if err := m.fs.MkdirAll(dir, 0o755); err != nil {
		return &FilesystemError{Op: "create directory", Path: dir, Err: err}
	}
	return m.writeAtomic(dir, path, content)
}

// writeAtomic stages content in a temp file in the same directory and
// renames it over path. The temp file is removed on any failure.
func (m *Materializer) writeAtomic(dir, path string, content []byte) error {
	tmp, err := m.fs.TempFile(dir, ".promptgen-")
	if err != nil {
		return &FilesystemError{Op: "create temp file in", Path: dir, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = m.fs.Remove(tmpName)
		return &FilesystemError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = m.fs.Remove(tmpName)
		return &FilesystemError{Op: "close", Path: path, Err: err}
	}
	if err := m.fs.Rename(tmpName, path); err != nil {
		_ = m.fs.Remove(tmpName)
		return &FilesystemError{Op: "rename temp file to", Path: path, Err: err}
	}
	return nil
}
