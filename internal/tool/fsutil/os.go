package fsutil

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// writeCloser defines the minimal interface for a writable file handle.
// This abstraction allows testing without depending on concrete *os.File.
type writeCloser interface {
	io.Writer
	Close() error
}

// OSFileSystem implements filesystem operations using the local OS filesystem primitives.
// It uses internal function fields to enable testability via functional injection.
type OSFileSystem struct {
	// Internal syscall wrappers for testability
	create func(name string) (writeCloser, error)
	getwd  func() (string, error)
}

// NewOSFileSystem creates a new OSFileSystem with real OS syscalls.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{
		create: func(name string) (writeCloser, error) {
			return os.Create(name)
		},
		getwd: os.Getwd,
	}
}

// Stat returns file info for a path (follows symlinks).
func (r *OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads the entire file.
func (r *OSFileSystem) ReadFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

// ReadFirstLine reads through the first newline or to EOF, whichever comes first.
// The returned bytes include the newline when one was found.
func (r *OSFileSystem) ReadFirstLine(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	line, err := bufio.NewReader(file).ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return line, nil
}

// ListDir returns the names of the entries of a directory, sorted by name.
// Entry metadata is not read here so that a single unreadable entry
// cannot fail the whole listing.
func (r *OSFileSystem) ListDir(path string) ([]string, error) {
	dir, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	names, err := dir.Readdirnames(-1)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// WriteFile creates or truncates path and writes content in full.
func (r *OSFileSystem) WriteFile(path string, content []byte) (err error) {
	file, err := r.create(path)
	if err != nil {
		return &CreateError{Path: path, Cause: err}
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = &CloseError{Path: path, Cause: closeErr}
		}
	}()

	if _, err := file.Write(content); err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	return nil
}

// Getwd returns the process working directory.
func (r *OSFileSystem) Getwd() (string, error) {
	return r.getwd()
}

// Canonicalize returns the absolute path with all symlinks resolved.
// The path must exist.
func (r *OSFileSystem) Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
