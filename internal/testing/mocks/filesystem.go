package mocks

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MockFileInfo implements os.FileInfo
type MockFileInfo struct {
	NameVal    string
	SizeVal    int64
	ModeVal    os.FileMode
	ModTimeVal time.Time
	IsDirVal   bool
}

func (f *MockFileInfo) Name() string       { return f.NameVal }
func (f *MockFileInfo) Size() int64        { return f.SizeVal }
func (f *MockFileInfo) Mode() os.FileMode  { return f.ModeVal }
func (f *MockFileInfo) ModTime() time.Time { return f.ModTimeVal }
func (f *MockFileInfo) IsDir() bool        { return f.IsDirVal }
func (f *MockFileInfo) Sys() any           { return nil }

// MockFileSystem implements the filesystem interfaces of the tool packages
// with in-memory storage.
type MockFileSystem struct {
	Mu        sync.RWMutex
	Files     map[string][]byte        // path -> content
	FileInfos map[string]*MockFileInfo // path -> metadata
	Dirs      map[string]bool          // path -> is directory
	Symlinks  map[string]string        // symlink path -> target path
	Errors    map[string]error         // path -> error to return
	OpErrors  map[string]error         // operation -> error to return
	WorkDir   string
	// Writes records every WriteFile call in order.
	Writes []string
}

// NewMockFileSystem creates a new mock filesystem rooted at workDir.
func NewMockFileSystem(workDir string) *MockFileSystem {
	fs := &MockFileSystem{
		Files:     make(map[string][]byte),
		FileInfos: make(map[string]*MockFileInfo),
		Dirs:      make(map[string]bool),
		Symlinks:  make(map[string]string),
		Errors:    make(map[string]error),
		OpErrors:  make(map[string]error),
		WorkDir:   workDir,
	}
	fs.CreateDir(workDir)
	return fs
}

// SetError sets an error to return for a specific path
func (f *MockFileSystem) SetError(path string, err error) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.Errors[path] = err
}

// SetOperationError sets an error to return for a specific operation.
func (f *MockFileSystem) SetOperationError(operation string, err error) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.OpErrors[operation] = err
}

// CreateFile creates a file with content and modification time
func (f *MockFileSystem) CreateFile(path string, content []byte, modTime time.Time) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.Files[path] = content
	f.FileInfos[path] = &MockFileInfo{
		NameVal:    filepath.Base(path),
		SizeVal:    int64(len(content)),
		ModeVal:    0o644,
		ModTimeVal: modTime,
	}
	f.Dirs[path] = false
}

// CreateDir creates a directory
func (f *MockFileSystem) CreateDir(path string) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.Dirs[path] = true
	f.FileInfos[path] = &MockFileInfo{
		NameVal:  filepath.Base(path),
		ModeVal:  os.ModeDir | 0o755,
		IsDirVal: true,
	}
}

// CreateSymlink creates a symlink resolved by Stat and Canonicalize
func (f *MockFileSystem) CreateSymlink(symlinkPath, targetPath string) {
	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.Symlinks[symlinkPath] = targetPath
}

func (f *MockFileSystem) resolve(path string) string {
	for {
		target, ok := f.Symlinks[path]
		if !ok {
			return path
		}
		path = target
	}
}

func (f *MockFileSystem) Stat(path string) (os.FileInfo, error) {
	f.Mu.RLock()
	defer f.Mu.RUnlock()

	if err, ok := f.Errors[path]; ok {
		return nil, err
	}
	if info, ok := f.FileInfos[f.resolve(path)]; ok {
		return info, nil
	}
	return nil, &os.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
}

func (f *MockFileSystem) ReadFile(path string) ([]byte, error) {
	f.Mu.RLock()
	defer f.Mu.RUnlock()

	if err, ok := f.OpErrors["ReadFile"]; ok {
		return nil, err
	}
	if err, ok := f.Errors[path]; ok {
		return nil, err
	}
	resolved := f.resolve(path)
	if f.Dirs[resolved] {
		return nil, &os.PathError{Op: "read", Path: path, Err: os.ErrInvalid}
	}
	content, ok := f.Files[resolved]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return content, nil
}

func (f *MockFileSystem) ReadFirstLine(path string) ([]byte, error) {
	content, err := f.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if i := bytes.IndexByte(content, '\n'); i >= 0 {
		return content[:i+1], nil
	}
	return content, nil
}

func (f *MockFileSystem) ListDir(path string) ([]string, error) {
	f.Mu.RLock()
	defer f.Mu.RUnlock()

	if err, ok := f.OpErrors["ListDir"]; ok {
		return nil, err
	}
	if !f.Dirs[path] {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}

	prefix := strings.TrimSuffix(path, "/") + "/"
	seen := make(map[string]bool)
	var names []string
	collect := func(p string) {
		if !strings.HasPrefix(p, prefix) {
			return
		}
		rest := strings.TrimPrefix(p, prefix)
		if rest == "" || strings.Contains(rest, "/") || seen[rest] {
			return
		}
		seen[rest] = true
		names = append(names, rest)
	}
	for p := range f.FileInfos {
		collect(p)
	}
	for p := range f.Symlinks {
		collect(p)
	}
	for p := range f.Errors {
		collect(p)
	}
	sort.Strings(names)
	return names, nil
}

func (f *MockFileSystem) WriteFile(path string, content []byte) error {
	if err, ok := f.OpErrors["WriteFile"]; ok {
		return err
	}
	f.CreateFile(path, append([]byte(nil), content...), time.Now())

	f.Mu.Lock()
	defer f.Mu.Unlock()
	f.Writes = append(f.Writes, path)
	return nil
}

func (f *MockFileSystem) Getwd() (string, error) {
	f.Mu.RLock()
	defer f.Mu.RUnlock()

	if err, ok := f.OpErrors["Getwd"]; ok {
		return "", err
	}
	return f.WorkDir, nil
}

func (f *MockFileSystem) Canonicalize(path string) (string, error) {
	f.Mu.RLock()
	defer f.Mu.RUnlock()

	if !filepath.IsAbs(path) {
		path = filepath.Join(f.WorkDir, path)
	}
	resolved := f.resolve(filepath.Clean(path))
	if _, ok := f.FileInfos[resolved]; !ok {
		return "", &os.PathError{Op: "lstat", Path: path, Err: os.ErrNotExist}
	}
	return resolved, nil
}
