package directory

import (
	"path/filepath"
	"sort"

	"go.uber.org/zap"
)

// Lister builds directory listings for the file browser pane.
type Lister struct {
	fs         dirReader
	platform   pathNormalizer
	binaryOnly binaryOnlyPredicate
	logger     *zap.Logger
}

// NewLister creates a new Lister with injected dependencies.
func NewLister(
	fs dirReader,
	platform pathNormalizer,
	binaryOnly binaryOnlyPredicate,
	logger *zap.Logger,
) *Lister {
	return &Lister{
		fs:         fs,
		platform:   platform,
		binaryOnly: binaryOnly,
		logger:     logger,
	}
}

// ListDir lists the immediate entries of path, or of the working directory
// when path is empty. Directories are returned by name only; files carry size,
// modification time and the binary-comparison-only flag. An entry whose
// metadata cannot be read is logged and left out rather than failing the
// listing.
func (l *Lister) ListDir(path string) (*ListDirResponse, error) {
	targetDir, err := l.targetDir(path)
	if err != nil {
		return nil, err
	}

	names, err := l.fs.ListDir(targetDir)
	if err != nil {
		return nil, &ListDirError{Path: path, Cause: err}
	}

	dirs := []string{}
	files := []FileAttr{}
	for _, name := range names {
		entryPath := filepath.Join(targetDir, name)
		info, err := l.fs.Stat(entryPath)
		if err != nil {
			l.logger.Warn("Failed to get dir/file info, skipping entry",
				zap.String("path", entryPath),
				zap.Error(err),
			)
			continue
		}

		if info.IsDir() {
			dirs = append(dirs, name)
			continue
		}

		size := uint64(max(info.Size(), 0))
		files = append(files, FileAttr{
			Name:                 name,
			BytesSize:            CommaSeparatedNumber(size) + " bytes",
			HumanReadableSize:    HumanReadableSize(size),
			LastModified:         FormatTimestamp(info.ModTime()),
			BinaryComparisonOnly: l.binaryOnly.BinaryComparisonOnly(entryPath),
		})
	}

	sort.Strings(dirs)
	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return &ListDirResponse{
		CurrentDir: targetDir,
		Dirs:       dirs,
		Files:      files,
	}, nil
}

// targetDir resolves the directory to list.
func (l *Lister) targetDir(path string) (string, error) {
	var dir string
	if path == "" {
		wd, err := l.fs.Getwd()
		if err != nil {
			return "", &WorkingDirError{Cause: err}
		}
		dir = wd
	} else {
		canonical, err := l.fs.Canonicalize(path)
		if err != nil {
			return "", &CanonicalizeError{Path: path, Cause: err}
		}
		dir = canonical
	}
	return l.platform.NormalizePath(dir), nil
}
