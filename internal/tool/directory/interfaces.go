package directory

import (
	"os"
)

// dirReader defines the filesystem operations needed for listing a directory.
type dirReader interface {
	Stat(path string) (os.FileInfo, error)
	ListDir(path string) ([]string, error)
	Getwd() (string, error)
	Canonicalize(path string) (string, error)
}

// pathNormalizer applies platform specific display normalization.
type pathNormalizer interface {
	NormalizePath(path string) string
}

// binaryOnlyPredicate reports whether a file can only be compared byte by byte.
type binaryOnlyPredicate interface {
	BinaryComparisonOnly(path string) bool
}
