package file

import (
	"os"

	"github.com/Cyclone1070/diffprep/internal/tool/spreadsheet"
)

// fileProber defines the filesystem operations needed to classify paths.
type fileProber interface {
	Stat(path string) (os.FileInfo, error)
	ReadFirstLine(path string) ([]byte, error)
}

// fileReader defines the filesystem operations needed to load compared files.
type fileReader interface {
	fileProber
	ReadFile(path string) ([]byte, error)
}

// fileWriter defines the filesystem operations needed for saving.
type fileWriter interface {
	WriteFile(path string, content []byte) error
}

// sheetDiffer computes the per-sheet diff of two workbooks.
type sheetDiffer interface {
	Diff(oldPath, newPath string) (*spreadsheet.Split, error)
}
