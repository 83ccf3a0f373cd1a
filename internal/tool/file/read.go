package file

import (
	"go.uber.org/zap"

	"github.com/Cyclone1070/diffprep/internal/tool/helper/content"
)

// Resolver loads both sides of a comparison.
type Resolver struct {
	fs         fileReader
	classifier *Classifier
	sheets     sheetDiffer
	logger     *zap.Logger
}

// NewResolver creates a Resolver with injected dependencies.
func NewResolver(
	fs fileReader,
	classifier *Classifier,
	sheets sheetDiffer,
	logger *zap.Logger,
) *Resolver {
	return &Resolver{
		fs:         fs,
		classifier: classifier,
		sheets:     sheets,
		logger:     logger,
	}
}

// FilepathsContent returns the displayable content of oldPath and newPath, in
// that order. Either path may be empty to compare a file against nothing.
// Pairs of different kinds are not rejected; they are shown as hex dumps.
func (r *Resolver) FilepathsContent(oldPath, newPath string) ([2]ReadContent, error) {
	mode := r.classifier.DetectMode(oldPath, newPath)
	r.logger.Debug("Resolved comparison mode",
		zap.String("old", oldPath),
		zap.String("new", newPath),
		zap.Stringer("mode", mode),
	)

	var result [2]ReadContent
	var err error

	switch mode {
	case ModeTextText:
		if result[0], err = r.TextfileContent(oldPath); err != nil {
			return result, err
		}
		result[1], err = r.TextfileContent(newPath)
	case ModeTextEmpty:
		result[0], err = r.TextfileContent(oldPath)
	case ModeEmptyText:
		result[1], err = r.TextfileContent(newPath)
	case ModeSpreadsheetSpreadsheet:
		result, err = r.spreadsheetContent(oldPath, newPath)
	default:
		if result[0], err = r.BinaryContent(oldPath); err != nil {
			return result, err
		}
		result[1], err = r.BinaryContent(newPath)
	}
	return result, err
}

// BinaryContent hex renders the raw bytes of path. An empty path yields the
// zero ReadContent.
func (r *Resolver) BinaryContent(path string) (ReadContent, error) {
	if path == "" {
		return ReadContent{}, nil
	}
	data, err := r.fs.ReadFile(path)
	if err != nil {
		return ReadContent{}, &ReadError{Path: path, Cause: err}
	}
	return ReadContent{
		Charset: BinaryCharset,
		Content: content.HexDump(data),
	}, nil
}

func (r *Resolver) spreadsheetContent(oldPath, newPath string) ([2]ReadContent, error) {
	split, err := r.sheets.Diff(oldPath, newPath)
	if err != nil {
		return [2]ReadContent{}, &SpreadsheetDiffError{Old: oldPath, New: newPath, Cause: err}
	}
	return [2]ReadContent{
		ExcelContent(split.Old),
		ExcelContent(split.New),
	}, nil
}
