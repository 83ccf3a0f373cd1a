package file

import (
	"strings"
	"unicode/utf8"
)

// Classifier decides whether a path can take part in a comparison and
// whether it should be read as text.
type Classifier struct {
	fs             fileProber
	spreadsheetExt string
}

// NewClassifier creates a Classifier. An empty spreadsheetExt selects
// SpreadsheetExtension.
func NewClassifier(fs fileProber, spreadsheetExt string) *Classifier {
	if spreadsheetExt == "" {
		spreadsheetExt = SpreadsheetExtension
	}
	return &Classifier{
		fs:             fs,
		spreadsheetExt: "." + strings.TrimPrefix(spreadsheetExt, "."),
	}
}

// IsTextFile reads the first line of path and reports whether that read
// succeeded with valid UTF-8. It is a cheap first pass: a binary file whose
// first line happens to be valid UTF-8 passes here and is caught later by the
// NUL scan in TextfileContent.
func (c *Classifier) IsTextFile(path string) bool {
	line, err := c.fs.ReadFirstLine(path)
	if err != nil {
		return false
	}
	return utf8.Valid(line)
}

// IsSpreadsheet reports whether path carries the spreadsheet extension.
func (c *Classifier) IsSpreadsheet(path string) bool {
	return strings.HasSuffix(path, c.spreadsheetExt)
}

// ValidateFilepath reports whether path can be compared. exists is false when
// the path does not exist, in which case ok carries no meaning.
func (c *Classifier) ValidateFilepath(path string) (ok bool, exists bool) {
	if _, err := c.fs.Stat(path); err != nil {
		return false, false
	}
	return c.IsTextFile(path) || c.IsSpreadsheet(path), true
}

// ArgToFilepath returns arg when it names an existing regular file.
func (c *Classifier) ArgToFilepath(arg string) (string, bool) {
	if arg == "" {
		return "", false
	}
	info, err := c.fs.Stat(arg)
	if err != nil {
		return "", false
	}
	if !info.Mode().IsRegular() {
		return "", false
	}
	return arg, true
}

// DetectMode picks the comparison mode for a pair of paths. The first
// matching rule wins; mismatched kinds fall through to ModeBinaryBinary.
func (c *Classifier) DetectMode(oldPath, newPath string) ComparisonMode {
	oldText := c.IsTextFile(oldPath)
	newText := c.IsTextFile(newPath)

	switch {
	case oldText && newText:
		return ModeTextText
	case oldText && newPath == "":
		return ModeTextEmpty
	case oldPath == "" && newText:
		return ModeEmptyText
	case c.IsSpreadsheet(oldPath) && c.IsSpreadsheet(newPath):
		return ModeSpreadsheetSpreadsheet
	default:
		return ModeBinaryBinary
	}
}
