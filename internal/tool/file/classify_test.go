package file

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Cyclone1070/diffprep/internal/testing/mocks"
)

var testModTime = time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)

func newClassifierFS() *mocks.MockFileSystem {
	fs := mocks.NewMockFileSystem("/work")
	fs.CreateFile("/work/a.txt", []byte("hello\nworld\n"), testModTime)
	fs.CreateFile("/work/empty.txt", nil, testModTime)
	fs.CreateFile("/work/latin1.txt", []byte("plain first line\ncaf\xe9\n"), testModTime)
	fs.CreateFile("/work/sjis-first.txt", []byte("\x82\xa0\x82\xa2\n"), testModTime)
	fs.CreateFile("/work/data.bin", []byte{0xFF, 0x00, 0x9C, 0x01}, testModTime)
	fs.CreateFile("/work/early-newline.bin", []byte{'\n', 0x00, 0xFF, 0xFE}, testModTime)
	fs.CreateFile("/work/book.xlsx", []byte{'P', 'K', 0x03, 0x04, 0xFF, 0xFE}, testModTime)
	fs.CreateFile("/work/other.xlsx", []byte{'P', 'K', 0x03, 0x04, 0x9F, 0x80}, testModTime)
	fs.CreateDir("/work/dir")
	return fs
}

func TestIsTextFile(t *testing.T) {
	c := NewClassifier(newClassifierFS(), "")

	tests := []struct {
		path     string
		expected bool
	}{
		{"/work/a.txt", true},
		{"/work/empty.txt", true},
		{"/work/latin1.txt", true}, // only the first line is checked
		{"/work/sjis-first.txt", false},
		{"/work/data.bin", false},
		{"/work/early-newline.bin", true},
		{"/work/dir", false},
		{"/work/missing.txt", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.IsTextFile(tt.path))
		})
	}
}

func TestValidateFilepath(t *testing.T) {
	c := NewClassifier(newClassifierFS(), "")

	tests := []struct {
		name   string
		path   string
		ok     bool
		exists bool
	}{
		{"missing path is absent", "/work/missing.bin", false, false},
		{"text file", "/work/a.txt", true, true},
		{"binary file", "/work/data.bin", false, true},
		{"spreadsheet with binary content", "/work/book.xlsx", true, true},
		{"directory", "/work/dir", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, exists := c.ValidateFilepath(tt.path)
			assert.Equal(t, tt.exists, exists)
			if tt.exists {
				assert.Equal(t, tt.ok, ok)
			}
		})
	}
}

func TestArgToFilepath(t *testing.T) {
	c := NewClassifier(newClassifierFS(), "")

	got, ok := c.ArgToFilepath("/work/a.txt")
	assert.True(t, ok)
	assert.Equal(t, "/work/a.txt", got)

	for _, arg := range []string{"", "/work/dir", "/work/missing.txt"} {
		_, ok := c.ArgToFilepath(arg)
		assert.False(t, ok, arg)
	}
}

func TestDetectMode(t *testing.T) {
	c := NewClassifier(newClassifierFS(), "")

	tests := []struct {
		old      string
		new      string
		expected ComparisonMode
	}{
		{"/work/a.txt", "/work/latin1.txt", ModeTextText},
		{"/work/a.txt", "", ModeTextEmpty},
		{"", "/work/a.txt", ModeEmptyText},
		{"/work/book.xlsx", "/work/other.xlsx", ModeSpreadsheetSpreadsheet},
		{"/work/a.txt", "/work/book.xlsx", ModeBinaryBinary},
		{"/work/book.xlsx", "/work/data.bin", ModeBinaryBinary},
		{"/work/data.bin", "/work/data.bin", ModeBinaryBinary},
		{"/work/data.bin", "", ModeBinaryBinary},
		{"", "", ModeBinaryBinary},
		{"/work/a.txt", "/work/missing.txt", ModeBinaryBinary},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, c.DetectMode(tt.old, tt.new))
		})
	}
}

func TestNewClassifier_SpreadsheetExtension(t *testing.T) {
	fs := newClassifierFS()

	assert.True(t, NewClassifier(fs, "").IsSpreadsheet("/work/book.xlsx"))
	assert.True(t, NewClassifier(fs, ".xlsx").IsSpreadsheet("/work/book.xlsx"))
	assert.False(t, NewClassifier(fs, "ods").IsSpreadsheet("/work/book.xlsx"))
	assert.False(t, NewClassifier(fs, "").IsSpreadsheet("/work/bookxlsx"))
}

func TestComparisonMode_String(t *testing.T) {
	assert.Equal(t, "text/text", ModeTextText.String())
	assert.Equal(t, "binary/binary", ModeBinaryBinary.String())
	assert.Equal(t, "unknown", ComparisonMode(42).String())
}
