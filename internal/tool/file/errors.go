package file

import (
	"errors"
	"fmt"
)

// -- Sentinels --

var (
	ErrPathRequired = errors.New("path is required")
)

// ReadError is returned when a compared file cannot be read.
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}

func (e *ReadError) IOError() bool {
	return true
}

// SpreadsheetDiffError is returned when the spreadsheet differ fails.
type SpreadsheetDiffError struct {
	Old   string
	New   string
	Cause error
}

func (e *SpreadsheetDiffError) Error() string {
	return fmt.Sprintf("failed to diff spreadsheets %s and %s: %v", e.Old, e.New, e.Cause)
}

func (e *SpreadsheetDiffError) Unwrap() error {
	return e.Cause
}

// EncodeError is returned when content cannot be encoded for saving.
type EncodeError struct {
	Charset string
	Cause   error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode content as %s: %v", e.Charset, e.Cause)
}

func (e *EncodeError) Unwrap() error {
	return e.Cause
}

// WriteError is returned when saving content to disk fails.
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to save %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

func (e *WriteError) IOError() bool {
	return true
}
