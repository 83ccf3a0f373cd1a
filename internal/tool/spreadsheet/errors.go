package spreadsheet

import "fmt"

// WorkbookError is returned when a workbook cannot be opened or read.
type WorkbookError struct {
	Path  string
	Cause error
}

func (e *WorkbookError) Error() string {
	return fmt.Sprintf("failed to read workbook %s: %v", e.Path, e.Cause)
}

func (e *WorkbookError) Unwrap() error {
	return e.Cause
}

func (e *WorkbookError) IOError() bool {
	return true
}
