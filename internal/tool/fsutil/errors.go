package fsutil

import (
	"fmt"
)

// CreateError is returned when creating or truncating a file fails.
type CreateError struct {
	Path  string
	Cause error
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("failed to create %s: %v", e.Path, e.Cause)
}

func (e *CreateError) Unwrap() error {
	return e.Cause
}

func (e *CreateError) IOError() bool {
	return true
}

// WriteError is returned when writing file content fails.
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write to %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

func (e *WriteError) IOError() bool {
	return true
}

// CloseError is returned when closing a written file fails.
type CloseError struct {
	Path  string
	Cause error
}

func (e *CloseError) Error() string {
	return fmt.Sprintf("failed to close %s: %v", e.Path, e.Cause)
}

func (e *CloseError) Unwrap() error {
	return e.Cause
}

func (e *CloseError) IOError() bool {
	return true
}
