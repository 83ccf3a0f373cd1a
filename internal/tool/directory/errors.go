package directory

import (
	"fmt"
)

// WorkingDirError is returned when the process working directory is unavailable.
type WorkingDirError struct {
	Cause error
}

func (e *WorkingDirError) Error() string {
	return fmt.Sprintf("failed to get current directory: %v", e.Cause)
}

func (e *WorkingDirError) Unwrap() error {
	return e.Cause
}

// CanonicalizeError is returned when a directory path cannot be resolved.
type CanonicalizeError struct {
	Path  string
	Cause error
}

func (e *CanonicalizeError) Error() string {
	return fmt.Sprintf("failed to resolve %s: %v", e.Path, e.Cause)
}

func (e *CanonicalizeError) Unwrap() error {
	return e.Cause
}

// ListDirError is returned when the entries of a directory cannot be read.
type ListDirError struct {
	Path  string
	Cause error
}

func (e *ListDirError) Error() string {
	return fmt.Sprintf("Invalid path: %s (%v)", e.Path, e.Cause)
}

func (e *ListDirError) Unwrap() error {
	return e.Cause
}

func (e *ListDirError) IOError() bool {
	return true
}
