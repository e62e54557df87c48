package models

import (
	"fmt"
	"strings"
)

// ScanError reports a filesystem failure while discovering examples.
// A scan that fails returns no partial results.
type ScanError struct {
	Path string // Directory that could not be read
	Err  error  // Underlying filesystem error
}

// Error implements the error interface for ScanError.
func (e *ScanError) Error() string {
	return fmt.Sprintf("scan %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *ScanError) Unwrap() error {
	return e.Err
}

// WriteError reports a failure to create or write a generated artifact.
type WriteError struct {
	Path string // Target artifact path
	Err  error  // Underlying filesystem error
}

// Error implements the error interface for WriteError.
func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *WriteError) Unwrap() error {
	return e.Err
}

// DuplicateError reports examples sharing the same (category, name) pair.
type DuplicateError struct {
	Duplicates []Example
}

// Error implements the error interface for DuplicateError.
func (e *DuplicateError) Error() string {
	keys := make([]string, 0, len(e.Duplicates))
	for _, d := range e.Duplicates {
		keys = append(keys, d.Key())
	}
	return fmt.Sprintf("duplicate examples: %s", strings.Join(keys, ", "))
}
