package varray

import "fmt"

// NewVarTextArray is the declared variable-length text variant. It would
// share the page and buffer machinery but needs a secondary indirection
// file mapping cells to offsets in a string heap, and that layout has not
// been settled. It always fails with ErrNotImplemented.
func NewVarTextArray(path string, size int64, opts Options) (*Array[string], error) {
	return nil, fmt.Errorf("variable-length text arrays: %w", ErrNotImplemented)
}
