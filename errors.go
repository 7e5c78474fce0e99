package varray

import "errors"

var (
	// ErrIndexOutOfRange is returned when a read or write targets an index
	// at or past the declared array size. No I/O is attempted in that case.
	ErrIndexOutOfRange = errors.New("varray: index out of range")

	// ErrClosed is returned by any operation on an array after Close.
	ErrClosed = errors.New("varray: array is closed")

	// ErrBadSignature is returned when an existing file does not start with
	// the expected signature bytes.
	ErrBadSignature = errors.New("varray: bad file signature")

	// ErrLayoutMismatch is returned when an existing file's size disagrees
	// with the layout implied by the declared size and element kind.
	ErrLayoutMismatch = errors.New("varray: file size does not match declared layout")

	// ErrNotImplemented marks declared but unimplemented element kinds.
	ErrNotImplemented = errors.New("varray: not implemented")
)
