package varray

import "fmt"

// Array is a paged virtual array of fixed-width elements. The element kind
// is selected once at construction (see NewIntArray and NewFixedTextArray)
// and fixed for the array's lifetime. Cells never explicitly written read
// as the element type's zero value; that is a first-class state, not an
// error.
type Array[V any] struct {
	size   int64
	codec  Codec[V]
	store  *pageStore
	buffer *pageBuffer[V]
	slot   []byte // one cell-width scratch slot, reused by Write
	closed bool
}

// NewIntArray creates or reopens an array of size signed 32-bit integers
// backed by the file at path. A fresh file is zero-filled; an existing one
// must match the layout implied by size exactly.
func NewIntArray(path string, size int64, opts Options) (*Array[int32], error) {
	return newArray[int32](path, size, IntCodec{}, opts)
}

// NewFixedTextArray creates or reopens an array of size text cells of
// fixedLen bytes each. Writes longer than fixedLen are silently truncated.
func NewFixedTextArray(path string, size int64, fixedLen int, opts Options) (*Array[string], error) {
	if fixedLen <= 0 {
		return nil, fmt.Errorf("varray: fixedLen must be positive, got %d", fixedLen)
	}
	return newArray[string](path, size, FixedTextCodec{Len: fixedLen}, opts)
}

func newArray[V any](path string, size int64, codec Codec[V], opts Options) (*Array[V], error) {
	if size <= 0 {
		return nil, fmt.Errorf("varray: size must be positive, got %d", size)
	}
	opts = opts.withDefaults()

	store, err := openPageStore(path, newLayout(size, codec.Width()), opts.UseMmap)
	if err != nil {
		return nil, err
	}
	return &Array[V]{
		size:   size,
		codec:  codec,
		store:  store,
		buffer: newPageBuffer(opts.BufferSlots, codec, store),
		slot:   make([]byte, codec.Width()),
	}, nil
}

// Size returns the declared number of elements.
func (a *Array[V]) Size() int64 { return a.size }

// locate resolves a logical index to its page number and in-page offset,
// bounds-checking before any I/O can happen.
func (a *Array[V]) locate(index int64) (int64, int, error) {
	if index < 0 || index >= a.size {
		return 0, 0, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, a.size)
	}
	return index / cellsPerPage, int(index % cellsPerPage), nil
}

// Read returns the element at index, or the type's zero value if the cell
// has never been written.
func (a *Array[V]) Read(index int64) (V, error) {
	var zero V
	if a.closed {
		return zero, ErrClosed
	}
	pageNumber, off, err := a.locate(index)
	if err != nil {
		return zero, err
	}
	p, err := a.buffer.locateOrAdmit(pageNumber)
	if err != nil {
		return zero, err
	}
	if !p.has(off) {
		return zero, nil
	}
	return p.cells[off], nil
}

// Write stores value at index. The page is only marked dirty in memory;
// the change reaches disk on eviction, Flush, or Close.
func (a *Array[V]) Write(index int64, value V) error {
	if a.closed {
		return ErrClosed
	}
	pageNumber, off, err := a.locate(index)
	if err != nil {
		return err
	}
	p, err := a.buffer.locateOrAdmit(pageNumber)
	if err != nil {
		return err
	}
	// Round-trip through the codec so lossy encodings (text truncation)
	// are observable on the very next Read, not only after a write-back.
	a.codec.Encode(value, a.slot)
	p.cells[off] = a.codec.Decode(a.slot)
	p.mark(off)
	p.dirty = true
	return nil
}
