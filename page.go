package varray

// page is the in-memory unit of transfer and caching: 128 decoded cells, a
// per-cell presence bitmap, and the bookkeeping the buffer needs for LRU
// replacement. A slot starts invalid and becomes valid on first load.
type page[V any] struct {
	cells      [cellsPerPage]V
	presence   [bitmapSize]byte
	pageNumber int64
	dirty      bool   // in-memory content differs from the on-disk copy
	valid      bool   // slot currently holds a loaded page
	lastTouch  uint64 // logical access counter, drives eviction
}

// has reports whether cell off has ever been written.
func (p *page[V]) has(off int) bool {
	return p.presence[off/8]&(1<<(off%8)) != 0
}

// mark records that cell off has been written.
func (p *page[V]) mark(off int) {
	p.presence[off/8] |= 1 << (off % 8)
}

// load installs freshly read regions into the slot, decoding every cell.
func (p *page[V]) load(codec Codec[V], pageNumber int64, bitmap, data []byte) {
	copy(p.presence[:], bitmap)
	w := codec.Width()
	for i := 0; i < cellsPerPage; i++ {
		p.cells[i] = codec.Decode(data[i*w : (i+1)*w])
	}
	p.pageNumber = pageNumber
	p.valid = true
	p.dirty = false
}

// encode serialises the cells into a data region. Unused tail bytes of the
// region are zeroed so the file never accumulates stale content.
func (p *page[V]) encode(codec Codec[V], data []byte) {
	w := codec.Width()
	for i := 0; i < cellsPerPage; i++ {
		codec.Encode(p.cells[i], data[i*w:(i+1)*w])
	}
	for i := cellsPerPage * w; i < len(data); i++ {
		data[i] = 0
	}
}
