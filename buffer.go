package varray

// pageBuffer is a fixed-capacity set of page slots with strict LRU
// replacement. Capacity is small and constant, so every operation is a
// linear scan over the slots; no index structure is kept.
//
// Recency is tracked with a logical counter incremented on every access
// rather than wall-clock time, so ordering is immune to clock adjustment.
// Ties cannot occur (each access gets a fresh counter value); an all-equal
// initial state resolves by scan order.
type pageBuffer[V any] struct {
	slots []*page[V]
	clock uint64
	codec Codec[V]
	store *pageStore

	// scratch regions reused across loads and write-backs, sized once at
	// construction. Single accessor, so one set is enough.
	bitmapBuf []byte
	dataBuf   []byte

	hits   uint64
	misses uint64
}

func newPageBuffer[V any](capacity int, codec Codec[V], store *pageStore) *pageBuffer[V] {
	slots := make([]*page[V], capacity)
	for i := range slots {
		slots[i] = &page[V]{}
	}
	return &pageBuffer[V]{
		slots:     slots,
		codec:     codec,
		store:     store,
		bitmapBuf: make([]byte, bitmapSize),
		dataBuf:   make([]byte, store.lay.regionSize),
	}
}

// locateOrAdmit returns the slot holding pageNumber, loading it from the
// store if necessary. On a hit no I/O happens. On a miss the target slot is
// the first invalid one, or else the least-recently-touched valid slot; a
// dirty victim is written back before reuse. The requested page is decoded
// into the slot only after both regions have been read in full, so a failed
// read never installs a partial page.
func (b *pageBuffer[V]) locateOrAdmit(pageNumber int64) (*page[V], error) {
	b.clock++

	for _, p := range b.slots {
		if p.valid && p.pageNumber == pageNumber {
			p.lastTouch = b.clock
			b.hits++
			return p, nil
		}
	}
	b.misses++

	var target *page[V]
	for _, p := range b.slots {
		if !p.valid {
			target = p
			break
		}
	}
	if target == nil {
		target = b.slots[0]
		for _, p := range b.slots[1:] {
			if p.lastTouch < target.lastTouch {
				target = p
			}
		}
		if target.dirty {
			if err := b.writeBack(target); err != nil {
				return nil, err
			}
		}
	}

	if err := b.store.readPage(pageNumber, b.bitmapBuf, b.dataBuf); err != nil {
		return nil, err
	}
	target.load(b.codec, pageNumber, b.bitmapBuf, b.dataBuf)
	target.lastTouch = b.clock
	return target, nil
}

// writeBack encodes the slot's cells and bitmap and stores them, clearing
// the dirty flag on success.
func (b *pageBuffer[V]) writeBack(p *page[V]) error {
	p.encode(b.codec, b.dataBuf)
	if err := b.store.writePage(p.pageNumber, p.presence[:], b.dataBuf); err != nil {
		return err
	}
	p.dirty = false
	return nil
}

// flush writes back every valid dirty slot. Clean and invalid slots are
// untouched, so a second flush with no intervening writes is a no-op.
func (b *pageBuffer[V]) flush() error {
	for _, p := range b.slots {
		if p.valid && p.dirty {
			if err := b.writeBack(p); err != nil {
				return err
			}
		}
	}
	return nil
}
