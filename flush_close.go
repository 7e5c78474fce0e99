package varray

// Flush writes every buffered dirty page back to the store. Pages stay
// resident; only the dirty flags change. Flushing twice in a row with no
// intervening writes leaves the file byte-identical.
func (a *Array[V]) Flush() error {
	if a.closed {
		return ErrClosed
	}
	return a.buffer.flush()
}

// Close flushes and releases the backing store. The file is the single
// source of truth afterwards: reopening the same path with the same size
// and element kind restores all written content. Any further operation on
// the array returns ErrClosed.
func (a *Array[V]) Close() error {
	if a.closed {
		return ErrClosed
	}
	if err := a.buffer.flush(); err != nil {
		return err
	}
	a.closed = true
	return a.store.close()
}
