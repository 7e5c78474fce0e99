package varray

// Stats holds page buffer hit/miss counters.
// HitRatio is a percentage (0-100).
type Stats struct {
	Hits     uint64
	Misses   uint64
	HitRatio float64
}

// Stats returns a snapshot of the buffer counters. A hit is an access
// served without I/O; a miss loads the page from the store.
func (a *Array[V]) Stats() Stats {
	hits, misses := a.buffer.hits, a.buffer.misses
	ratio := 0.0
	if total := hits + misses; total > 0 {
		ratio = float64(hits) / float64(total) * 100.0
	}
	return Stats{Hits: hits, Misses: misses, HitRatio: ratio}
}

// ResetStats zeroes the hit/miss counters.
func (a *Array[V]) ResetStats() {
	a.buffer.hits = 0
	a.buffer.misses = 0
}
