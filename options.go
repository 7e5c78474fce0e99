package varray

// Options configures an Array.
//
//   - BufferSlots: number of pages kept in memory at once (0 = default 3)
//   - UseMmap:     memory-map the backing file instead of read/write syscalls
//
// All fields are optional; the zero value means use the default.
// See DefaultOptions() for the defaults.
type Options struct {
	BufferSlots int  // Page buffer capacity, >= 1
	UseMmap     bool // Access the file through a shared memory mapping
}

// DefaultOptions returns the configuration used when a zero Options is given.
func DefaultOptions() Options {
	return Options{
		BufferSlots: 3,
		UseMmap:     false,
	}
}

// withDefaults fills in zero fields.
func (o Options) withDefaults() Options {
	if o.BufferSlots <= 0 {
		o.BufferSlots = 3
	}
	return o
}
