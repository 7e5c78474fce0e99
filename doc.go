// Package varray implements a paged virtual array: a fixed-element-size
// array whose logical extent exceeds comfortable memory, backed by a single
// flat file that doubles as persistent storage and swap space. Elements are
// grouped into pages of 128 cells; a small fixed-capacity buffer keeps the
// most recently used pages in memory and writes dirty pages back on
// eviction, flush, or close.
//
// The library is organised into several files for clarity:
//
//	options.go     – configuration struct & defaults
//	codec.go       – per-element encode/decode (int32, fixed-length text)
//	layout.go      – on-disk layout math & open-time validation
//	page.go        – in-memory page representation
//	store.go       – backing file I/O (plain or memory-mapped)
//	buffer.go      – fixed-capacity page buffer with LRU eviction
//	array.go       – constructors & read/write operations
//	stats.go       – buffer hit/miss accessors
//	flush_close.go – flush & close helpers
//	varlen.go      – variable-length text variant (not implemented)
//
// Arrays are not safe for concurrent use: a single accessor is assumed, and
// two arrays must never share a backing path.
package varray
