package varray

import "encoding/binary"

// Codec converts one logical element to and from its fixed-width byte slot.
// The codec is chosen at array creation and fixed for the array's lifetime.
type Codec[V any] interface {
	// Width is the slot size in bytes. Constant for a given codec.
	Width() int

	// Encode writes v into dst, which is exactly Width() bytes long.
	Encode(v V, dst []byte)

	// Decode reads a value back out of a Width()-byte slot.
	Decode(src []byte) V
}

// IntCodec stores signed 32-bit integers as 4 little-endian bytes.
type IntCodec struct{}

func (IntCodec) Width() int { return 4 }

func (IntCodec) Encode(v int32, dst []byte) {
	binary.LittleEndian.PutUint32(dst, uint32(v))
}

func (IntCodec) Decode(src []byte) int32 {
	return int32(binary.LittleEndian.Uint32(src))
}

// FixedTextCodec stores text in a fixed-length byte slot. Values longer than
// the slot are silently truncated on write; callers must not rely on the
// roundtrip preserving anything past Len bytes. Shorter values are padded
// with zero bytes, which Decode strips to recover the original length.
type FixedTextCodec struct {
	Len int
}

func (c FixedTextCodec) Width() int { return c.Len }

func (c FixedTextCodec) Encode(v string, dst []byte) {
	n := copy(dst, v)
	for i := n; i < c.Len; i++ {
		dst[i] = 0
	}
}

func (c FixedTextCodec) Decode(src []byte) string {
	end := c.Len
	for end > 0 && src[end-1] == 0 {
		end--
	}
	return string(src[:end])
}
