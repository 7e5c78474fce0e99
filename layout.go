package varray

// On-disk layout (little-endian throughout):
//
//	offset 0:  2-byte signature "VM"
//	offset 2:  repeated for page 0..numPages-1:
//	             16 bytes : presence bitmap, bit i = cell i written
//	             R bytes  : data region, 128 fixed-width cell slots
//
// R is the cell width times 128, rounded up to the 512-byte storage
// granularity. The layout is fixed at creation and never changes; the file
// carries no self-describing metadata beyond the signature, so the same
// size and element kind must be supplied on every reopen.

const (
	cellsPerPage  = 128
	bitmapSize    = cellsPerPage / 8
	signature     = "VM"
	signatureSize = 2
	granularity   = 512
)

// layout captures the byte geometry implied by an array's size and codec.
type layout struct {
	numPages   int64
	regionSize int64 // data region bytes per page
}

func newLayout(arraySize int64, cellWidth int) layout {
	raw := int64(cellsPerPage * cellWidth)
	return layout{
		numPages:   (arraySize + cellsPerPage - 1) / cellsPerPage,
		regionSize: (raw + granularity - 1) / granularity * granularity,
	}
}

// pageOffset is the file offset of page p's bitmap region.
func (l layout) pageOffset(p int64) int64 {
	return signatureSize + p*(bitmapSize+l.regionSize)
}

// fileSize is the exact size of a well-formed backing file.
func (l layout) fileSize() int64 {
	return signatureSize + l.numPages*(bitmapSize+l.regionSize)
}
