package varray

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// pageStore owns the backing file. It reads and writes whole regions only:
// a 16-byte presence bitmap followed by the fixed-size data region, at the
// offset the layout computes for the page number. With UseMmap the file is
// mapped once at open and regions become memory copies, with durability via
// msync; otherwise plain ReadAt/WriteAt plus Sync are used. Both paths
// satisfy the same contract.
type pageStore struct {
	file *os.File
	mmap []byte // nil unless memory-mapped
	path string
	lay  layout
}

// openPageStore creates a fresh zero-filled store if path does not exist,
// otherwise opens the existing file and validates it eagerly against the
// declared layout: the signature must match and the file size must equal
// the layout's exact size. A mismatch fails here rather than surfacing as a
// short read on first page access.
func openPageStore(path string, lay layout, useMmap bool) (*pageStore, error) {
	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		if err := createStoreFile(path, lay); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("stat %s: %w", path, err)
	default:
		if info.Size() != lay.fileSize() {
			return nil, fmt.Errorf("%w: have %d bytes, want %d", ErrLayoutMismatch, info.Size(), lay.fileSize())
		}
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0o666)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}

	sig := make([]byte, signatureSize)
	if _, err := f.ReadAt(sig, 0); err != nil {
		f.Close()
		return nil, fmt.Errorf("signature read: %w", err)
	}
	if string(sig) != signature {
		f.Close()
		return nil, fmt.Errorf("%w: got %q", ErrBadSignature, sig)
	}

	s := &pageStore{file: f, path: path, lay: lay}

	if useMmap {
		m, err := unix.Mmap(int(f.Fd()), 0, int(lay.fileSize()), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("mmap store: %w", err)
		}
		s.mmap = m
	}
	return s, nil
}

// createStoreFile writes the signature and extends the file to its final
// size, leaving every bitmap and data region zero-filled.
func createStoreFile(path string, lay layout) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o666)
	if err != nil {
		return fmt.Errorf("create store %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write([]byte(signature)); err != nil {
		return fmt.Errorf("signature write: %w", err)
	}
	if err := f.Truncate(lay.fileSize()); err != nil {
		return fmt.Errorf("allocate store: %w", err)
	}
	return f.Sync()
}

// readPage fills bitmap and data with page pageNumber's regions. bitmap must
// be bitmapSize bytes and data regionSize bytes; both are read whole.
func (s *pageStore) readPage(pageNumber int64, bitmap, data []byte) error {
	off := s.lay.pageOffset(pageNumber)

	if s.mmap != nil {
		copy(bitmap, s.mmap[off:off+bitmapSize])
		copy(data, s.mmap[off+bitmapSize:off+bitmapSize+s.lay.regionSize])
		return nil
	}

	if _, err := s.file.ReadAt(bitmap, off); err != nil {
		return fmt.Errorf("page %d bitmap read: %w", pageNumber, err)
	}
	if _, err := s.file.ReadAt(data, off+bitmapSize); err != nil {
		return fmt.Errorf("page %d data read: %w", pageNumber, err)
	}
	return nil
}

// writePage stores both regions of page pageNumber and forces them to
// durable storage before returning.
func (s *pageStore) writePage(pageNumber int64, bitmap, data []byte) error {
	off := s.lay.pageOffset(pageNumber)

	if s.mmap != nil {
		copy(s.mmap[off:off+bitmapSize], bitmap)
		copy(s.mmap[off+bitmapSize:off+bitmapSize+s.lay.regionSize], data)
		if err := unix.Msync(s.mmap, unix.MS_SYNC); err != nil {
			return fmt.Errorf("page %d msync: %w", pageNumber, err)
		}
		return nil
	}

	if _, err := s.file.WriteAt(bitmap, off); err != nil {
		return fmt.Errorf("page %d bitmap write: %w", pageNumber, err)
	}
	if _, err := s.file.WriteAt(data, off+bitmapSize); err != nil {
		return fmt.Errorf("page %d data write: %w", pageNumber, err)
	}
	if err := s.file.Sync(); err != nil {
		return fmt.Errorf("page %d sync: %w", pageNumber, err)
	}
	return nil
}

// close releases the mapping (if any) and the file handle.
func (s *pageStore) close() error {
	var firstErr error
	if s.mmap != nil {
		if err := unix.Munmap(s.mmap); err != nil {
			firstErr = fmt.Errorf("munmap store: %w", err)
		}
		s.mmap = nil
	}
	if err := s.file.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("close store: %w", err)
	}
	return firstErr
}
