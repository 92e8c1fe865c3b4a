package matfile

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// MmapReader reads .mx container files through a read-only memory
// mapping. Matrix bytes can be viewed without copying the whole file
// into memory, which matters for large containers.
//
// The mapping stays valid until Close; slices returned by RawData must
// not be used after that.
type MmapReader struct {
	file      *os.File
	data      mmap.MMap
	container *container
	closed    bool
}

// OpenMmap memory-maps the .mx file at path and validates it, including
// the data-section checksum.
func OpenMmap(path string) (*MmapReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to mmap file: %w", err)
	}

	c, err := parseContainer(data)
	if err != nil {
		_ = data.Unmap()
		_ = file.Close()
		return nil, err
	}

	return &MmapReader{
		file:      file,
		data:      data,
		container: c,
	}, nil
}

// Header returns the decoded JSON header.
func (r *MmapReader) Header() Header {
	return r.container.header
}

// MatrixNames returns the names of all stored matrices in file order.
func (r *MmapReader) MatrixNames() []string {
	names := make([]string, len(r.container.order))
	copy(names, r.container.order)
	return names
}

// Info returns the metadata of the named matrix.
func (r *MmapReader) Info(name string) (*MatrixMeta, error) {
	if r.closed {
		return nil, ErrClosed
	}
	meta, ok := r.container.metas[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrMatrixNotFound)
	}
	return meta, nil
}

// RawData returns a zero-copy view of the named matrix's bytes inside
// the mapping. The slice becomes invalid once the reader is closed.
func (r *MmapReader) RawData(name string) ([]byte, error) {
	if r.closed {
		return nil, ErrClosed
	}
	meta, ok := r.container.metas[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrMatrixNotFound)
	}
	start := r.container.dataStart + meta.Offset
	return r.data[start : start+meta.Size], nil
}

// Stored returns the untyped form of the named matrix. The element data
// is copied out of the mapping, so it survives Close.
func (r *MmapReader) Stored(name string) (*StoredMatrix, error) {
	if r.closed {
		return nil, ErrClosed
	}
	return r.container.stored(name, r.data)
}

// Close unmaps the file and closes it.
func (r *MmapReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if err := r.data.Unmap(); err != nil {
		_ = r.file.Close()
		return fmt.Errorf("failed to unmap file: %w", err)
	}
	return r.file.Close()
}
