package matfile

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
)

// container is the parsed view of a .mx file's bytes.
type container struct {
	header    Header
	metas     map[string]*MatrixMeta
	order     []string
	dataStart int64
	dataSize  int64
}

// parseContainer validates the fixed header, decodes the JSON header and
// verifies the data-section checksum. raw must hold the entire file.
func parseContainer(raw []byte) (*container, error) {
	if len(raw) < FixedHeaderSize {
		return nil, fmt.Errorf("%d bytes is smaller than the fixed header: %w", len(raw), ErrTruncated)
	}
	if string(raw[0:4]) != MagicBytes {
		return nil, fmt.Errorf("got %q: %w", raw[0:4], ErrInvalidMagic)
	}
	version := binary.LittleEndian.Uint32(raw[4:8])
	if version != FormatVersion {
		return nil, fmt.Errorf("version %d: %w", version, ErrUnsupportedVersion)
	}

	headerSize := binary.LittleEndian.Uint64(raw[16:24])
	dataSize := binary.LittleEndian.Uint64(raw[24:32])
	var stored [32]byte
	copy(stored[:], raw[ChecksumOffset:ChecksumOffset+ChecksumSize])

	// The size fields come from the file; bound them against the actual
	// file size before any arithmetic so oversized values cannot wrap.
	fileSize := uint64(len(raw))
	if headerSize > fileSize-FixedHeaderSize {
		return nil, fmt.Errorf("header extends past end of file: %w", ErrTruncated)
	}
	if dataSize > fileSize {
		return nil, fmt.Errorf("data section extends past end of file: %w", ErrTruncated)
	}
	headerEnd := uint64(FixedHeaderSize) + headerSize

	var header Header
	if err := json.Unmarshal(raw[FixedHeaderSize:headerEnd], &header); err != nil {
		return nil, fmt.Errorf("failed to decode header: %w", err)
	}

	padding := (HeaderAlignment - (int64(headerEnd) % HeaderAlignment)) % HeaderAlignment
	dataStart := int64(headerEnd) + padding
	if dataStart+int64(dataSize) > int64(len(raw)) {
		return nil, fmt.Errorf("data section extends past end of file: %w", ErrTruncated)
	}

	data := raw[dataStart : dataStart+int64(dataSize)]
	if err := validateChecksum(computeChecksum(data), stored); err != nil {
		return nil, err
	}

	c := &container{
		header:    header,
		metas:     make(map[string]*MatrixMeta, len(header.Matrices)),
		order:     make([]string, 0, len(header.Matrices)),
		dataStart: dataStart,
		dataSize:  int64(dataSize),
	}
	for i := range header.Matrices {
		meta := &header.Matrices[i]
		// Compare by subtraction so offset+size cannot overflow int64.
		if meta.Offset < 0 || meta.Size < 0 ||
			meta.Size > int64(dataSize) || meta.Offset > int64(dataSize)-meta.Size {
			return nil, fmt.Errorf("matrix %q extends past the data section: %w", meta.Name, ErrTruncated)
		}
		c.metas[meta.Name] = meta
		c.order = append(c.order, meta.Name)
	}
	return c, nil
}

// stored builds the untyped form of the named matrix from the data section.
func (c *container) stored(name string, raw []byte) (*StoredMatrix, error) {
	meta, ok := c.metas[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrMatrixNotFound)
	}
	dtype, ok := parseDType(meta.DType)
	if !ok {
		return nil, fmt.Errorf("matrix %q has dtype %q: %w", name, meta.DType, ErrUnsupportedDType)
	}

	start := c.dataStart + meta.Offset
	data := make([]byte, meta.Size)
	copy(data, raw[start:start+meta.Size])

	return &StoredMatrix{
		DType: dtype,
		Rows:  meta.Rows,
		Cols:  meta.Cols,
		Data:  data,
	}, nil
}

// Reader reads .mx container files into memory.
type Reader struct {
	raw       []byte
	container *container
}

// NewReader reads and validates the .mx file at path.
// The checksum of the data section is verified before any matrix is
// handed out.
func NewReader(path string) (*Reader, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return NewReaderBytes(raw)
}

// NewReaderBytes parses a .mx container held in memory.
func NewReaderBytes(raw []byte) (*Reader, error) {
	c, err := parseContainer(raw)
	if err != nil {
		return nil, err
	}
	return &Reader{raw: raw, container: c}, nil
}

// Header returns the decoded JSON header.
func (r *Reader) Header() Header {
	return r.container.header
}

// MatrixNames returns the names of all stored matrices in file order.
func (r *Reader) MatrixNames() []string {
	names := make([]string, len(r.container.order))
	copy(names, r.container.order)
	return names
}

// Info returns the metadata of the named matrix.
func (r *Reader) Info(name string) (*MatrixMeta, error) {
	meta, ok := r.container.metas[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrMatrixNotFound)
	}
	return meta, nil
}

// Stored returns the untyped form of the named matrix.
// The returned data is a copy; the reader's buffer is never aliased.
func (r *Reader) Stored(name string) (*StoredMatrix, error) {
	return r.container.stored(name, r.raw)
}
