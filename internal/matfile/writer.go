package matfile

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"
)

const mxVersion = "0.1.0" // current MX version

// Writer writes .mx container files.
type Writer struct {
	file   *os.File
	closed bool
}

// NewWriter creates a new .mx file writer.
func NewWriter(path string) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return &Writer{file: file}, nil
}

// WriteMatrices writes a set of named matrices to the .mx file.
// Matrices are laid out in lexicographic name order so the output is
// deterministic.
func (w *Writer) WriteMatrices(stored map[string]*StoredMatrix, metadata map[string]string) error {
	if w.closed {
		return fmt.Errorf("writer is closed")
	}
	return writeContainer(w.file, stored, metadata)
}

// Close closes the writer and the underlying file.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.file.Close()
}

// WriteTo writes a set of named matrices to an io.Writer.
// This is useful for writing to buffers or network connections.
func WriteTo(writer io.Writer, stored map[string]*StoredMatrix, metadata map[string]string) error {
	return writeContainer(writer, stored, metadata)
}

func writeContainer(writer io.Writer, stored map[string]*StoredMatrix, metadata map[string]string) error {
	header := Header{
		FormatVersion: FormatVersion,
		MXVersion:     mxVersion,
		CreatedAt:     time.Now().UTC(),
		Matrices:      make([]MatrixMeta, 0, len(stored)),
		Metadata:      metadata,
	}
	if header.Metadata == nil {
		header.Metadata = make(map[string]string)
	}

	names := make([]string, 0, len(stored))
	for name := range stored {
		names = append(names, name)
	}
	sort.Strings(names)

	// Calculate matrix offsets and collect the data section.
	var currentOffset int64
	var dataBuf []byte
	for _, name := range names {
		sm := stored[name]
		if len(sm.Data) != sm.ByteSize() {
			return fmt.Errorf("matrix %q data is %d bytes, want %d for %s (%d, %d): %w",
				name, len(sm.Data), sm.ByteSize(), sm.DType, sm.Rows, sm.Cols, ErrTruncated)
		}
		size := int64(len(sm.Data))

		header.Matrices = append(header.Matrices, MatrixMeta{
			Name:   name,
			DType:  sm.DType.String(),
			Rows:   sm.Rows,
			Cols:   sm.Cols,
			Offset: currentOffset,
			Size:   size,
		})

		currentOffset += size
		dataBuf = append(dataBuf, sm.Data...)
	}

	checksum := computeChecksum(dataBuf)

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}
	headerSize := uint64(len(headerJSON))
	dataSize := uint64(len(dataBuf))

	// Fixed 64-byte header.
	fixedHeader := make([]byte, FixedHeaderSize)
	copy(fixedHeader[0:4], MagicBytes)
	binary.LittleEndian.PutUint32(fixedHeader[4:8], uint32(FormatVersion))

	flags := uint32(0)
	if len(header.Metadata) > 0 {
		flags |= FlagHasMetadata
	}
	binary.LittleEndian.PutUint32(fixedHeader[8:12], flags)
	// 0x0C-0x0F reserved, already zero.
	binary.LittleEndian.PutUint64(fixedHeader[16:24], headerSize)
	binary.LittleEndian.PutUint64(fixedHeader[24:32], dataSize)
	copy(fixedHeader[ChecksumOffset:ChecksumOffset+ChecksumSize], checksum[:])

	if _, err := writer.Write(fixedHeader); err != nil {
		return fmt.Errorf("failed to write fixed header: %w", err)
	}
	if _, err := writer.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header JSON: %w", err)
	}

	// Pad so the data section starts on a 64-byte boundary.
	currentPos := int64(FixedHeaderSize) + int64(headerSize)
	padding := (HeaderAlignment - (currentPos % HeaderAlignment)) % HeaderAlignment
	if padding > 0 {
		if _, err := writer.Write(make([]byte, padding)); err != nil {
			return fmt.Errorf("failed to write padding: %w", err)
		}
	}

	if _, err := writer.Write(dataBuf); err != nil {
		return fmt.Errorf("failed to write matrix data: %w", err)
	}
	return nil
}
