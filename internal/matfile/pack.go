package matfile

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/mx-ml/mx/internal/matrix"
)

// StoredMatrix is the untyped on-disk form of a matrix: element type
// information plus row-major little-endian element data.
type StoredMatrix struct {
	DType DataType
	Rows  int
	Cols  int
	Data  []byte
}

// ByteSize returns the expected size of the element data in bytes.
func (sm *StoredMatrix) ByteSize() int {
	return sm.Rows * sm.Cols * sm.DType.Size()
}

// Pack encodes a matrix into its untyped stored form.
func Pack[T matrix.Element](m *matrix.Matrix[T]) (*StoredMatrix, error) {
	dtype, err := dtypeOf[T]()
	if err != nil {
		return nil, fmt.Errorf("pack %T: %w", m, err)
	}

	buf := new(bytes.Buffer)
	buf.Grow(m.Size() * dtype.Size())
	if err := binary.Write(buf, binary.LittleEndian, m.Data()); err != nil {
		return nil, fmt.Errorf("encode elements: %w", err)
	}

	return &StoredMatrix{
		DType: dtype,
		Rows:  m.Rows(),
		Cols:  m.Cols(),
		Data:  buf.Bytes(),
	}, nil
}

// Unpack decodes a stored matrix into a typed Matrix. The stored dtype
// must match the requested element type exactly; no widening or
// narrowing conversion is applied.
func Unpack[T matrix.Element](sm *StoredMatrix) (*matrix.Matrix[T], error) {
	dtype, err := dtypeOf[T]()
	if err != nil {
		return nil, fmt.Errorf("unpack: %w", err)
	}
	if dtype != sm.DType {
		return nil, fmt.Errorf("stored %s, requested %s: %w", sm.DType, dtype, ErrDTypeMismatch)
	}
	if len(sm.Data) != sm.ByteSize() {
		return nil, fmt.Errorf("matrix data is %d bytes, want %d: %w",
			len(sm.Data), sm.ByteSize(), ErrTruncated)
	}

	elems := make([]T, sm.Rows*sm.Cols)
	if err := binary.Read(bytes.NewReader(sm.Data), binary.LittleEndian, elems); err != nil {
		return nil, fmt.Errorf("decode elements: %w", err)
	}
	return matrix.FromSlice(elems, matrix.NewShape(sm.Rows, sm.Cols))
}
