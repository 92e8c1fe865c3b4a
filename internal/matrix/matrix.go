package matrix

import (
	"fmt"
	"strings"
)

// Matrix is a dense, row-major 2D container over a generic element type.
//
// The backing storage is a flat slice of length rows*cols; the logical
// element (i, j) lives at flat position i*cols + j. A Matrix exclusively
// owns its storage: constructors copy their input, arithmetic operations
// allocate a fresh result, and operands are never mutated.
//
// Example:
//
//	m, _ := matrix.FromRows([][]int{{0, 1, 2}, {3, 4, 5}})
//	v, _ := m.At(1, 0) // 3
type Matrix[T Element] struct {
	data  []T
	shape Shape
}

// New creates a zero-filled matrix with the given shape.
// Zero-sized dimensions are legal; negative ones are not.
func New[T Element](shape Shape) (*Matrix[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Matrix[T]{
		data:  make([]T, shape.Size()),
		shape: shape,
	}, nil
}

// Full creates a matrix with every cell initialized to fill.
func Full[T Element](shape Shape, fill T) (*Matrix[T], error) {
	m, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = fill
	}
	return m, nil
}

// FromRows creates a matrix from a nested slice of rows.
//
// The row count is the outer length and the column count is the length of
// the first row. Every row must have the same length.
//
// Example:
//
//	m, err := matrix.FromRows([][]float64{{0, 1, 2}, {3, 4, 5}}) // shape (2, 3)
func FromRows[T Element](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return nil, ErrEmptyRows
	}
	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d elements, want %d: %w", i, len(row), cols, ErrRaggedRows)
		}
		data = append(data, row...)
	}
	return &Matrix[T]{
		data:  data,
		shape: Shape{Rows: len(rows), Cols: cols},
	}, nil
}

// FromSlice creates a matrix from a flat row-major slice.
// The slice is copied into the matrix's own storage.
func FromSlice[T Element](data []T, shape Shape) (*Matrix[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.Size() != len(data) {
		return nil, fmt.Errorf("shape %s requires %d elements, got %d: %w",
			shape, shape.Size(), len(data), ErrSizeMismatch)
	}
	m := &Matrix[T]{
		data:  make([]T, len(data)),
		shape: shape,
	}
	copy(m.data, data)
	return m, nil
}

// Eye creates an n×n identity matrix.
func Eye[T Element](n int) (*Matrix[T], error) {
	m, err := New[T](Shape{Rows: n, Cols: n})
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = T(1)
	}
	return m, nil
}

// Shape returns the matrix's shape.
func (m *Matrix[T]) Shape() Shape {
	return m.shape
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int {
	return m.shape.Rows
}

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int {
	return m.shape.Cols
}

// Size returns the total number of elements.
func (m *Matrix[T]) Size() int {
	return len(m.data)
}

// IsEmpty reports whether the matrix contains no elements.
func (m *Matrix[T]) IsEmpty() bool {
	return len(m.data) == 0
}

// At returns the element at row i, column j.
func (m *Matrix[T]) At(i, j int) (T, error) {
	idx, err := m.flatIndex(i, j)
	if err != nil {
		var zero T
		return zero, err
	}
	return m.data[idx], nil
}

// MustAt returns the element at row i, column j.
// It panics when the index is out of bounds.
func (m *Matrix[T]) MustAt(i, j int) T {
	idx, err := m.flatIndex(i, j)
	if err != nil {
		panic(err)
	}
	return m.data[idx]
}

// Set replaces the element at row i, column j.
func (m *Matrix[T]) Set(i, j int, value T) error {
	idx, err := m.flatIndex(i, j)
	if err != nil {
		return err
	}
	m.data[idx] = value
	return nil
}

// Data returns the backing row-major slice.
//
// WARNING: this is direct access to the matrix's storage; modifications
// to the returned slice modify the matrix.
func (m *Matrix[T]) Data() []T {
	return m.data
}

// Clone creates a deep copy of the matrix.
func (m *Matrix[T]) Clone() *Matrix[T] {
	clone := &Matrix[T]{
		data:  make([]T, len(m.data)),
		shape: m.shape,
	}
	copy(clone.data, m.data)
	return clone
}

// String returns a human-readable rendering, e.g. "[[0 1 2] [3 4 5]]".
// Intended for diagnostics, not machine parsing.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < m.shape.Rows; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('[')
		for j := 0; j < m.shape.Cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%v", m.data[i*m.shape.Cols+j])
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}
