package matrix

import "fmt"

// Transpose returns a new matrix with rows and columns exchanged.
// The result's storage is physically rearranged into row-major order;
// the receiver is unmodified.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	rows, cols := m.shape.Rows, m.shape.Cols
	out := &Matrix[T]{
		data:  make([]T, len(m.data)),
		shape: Shape{Rows: cols, Cols: rows},
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.data[j*rows+i] = m.data[i*cols+j]
		}
	}
	return out
}

// Reshape changes the matrix's shape in place, reinterpreting the same
// row-major data. The new shape must describe the same number of elements.
func (m *Matrix[T]) Reshape(shape Shape) error {
	if err := shape.Validate(); err != nil {
		return err
	}
	if shape.Size() != len(m.data) {
		return fmt.Errorf("cannot reshape %s to %s: %w", m.shape, shape, ErrSizeMismatch)
	}
	m.shape = shape
	return nil
}

// Resize changes the matrix's shape in place, truncating or zero-extending
// the flat row-major data to the new size.
func (m *Matrix[T]) Resize(shape Shape) error {
	if err := shape.Validate(); err != nil {
		return err
	}
	size := shape.Size()
	switch {
	case size <= len(m.data):
		m.data = m.data[:size]
	default:
		grown := make([]T, size)
		copy(grown, m.data)
		m.data = grown
	}
	m.shape = shape
	return nil
}

// Map returns a new matrix with f applied to every element.
func (m *Matrix[T]) Map(f func(T) T) *Matrix[T] {
	out := &Matrix[T]{
		data:  make([]T, len(m.data)),
		shape: m.shape,
	}
	for i, v := range m.data {
		out.data[i] = f(v)
	}
	return out
}

// MapTo returns a new matrix with f applied to every element of m,
// converting to a different element type.
//
// Example:
//
//	ints, _ := matrix.FromRows([][]int{{0, 1}, {2, 3}})
//	floats := matrix.MapTo(ints, func(v int) float64 { return float64(v) })
func MapTo[T, U Element](m *Matrix[T], f func(T) U) *Matrix[U] {
	out := &Matrix[U]{
		data:  make([]U, len(m.data)),
		shape: m.shape,
	}
	for i, v := range m.data {
		out.data[i] = f(v)
	}
	return out
}

// Apply applies f to every element of the matrix in place.
func (m *Matrix[T]) Apply(f func(*T)) {
	for i := range m.data {
		f(&m.data[i])
	}
}

// Row returns a copy of row i.
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.shape.Rows {
		return nil, fmt.Errorf("row %d out of bounds for shape %s: %w", i, m.shape, ErrIndexOutOfBounds)
	}
	row := make([]T, m.shape.Cols)
	copy(row, m.data[i*m.shape.Cols:(i+1)*m.shape.Cols])
	return row, nil
}

// Col returns a copy of column j.
func (m *Matrix[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= m.shape.Cols {
		return nil, fmt.Errorf("column %d out of bounds for shape %s: %w", j, m.shape, ErrIndexOutOfBounds)
	}
	col := make([]T, m.shape.Rows)
	for i := 0; i < m.shape.Rows; i++ {
		col[i] = m.data[i*m.shape.Cols+j]
	}
	return col, nil
}
