package matrix

import "fmt"

// ensureSameShape checks conformability for element-wise operations.
func (m *Matrix[T]) ensureSameShape(other *Matrix[T]) error {
	if !m.shape.Equal(other.shape) {
		return fmt.Errorf("shapes %s and %s: %w", m.shape, other.shape, ErrShapeMismatch)
	}
	return nil
}

// Add returns the element-wise sum of two identically shaped matrices.
func (m *Matrix[T]) Add(other *Matrix[T]) (*Matrix[T], error) {
	if err := m.ensureSameShape(other); err != nil {
		return nil, err
	}
	out := &Matrix[T]{
		data:  make([]T, len(m.data)),
		shape: m.shape,
	}
	for i := range m.data {
		out.data[i] = m.data[i] + other.data[i]
	}
	return out, nil
}

// Sub returns the element-wise difference of two identically shaped matrices.
func (m *Matrix[T]) Sub(other *Matrix[T]) (*Matrix[T], error) {
	if err := m.ensureSameShape(other); err != nil {
		return nil, err
	}
	out := &Matrix[T]{
		data:  make([]T, len(m.data)),
		shape: m.shape,
	}
	for i := range m.data {
		out.data[i] = m.data[i] - other.data[i]
	}
	return out, nil
}

// Scale returns the matrix with every element multiplied by k.
func (m *Matrix[T]) Scale(k T) *Matrix[T] {
	out := &Matrix[T]{
		data:  make([]T, len(m.data)),
		shape: m.shape,
	}
	for i := range m.data {
		out.data[i] = m.data[i] * k
	}
	return out
}

// AddScalar returns the matrix with k added to every element.
func (m *Matrix[T]) AddScalar(k T) *Matrix[T] {
	out := &Matrix[T]{
		data:  make([]T, len(m.data)),
		shape: m.shape,
	}
	for i := range m.data {
		out.data[i] = m.data[i] + k
	}
	return out
}

// SubScalar returns the matrix with k subtracted from every element.
func (m *Matrix[T]) SubScalar(k T) *Matrix[T] {
	out := &Matrix[T]{
		data:  make([]T, len(m.data)),
		shape: m.shape,
	}
	for i := range m.data {
		out.data[i] = m.data[i] - k
	}
	return out
}

// Neg returns the element-wise negation of the matrix.
func (m *Matrix[T]) Neg() *Matrix[T] {
	out := &Matrix[T]{
		data:  make([]T, len(m.data)),
		shape: m.shape,
	}
	var zero T
	for i := range m.data {
		out.data[i] = zero - m.data[i]
	}
	return out
}

// MatMul returns the matrix product of an (m, k) matrix with a (k, n)
// matrix, yielding shape (m, n).
//
// The algorithm is the naive triple loop. Each output cell accumulates
// its inner product in increasing p order with a single accumulator:
//
//	out[i][j] = Σ_{p=0}^{k-1} lhs[i][p] * rhs[p][j]
//
// The accumulation order is part of the contract: for overflow-sensitive
// or non-associative element arithmetic the result is bit-exact and
// reproducible.
func (m *Matrix[T]) MatMul(other *Matrix[T]) (*Matrix[T], error) {
	if m.shape.Cols != other.shape.Rows {
		return nil, fmt.Errorf("inner dimensions of %s and %s: %w",
			m.shape, other.shape, ErrShapeMismatch)
	}
	rows, inner, cols := m.shape.Rows, m.shape.Cols, other.shape.Cols
	out := &Matrix[T]{
		data:  make([]T, rows*cols),
		shape: Shape{Rows: rows, Cols: cols},
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			var sum T
			for p := 0; p < inner; p++ {
				sum += m.data[i*inner+p] * other.data[p*cols+j]
			}
			out.data[i*cols+j] = sum
		}
	}
	return out, nil
}

// Equal reports whether two matrices have the same shape and all
// corresponding elements compare equal under T's equality.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if !m.shape.Equal(other.shape) {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}
	return true
}
