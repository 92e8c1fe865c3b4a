package matrix

import "fmt"

// Orientation distinguishes row vectors from column vectors.
type Orientation int

// Vector orientations.
const (
	RowVector Orientation = iota
	ColVector
)

// Flip returns the opposite orientation.
func (o Orientation) Flip() Orientation {
	if o == RowVector {
		return ColVector
	}
	return RowVector
}

// String returns a human-readable orientation name.
func (o Orientation) String() string {
	switch o {
	case RowVector:
		return "row"
	case ColVector:
		return "column"
	default:
		return "unknown"
	}
}

// Vector is a dense 1D companion to Matrix with an explicit row or
// column orientation. A freshly constructed vector is a row vector.
type Vector[T Element] struct {
	data   []T
	orient Orientation
}

// NewVector creates a row vector from a copy of data.
func NewVector[T Element](data []T) *Vector[T] {
	v := &Vector[T]{
		data:   make([]T, len(data)),
		orient: RowVector,
	}
	copy(v.data, data)
	return v
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return len(v.data)
}

// Orientation returns the vector's orientation.
func (v *Vector[T]) Orientation() Orientation {
	return v.orient
}

// Transpose flips the vector's orientation in place and returns the
// vector for chaining. The element data is untouched.
func (v *Vector[T]) Transpose() *Vector[T] {
	v.orient = v.orient.Flip()
	return v
}

// At returns the element at position i.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, fmt.Errorf("index %d out of bounds for vector of length %d: %w",
			i, len(v.data), ErrIndexOutOfBounds)
	}
	return v.data[i], nil
}

// Set replaces the element at position i.
func (v *Vector[T]) Set(i int, value T) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("index %d out of bounds for vector of length %d: %w",
			i, len(v.data), ErrIndexOutOfBounds)
	}
	v.data[i] = value
	return nil
}

// Data returns the backing slice.
//
// WARNING: modifications to the returned slice modify the vector.
func (v *Vector[T]) Data() []T {
	return v.data
}

// Clone creates a deep copy of the vector.
func (v *Vector[T]) Clone() *Vector[T] {
	clone := &Vector[T]{
		data:   make([]T, len(v.data)),
		orient: v.orient,
	}
	copy(clone.data, v.data)
	return clone
}

// Equal reports whether two vectors have the same orientation, length
// and elements.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if v.orient != other.orient || len(v.data) != len(other.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// Matrix returns the vector as a 1×n matrix for a row vector or an n×1
// matrix for a column vector. The data is copied.
func (v *Vector[T]) Matrix() *Matrix[T] {
	shape := Shape{Rows: 1, Cols: len(v.data)}
	if v.orient == ColVector {
		shape = Shape{Rows: len(v.data), Cols: 1}
	}
	m := &Matrix[T]{
		data:  make([]T, len(v.data)),
		shape: shape,
	}
	copy(m.data, v.data)
	return m
}

// Dot returns the inner product of two vectors of equal length,
// accumulated in increasing index order. Orientation does not affect
// the result.
func Dot[T Element](a, b *Vector[T]) (T, error) {
	var zero T
	if len(a.data) != len(b.data) {
		return zero, fmt.Errorf("vector lengths %d and %d: %w",
			len(a.data), len(b.data), ErrShapeMismatch)
	}
	sum := zero
	for i := range a.data {
		sum += a.data[i] * b.data[i]
	}
	return sum, nil
}

// VectorFromRow extracts row i of a matrix as a row vector.
func VectorFromRow[T Element](m *Matrix[T], i int) (*Vector[T], error) {
	row, err := m.Row(i)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{data: row, orient: RowVector}, nil
}

// VectorFromCol extracts column j of a matrix as a column vector.
func VectorFromCol[T Element](m *Matrix[T], j int) (*Vector[T], error) {
	col, err := m.Col(j)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{data: col, orient: ColVector}, nil
}
