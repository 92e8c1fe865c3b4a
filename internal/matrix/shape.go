package matrix

import "fmt"

// Shape describes the dimensions of a matrix as a (rows, cols) pair.
type Shape struct {
	Rows int
	Cols int
}

// NewShape returns the shape with the given row and column counts.
func NewShape(rows, cols int) Shape {
	return Shape{Rows: rows, Cols: cols}
}

// Size returns the total number of elements a matrix of this shape holds.
func (s Shape) Size() int {
	return s.Rows * s.Cols
}

// Dims returns the row and column counts.
func (s Shape) Dims() (rows, cols int) {
	return s.Rows, s.Cols
}

// Equal reports whether two shapes have the same dimensions.
func (s Shape) Equal(other Shape) bool {
	return s.Rows == other.Rows && s.Cols == other.Cols
}

// Validate checks that both dimensions are non-negative.
func (s Shape) Validate() error {
	if s.Rows < 0 || s.Cols < 0 {
		return fmt.Errorf("shape %s: %w", s, ErrNegativeDimension)
	}
	return nil
}

// String returns the shape as "(rows, cols)".
func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d)", s.Rows, s.Cols)
}
