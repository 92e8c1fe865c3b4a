package matrix

import "fmt"

// flatIndex maps the logical position (i, j) to its row-major flat
// position i*cols + j, rejecting any index outside the matrix bounds.
// Negative indices are out of bounds; there is no wraparound.
func (m *Matrix[T]) flatIndex(i, j int) (int, error) {
	if i < 0 || i >= m.shape.Rows || j < 0 || j >= m.shape.Cols {
		return 0, fmt.Errorf("index (%d, %d) out of bounds for shape %s: %w",
			i, j, m.shape, ErrIndexOutOfBounds)
	}
	return i*m.shape.Cols + j, nil
}
