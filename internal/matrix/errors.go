package matrix

import "errors"

// Error taxonomy. Constructors report malformed input, indexing reports
// out-of-bounds access, and binary operations report non-conformable
// operand shapes. Callers match with errors.Is.
var (
	// ErrEmptyRows indicates a row-literal construction with no rows.
	ErrEmptyRows = errors.New("mx: matrix literal must have at least one row")
	// ErrRaggedRows indicates rows of differing lengths.
	ErrRaggedRows = errors.New("mx: all rows must have the same length")
	// ErrNegativeDimension indicates a shape with a negative row or column count.
	ErrNegativeDimension = errors.New("mx: matrix dimensions must be non-negative")
	// ErrSizeMismatch indicates data whose length does not match a shape's size.
	ErrSizeMismatch = errors.New("mx: data length does not match shape size")
	// ErrIndexOutOfBounds indicates element access outside the matrix bounds.
	ErrIndexOutOfBounds = errors.New("mx: index out of bounds")
	// ErrShapeMismatch indicates operands whose shapes are not conformable
	// for the requested operation.
	ErrShapeMismatch = errors.New("mx: operand shapes are not conformable")
)
