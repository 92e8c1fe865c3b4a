// Copyright 2026 The MX Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"github.com/mx-ml/mx/internal/matrix"
)

// Element is the constraint satisfied by all supported element types.
type Element = matrix.Element

// Shape describes the dimensions of a matrix as a (rows, cols) pair.
type Shape = matrix.Shape

// NewShape returns the shape with the given row and column counts.
func NewShape(rows, cols int) Shape {
	return matrix.NewShape(rows, cols)
}

// Matrix is a dense, row-major 2D container over a generic element type.
//
// Example:
//
//	m, _ := matrix.FromRows([][]float64{{0, 1, 2}, {3, 4, 5}})
//	fmt.Println(m.Shape()) // (2, 3)
type Matrix[T Element] = matrix.Matrix[T]

// Vector is a dense 1D companion type with row or column orientation.
type Vector[T Element] = matrix.Vector[T]

// Orientation distinguishes row vectors from column vectors.
type Orientation = matrix.Orientation

// Vector orientations.
const (
	RowVector = matrix.RowVector
	ColVector = matrix.ColVector
)

// Sentinel errors reported by constructors, indexing and arithmetic.
var (
	ErrEmptyRows         = matrix.ErrEmptyRows
	ErrRaggedRows        = matrix.ErrRaggedRows
	ErrNegativeDimension = matrix.ErrNegativeDimension
	ErrSizeMismatch      = matrix.ErrSizeMismatch
	ErrIndexOutOfBounds  = matrix.ErrIndexOutOfBounds
	ErrShapeMismatch     = matrix.ErrShapeMismatch
)

// Construction

// New creates a zero-filled matrix with the given shape.
func New[T Element](shape Shape) (*Matrix[T], error) {
	return matrix.New[T](shape)
}

// Full creates a matrix with every cell initialized to fill.
//
// Example:
//
//	m, _ := matrix.Full(matrix.NewShape(2, 3), 1.5)
func Full[T Element](shape Shape, fill T) (*Matrix[T], error) {
	return matrix.Full(shape, fill)
}

// FromRows creates a matrix from a nested slice of rows. All rows must
// have the same length.
//
// Example:
//
//	m, err := matrix.FromRows([][]int{{0, 1, 2}, {3, 4, 5}})
func FromRows[T Element](rows [][]T) (*Matrix[T], error) {
	return matrix.FromRows(rows)
}

// FromSlice creates a matrix from a flat row-major slice.
func FromSlice[T Element](data []T, shape Shape) (*Matrix[T], error) {
	return matrix.FromSlice(data, shape)
}

// Eye creates an n×n identity matrix.
func Eye[T Element](n int) (*Matrix[T], error) {
	return matrix.Eye[T](n)
}

// MapTo returns a new matrix with f applied to every element of m,
// converting to a different element type.
func MapTo[T, U Element](m *Matrix[T], f func(T) U) *Matrix[U] {
	return matrix.MapTo(m, f)
}

// Vectors

// NewVector creates a row vector from a copy of data.
func NewVector[T Element](data []T) *Vector[T] {
	return matrix.NewVector(data)
}

// Dot returns the inner product of two vectors of equal length.
func Dot[T Element](a, b *Vector[T]) (T, error) {
	return matrix.Dot(a, b)
}

// VectorFromRow extracts row i of a matrix as a row vector.
func VectorFromRow[T Element](m *Matrix[T], i int) (*Vector[T], error) {
	return matrix.VectorFromRow(m, i)
}

// VectorFromCol extracts column j of a matrix as a column vector.
func VectorFromCol[T Element](m *Matrix[T], j int) (*Vector[T], error) {
	return matrix.VectorFromCol(m, j)
}
