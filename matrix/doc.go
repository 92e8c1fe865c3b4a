// Copyright 2026 The MX Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides a dense, generic, row-major matrix type with
// element-wise and linear-algebra arithmetic.
//
// # Overview
//
// The central type is [Matrix], a 2D value type over any built-in numeric
// element type. Matrices are constructed eagerly, own their storage
// exclusively, and are never mutated by arithmetic: every operator
// allocates a fresh result.
//
// # Basic Usage
//
//	import "github.com/mx-ml/mx/matrix"
//
//	func main() {
//	    a, _ := matrix.FromRows([][]int{{0, 1, 2}, {3, 4, 5}})
//	    b, _ := matrix.FromRows([][]int{{5, 4, 3}, {2, 1, 0}})
//
//	    sum, _ := a.Add(b)          // [[5 5 5] [5 5 5]]
//	    scaled := a.Scale(2)        // [[0 2 4] [6 8 10]]
//	    prod, _ := a.MatMul(b.Transpose())
//	}
//
// # Supported Element Types
//
// The [Element] constraint admits every built-in type supporting
// + - * and ==: all signed and unsigned integers, float32/float64, and
// complex64/complex128.
//
// # Shape Rules
//
// Element-wise Add/Sub require identical shapes; MatMul requires the
// inner dimensions to agree ((m, k) × (k, n) → (m, n)). Violations fail
// synchronously with [ErrShapeMismatch]; nothing is broadcast or coerced
// and no partial result is ever produced.
//
// # Errors
//
//   - [ErrEmptyRows], [ErrRaggedRows]: malformed FromRows literal.
//   - [ErrNegativeDimension], [ErrSizeMismatch]: malformed explicit shape.
//   - [ErrIndexOutOfBounds]: At/Set outside the matrix bounds.
//   - [ErrShapeMismatch]: non-conformable operands.
//
// All errors are sentinel values; match them with errors.Is.
package matrix
