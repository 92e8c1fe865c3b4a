// Copyright 2026 The MX Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matfile reads and writes the binary .mx container for named
// matrices.
//
// A container holds any number of named matrices with their element type
// and shape, a JSON header with free-form metadata, and a SHA-256
// checksum over the data section that is verified on every open.
//
// # Saving and Loading
//
//	m, _ := matrix.FromRows([][]float64{{0, 1, 2}, {3, 4, 5}})
//	err := matfile.Save("weights.mx", "observations", m)
//
//	loaded, err := matfile.Load[float64]("weights.mx", "observations")
//
// Multiple matrices per file go through [Writer] and [Reader]; large
// files can be opened zero-copy with [OpenMmap].
//
// # Portability
//
// Element data is stored row-major and little-endian. Only fixed-width
// element types can be stored: saving a Matrix[int] or Matrix[uint]
// fails with [ErrUnsupportedDType] rather than silently widening, so a
// file written on one platform loads identically on any other.
package matfile
