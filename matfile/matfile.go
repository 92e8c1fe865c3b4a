// Copyright 2026 The MX Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matfile

import (
	"fmt"
	"io"

	"github.com/mx-ml/mx/internal/matfile"
	"github.com/mx-ml/mx/matrix"
)

// Header is the JSON header of a .mx file.
type Header = matfile.Header

// MatrixMeta describes one matrix in a .mx file.
type MatrixMeta = matfile.MatrixMeta

// DataType is runtime element-type information for stored matrices.
type DataType = matfile.DataType

// StoredMatrix is the untyped on-disk form of a matrix.
type StoredMatrix = matfile.StoredMatrix

// Writer writes .mx container files.
type Writer = matfile.Writer

// Reader reads .mx container files into memory.
type Reader = matfile.Reader

// MmapReader reads .mx container files through a read-only memory mapping.
type MmapReader = matfile.MmapReader

// Sentinel errors reported when opening or loading containers.
var (
	ErrInvalidMagic       = matfile.ErrInvalidMagic
	ErrUnsupportedVersion = matfile.ErrUnsupportedVersion
	ErrChecksumMismatch   = matfile.ErrChecksumMismatch
	ErrTruncated          = matfile.ErrTruncated
	ErrMatrixNotFound     = matfile.ErrMatrixNotFound
	ErrDTypeMismatch      = matfile.ErrDTypeMismatch
	ErrUnsupportedDType   = matfile.ErrUnsupportedDType
	ErrClosed             = matfile.ErrClosed
)

// NewWriter creates a new .mx file writer.
func NewWriter(path string) (*Writer, error) {
	return matfile.NewWriter(path)
}

// NewReader reads and validates the .mx file at path.
func NewReader(path string) (*Reader, error) {
	return matfile.NewReader(path)
}

// NewReaderBytes parses a .mx container held in memory.
func NewReaderBytes(raw []byte) (*Reader, error) {
	return matfile.NewReaderBytes(raw)
}

// OpenMmap memory-maps the .mx file at path and validates it.
func OpenMmap(path string) (*MmapReader, error) {
	return matfile.OpenMmap(path)
}

// WriteTo writes a set of named matrices to an io.Writer.
func WriteTo(w io.Writer, stored map[string]*StoredMatrix, metadata map[string]string) error {
	return matfile.WriteTo(w, stored, metadata)
}

// Pack encodes a matrix into its untyped stored form.
func Pack[T matrix.Element](m *matrix.Matrix[T]) (*StoredMatrix, error) {
	return matfile.Pack(m)
}

// Unpack decodes a stored matrix into a typed Matrix.
func Unpack[T matrix.Element](sm *StoredMatrix) (*matrix.Matrix[T], error) {
	return matfile.Unpack[T](sm)
}

// Save writes a single named matrix to a new .mx file at path.
func Save[T matrix.Element](path, name string, m *matrix.Matrix[T]) error {
	sm, err := Pack(m)
	if err != nil {
		return err
	}

	w, err := NewWriter(path)
	if err != nil {
		return err
	}
	if err := w.WriteMatrices(map[string]*StoredMatrix{name: sm}, nil); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write %q: %w", name, err)
	}
	return w.Close()
}

// Load reads the named matrix from the .mx file at path.
func Load[T matrix.Element](path, name string) (*matrix.Matrix[T], error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	sm, err := r.Stored(name)
	if err != nil {
		return nil, err
	}
	return Unpack[T](sm)
}
