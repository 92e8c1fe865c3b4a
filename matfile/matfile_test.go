// Copyright 2026 The MX Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matfile_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mx-ml/mx/matfile"
	"github.com/mx-ml/mx/matrix"
)

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.mx")

	m, err := matrix.FromRows([][]float64{{0, 1, 2}, {3, 4, 5}})
	require.NoError(t, err)
	require.NoError(t, matfile.Save(path, "observations", m))

	loaded, err := matfile.Load[float64](path, "observations")
	require.NoError(t, err)
	assert.True(t, loaded.Equal(m), "loaded = %v, want %v", loaded, m)
}

func TestLoadWrongElementType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.mx")

	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.NoError(t, matfile.Save(path, "m", m))

	_, err = matfile.Load[int32](path, "m")
	assert.ErrorIs(t, err, matfile.ErrDTypeMismatch)
}

func TestLoadMissingMatrix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.mx")

	m, err := matrix.FromRows([][]float32{{1}})
	require.NoError(t, err)
	require.NoError(t, matfile.Save(path, "present", m))

	_, err = matfile.Load[float32](path, "absent")
	assert.ErrorIs(t, err, matfile.ErrMatrixNotFound)
}

func TestSaveUnsupportedElementType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.mx")

	// Matrix[int] is not portable across platforms and is rejected.
	m, err := matrix.FromRows([][]int{{1, 2}})
	require.NoError(t, err)

	err = matfile.Save(path, "m", m)
	assert.ErrorIs(t, err, matfile.ErrUnsupportedDType)
}

func TestMultipleMatricesPerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.mx")

	weights, err := matrix.Full(matrix.NewShape(4, 4), float32(0.5))
	require.NoError(t, err)
	bias, err := matrix.FromRows([][]float32{{1, 2, 3, 4}})
	require.NoError(t, err)

	packedWeights, err := matfile.Pack(weights)
	require.NoError(t, err)
	packedBias, err := matfile.Pack(bias)
	require.NoError(t, err)

	w, err := matfile.NewWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.WriteMatrices(map[string]*matfile.StoredMatrix{
		"weights": packedWeights,
		"bias":    packedBias,
	}, map[string]string{"layer": "dense0"}))
	require.NoError(t, w.Close())

	r, err := matfile.NewReader(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"bias", "weights"}, r.MatrixNames())
	assert.Equal(t, "dense0", r.Header().Metadata["layer"])

	sm, err := r.Stored("bias")
	require.NoError(t, err)
	back, err := matfile.Unpack[float32](sm)
	require.NoError(t, err)
	assert.True(t, back.Equal(bias))
}

func TestMmapReaderRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.mx")

	m, err := matrix.Full(matrix.NewShape(32, 32), 1.25)
	require.NoError(t, err)
	require.NoError(t, matfile.Save(path, "grid", m))

	r, err := matfile.OpenMmap(path)
	require.NoError(t, err)
	defer r.Close()

	sm, err := r.Stored("grid")
	require.NoError(t, err)
	back, err := matfile.Unpack[float64](sm)
	require.NoError(t, err)
	assert.True(t, back.Equal(m))
}
