// SPDX-License-Identifier: MIT
package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eqFloat(a, b any) bool { return a.(float32) == b.(float32) }

func TestVectorBundle_ValidateRWD_ExactlyValidAndEmpty(t *testing.T) {
	b := NewVectorBundle(4, float32(0), eqFloat)
	require.NoError(t, b.ValidateRW(VecDense))
	dense := b.Get(VecDense).(*VectorDense)
	dense.Ax[1] = float32(5)
	b.Set(VecDense, dense)

	require.NoError(t, b.ValidateRWD(VecCOO))
	assert.True(t, b.IsValid(VecCOO))
	assert.False(t, b.IsValid(VecDense))
	coo := b.Get(VecCOO).(*VectorCOO)
	assert.Equal(t, 0, coo.NNZ())
}

func TestVectorBundle_ValidateRW_Idempotent(t *testing.T) {
	b := NewVectorBundle(4, float32(0), eqFloat)
	require.NoError(t, b.ValidateRW(VecDense))
	dense := b.Get(VecDense).(*VectorDense)
	require.NoError(t, b.ValidateRW(VecDense))
	// No data movement: the pointer returned the second time is identical.
	assert.Same(t, dense, b.Get(VecDense).(*VectorDense))
}

func TestVectorBundle_ConvertsCOOToDense(t *testing.T) {
	b := NewVectorBundle(4, float32(0), eqFloat)
	require.NoError(t, b.ValidateRWD(VecCOO))
	coo := b.Get(VecCOO).(*VectorCOO)
	coo.Ai = []uint32{1, 2}
	coo.Ax = []any{float32(7), float32(9)}
	b.Set(VecCOO, coo)

	require.NoError(t, b.ValidateRW(VecDense))
	dense := b.Get(VecDense).(*VectorDense)
	assert.Equal(t, []any{float32(0), float32(7), float32(9), float32(0)}, dense.Ax)
	// Reading VecDense invalidated VecCOO (read-write semantics).
	assert.False(t, b.IsValid(VecCOO))
}

func TestMatrixBundle_BuildWithDuplicatesReduced(t *testing.T) {
	b := NewMatrixBundle(2, 2, float32(0), eqFloat, func(a, c any) any { return a.(float32) + c.(float32) })
	require.NoError(t, b.ValidateRWD(MatLIL))
	lil := b.Get(MatLIL).(*MatrixLIL)
	require.NoError(t, lil.Append(0, 0, float32(1)))
	require.NoError(t, lil.Append(0, 0, float32(2)))
	require.NoError(t, lil.Append(1, 1, float32(3)))
	b.Set(MatLIL, lil)

	require.NoError(t, b.ValidateRW(MatCOO))
	coo := b.Get(MatCOO).(*MatrixCOO)
	rows, cols, vals := coo.Triples()
	assert.Equal(t, []uint32{0, 1}, rows)
	assert.Equal(t, []uint32{0, 1}, cols)
	assert.Equal(t, []any{float32(3), float32(3)}, vals)
}
