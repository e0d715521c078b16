// SPDX-License-Identifier: MIT
package accel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparseruntime/spla/kernel"
	"github.com/sparseruntime/spla/optype"
	"github.com/sparseruntime/spla/storage"
)

func eqF32(a, b any) bool { return a.(float32) == b.(float32) }

func newDenseF32Vector(t *testing.T, vals []float32) *storage.Bundle {
	t.Helper()
	b := storage.NewVectorBundle(len(vals), float32(0), eqF32)
	require.NoError(t, b.ValidateRWD(storage.VecDense))
	d := b.Get(storage.VecDense).(*storage.VectorDense)
	for i, v := range vals {
		d.Ax[i] = v
	}
	b.Set(storage.VecDense, d)
	return b
}

func newDenseF32Matrix(t *testing.T, rows [][]float32) *storage.Bundle {
	t.Helper()
	nrows := len(rows)
	ncols := len(rows[0])
	b := storage.NewMatrixBundle(nrows, ncols, float32(0), eqF32, func(a, c any) any { return a })
	require.NoError(t, b.ValidateRWD(storage.MatDense))
	d := b.Get(storage.MatDense).(*storage.MatrixDense)
	for r, row := range rows {
		for c, v := range row {
			d.Set(uint32(r), uint32(c), v)
		}
	}
	b.Set(storage.MatDense, d)
	return b
}

// TestAlgoVxMSIMD_MatchesScalarReference checks the SIMD fast path
// against the same 4-node path BFS-step shape used for the CPU scalar
// algorithm, but over the arithmetic semiring instead of Boolean.
func TestAlgoVxMSIMD_MatchesScalarReference(t *testing.T) {
	m := newDenseF32Matrix(t, [][]float32{
		{0, 2, 0, 0},
		{0, 0, 3, 0},
		{0, 0, 0, 4},
		{0, 0, 0, 0},
	})
	v := newDenseF32Vector(t, []float32{1, 0, 0, 0})
	mask := newDenseF32Vector(t, []float32{0, 1, 1, 1})
	r := storage.NewVectorBundle(4, float32(0), eqF32)

	sr := StdFloat32()
	task := &kernel.TaskVxM{
		R: r, V: v, M: m, Mask: mask,
		Mul: sr.Times, Add: sr.Plus, Select: sr.NonZero,
		Init: float32(0), K: 4, N: 4,
	}
	ctx := NewSIMDContext()
	algo := NewAlgoVxMSIMD32(ctx, 0)
	status, err := algo.Execute(&kernel.DispatchContext{Ctx: context.Background(), Task: task})
	require.NoError(t, err)
	assert.Equal(t, kernel.StatusOk, status)

	out := r.Get(storage.VecDense).(*storage.VectorDense)
	assert.Equal(t, []any{float32(0), float32(2), float32(0), float32(0)}, out.Ax)
}

func TestAlgoVxMSIMD_RejectsUnrecognizedOperators(t *testing.T) {
	ty := optype.Float32Type()
	mul, _ := ty.NewBinaryOp("mul2", "a*b", func(a, b any) any { return a })
	add, _ := ty.NewBinaryOp("add2", "a+b", func(a, b any) any { return a })
	sel, _ := ty.NewSelectOp("sel2", "a", func(a any) bool { return true })

	m := newDenseF32Matrix(t, [][]float32{{1}})
	v := newDenseF32Vector(t, []float32{1})
	mask := newDenseF32Vector(t, []float32{1})
	r := storage.NewVectorBundle(1, float32(0), eqF32)

	task := &kernel.TaskVxM{R: r, V: v, M: m, Mask: mask, Mul: mul, Add: add, Select: sel, Init: float32(0), K: 1, N: 1}
	ctx := NewSIMDContext()
	algo := NewAlgoVxMSIMD32(ctx, 0)
	status, err := algo.Execute(&kernel.DispatchContext{Ctx: context.Background(), Task: task})
	assert.Error(t, err)
	assert.Equal(t, kernel.StatusCompilationError, status)
}
