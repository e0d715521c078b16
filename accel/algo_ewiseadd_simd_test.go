// SPDX-License-Identifier: MIT
package accel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparseruntime/spla/kernel"
	"github.com/sparseruntime/spla/storage"
)

func TestAlgoEWiseAddSIMD_UnmaskedDenseAdd(t *testing.T) {
	a := newDenseF32Vector(t, []float32{1, 0, 3})
	b := newDenseF32Vector(t, []float32{0, 2, 5})
	w := storage.NewVectorBundle(3, float32(0), eqF32)

	task := &kernel.TaskEWiseAdd{W: w, A: a, B: b, Add: StdFloat32().Plus}
	ctx := NewSIMDContext()
	algo := NewAlgoEWiseAddSIMD32(ctx, 0)
	status, err := algo.Execute(&kernel.DispatchContext{Ctx: context.Background(), Task: task})
	require.NoError(t, err)
	assert.Equal(t, kernel.StatusOk, status)

	out := w.Get(storage.VecDense).(*storage.VectorDense)
	assert.Equal(t, []any{float32(1), float32(2), float32(8)}, out.Ax)
}

func TestAlgoEWiseAddSIMD_MaskZeroesUnselectedPositions(t *testing.T) {
	a := newDenseF32Vector(t, []float32{1, 2, 3})
	b := newDenseF32Vector(t, []float32{10, 20, 30})
	mask := newDenseF32Vector(t, []float32{1, 0, 1})
	w := storage.NewVectorBundle(3, float32(0), eqF32)

	task := &kernel.TaskEWiseAdd{W: w, A: a, B: b, Mask: mask, Add: StdFloat32().Plus}
	ctx := NewSIMDContext()
	algo := NewAlgoEWiseAddSIMD32(ctx, 0)
	_, err := algo.Execute(&kernel.DispatchContext{Ctx: context.Background(), Task: task})
	require.NoError(t, err)

	out := w.Get(storage.VecDense).(*storage.VectorDense)
	assert.Equal(t, []any{float32(11), float32(0), float32(33)}, out.Ax)
}
