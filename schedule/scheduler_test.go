// SPDX-License-Identifier: MIT
package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparseruntime/spla/block"
	"github.com/sparseruntime/spla/expr"
	"github.com/sparseruntime/spla/kernel"
	"github.com/sparseruntime/spla/optype"
	"github.com/sparseruntime/spla/storage"
)

func eqFloat32(a, b any) bool { return a.(float32) == b.(float32) }

func newRegistry(t *optype.Type) *kernel.Registry {
	reg := kernel.NewRegistry()
	reg.Register(kernel.OpBuild, t, kernel.NewAlgoBuildFromTriples(0))
	return reg
}

func buildTask(nrows, ncols int, rows, cols []uint32, vals []any) *kernel.TaskBuild {
	target := storage.NewMatrixBundle(nrows, ncols, float32(0), eqFloat32, nil)
	return &kernel.TaskBuild{
		Target: target,
		Rows:   rows, Cols: cols, Vals: vals,
		Nrows: nrows, Ncols: ncols, Fill: float32(0),
	}
}

func TestScheduler_LinearChainCompletes(t *testing.T) {
	ft := optype.Float32Type()
	reg := newRegistry(ft)
	dm := block.NewDeviceManager(2)
	s := NewScheduler(reg, dm, 2)

	g := expr.NewGraph()
	taskA := buildTask(2, 2, []uint32{0}, []uint32{0}, []any{float32(1)})
	a, err := g.AddNode(kernel.OpBuild, ft, taskA, nil)
	require.NoError(t, err)
	taskB := buildTask(2, 2, []uint32{1}, []uint32{1}, []any{float32(2)})
	b, err := g.AddNode(kernel.OpBuild, ft, taskB, nil, a)
	require.NoError(t, err)

	require.NoError(t, s.Run(context.Background(), g))
	assert.Equal(t, expr.Evaluated, a.State())
	assert.Equal(t, expr.Evaluated, b.State())
}

func TestScheduler_FailingNodeAbortsDescendants(t *testing.T) {
	ft := optype.Float32Type()
	reg := newRegistry(ft)
	dm := block.NewDeviceManager(1)
	s := NewScheduler(reg, dm, 1)

	g := expr.NewGraph()
	badTask := buildTask(2, 2, []uint32{0}, []uint32{0, 1}, []any{float32(1)})
	a, err := g.AddNode(kernel.OpBuild, ft, badTask, nil)
	require.NoError(t, err)
	okTask := buildTask(2, 2, []uint32{1}, []uint32{1}, []any{float32(2)})
	b, err := g.AddNode(kernel.OpBuild, ft, okTask, nil, a)
	require.NoError(t, err)

	require.NoError(t, s.Run(context.Background(), g))
	assert.Equal(t, expr.Failed, a.State())
	assert.Equal(t, expr.Aborted, b.State())
}

func TestScheduler_IndependentSiblingsBothComplete(t *testing.T) {
	ft := optype.Float32Type()
	reg := newRegistry(ft)
	dm := block.NewDeviceManager(2)
	s := NewScheduler(reg, dm, 2)

	g := expr.NewGraph()
	taskA := buildTask(2, 2, []uint32{0}, []uint32{0}, []any{float32(1)})
	a, err := g.AddNode(kernel.OpBuild, ft, taskA, nil)
	require.NoError(t, err)
	taskB := buildTask(2, 2, []uint32{1}, []uint32{1}, []any{float32(2)})
	b, err := g.AddNode(kernel.OpBuild, ft, taskB, nil)
	require.NoError(t, err)

	require.NoError(t, s.Run(context.Background(), g))
	assert.Equal(t, expr.Evaluated, a.State())
	assert.Equal(t, expr.Evaluated, b.State())
}

func eqUint32(a, b any) bool { return a.(uint32) == b.(uint32) }

func boolVectorBundle(values []uint32) *storage.Bundle {
	b := storage.NewVectorBundle(len(values), uint32(0), eqUint32)
	_ = b.ValidateRWD(storage.VecDense)
	d := b.Get(storage.VecDense).(*storage.VectorDense)
	for i, v := range values {
		d.Ax[i] = v
	}
	b.Set(storage.VecDense, d)
	return b
}

func boolMatrixBundle(rows [][]uint32) *storage.Bundle {
	nrows, ncols := len(rows), len(rows[0])
	b := storage.NewMatrixBundle(nrows, ncols, uint32(0), eqUint32, func(a, _ any) any { return a })
	_ = b.ValidateRWD(storage.MatLIL)
	lil := b.Get(storage.MatLIL).(*storage.MatrixLIL)
	for i, row := range rows {
		for j, v := range row {
			if v != 0 {
				_ = lil.Append(i, uint32(j), v)
			}
		}
	}
	b.Set(storage.MatLIL, lil)
	return b
}

// identityMatrix returns an n x n identity so VxM with the boolean
// semiring just threads v straight through to r, independent of n.
func identityMatrix(n int) [][]uint32 {
	rows := make([][]uint32, n)
	for i := range rows {
		rows[i] = make([]uint32, n)
		rows[i][i] = 1
	}
	return rows
}

// TestScheduler_BlockGridBoundary exercises the scheduler's real wiring
// of block.Grid and block.DeviceManager into kernel dispatch across the
// two shapes spec.md calls out at the boundary: a 1x1 block grid (the
// whole vector fits in one block) and an Nbr x 1 grid for Nbr > 1 (the
// vector spans several block-rows, each its own concurrent sub-task).
func TestScheduler_BlockGridBoundary(t *testing.T) {
	sr := optype.NewStdBool()

	run := func(t *testing.T, n, blockSize, wantBR int) {
		reg := kernel.NewRegistry()
		reg.Register(kernel.OpVxM, sr.Type, kernel.NewAlgoVxMScalar(0))
		dm := block.NewDeviceManager(3)
		s := NewSchedulerWithBlockSize(reg, dm, 2, blockSize)

		values := make([]uint32, n)
		mask := make([]uint32, n)
		for i := range values {
			values[i] = uint32(i % 2)
			mask[i] = 1
		}
		v := boolVectorBundle(values)
		m := boolMatrixBundle(identityMatrix(n))
		maskBundle := boolVectorBundle(mask)
		r := storage.NewVectorBundle(n, uint32(0), eqUint32)

		task := &kernel.TaskVxM{
			R: r, V: v, M: m, Mask: maskBundle,
			Mul: sr.And, Add: sr.Or, Select: sr.NonZero,
			Init: uint32(0), K: n, N: n,
		}

		g := expr.NewGraph()
		node, err := g.AddNode(kernel.OpVxM, sr.Type, task, nil)
		require.NoError(t, err)
		require.NoError(t, s.Run(context.Background(), g))
		assert.Equal(t, expr.Evaluated, node.State())

		out := r.Get(storage.VecDense).(*storage.VectorDense)
		assert.Equal(t, values, toUint32Slice(out.Ax))

		grid := block.NewVectorGrid(n, blockSize)
		assert.Equal(t, wantBR, grid.BR)
		devices := dm.FetchDevices(grid.BR, node)
		assert.Len(t, devices, wantBR)
	}

	t.Run("1x1", func(t *testing.T) { run(t, 3, 8, 1) })
	t.Run("NbrX1", func(t *testing.T) { run(t, 10, 3, 4) })
}

func toUint32Slice(ax []any) []uint32 {
	out := make([]uint32, len(ax))
	for i, x := range ax {
		out[i] = x.(uint32)
	}
	return out
}

func TestScheduler_NoRegisteredAlgoFailsNode(t *testing.T) {
	ft := optype.Float32Type()
	reg := kernel.NewRegistry()
	dm := block.NewDeviceManager(1)
	s := NewScheduler(reg, dm, 1)

	g := expr.NewGraph()
	taskA := buildTask(2, 2, []uint32{0}, []uint32{0}, []any{float32(1)})
	a, err := g.AddNode(kernel.OpBuild, ft, taskA, nil)
	require.NoError(t, err)

	require.NoError(t, s.Run(context.Background(), g))
	assert.Equal(t, expr.Failed, a.State())
}
