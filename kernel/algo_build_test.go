// SPDX-License-Identifier: MIT
package kernel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparseruntime/spla/optype"
	"github.com/sparseruntime/spla/storage"
)

// TestAlgoBuildFromTriples_DuplicatesReduced reproduces scenario 4:
// [(0,0,1),(0,0,2),(1,1,3)] with reduce + folds to [(0,0,3),(1,1,3)].
func TestAlgoBuildFromTriples_DuplicatesReduced(t *testing.T) {
	plus, err := optype.Float32Type().NewBinaryOp("plus", "a+b", func(a, b any) any { return a.(float32) + b.(float32) })
	require.NoError(t, err)

	target := storage.NewMatrixBundle(2, 2, float32(0), eqFloat32, nil)
	task := &TaskBuild{
		Target: target,
		Rows:   []uint32{0, 0, 1},
		Cols:   []uint32{0, 0, 1},
		Vals:   []any{float32(1), float32(2), float32(3)},
		Reduce: plus,
		Nrows:  2, Ncols: 2,
		Fill: float32(0),
	}
	algo := NewAlgoBuildFromTriples(0)
	status, err := algo.Execute(&DispatchContext{Ctx: context.Background(), Task: task})
	require.NoError(t, err)
	assert.Equal(t, StatusOk, status)

	require.NoError(t, target.ValidateRW(storage.MatCOO))
	coo := target.Get(storage.MatCOO).(*storage.MatrixCOO)
	rows, cols, vals := coo.Triples()
	assert.Equal(t, []uint32{0, 1}, rows)
	assert.Equal(t, []uint32{0, 1}, cols)
	assert.Equal(t, []any{float32(3), float32(3)}, vals)
}

func TestAlgoBuildFromTriples_LengthMismatchFails(t *testing.T) {
	target := storage.NewMatrixBundle(2, 2, float32(0), eqFloat32, nil)
	task := &TaskBuild{Target: target, Rows: []uint32{0}, Cols: []uint32{0, 1}, Vals: []any{float32(1)}, Nrows: 2, Ncols: 2}
	algo := NewAlgoBuildFromTriples(0)
	status, err := algo.Execute(&DispatchContext{Ctx: context.Background(), Task: task})
	assert.ErrorIs(t, err, ErrLengthMismatch)
	assert.Equal(t, StatusInvalidArgument, status)
}

func TestAlgoBuildFromTriples_OutOfRangeFails(t *testing.T) {
	target := storage.NewMatrixBundle(2, 2, float32(0), eqFloat32, nil)
	task := &TaskBuild{Target: target, Rows: []uint32{5}, Cols: []uint32{0}, Vals: []any{float32(1)}, Nrows: 2, Ncols: 2}
	algo := NewAlgoBuildFromTriples(0)
	_, err := algo.Execute(&DispatchContext{Ctx: context.Background(), Task: task})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestAlgoBuildFromTriples_SortedNoDuplicatesSkipsLIL(t *testing.T) {
	target := storage.NewMatrixBundle(2, 2, float32(0), eqFloat32, nil)
	task := &TaskBuild{
		Target: target,
		Rows:   []uint32{0, 1},
		Cols:   []uint32{0, 1},
		Vals:   []any{float32(3), float32(3)},
		Sorted: true, NoDuplicates: true,
		Nrows: 2, Ncols: 2, Fill: float32(0),
	}
	algo := NewAlgoBuildFromTriples(0)
	_, err := algo.Execute(&DispatchContext{Ctx: context.Background(), Task: task})
	require.NoError(t, err)
	assert.True(t, target.IsValid(storage.MatCOO))

	coo := target.Get(storage.MatCOO).(*storage.MatrixCOO)
	rows, cols, vals := coo.Triples()
	assert.Equal(t, []uint32{0, 1}, rows)
	assert.Equal(t, []uint32{0, 1}, cols)
	assert.Equal(t, []any{float32(3), float32(3)}, vals)
}
