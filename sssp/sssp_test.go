// SPDX-License-Identifier: MIT
package sssp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparseruntime/spla/engine"
)

// TestStep_RelaxesOneHopOnAPath checks that a single Step over a
// 3-node weighted path discovers the one-hop distances from the source.
func TestStep_RelaxesOneHopOnAPath(t *testing.T) {
	lib := engine.NewLibrary()
	sr := NewSemiring()
	lib.RegisterType(sr.Type, 0)

	adjacency := lib.NewMatrix(sr.Type, 3, 3, Inf, nil, nil)
	status, err := adjacency.Build(
		[]uint32{0, 1}, []uint32{1, 2}, []any{float64(2), float64(3)},
		nil, false, false,
	)
	require.NoError(t, err)
	require.Equal(t, engine.StatusOk, status)

	dist := lib.NewVector(sr.Type, 3, Inf, nil)
	require.NoError(t, dist.SetDense([]any{float64(0), Inf, Inf}))
	mask := lib.NewVector(sr.Type, 3, float64(0), nil)
	require.NoError(t, mask.SetDense([]any{float64(1), float64(1), float64(1)}))

	next, status, err := Step(context.Background(), lib, sr, adjacency, dist, mask)
	require.NoError(t, err)
	assert.Equal(t, engine.StatusOk, status)

	got, err := next.Slice()
	require.NoError(t, err)
	assert.Equal(t, []any{float64(0), float64(2), Inf}, got)
}

// TestStep_ShapeMismatchFails covers a dist vector whose dimension does
// not match the adjacency matrix's row count.
func TestStep_ShapeMismatchFails(t *testing.T) {
	lib := engine.NewLibrary()
	sr := NewSemiring()
	lib.RegisterType(sr.Type, 0)

	adjacency := lib.NewMatrix(sr.Type, 3, 3, Inf, nil, nil)
	dist := lib.NewVector(sr.Type, 2, Inf, nil)
	mask := lib.NewVector(sr.Type, 3, float64(0), nil)

	_, status, err := Step(context.Background(), lib, sr, adjacency, dist, mask)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Equal(t, engine.StatusInvalidArgument, status)
}
