// SPDX-License-Identifier: MIT
package pagerank

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparseruntime/spla/engine"
)

// TestRun_IsolatedVertex reproduces scenario 6: PageRank on a single
// vertex with no edges converges immediately to rank 1.0.
func TestRun_IsolatedVertex(t *testing.T) {
	lib := engine.NewLibrary()
	sr := NewSemiring()
	lib.RegisterType(sr.Type, 0)

	adjacency := lib.NewMatrix(sr.Type, 1, 1, float64(0), nil, nil)
	status, err := adjacency.Build(nil, nil, nil, nil, false, false)
	require.NoError(t, err)
	require.Equal(t, engine.StatusOk, status)

	result, status, err := Run(context.Background(), lib, sr, adjacency, 0.85, 1e-9, 100)
	require.NoError(t, err)
	assert.Equal(t, engine.StatusOk, status)

	got, err := result.Slice()
	require.NoError(t, err)
	assert.Equal(t, []any{float64(1)}, got)
}

// TestRun_ShapeMismatchFails covers a non-square adjacency matrix.
func TestRun_ShapeMismatchFails(t *testing.T) {
	lib := engine.NewLibrary()
	sr := NewSemiring()
	lib.RegisterType(sr.Type, 0)

	adjacency := lib.NewMatrix(sr.Type, 2, 3, float64(0), nil, nil)

	_, status, err := Run(context.Background(), lib, sr, adjacency, 0.85, 1e-9, 100)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Equal(t, engine.StatusInvalidArgument, status)
}

// TestRun_TwoCycleConvergesToUniformRank checks that a two-vertex cycle
// (each vertex's sole out-edge points at the other) converges to an
// equal split of rank mass.
func TestRun_TwoCycleConvergesToUniformRank(t *testing.T) {
	lib := engine.NewLibrary()
	sr := NewSemiring()
	lib.RegisterType(sr.Type, 0)

	adjacency := lib.NewMatrix(sr.Type, 2, 2, float64(0), nil, nil)
	status, err := adjacency.Build([]uint32{0, 1}, []uint32{1, 0}, []any{float64(1), float64(1)}, nil, false, false)
	require.NoError(t, err)
	require.Equal(t, engine.StatusOk, status)

	result, status, err := Run(context.Background(), lib, sr, adjacency, 0.85, 1e-9, 200)
	require.NoError(t, err)
	assert.Equal(t, engine.StatusOk, status)

	got, err := result.Slice()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.InDelta(t, 0.5, got[0].(float64), 1e-6)
	assert.InDelta(t, 0.5, got[1].(float64), 1e-6)
}
