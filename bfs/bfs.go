// SPDX-License-Identifier: MIT
package bfs

import (
	"context"
	"errors"

	"github.com/sparseruntime/spla/engine"
	"github.com/sparseruntime/spla/expr"
	"github.com/sparseruntime/spla/optype"
)

// ErrShapeMismatch is returned when adjacency, frontier, and mask
// dimensions are not mutually compatible.
var ErrShapeMismatch = errors.New("bfs: adjacency, frontier, and mask dimensions disagree")

// Level computes one BFS step: r <- mask ⊙ (frontier ×_{AND,OR}
// adjacency). Positions rejected by the mask are left at std's fill
// value (zero). Callers walk a full traversal by feeding the returned
// vector back in as the next frontier and shrinking mask as vertices are
// visited.
func Level(ctx context.Context, lib *engine.Library, std *optype.StdBool, adjacency *engine.Matrix, frontier, mask *engine.Vector) (*engine.Vector, engine.Status, error) {
	nrows, ncols := adjacency.Shape()
	if frontier.Dim() != nrows || mask.Dim() != ncols {
		return nil, engine.StatusInvalidArgument, ErrShapeMismatch
	}

	result := lib.NewVector(std.Type, ncols, uint32(0), nil)

	e := lib.NewExpression()
	node, err := e.VxM(result, frontier, adjacency, mask, std.And, std.Or, std.NonZero, uint32(0), nil)
	if err != nil {
		return nil, engine.StatusInvalidArgument, err
	}
	if err := e.Wait(ctx); err != nil {
		return nil, engine.StatusFailed, err
	}
	if node.State() != expr.Evaluated {
		return result, engine.StatusFailed, nil
	}
	return result, engine.StatusOk, nil
}
