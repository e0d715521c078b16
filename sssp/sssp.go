// SPDX-License-Identifier: MIT
package sssp

import (
	"context"
	"errors"

	"github.com/sparseruntime/spla/engine"
	"github.com/sparseruntime/spla/expr"
)

// ErrShapeMismatch is returned when adjacency, dist, and mask dimensions
// are not mutually compatible.
var ErrShapeMismatch = errors.New("sssp: adjacency, dist, and mask dimensions disagree")

// Step performs one relaxation: candidate <- mask ⊙ (dist ×_{min,+}
// adjacency), then returns min(dist, candidate) elementwise. Repeated
// calls converge to shortest distances from whatever vertices dist
// holds a finite value for; a call that changes nothing means the fixed
// point has been reached.
func Step(ctx context.Context, lib *engine.Library, sr *Semiring, adjacency *engine.Matrix, dist, mask *engine.Vector) (*engine.Vector, engine.Status, error) {
	nrows, ncols := adjacency.Shape()
	if dist.Dim() != nrows || mask.Dim() != ncols {
		return nil, engine.StatusInvalidArgument, ErrShapeMismatch
	}

	candidate := lib.NewVector(sr.Type, ncols, Inf, nil)
	next := lib.NewVector(sr.Type, ncols, Inf, nil)

	e := lib.NewExpression()
	vxm, err := e.VxM(candidate, dist, adjacency, mask, sr.Plus, sr.Min, sr.NonZero, Inf, nil)
	if err != nil {
		return nil, engine.StatusInvalidArgument, err
	}
	fold, err := e.EWiseAdd(next, dist, candidate, nil, sr.Min, nil, vxm)
	if err != nil {
		return nil, engine.StatusInvalidArgument, err
	}
	if err := e.Wait(ctx); err != nil {
		return nil, engine.StatusFailed, err
	}
	if fold.State() != expr.Evaluated {
		return next, engine.StatusFailed, nil
	}
	return next, engine.StatusOk, nil
}
