// SPDX-License-Identifier: MIT
package pagerank

import (
	"context"
	"errors"
	"math"

	"github.com/sparseruntime/spla/engine"
	"github.com/sparseruntime/spla/expr"
)

// ErrShapeMismatch is returned when adjacency is not square.
var ErrShapeMismatch = errors.New("pagerank: adjacency must be square")

// Run computes PageRank over adjacency's n vertices with damping factor
// alpha, stopping once the L1 change between successive rank vectors
// falls below tol or maxIter iterations have run. Vertices with no
// outgoing edges ("dangling") redistribute their rank mass evenly across
// every vertex each iteration, per the standard treatment of dangling
// nodes in the power-iteration formulation.
func Run(ctx context.Context, lib *engine.Library, sr *Semiring, adjacency *engine.Matrix, alpha, tol float64, maxIter int) (*engine.Vector, engine.Status, error) {
	nrows, ncols := adjacency.Shape()
	if nrows != ncols {
		return nil, engine.StatusInvalidArgument, ErrShapeMismatch
	}
	n := nrows

	transition, outdeg, err := buildTransition(lib, sr, adjacency, n)
	if err != nil {
		return nil, engine.StatusInvalidState, err
	}

	mask := lib.NewVector(sr.Type, n, float64(0), nil)
	if err := mask.SetDense(onesOf(n)); err != nil {
		return nil, engine.StatusInvalidState, err
	}

	rank := make([]float64, n)
	for i := range rank {
		rank[i] = 1.0 / float64(n)
	}

	for iter := 0; iter < maxIter; iter++ {
		propagated, status, err := propagate(ctx, lib, sr, transition, mask, rank, n)
		if err != nil || status != engine.StatusOk {
			return nil, status, err
		}

		var dangling float64
		for i, d := range outdeg {
			if d == 0 {
				dangling += rank[i]
			}
		}
		teleport := (1 - alpha) / float64(n)
		danglingShare := alpha * dangling / float64(n)

		next := make([]float64, n)
		var diff float64
		for i := 0; i < n; i++ {
			next[i] = teleport + danglingShare + alpha*propagated[i]
			diff += math.Abs(next[i] - rank[i])
		}
		rank = next
		if diff < tol {
			break
		}
	}

	result := lib.NewVector(sr.Type, n, float64(0), nil)
	if err := result.SetDense(toAny(rank)); err != nil {
		return nil, engine.StatusInvalidState, err
	}
	return result, engine.StatusOk, nil
}

// buildTransition normalizes adjacency's rows by their out-degree into a
// fresh row-stochastic matrix, returning the per-row out-degree alongside
// it for the caller's dangling-mass bookkeeping.
func buildTransition(lib *engine.Library, sr *Semiring, adjacency *engine.Matrix, n int) (*engine.Matrix, []float64, error) {
	rows, cols, vals, err := adjacency.Triples()
	if err != nil {
		return nil, nil, err
	}

	outdeg := make([]float64, n)
	for _, r := range rows {
		outdeg[r]++
	}

	normRows := make([]uint32, len(rows))
	normCols := make([]uint32, len(cols))
	normVals := make([]any, len(vals))
	for i, r := range rows {
		w := 1.0
		if fv, ok := vals[i].(float64); ok {
			w = fv
		}
		normRows[i] = r
		normCols[i] = cols[i]
		normVals[i] = w / outdeg[r]
	}

	transition := lib.NewMatrix(sr.Type, n, n, float64(0), nil, nil)
	if _, err := transition.Build(normRows, normCols, normVals, nil, false, false); err != nil {
		return nil, nil, err
	}
	return transition, outdeg, nil
}

// propagate runs one VxM step r <- rank ×_{+,×} transition and returns
// the resulting vector as a plain slice.
func propagate(ctx context.Context, lib *engine.Library, sr *Semiring, transition *engine.Matrix, mask *engine.Vector, rank []float64, n int) ([]float64, engine.Status, error) {
	v := lib.NewVector(sr.Type, n, float64(0), nil)
	if err := v.SetDense(toAny(rank)); err != nil {
		return nil, engine.StatusInvalidState, err
	}
	r := lib.NewVector(sr.Type, n, float64(0), nil)

	e := lib.NewExpression()
	node, err := e.VxM(r, v, transition, mask, sr.Times, sr.Plus, sr.NonZero, float64(0), nil)
	if err != nil {
		return nil, engine.StatusInvalidArgument, err
	}
	if err := e.Wait(ctx); err != nil {
		return nil, engine.StatusFailed, err
	}
	if node.State() != expr.Evaluated {
		return nil, engine.StatusFailed, nil
	}

	got, err := r.Slice()
	if err != nil {
		return nil, engine.StatusFailed, err
	}
	out := make([]float64, n)
	for i, x := range got {
		out[i] = x.(float64)
	}
	return out, engine.StatusOk, nil
}

func onesOf(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = float64(1)
	}
	return out
}

func toAny(xs []float64) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}
