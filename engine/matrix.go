// SPDX-License-Identifier: MIT
package engine

import (
	"context"

	"github.com/sparseruntime/spla/kernel"
	"github.com/sparseruntime/spla/optype"
	"github.com/sparseruntime/spla/storage"
)

// Matrix is an nrows x ncols storage bundle of element type T, plus the
// fill value positions without an explicit entry carry.
type Matrix struct {
	t            *optype.Type
	nrows, ncols int
	fill         any
	bundle       *storage.Bundle
}

// NewMatrix allocates an empty matrix. eq tests element equality for
// dense<->sparse conversions (nil falls back to Go's ==); reduce, if
// non-nil, folds duplicate (row,col) keys on Build.
func (l *Library) NewMatrix(t *optype.Type, nrows, ncols int, fill any, eq func(a, b any) bool, reduce *optype.BinaryOp) *Matrix {
	var reduceFn func(a, b any) any
	if reduce != nil {
		reduceFn = reduce.Func
	}
	return &Matrix{
		t: t, nrows: nrows, ncols: ncols, fill: fill,
		bundle: storage.NewMatrixBundle(nrows, ncols, fill, eq, reduceFn),
	}
}

// Type returns the matrix's element type.
func (m *Matrix) Type() *optype.Type { return m.t }

// Shape returns the matrix's row and column counts.
func (m *Matrix) Shape() (nrows, ncols int) { return m.nrows, m.ncols }

// Fill returns the matrix's fill value.
func (m *Matrix) Fill() any { return m.fill }

// Build loads (rows, cols, vals) into the matrix directly, running the
// same AlgoBuildFromTriples the kernel registry would dispatch to for an
// OpBuild expression node. This is meant for seeding input matrices
// (adjacency matrices, matrix-market loads) before an expression graph is
// built over them; it does not go through the scheduler.
func (m *Matrix) Build(rows, cols []uint32, vals []any, reduce *optype.BinaryOp, sorted, noDuplicates bool) (Status, error) {
	task := &kernel.TaskBuild{
		Target: m.bundle,
		Rows:   rows, Cols: cols, Vals: vals,
		Reduce: reduce, Sorted: sorted, NoDuplicates: noDuplicates,
		Nrows: m.nrows, Ncols: m.ncols, Fill: m.fill,
	}
	algo := kernel.NewAlgoBuildFromTriples(0)
	return algo.Execute(&kernel.DispatchContext{Ctx: context.Background(), Task: task})
}

// Triples reads the matrix back as three parallel arrays in COO order.
func (m *Matrix) Triples() (rows, cols []uint32, vals []any, err error) {
	if err := m.bundle.ValidateRW(storage.MatCOO); err != nil {
		return nil, nil, nil, err
	}
	coo := m.bundle.Get(storage.MatCOO).(*storage.MatrixCOO)
	rows, cols, vals = coo.Triples()
	return rows, cols, vals, nil
}
