// SPDX-License-Identifier: MIT
package storage

import (
	"fmt"
	"sort"
)

// MatrixCOO is the host coordinate-triples matrix representation.
type MatrixCOO struct {
	Nrows, Ncols int
	Ai, Aj       []uint32
	Ax           []any
	Fill         any
}

// NewMatrixCOOFromTriples builds a MatrixCOO from three equal-length
// arrays, folding duplicate (row,col) keys via reduce. Unequal-length
// inputs fail. If sorted and noDuplicates are both true the caller
// promises rows and cols are already in canonical (row,col) order with
// no duplicates,
// skipping the sort/reduce pass entirely (the "values-sorted" /
// "no-duplicates" descriptor flags).
func NewMatrixCOOFromTriples(nrows, ncols int, rows, cols []uint32, vals []any, fill any, reduce func(a, b any) any, sorted, noDuplicates bool) (*MatrixCOO, error) {
	if len(rows) != len(cols) || len(rows) != len(vals) {
		return nil, fmt.Errorf("storage: NewMatrixCOOFromTriples: %w", ErrLengthMismatch)
	}
	for i := range rows {
		if int(rows[i]) >= nrows || int(cols[i]) >= ncols {
			return nil, fmt.Errorf("storage: NewMatrixCOOFromTriples: entry %d: %w", i, ErrIndexOutOfRange)
		}
	}
	if sorted && noDuplicates {
		return &MatrixCOO{
			Nrows: nrows, Ncols: ncols, Fill: fill,
			Ai: append([]uint32(nil), rows...),
			Aj: append([]uint32(nil), cols...),
			Ax: append([]any(nil), vals...),
		}, nil
	}

	// Build via LIL so duplicate folding and row-sort happen in one place.
	lil := NewMatrixLIL(nrows, ncols, fill)
	if reduce != nil {
		_ = lil.SetReduceOp(reduce)
	} else {
		_ = lil.SetReduceOp(func(_, b any) any { return b })
	}
	for i := range rows {
		if err := lil.Append(int(rows[i]), cols[i], vals[i]); err != nil {
			return nil, err
		}
	}
	_ = noDuplicates // duplicate folding always runs through LIL.Append regardless
	return lil.ToCOO(), nil
}

// NNZ returns the number of stored triples.
func (m *MatrixCOO) NNZ() int { return len(m.Ax) }

// Triples returns copies of the three parallel arrays, for round-trip
// read-back.
func (m *MatrixCOO) Triples() (rows, cols []uint32, vals []any) {
	return append([]uint32(nil), m.Ai...), append([]uint32(nil), m.Aj...), append([]any(nil), m.Ax...)
}

// ToCSR does a stable sort by row then builds row pointers.
func (m *MatrixCOO) ToCSR() *MatrixCSR {
	n := len(m.Ax)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return m.Ai[order[i]] < m.Ai[order[j]] })

	out := &MatrixCSR{
		Nrows: m.Nrows, Ncols: m.Ncols, Fill: m.Fill,
		Ap: make([]uint32, m.Nrows+1),
		Aj: make([]uint32, n),
		Ax: make([]any, n),
	}
	for k, idx := range order {
		out.Aj[k] = m.Aj[idx]
		out.Ax[k] = m.Ax[idx]
		out.Ap[m.Ai[idx]+1]++
	}
	for r := 0; r < m.Nrows; r++ {
		out.Ap[r+1] += out.Ap[r]
	}
	return out
}

// ToDense materializes a dense matrix, filling gaps with m.Fill.
func (m *MatrixCOO) ToDense() *MatrixDense {
	d := NewMatrixDense(m.Nrows, m.Ncols, m.Fill)
	for k := range m.Ax {
		d.Set(m.Ai[k], m.Aj[k], m.Ax[k])
	}
	return d
}
