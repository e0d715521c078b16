// SPDX-License-Identifier: MIT
package storage

import (
	"fmt"
	"sort"
)

// lilEntry is one (column, value) pair within a MatrixLIL row.
type lilEntry struct {
	Col uint32
	Val any
}

// MatrixLIL is the write-oriented list-of-lists matrix representation: one
// slice of (col,val) pairs per row. Rows are sorted lazily on read, not on
// write. A duplicate-reducing binary operator is attached and applied
// whenever Append sees a repeated column within a row.
type MatrixLIL struct {
	Nrows, Ncols int
	Rows         [][]lilEntry
	Fill         any
	reduce       func(a, b any) any
	sorted       []bool
}

// NewMatrixLIL allocates an empty nrows x ncols LIL matrix.
func NewMatrixLIL(nrows, ncols int, fill any) *MatrixLIL {
	return &MatrixLIL{
		Nrows:  nrows,
		Ncols:  ncols,
		Fill:   fill,
		Rows:   make([][]lilEntry, nrows),
		sorted: make([]bool, nrows),
	}
}

// SetReduceOp attaches the duplicate-key reduce function used by Append.
// It returns nil (success) whenever fn is non-nil; callers that need
// type-checking should validate fn's signature against their optype.Type
// before calling SetReduceOp.
func (m *MatrixLIL) SetReduceOp(fn func(a, b any) any) error {
	if fn == nil {
		return fmt.Errorf("storage: MatrixLIL.SetReduceOp: nil function: %w", ErrTypeMismatch)
	}
	m.reduce = fn
	return nil
}

// Append adds (row,col,val) to the matrix, folding it into an existing
// entry at the same (row,col) via the reduce operator if one is already
// present in that row (rows need not be sorted for this scan; Append is
// O(row length)).
func (m *MatrixLIL) Append(row int, col uint32, val any) error {
	if row < 0 || row >= m.Nrows {
		return fmt.Errorf("storage: MatrixLIL.Append: row %d: %w", row, ErrIndexOutOfRange)
	}
	if int(col) >= m.Ncols {
		return fmt.Errorf("storage: MatrixLIL.Append: col %d: %w", col, ErrIndexOutOfRange)
	}
	entries := m.Rows[row]
	for i := range entries {
		if entries[i].Col == col {
			if m.reduce != nil {
				entries[i].Val = m.reduce(entries[i].Val, val)
			} else {
				entries[i].Val = val
			}
			return nil
		}
	}
	m.Rows[row] = append(entries, lilEntry{Col: col, Val: val})
	m.sorted[row] = false
	return nil
}

// ensureSorted sorts row r by column if it is not already known sorted.
func (m *MatrixLIL) ensureSorted(r int) {
	if m.sorted[r] {
		return
	}
	sort.Slice(m.Rows[r], func(i, j int) bool { return m.Rows[r][i].Col < m.Rows[r][j].Col })
	m.sorted[r] = true
}

// NNZ returns the total number of logical entries across all rows.
func (m *MatrixLIL) NNZ() int {
	n := 0
	for _, r := range m.Rows {
		n += len(r)
	}
	return n
}

// ToCOO converts to coordinate form, sorting each row first.
func (m *MatrixLIL) ToCOO() *MatrixCOO {
	out := &MatrixCOO{Nrows: m.Nrows, Ncols: m.Ncols, Fill: m.Fill}
	for r := 0; r < m.Nrows; r++ {
		m.ensureSorted(r)
		for _, e := range m.Rows[r] {
			out.Ai = append(out.Ai, uint32(r))
			out.Aj = append(out.Aj, e.Col)
			out.Ax = append(out.Ax, e.Val)
		}
	}
	return out
}
