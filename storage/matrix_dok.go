// SPDX-License-Identifier: MIT
package storage

import (
	"fmt"
	"sort"
)

// dokKey is the (row,col) lookup key for MatrixDOK.
type dokKey struct {
	row, col uint32
}

// MatrixDOK is the point-query dictionary-of-keys matrix representation.
type MatrixDOK struct {
	Nrows, Ncols int
	Fill         any
	data         map[dokKey]any
	reduce       func(a, b any) any
}

// NewMatrixDOK allocates an empty nrows x ncols DOK matrix.
func NewMatrixDOK(nrows, ncols int, fill any) *MatrixDOK {
	return &MatrixDOK{Nrows: nrows, Ncols: ncols, Fill: fill, data: make(map[dokKey]any)}
}

// SetReduceOp attaches the duplicate-key reduce function used by Set.
func (m *MatrixDOK) SetReduceOp(fn func(a, b any) any) error {
	if fn == nil {
		return fmt.Errorf("storage: MatrixDOK.SetReduceOp: nil function: %w", ErrTypeMismatch)
	}
	m.reduce = fn
	return nil
}

// Set writes val at (row,col), folding with the reduce operator if an
// entry already exists there.
func (m *MatrixDOK) Set(row, col uint32, val any) error {
	if int(row) >= m.Nrows || int(col) >= m.Ncols {
		return fmt.Errorf("storage: MatrixDOK.Set: %w", ErrIndexOutOfRange)
	}
	k := dokKey{row, col}
	if existing, ok := m.data[k]; ok && m.reduce != nil {
		m.data[k] = m.reduce(existing, val)
		return nil
	}
	m.data[k] = val
	return nil
}

// At returns the value at (row,col), or Fill if absent.
func (m *MatrixDOK) At(row, col uint32) any {
	if v, ok := m.data[dokKey{row, col}]; ok {
		return v
	}
	return m.Fill
}

// NNZ returns the number of explicit entries.
func (m *MatrixDOK) NNZ() int { return len(m.data) }

// ToCOO converts to coordinate form, stably sorted by (row,col). The
// resulting COO is already in canonical order.
func (m *MatrixDOK) ToCOO() *MatrixCOO {
	type triple struct {
		r, c uint32
		v    any
	}
	triples := make([]triple, 0, len(m.data))
	for k, v := range m.data {
		triples = append(triples, triple{k.row, k.col, v})
	}
	sort.Slice(triples, func(i, j int) bool {
		if triples[i].r != triples[j].r {
			return triples[i].r < triples[j].r
		}
		return triples[i].c < triples[j].c
	})
	out := &MatrixCOO{Nrows: m.Nrows, Ncols: m.Ncols, Fill: m.Fill}
	for _, t := range triples {
		out.Ai = append(out.Ai, t.r)
		out.Aj = append(out.Aj, t.c)
		out.Ax = append(out.Ax, t.v)
	}
	return out
}
