// SPDX-License-Identifier: MIT
package storage

// MatrixCSR is the host compressed-sparse-row matrix representation: row
// pointers Ap (length nrows+1), column indices Aj, and values Ax.
type MatrixCSR struct {
	Nrows, Ncols int
	Ap           []uint32
	Aj           []uint32
	Ax           []any
	Fill         any
}

// NewMatrixCSR allocates an empty nrows x ncols CSR matrix.
func NewMatrixCSR(nrows, ncols int, fill any) *MatrixCSR {
	return &MatrixCSR{Nrows: nrows, Ncols: ncols, Fill: fill, Ap: make([]uint32, nrows+1)}
}

// NNZ returns the number of stored entries.
func (m *MatrixCSR) NNZ() int { return len(m.Ax) }

// Row returns the column-index and value slices for row r.
func (m *MatrixCSR) Row(r int) ([]uint32, []any) {
	lo, hi := m.Ap[r], m.Ap[r+1]
	return m.Aj[lo:hi], m.Ax[lo:hi]
}

// ToCOO expands CSR back to coordinate form.
func (m *MatrixCSR) ToCOO() *MatrixCOO {
	out := &MatrixCOO{Nrows: m.Nrows, Ncols: m.Ncols, Fill: m.Fill}
	for r := 0; r < m.Nrows; r++ {
		cols, vals := m.Row(r)
		for i, c := range cols {
			out.Ai = append(out.Ai, uint32(r))
			out.Aj = append(out.Aj, c)
			out.Ax = append(out.Ax, vals[i])
		}
	}
	return out
}

// ColumnNNZ returns the number of nonzeros in column j, scanning all rows.
// The kernel selector does not call it.
func (m *MatrixCSR) ColumnNNZ(j uint32) int {
	n := 0
	for r := 0; r < m.Nrows; r++ {
		cols, _ := m.Row(r)
		for _, c := range cols {
			if c == j {
				n++
			}
		}
	}
	return n
}
