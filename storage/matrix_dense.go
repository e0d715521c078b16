// SPDX-License-Identifier: MIT
package storage

// MatrixDense is the row-major dense matrix representation.
type MatrixDense struct {
	Nrows, Ncols int
	Ax           []any
	Fill         any
}

// NewMatrixDense allocates a dense matrix with every cell set to fill.
func NewMatrixDense(nrows, ncols int, fill any) *MatrixDense {
	ax := make([]any, nrows*ncols)
	for i := range ax {
		ax[i] = fill
	}
	return &MatrixDense{Nrows: nrows, Ncols: ncols, Ax: ax, Fill: fill}
}

// At returns the value at (row,col).
func (m *MatrixDense) At(row, col uint32) any { return m.Ax[int(row)*m.Ncols+int(col)] }

// Set writes val at (row,col).
func (m *MatrixDense) Set(row, col uint32, val any) { m.Ax[int(row)*m.Ncols+int(col)] = val }

// ToCOO converts to coordinate form, dropping cells equal to m.Fill.
func (m *MatrixDense) ToCOO(eq func(a, b any) bool) *MatrixCOO {
	if eq == nil {
		eq = func(a, b any) bool { return a == b }
	}
	out := &MatrixCOO{Nrows: m.Nrows, Ncols: m.Ncols, Fill: m.Fill}
	for r := 0; r < m.Nrows; r++ {
		for c := 0; c < m.Ncols; c++ {
			v := m.At(uint32(r), uint32(c))
			if !eq(v, m.Fill) {
				out.Ai = append(out.Ai, uint32(r))
				out.Aj = append(out.Aj, uint32(c))
				out.Ax = append(out.Ax, v)
			}
		}
	}
	return out
}
