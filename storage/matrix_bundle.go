// SPDX-License-Identifier: MIT
package storage

// NewMatrixConversionGraph builds the conversion graph shared by every
// matrix's Bundle: LIL (write accumulator), DOK (point queries), COO, CSR
// and Dense on the host, plus CSR/Dense accelerator mirrors. CSR is the
// canonical device upload path.
func NewMatrixConversionGraph(nrows, ncols int, fill any, eq func(a, b any) bool, reduce func(a, b any) any) *ConversionGraph {
	g := NewConversionGraph(MatCSR, MatCSRAccel)

	g.SetEmptyFactory(MatLIL, func() any {
		l := NewMatrixLIL(nrows, ncols, fill)
		if reduce != nil {
			_ = l.SetReduceOp(reduce)
		}
		return l
	})
	g.SetEmptyFactory(MatDOK, func() any {
		d := NewMatrixDOK(nrows, ncols, fill)
		if reduce != nil {
			_ = d.SetReduceOp(reduce)
		}
		return d
	})
	g.SetEmptyFactory(MatCOO, func() any { return &MatrixCOO{Nrows: nrows, Ncols: ncols, Fill: fill} })
	g.SetEmptyFactory(MatCSR, func() any { return NewMatrixCSR(nrows, ncols, fill) })
	g.SetEmptyFactory(MatDense, func() any { return NewMatrixDense(nrows, ncols, fill) })
	g.SetEmptyFactory(MatCSRAccel, func() any { return UploadMatrixCSR(NewMatrixCSR(nrows, ncols, fill)) })
	g.SetEmptyFactory(MatDenseAccel, func() any { return UploadMatrixDense(NewMatrixDense(nrows, ncols, fill)) })

	g.AddEdge(MatLIL, MatCOO, 3, func(v any) (any, error) { return v.(*MatrixLIL).ToCOO(), nil })
	g.AddEdge(MatDOK, MatCOO, 3, func(v any) (any, error) { return v.(*MatrixDOK).ToCOO(), nil })
	g.AddEdge(MatCOO, MatCSR, 3, func(v any) (any, error) { return v.(*MatrixCOO).ToCSR(), nil })
	g.AddEdge(MatCSR, MatCOO, 3, func(v any) (any, error) { return v.(*MatrixCSR).ToCOO(), nil })
	g.AddEdge(MatCOO, MatDense, 4, func(v any) (any, error) { return v.(*MatrixCOO).ToDense(), nil })
	g.AddEdge(MatDense, MatCOO, 4, func(v any) (any, error) { return v.(*MatrixDense).ToCOO(eq), nil })
	g.AddEdge(MatCSR, MatCSRAccel, 6, func(v any) (any, error) { return UploadMatrixCSR(v.(*MatrixCSR)), nil })
	g.AddEdge(MatCSRAccel, MatCSR, 6, func(v any) (any, error) { return v.(*MatrixCSRAccel).Download(), nil })
	g.AddEdge(MatDense, MatDenseAccel, 6, func(v any) (any, error) { return UploadMatrixDense(v.(*MatrixDense)), nil })
	g.AddEdge(MatDenseAccel, MatDense, 6, func(v any) (any, error) { return v.(*MatrixDenseAccel).Download(), nil })

	return g
}

// NewMatrixBundle allocates a fresh empty matrix Bundle. reduce folds
// duplicate (row,col) keys during LIL/DOK construction; eq tests equality
// against fill for dense<->sparse conversions.
func NewMatrixBundle(nrows, ncols int, fill any, eq func(a, b any) bool, reduce func(a, b any) any) *Bundle {
	return NewBundle(NewMatrixConversionGraph(nrows, ncols, fill, eq, reduce))
}
