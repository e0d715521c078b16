// SPDX-License-Identifier: MIT
package storage

// NewVectorConversionGraph builds the conversion graph shared by every
// vector's Bundle: COO and Dense on the host, with accelerator mirrors of
// each. Each host format has edges to and from its own mirror, and the
// two mirrors are linked by edges that download, convert on the host and
// upload again.
func NewVectorConversionGraph(n int, fill any, eq func(a, b any) bool) *ConversionGraph {
	g := NewConversionGraph(VecCOO, VecDenseAccel)

	g.SetEmptyFactory(VecCOO, func() any { return NewVectorCOO(n, fill) })
	g.SetEmptyFactory(VecDense, func() any { return NewVectorDense(n, fill) })
	g.SetEmptyFactory(VecCOOAccel, func() any { return UploadVectorCOO(NewVectorCOO(n, fill)) })
	g.SetEmptyFactory(VecDenseAccel, func() any { return UploadVectorDense(NewVectorDense(n, fill)) })

	g.AddEdge(VecCOO, VecDense, 3, func(v any) (any, error) { return v.(*VectorCOO).ToDense(), nil })
	g.AddEdge(VecDense, VecCOO, 3, func(v any) (any, error) { return v.(*VectorDense).ToCOO(eq), nil })
	g.AddEdge(VecCOO, VecCOOAccel, 5, func(v any) (any, error) { return UploadVectorCOO(v.(*VectorCOO)), nil })
	g.AddEdge(VecCOOAccel, VecCOO, 5, func(v any) (any, error) { return v.(*VectorCOOAccel).Download(), nil })
	g.AddEdge(VecDense, VecDenseAccel, 5, func(v any) (any, error) { return UploadVectorDense(v.(*VectorDense)), nil })
	g.AddEdge(VecDenseAccel, VecDense, 5, func(v any) (any, error) { return v.(*VectorDenseAccel).Download(), nil })
	// Same-backend cross-format edges on the accelerator route through host
	// canonical conversions (no direct device path registered).
	g.AddEdge(VecCOOAccel, VecDenseAccel, 11, func(v any) (any, error) {
		host := v.(*VectorCOOAccel).Download()
		return UploadVectorDense(host.ToDense()), nil
	})
	g.AddEdge(VecDenseAccel, VecCOOAccel, 11, func(v any) (any, error) {
		host := v.(*VectorDenseAccel).Download()
		return UploadVectorCOO(host.ToCOO(eq)), nil
	})

	return g
}

// NewVectorBundle allocates a fresh empty vector Bundle of dimension n with
// fill value fill. eq is used whenever a dense->sparse conversion needs an
// equality test against fill (nil uses Go's ==).
func NewVectorBundle(n int, fill any, eq func(a, b any) bool) *Bundle {
	return NewBundle(NewVectorConversionGraph(n, fill, eq))
}
