// SPDX-License-Identifier: MIT
package pagerank

import "github.com/sparseruntime/spla/optype"

// Semiring bundles the ordinary (+, ×) arithmetic semiring this package
// propagates rank mass with, plus a NonZero select admitting every
// column the all-true mask marks.
type Semiring struct {
	Type    *optype.Type
	Plus    *optype.BinaryOp
	Times   *optype.BinaryOp
	NonZero *optype.SelectOp
}

// NewSemiring builds a fresh float64 arithmetic semiring.
func NewSemiring() *Semiring {
	t := optype.Float64Type()
	plus, _ := t.NewBinaryOp("plus", "a+b", func(a, b any) any { return a.(float64) + b.(float64) })
	times, _ := t.NewBinaryOp("times", "a*b", func(a, b any) any { return a.(float64) * b.(float64) })
	nz, _ := t.NewSelectOp("nonzero", "a!=0", func(a any) bool { return a.(float64) != 0 })
	return &Semiring{Type: t, Plus: plus, Times: times, NonZero: nz}
}
