// SPDX-License-Identifier: MIT
package sssp

import "github.com/sparseruntime/spla/optype"

// Inf stands in for "no known path" in a distance vector's fill value
// and in positions min never replaces.
const Inf = float64(1e308)

// Semiring bundles the tropical (min, +) operators this package relaxes
// distances with: Plus combines an edge weight with a predecessor's
// distance, Min folds competing candidate distances, and NonZero selects
// the mask positions a relaxation step is allowed to touch.
type Semiring struct {
	Type    *optype.Type
	Plus    *optype.BinaryOp
	Min     *optype.BinaryOp
	NonZero *optype.SelectOp
}

// NewSemiring builds a fresh float64 tropical semiring.
func NewSemiring() *Semiring {
	t := optype.Float64Type()
	plus, _ := t.NewBinaryOp("plus", "a+b", func(a, b any) any { return a.(float64) + b.(float64) })
	min, _ := t.NewBinaryOp("min", "min(a,b)", func(a, b any) any {
		af, bf := a.(float64), b.(float64)
		if af < bf {
			return af
		}
		return bf
	})
	nz, _ := t.NewSelectOp("nonzero", "a!=0", func(a any) bool { return a.(float64) != 0 })
	return &Semiring{Type: t, Plus: plus, Min: min, NonZero: nz}
}
