// SPDX-License-Identifier: MIT
package optype

// StdFloat32 bundles the arithmetic operators a Library normally attaches
// to a fresh Float32Type(): "plus", "times", "nonzero". The accelerator
// SIMD backend recognizes by pointer identity only the three operators of
// the one instance it holds itself (accel.StdFloat32); operators from
// another NewStdFloat32 call, or hand-rolled equivalents, do not take
// its fast path.
type StdFloat32 struct {
	Type    *Type
	Plus    *BinaryOp
	Times   *BinaryOp
	NonZero *SelectOp
}

// NewStdFloat32 builds a fresh Float32Type with the standard arithmetic
// semiring operators bound.
func NewStdFloat32() *StdFloat32 {
	t := Float32Type()
	plus, _ := t.NewBinaryOp("plus", "a+b", func(a, b any) any { return a.(float32) + b.(float32) })
	times, _ := t.NewBinaryOp("times", "a*b", func(a, b any) any { return a.(float32) * b.(float32) })
	nz, _ := t.NewSelectOp("nonzero", "a!=0", func(a any) bool { return a.(float32) != 0 })
	return &StdFloat32{Type: t, Plus: plus, Times: times, NonZero: nz}
}

// StdFloat64 is StdFloat32's 64-bit counterpart, bound the same way and
// recognized by the same accelerator pointer-identity rule.
type StdFloat64 struct {
	Type    *Type
	Plus    *BinaryOp
	Times   *BinaryOp
	NonZero *SelectOp
}

// NewStdFloat64 builds a fresh Float64Type with the standard arithmetic
// semiring operators bound.
func NewStdFloat64() *StdFloat64 {
	t := Float64Type()
	plus, _ := t.NewBinaryOp("plus", "a+b", func(a, b any) any { return a.(float64) + b.(float64) })
	times, _ := t.NewBinaryOp("times", "a*b", func(a, b any) any { return a.(float64) * b.(float64) })
	nz, _ := t.NewSelectOp("nonzero", "a!=0", func(a any) bool { return a.(float64) != 0 })
	return &StdFloat64{Type: t, Plus: plus, Times: times, NonZero: nz}
}

// StdBool bundles the Boolean semiring (OR, AND) on a fresh Uint32Type
// used as a 0/1 carrier, as used by semiring BFS expressed over the
// adjacency matrix.
type StdBool struct {
	Type    *Type
	Or      *BinaryOp
	And     *BinaryOp
	NonZero *SelectOp
}

// NewStdBool builds a fresh Uint32Type with OR/AND/nonzero bound, values
// are 0 or 1.
func NewStdBool() *StdBool {
	t := Uint32Type()
	or, _ := t.NewBinaryOp("or", "a|b", func(a, b any) any {
		if a.(uint32) != 0 || b.(uint32) != 0 {
			return uint32(1)
		}
		return uint32(0)
	})
	and, _ := t.NewBinaryOp("and", "a&b", func(a, b any) any {
		if a.(uint32) != 0 && b.(uint32) != 0 {
			return uint32(1)
		}
		return uint32(0)
	})
	nz, _ := t.NewSelectOp("nonzero", "a!=0", func(a any) bool { return a.(uint32) != 0 })
	return &StdBool{Type: t, Or: or, And: and, NonZero: nz}
}
