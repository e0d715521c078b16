// SPDX-License-Identifier: MIT
package accel

import "github.com/sparseruntime/spla/optype"

// f32 and f64 are the single canonical arithmetic-semiring instances this
// package's SIMD algorithms recognize by operator pointer identity. A
// Library that wants the SIMD fast path for its float32/float64 vectors
// and matrices must bind them from these, not from a second call to
// optype.NewStdFloat32/64, since every call mints distinct operator and
// Type pointers.
var (
	f32 = optype.NewStdFloat32()
	f64 = optype.NewStdFloat64()
)

// StdFloat32 returns the canonical float32 arithmetic semiring this
// package's SIMD algorithms are registered against.
func StdFloat32() *optype.StdFloat32 { return f32 }

// StdFloat64 returns the canonical float64 arithmetic semiring this
// package's SIMD algorithms are registered against.
func StdFloat64() *optype.StdFloat64 { return f64 }

func isArithmeticF32(mul, add *optype.BinaryOp, sel *optype.SelectOp) bool {
	return mul == f32.Times && add == f32.Plus && sel == f32.NonZero
}

func isArithmeticF64(mul, add *optype.BinaryOp, sel *optype.SelectOp) bool {
	return mul == f64.Times && add == f64.Plus && sel == f64.NonZero
}
