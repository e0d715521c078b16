// SPDX-License-Identifier: MIT
package accel

import "github.com/sparseruntime/spla/kernel"

// Register attaches every SIMD algorithm in this package to reg, scoped
// to the canonical float32/float64 arithmetic semiring types returned by
// StdFloat32/StdFloat64. priority sets where these algorithms rank
// against the CPU algorithms already registered under the same keys;
// kernel.Select still picks a CPU algorithm whenever a bundle cannot
// reach the dense formats these require without extra conversions.
// Select does not look at operators: when one of these algorithms is
// picked for operators other than the recognized identities, it returns
// kernel.StatusCompilationError and the node fails.
func Register(reg *kernel.Registry, ctx *SIMDContext, priority int) {
	reg.Register(kernel.OpVxM, f32.Type, NewAlgoVxMSIMD32(ctx, priority))
	reg.Register(kernel.OpVxM, f64.Type, NewAlgoVxMSIMD64(ctx, priority))
	reg.Register(kernel.OpEWiseAdd, f32.Type, NewAlgoEWiseAddSIMD32(ctx, priority))
	reg.Register(kernel.OpEWiseAdd, f64.Type, NewAlgoEWiseAddSIMD64(ctx, priority))
}
