// SPDX-License-Identifier: MIT

// Package accel supplies the accelerator-side Algo implementations the
// kernel registry can pick when CPU reference algorithms are not the
// cheapest option. CPUContext exists for parity with SIMDContext and has
// no algorithms of its own; the CPU path is package kernel's algorithms.
// SIMDContext recognizes the built-in float32/float64 arithmetic semiring
// by operator pointer identity and routes those cases through
// github.com/ajroetker/go-highway's CPU-SIMD primitives instead of the
// scalar Go loops in package kernel.
//
// accel imports kernel, storage, and optype; kernel never imports accel,
// so wiring an accelerator into a Registry is always the caller's job
// (see package engine).
package accel
