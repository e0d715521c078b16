// SPDX-License-Identifier: MIT
package accel

import (
	"github.com/ajroetker/go-highway/hwy/contrib/matvec"

	"github.com/sparseruntime/spla/kernel"
	"github.com/sparseruntime/spla/storage"
)

// AlgoVxMSIMD computes the masked vector-matrix product by running an
// unmasked SIMD matrix-vector multiply over a dense row-major mirror and
// then applying the mask to the result, which is equivalent to folding
// the mask in first: r's unselected positions end up Init either way,
// and Plus/Times are associative and commutative for every value this
// fast path accepts.
//
// It only fires for the exact float32 or float64 arithmetic semiring
// returned by StdFloat32/StdFloat64; any other operator triple is left
// for the CPU algorithms in package kernel.
type AlgoVxMSIMD struct {
	ctx      *SIMDContext
	priority int
	width64  bool
}

// NewAlgoVxMSIMD32 registers the float32 SIMD vector-matrix product.
func NewAlgoVxMSIMD32(ctx *SIMDContext, priority int) *AlgoVxMSIMD {
	return &AlgoVxMSIMD{ctx: ctx, priority: priority}
}

// NewAlgoVxMSIMD64 registers the float64 SIMD vector-matrix product.
func NewAlgoVxMSIMD64(ctx *SIMDContext, priority int) *AlgoVxMSIMD {
	return &AlgoVxMSIMD{ctx: ctx, priority: priority, width64: true}
}

func (a *AlgoVxMSIMD) Name() string {
	if a.width64 {
		return "vxm_masked_simd_f64"
	}
	return "vxm_masked_simd_f32"
}
func (a *AlgoVxMSIMD) Description() string {
	return "dense SIMD matrix-vector product over a transposed row-major mirror, masked after the fact"
}
func (a *AlgoVxMSIMD) Backend() kernel.Backend { return kernel.BackendSIMD }
func (a *AlgoVxMSIMD) Priority() int           { return a.priority }
func (a *AlgoVxMSIMD) RequiredFormats() []storage.Format {
	return []storage.Format{storage.MatDense, storage.VecDense}
}

func (a *AlgoVxMSIMD) Execute(dc *kernel.DispatchContext) (kernel.Status, error) {
	t := dc.Task.(*kernel.TaskVxM)
	recognized := a.width64 && isArithmeticF64(t.Mul, t.Add, t.Select) ||
		!a.width64 && isArithmeticF32(t.Mul, t.Add, t.Select)
	if !recognized {
		err := errNotRecognized(a.Name())
		ty := f32.Type
		if a.width64 {
			ty = f64.Type
		}
		a.ctx.Cache().RecordFailure(a.Name(), ty, err, t.Mul, t.Add, t.Select)
		return kernel.StatusCompilationError, err
	}

	if err := t.R.ValidateRWD(storage.VecDense); err != nil {
		return kernel.StatusInvalidState, err
	}
	if err := t.V.ValidateRW(storage.VecDense); err != nil {
		return kernel.StatusInvalidState, err
	}
	if err := t.M.ValidateRW(storage.MatDense); err != nil {
		return kernel.StatusInvalidState, err
	}
	if err := t.Mask.ValidateRW(storage.VecDense); err != nil {
		return kernel.StatusInvalidState, err
	}
	r := t.R.Get(storage.VecDense).(*storage.VectorDense)
	v := t.V.Get(storage.VecDense).(*storage.VectorDense)
	mask := t.Mask.Get(storage.VecDense).(*storage.VectorDense)
	m := t.M.Get(storage.MatDense).(*storage.MatrixDense)

	if a.width64 {
		mt := transposeDense64(m)
		vv := toFloat64Slice(v.Ax)
		out := make([]float64, m.Ncols)
		matvec.MatVec64(mt, m.Ncols, m.Nrows, vv, out)
		for j := 0; j < t.N; j++ {
			if t.Select.Func(mask.Ax[j]) {
				r.Ax[j] = out[j]
			} else {
				r.Ax[j] = t.Init
			}
		}
	} else {
		mt := transposeDense32(m)
		vv := toFloat32Slice(v.Ax)
		out := make([]float32, m.Ncols)
		matvec.MatVec(mt, m.Ncols, m.Nrows, vv, out)
		for j := 0; j < t.N; j++ {
			if t.Select.Func(mask.Ax[j]) {
				r.Ax[j] = out[j]
			} else {
				r.Ax[j] = t.Init
			}
		}
	}
	return kernel.StatusOk, nil
}

// transposeDense32 materializes M^T as a row-major []float32 buffer of
// shape ncols x nrows, since matvec.MatVec computes M*v and the masked
// vector-matrix product this runtime exposes is v^T*M = M^T*v.
func transposeDense32(m *storage.MatrixDense) []float32 {
	out := make([]float32, m.Ncols*m.Nrows)
	for r := 0; r < m.Nrows; r++ {
		for c := 0; c < m.Ncols; c++ {
			out[c*m.Nrows+r] = m.At(uint32(r), uint32(c)).(float32)
		}
	}
	return out
}

func transposeDense64(m *storage.MatrixDense) []float64 {
	out := make([]float64, m.Ncols*m.Nrows)
	for r := 0; r < m.Nrows; r++ {
		for c := 0; c < m.Ncols; c++ {
			out[c*m.Nrows+r] = m.At(uint32(r), uint32(c)).(float64)
		}
	}
	return out
}

func toFloat32Slice(ax []any) []float32 {
	out := make([]float32, len(ax))
	for i, x := range ax {
		out[i] = x.(float32)
	}
	return out
}

func toFloat64Slice(ax []any) []float64 {
	out := make([]float64, len(ax))
	for i, x := range ax {
		out[i] = x.(float64)
	}
	return out
}
