// SPDX-License-Identifier: MIT
package accel

import (
	"github.com/ajroetker/go-highway/hwy/contrib/vec"

	"github.com/sparseruntime/spla/kernel"
	"github.com/sparseruntime/spla/storage"
)

// AlgoEWiseAddSIMD computes w <- a ⊕ b over dense float32/float64
// vectors with go-highway's SIMD element-wise add, masking the result
// afterward by zeroing positions the mask does not select back to w's
// fill value. It is the dense counterpart to kernel.AlgoEWiseAdd's
// sparse sort-merge, chosen when both operands are already valid dense
// and the operator is the recognized arithmetic semiring's Plus.
type AlgoEWiseAddSIMD struct {
	ctx      *SIMDContext
	priority int
	width64  bool
}

// NewAlgoEWiseAddSIMD32 registers the float32 dense SIMD add.
func NewAlgoEWiseAddSIMD32(ctx *SIMDContext, priority int) *AlgoEWiseAddSIMD {
	return &AlgoEWiseAddSIMD{ctx: ctx, priority: priority}
}

// NewAlgoEWiseAddSIMD64 registers the float64 dense SIMD add.
func NewAlgoEWiseAddSIMD64(ctx *SIMDContext, priority int) *AlgoEWiseAddSIMD {
	return &AlgoEWiseAddSIMD{ctx: ctx, priority: priority, width64: true}
}

func (a *AlgoEWiseAddSIMD) Name() string {
	if a.width64 {
		return "v_ewiseadd_simd_f64"
	}
	return "v_ewiseadd_simd_f32"
}
func (a *AlgoEWiseAddSIMD) Description() string {
	return "dense SIMD element-wise add, masked after the fact"
}
func (a *AlgoEWiseAddSIMD) Backend() kernel.Backend { return kernel.BackendSIMD }
func (a *AlgoEWiseAddSIMD) Priority() int           { return a.priority }
func (a *AlgoEWiseAddSIMD) RequiredFormats() []storage.Format {
	return []storage.Format{storage.VecDense}
}

func (a *AlgoEWiseAddSIMD) Execute(dc *kernel.DispatchContext) (kernel.Status, error) {
	t := dc.Task.(*kernel.TaskEWiseAdd)
	recognized := a.width64 && t.Add == f64.Plus || !a.width64 && t.Add == f32.Plus
	if !recognized {
		err := errNotRecognized(a.Name())
		ty := f32.Type
		if a.width64 {
			ty = f64.Type
		}
		a.ctx.Cache().RecordFailure(a.Name(), ty, err, t.Add)
		return kernel.StatusCompilationError, err
	}

	if err := t.A.ValidateRW(storage.VecDense); err != nil {
		return kernel.StatusInvalidState, err
	}
	if err := t.B.ValidateRW(storage.VecDense); err != nil {
		return kernel.StatusInvalidState, err
	}
	if err := t.W.ValidateRWD(storage.VecDense); err != nil {
		return kernel.StatusInvalidState, err
	}
	aDense := t.A.Get(storage.VecDense).(*storage.VectorDense)
	bDense := t.B.Get(storage.VecDense).(*storage.VectorDense)
	w := t.W.Get(storage.VecDense).(*storage.VectorDense)

	var maskDense *storage.VectorDense
	if t.Mask != nil {
		if err := t.Mask.ValidateRW(storage.VecDense); err != nil {
			return kernel.StatusInvalidState, err
		}
		maskDense = t.Mask.Get(storage.VecDense).(*storage.VectorDense)
	}

	if a.width64 {
		av, bv := toFloat64Slice(aDense.Ax), toFloat64Slice(bDense.Ax)
		out := make([]float64, len(av))
		vec.AddTo(out, av, bv)
		for i := range out {
			if maskDense != nil && maskDense.Ax[i] == float64(0) {
				w.Ax[i] = w.Fill
				continue
			}
			w.Ax[i] = out[i]
		}
	} else {
		av, bv := toFloat32Slice(aDense.Ax), toFloat32Slice(bDense.Ax)
		out := make([]float32, len(av))
		vec.AddTo(out, av, bv)
		for i := range out {
			if maskDense != nil && maskDense.Ax[i] == float32(0) {
				w.Ax[i] = w.Fill
				continue
			}
			w.Ax[i] = out[i]
		}
	}
	return kernel.StatusOk, nil
}
