// SPDX-License-Identifier: MIT
package kernel

import (
	"context"

	"github.com/sparseruntime/spla/optype"
	"github.com/sparseruntime/spla/storage"
)

// TaskVxM carries the operands of a masked vector-matrix product
// r <- mask ⊙ (v ×_{⊕,⊗} M).
type TaskVxM struct {
	R, V, M, Mask *storage.Bundle
	Mul, Add      *optype.BinaryOp
	Select        *optype.SelectOp
	Init          any
	EarlyExit     bool
	K, N          int // v has K entries, M is K x N, r has N entries
}

// TaskAssignMasked carries the operands of r[i] = assign(r[i], value)
// wherever σ(mask[i]) holds.
type TaskAssignMasked struct {
	R, Mask *storage.Bundle
	Value   any
	Assign  *optype.BinaryOp
	Select  *optype.SelectOp
	N       int // r has N entries
}

// TaskEWiseAdd carries the operands of w <- (a ⊕ b), optionally masked.
type TaskEWiseAdd struct {
	W, A, B *storage.Bundle
	Mask    *storage.Bundle // nil means unmasked
	Add     *optype.BinaryOp
}

// TaskBuild carries the operands of building a matrix from (rows, cols,
// vals) triples into Target.
type TaskBuild struct {
	Target               *storage.Bundle
	Rows, Cols           []uint32
	Vals                 []any
	Reduce               *optype.BinaryOp
	Sorted, NoDuplicates bool
	Nrows, Ncols         int
	Fill                 any
}

// DispatchContext wraps the task-specific payload (one of the Task*
// types above) plus a cancellation context threaded from the scheduler.
// Device is the accelerator device id the scheduler's block.DeviceManager
// assigned to this dispatch, or -1 when no device pool is in play.
//
// scratch carries state a BlockAlgo's PrepareBlocks call hands off to its
// own later ExecuteBlock calls; nothing outside this package touches it.
type DispatchContext struct {
	Ctx     context.Context
	Task    any
	Device  int
	scratch any
}

// Operands is implemented by every Task* type and exposes the storage
// bundles it reads or writes, letting the scheduler score candidate
// Algos by format availability without knowing each task's field names.
type Operands interface {
	Bundles() []*storage.Bundle
}

func (t *TaskVxM) Bundles() []*storage.Bundle {
	bundles := []*storage.Bundle{t.R, t.V, t.M}
	if t.Mask != nil {
		bundles = append(bundles, t.Mask)
	}
	return bundles
}

func (t *TaskAssignMasked) Bundles() []*storage.Bundle {
	return []*storage.Bundle{t.R, t.Mask}
}

func (t *TaskEWiseAdd) Bundles() []*storage.Bundle {
	bundles := []*storage.Bundle{t.W, t.A, t.B}
	if t.Mask != nil {
		bundles = append(bundles, t.Mask)
	}
	return bundles
}

func (t *TaskBuild) Bundles() []*storage.Bundle {
	return []*storage.Bundle{t.Target}
}
