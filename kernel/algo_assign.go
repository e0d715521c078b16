// SPDX-License-Identifier: MIT
package kernel

import (
	"sort"

	"github.com/sparseruntime/spla/storage"
)

// assignScratch is what both Assign algos below hand from PrepareBlocks
// to their own ExecuteBlock calls.
type assignScratch struct {
	r         *storage.VectorDense
	maskDense *storage.VectorDense
	maskCOO   *storage.VectorCOO
}

// AlgoAssignSparseToDense scatters into a dense target from a sparse
// (COO) mask: one pass over the mask's stored entries rather than the
// full dense range. Preferred when the mask is already valid in COO.
type AlgoAssignSparseToDense struct{ priority int }

func NewAlgoAssignSparseToDense(priority int) *AlgoAssignSparseToDense {
	return &AlgoAssignSparseToDense{priority: priority}
}

func (a *AlgoAssignSparseToDense) Name() string        { return "v_assign_masked_sparse2dense" }
func (a *AlgoAssignSparseToDense) Description() string { return "scatter assign from a sparse mask into a dense target" }
func (a *AlgoAssignSparseToDense) Backend() Backend     { return BackendCPU }
func (a *AlgoAssignSparseToDense) Priority() int        { return a.priority }
func (a *AlgoAssignSparseToDense) RequiredFormats() []storage.Format {
	return []storage.Format{storage.VecDense, storage.VecCOO}
}

func (a *AlgoAssignSparseToDense) Execute(dc *DispatchContext) (Status, error) {
	t, r, mask, status, err := prepareAssignSparseToDense(dc)
	if err != nil {
		return status, err
	}
	assignSparseRange(t, r, mask, 0, len(r.Ax))
	return StatusOk, nil
}

// PrepareBlocks validates R and the COO mask once, before any
// ExecuteBlock call scatters into its own index range.
func (a *AlgoAssignSparseToDense) PrepareBlocks(dc *DispatchContext) (Status, error) {
	_, r, mask, status, err := prepareAssignSparseToDense(dc)
	if err != nil {
		return status, err
	}
	dc.scratch = &assignScratch{r: r, maskCOO: mask}
	return StatusOk, nil
}

// ExecuteBlock scatters the mask entries whose index falls in [lo, hi),
// located by binary search since mask.Ai is sorted ascending.
func (a *AlgoAssignSparseToDense) ExecuteBlock(dc *DispatchContext, lo, hi int) (Status, error) {
	t := dc.Task.(*TaskAssignMasked)
	s := dc.scratch.(*assignScratch)
	assignSparseRange(t, s.r, s.maskCOO, lo, hi)
	return StatusOk, nil
}

func prepareAssignSparseToDense(dc *DispatchContext) (t *TaskAssignMasked, r *storage.VectorDense, mask *storage.VectorCOO, status Status, err error) {
	t = dc.Task.(*TaskAssignMasked)
	if t.Assign == nil || t.Select == nil {
		return t, nil, nil, StatusInvalidArgument, ErrInvalidOperands
	}
	if err = t.R.ValidateRW(storage.VecDense); err != nil {
		return t, nil, nil, StatusInvalidState, err
	}
	if err = t.Mask.ValidateRW(storage.VecCOO); err != nil {
		return t, nil, nil, StatusInvalidState, err
	}
	r = t.R.Get(storage.VecDense).(*storage.VectorDense)
	mask = t.Mask.Get(storage.VecCOO).(*storage.VectorCOO)
	return t, r, mask, StatusOk, nil
}

// assignSparseRange applies the assign wherever a selected mask entry's
// index falls within [lo, hi).
func assignSparseRange(t *TaskAssignMasked, r *storage.VectorDense, mask *storage.VectorCOO, lo, hi int) {
	start := sort.Search(len(mask.Ai), func(i int) bool { return int(mask.Ai[i]) >= lo })
	for i := start; i < len(mask.Ai); i++ {
		idx := mask.Ai[i]
		if int(idx) >= hi {
			break
		}
		if t.Select.Func(mask.Ax[i]) {
			r.Ax[idx] = t.Assign.Func(r.Ax[idx], t.Value)
		}
	}
}

// AlgoAssignDenseToDense walks every index of a dense target, checking a
// dense mask at each one. Preferred when the mask is already valid dense
// and is not sparse enough to benefit from the COO-scatter variant.
type AlgoAssignDenseToDense struct{ priority int }

func NewAlgoAssignDenseToDense(priority int) *AlgoAssignDenseToDense {
	return &AlgoAssignDenseToDense{priority: priority}
}

func (a *AlgoAssignDenseToDense) Name() string        { return "v_assign_masked_dense2dense" }
func (a *AlgoAssignDenseToDense) Description() string { return "full scan assign from a dense mask into a dense target" }
func (a *AlgoAssignDenseToDense) Backend() Backend     { return BackendCPU }
func (a *AlgoAssignDenseToDense) Priority() int        { return a.priority }
func (a *AlgoAssignDenseToDense) RequiredFormats() []storage.Format {
	return []storage.Format{storage.VecDense}
}

func (a *AlgoAssignDenseToDense) Execute(dc *DispatchContext) (Status, error) {
	t, r, mask, status, err := prepareAssignDenseToDense(dc)
	if err != nil {
		return status, err
	}
	assignDenseRange(t, r, mask, 0, len(r.Ax))
	return StatusOk, nil
}

// PrepareBlocks validates R and the dense mask once, before any
// ExecuteBlock call scans its own index range.
func (a *AlgoAssignDenseToDense) PrepareBlocks(dc *DispatchContext) (Status, error) {
	_, r, mask, status, err := prepareAssignDenseToDense(dc)
	if err != nil {
		return status, err
	}
	dc.scratch = &assignScratch{r: r, maskDense: mask}
	return StatusOk, nil
}

func (a *AlgoAssignDenseToDense) ExecuteBlock(dc *DispatchContext, lo, hi int) (Status, error) {
	t := dc.Task.(*TaskAssignMasked)
	s := dc.scratch.(*assignScratch)
	assignDenseRange(t, s.r, s.maskDense, lo, hi)
	return StatusOk, nil
}

func prepareAssignDenseToDense(dc *DispatchContext) (t *TaskAssignMasked, r, mask *storage.VectorDense, status Status, err error) {
	t = dc.Task.(*TaskAssignMasked)
	if t.Assign == nil || t.Select == nil {
		return t, nil, nil, StatusInvalidArgument, ErrInvalidOperands
	}
	if err = t.R.ValidateRW(storage.VecDense); err != nil {
		return t, nil, nil, StatusInvalidState, err
	}
	if err = t.Mask.ValidateRW(storage.VecDense); err != nil {
		return t, nil, nil, StatusInvalidState, err
	}
	r = t.R.Get(storage.VecDense).(*storage.VectorDense)
	mask = t.Mask.Get(storage.VecDense).(*storage.VectorDense)
	return t, r, mask, StatusOk, nil
}

func assignDenseRange(t *TaskAssignMasked, r, mask *storage.VectorDense, lo, hi int) {
	for i := lo; i < hi; i++ {
		if t.Select.Func(mask.Ax[i]) {
			r.Ax[i] = t.Assign.Func(r.Ax[i], t.Value)
		}
	}
}
