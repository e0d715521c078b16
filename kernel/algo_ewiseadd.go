// SPDX-License-Identifier: MIT
package kernel

import "github.com/sparseruntime/spla/storage"

// AlgoEWiseAdd computes w <- (a ⊕ b), optionally masked, over COO
// operands: a semi-join against the mask's sorted indices filters each
// side, then a sort-merge resolves collisions with add, keeping a before
// b on ties.
//
// Each side's surviving-index permutation is sized from that side's own
// non-zero count, not the other side's. The permutation for b must come
// from b's NNZ, independent of how many entries a has.
type AlgoEWiseAdd struct{ priority int }

func NewAlgoEWiseAdd(priority int) *AlgoEWiseAdd { return &AlgoEWiseAdd{priority: priority} }

func (a *AlgoEWiseAdd) Name() string        { return "v_ewiseadd_coo" }
func (a *AlgoEWiseAdd) Description() string { return "masked sort-merge element-wise add over COO vectors" }
func (a *AlgoEWiseAdd) Backend() Backend     { return BackendCPU }
func (a *AlgoEWiseAdd) Priority() int        { return a.priority }
func (a *AlgoEWiseAdd) RequiredFormats() []storage.Format {
	return []storage.Format{storage.VecCOO}
}

func (a *AlgoEWiseAdd) Execute(dc *DispatchContext) (Status, error) {
	t := dc.Task.(*TaskEWiseAdd)
	if t.Add == nil {
		return StatusInvalidArgument, ErrInvalidOperands
	}
	if err := t.A.ValidateRW(storage.VecCOO); err != nil {
		return StatusInvalidState, err
	}
	if err := t.B.ValidateRW(storage.VecCOO); err != nil {
		return StatusInvalidState, err
	}
	aCOO := t.A.Get(storage.VecCOO).(*storage.VectorCOO)
	bCOO := t.B.Get(storage.VecCOO).(*storage.VectorCOO)

	var maskCOO *storage.VectorCOO
	if t.Mask != nil {
		if err := t.Mask.ValidateRW(storage.VecCOO); err != nil {
			return StatusInvalidState, err
		}
		maskCOO = t.Mask.Get(storage.VecCOO).(*storage.VectorCOO)
	}

	// permA/permB select the surviving positions of each side after the
	// mask semi-join: permA is sized from a's own NNZ, permB from b's own
	// NNZ, each independent of the other's length.
	permA := maskSemiJoin(aCOO, maskCOO)
	permB := maskSemiJoin(bCOO, maskCOO)

	if err := t.W.ValidateRWD(storage.VecCOO); err != nil {
		return StatusInvalidState, err
	}
	w := t.W.Get(storage.VecCOO).(*storage.VectorCOO)

	if len(permA) == 0 && len(permB) == 0 {
		w.Ai = nil
		w.Ax = nil
		return StatusOk, nil
	}
	if len(permA) == 0 {
		w.Ai, w.Ax = gather(bCOO, permB)
		return StatusOk, nil
	}
	if len(permB) == 0 {
		w.Ai, w.Ax = gather(aCOO, permA)
		return StatusOk, nil
	}

	ai, ax := gather(aCOO, permA)
	bi, bx := gather(bCOO, permB)

	var outI []uint32
	var outX []any
	i, j := 0, 0
	for i < len(ai) && j < len(bi) {
		switch {
		case ai[i] < bi[j]:
			outI = append(outI, ai[i])
			outX = append(outX, ax[i])
			i++
		case bi[j] < ai[i]:
			outI = append(outI, bi[j])
			outX = append(outX, bx[j])
			j++
		default: // equal indices: a before b, resolved with Add
			outI = append(outI, ai[i])
			outX = append(outX, t.Add.Func(ax[i], bx[j]))
			i++
			j++
		}
	}
	for ; i < len(ai); i++ {
		outI = append(outI, ai[i])
		outX = append(outX, ax[i])
	}
	for ; j < len(bi); j++ {
		outI = append(outI, bi[j])
		outX = append(outX, bx[j])
	}
	w.Ai, w.Ax = outI, outX
	return StatusOk, nil
}

// maskSemiJoin returns the positions of src whose index also appears in
// mask (or every position, when mask is nil). Both src.Ai and mask.Ai are
// assumed sorted ascending, per the COO format invariant.
func maskSemiJoin(src, mask *storage.VectorCOO) []int {
	if mask == nil {
		perm := make([]int, len(src.Ai))
		for i := range perm {
			perm[i] = i
		}
		return perm
	}
	perm := make([]int, 0, len(src.Ai))
	mi := 0
	for si, idx := range src.Ai {
		for mi < len(mask.Ai) && mask.Ai[mi] < idx {
			mi++
		}
		if mi < len(mask.Ai) && mask.Ai[mi] == idx {
			perm = append(perm, si)
		}
	}
	return perm
}

func gather(src *storage.VectorCOO, perm []int) ([]uint32, []any) {
	ai := make([]uint32, len(perm))
	ax := make([]any, len(perm))
	for i, p := range perm {
		ai[i] = src.Ai[p]
		ax[i] = src.Ax[p]
	}
	return ai, ax
}
