// SPDX-License-Identifier: MIT
package kernel

import (
	"fmt"

	"github.com/sparseruntime/spla/optype"
	"github.com/sparseruntime/spla/storage"
)

// vxmColEntry is one (row, value) contribution to a matrix column,
// gathered from a CSR matrix's row-major storage.
type vxmColEntry struct {
	K   uint32
	Val any
}

// buildColumnBuckets groups a CSR matrix's non-zeros by column, since the
// masked vector-matrix product's output is indexed by column but CSR
// storage is organized by row.
func buildColumnBuckets(m *storage.MatrixCSR) [][]vxmColEntry {
	buckets := make([][]vxmColEntry, m.Ncols)
	for k := 0; k < m.Nrows; k++ {
		cols, vals := m.Row(k)
		for i, j := range cols {
			buckets[j] = append(buckets[j], vxmColEntry{K: uint32(k), Val: vals[i]})
		}
	}
	return buckets
}

// vxmColumn computes one output column's value: init folded via add with
// mul(v[k], M[k,j]) over every row k present in that column's bucket.
func vxmColumn(bucket []vxmColEntry, vDense *storage.VectorDense, mul, add func(a, b any) any, init any) any {
	acc := init
	for _, e := range bucket {
		acc = add(acc, mul(vDense.Ax[e.K], e.Val))
	}
	return acc
}

// vxmScratch is what AlgoVxMScalar and AlgoVxMVector hand from
// PrepareBlocks to their own ExecuteBlock calls.
type vxmScratch struct {
	r, v, mask *storage.VectorDense
	buckets    [][]vxmColEntry
}

// vxmConfigScratch is AlgoVxMConfigScalar's equivalent, carrying the
// configured-column list instead of a dense mask.
type vxmConfigScratch struct {
	r, v       *storage.VectorDense
	buckets    [][]vxmColEntry
	configured []uint32
}

// vxmColumnRange folds columns [lo, hi), identical to looping Execute's
// whole-range body over a sub-range: disjoint ranges touch disjoint
// slots of r.Ax, so concurrent calls over non-overlapping [lo, hi) need
// no synchronization.
func vxmColumnRange(t *TaskVxM, r, v, mask *storage.VectorDense, buckets [][]vxmColEntry, lo, hi int) {
	for j := lo; j < hi; j++ {
		// EarlyExit asks that a failing mask entry skip the fold over M
		// and v for that column entirely, which this loop already does.
		if !t.Select.Func(mask.Ax[j]) {
			r.Ax[j] = t.Init
			continue
		}
		r.Ax[j] = vxmColumn(buckets[j], v, t.Mul.Func, t.Add.Func, t.Init)
	}
}

// validateVxMDenseMask brings r, v, M, mask into the formats the dense-
// mask variants require and returns their typed containers.
func validateVxMDenseMask(t *TaskVxM) (r, v, mask *storage.VectorDense, m *storage.MatrixCSR, err error) {
	if err = t.R.ValidateRWD(storage.VecDense); err != nil {
		return
	}
	if err = t.V.ValidateRW(storage.VecDense); err != nil {
		return
	}
	if err = t.M.ValidateRW(storage.MatCSR); err != nil {
		return
	}
	if err = t.Mask.ValidateRW(storage.VecDense); err != nil {
		return
	}
	r = t.R.Get(storage.VecDense).(*storage.VectorDense)
	v = t.V.Get(storage.VecDense).(*storage.VectorDense)
	mask = t.Mask.Get(storage.VecDense).(*storage.VectorDense)
	m = t.M.Get(storage.MatCSR).(*storage.MatrixCSR)
	return
}

func checkOperands(mul, add *optype.BinaryOp, sel *optype.SelectOp) error {
	if mul == nil || add == nil || sel == nil {
		return fmt.Errorf("kernel: vxm: %w", ErrInvalidOperands)
	}
	return nil
}
