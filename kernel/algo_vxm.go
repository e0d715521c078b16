// SPDX-License-Identifier: MIT
package kernel

import (
	"sort"
	"sync"

	"github.com/sparseruntime/spla/storage"
)

// AlgoVxMScalar is the sequential reference implementation of the masked
// vector-matrix product: one pass per output column, mask checked before
// folding that column's contributions. Preferred when the matrix is
// already valid in CSR and both vector operands are dense.
type AlgoVxMScalar struct{ priority int }

func NewAlgoVxMScalar(priority int) *AlgoVxMScalar { return &AlgoVxMScalar{priority: priority} }

func (a *AlgoVxMScalar) Name() string        { return "vxm_masked_scalar" }
func (a *AlgoVxMScalar) Description() string { return "sequential masked vector-matrix product, one column at a time" }
func (a *AlgoVxMScalar) Backend() Backend     { return BackendCPU }
func (a *AlgoVxMScalar) Priority() int        { return a.priority }
func (a *AlgoVxMScalar) RequiredFormats() []storage.Format {
	return []storage.Format{storage.MatCSR, storage.VecDense}
}

func (a *AlgoVxMScalar) Execute(dc *DispatchContext) (Status, error) {
	t := dc.Task.(*TaskVxM)
	if err := checkOperands(t.Mul, t.Add, t.Select); err != nil {
		return StatusInvalidArgument, err
	}
	r, v, mask, m, err := validateVxMDenseMask(t)
	if err != nil {
		return StatusInvalidState, err
	}
	buckets := buildColumnBuckets(m)
	vxmColumnRange(t, r, v, mask, buckets, 0, t.N)
	return StatusOk, nil
}

// PrepareBlocks validates operands and builds the column buckets once, so
// that every ExecuteBlock call below shares the same dense containers and
// only needs to fold its own column range.
func (a *AlgoVxMScalar) PrepareBlocks(dc *DispatchContext) (Status, error) {
	t := dc.Task.(*TaskVxM)
	if err := checkOperands(t.Mul, t.Add, t.Select); err != nil {
		return StatusInvalidArgument, err
	}
	r, v, mask, m, err := validateVxMDenseMask(t)
	if err != nil {
		return StatusInvalidState, err
	}
	dc.scratch = &vxmScratch{r: r, v: v, mask: mask, buckets: buildColumnBuckets(m)}
	return StatusOk, nil
}

// ExecuteBlock folds columns [lo, hi) using the containers PrepareBlocks
// validated; disjoint column ranges never touch the same slot of r.Ax, so
// concurrent callers sharing dc need no further synchronization.
func (a *AlgoVxMScalar) ExecuteBlock(dc *DispatchContext, lo, hi int) (Status, error) {
	t := dc.Task.(*TaskVxM)
	s := dc.scratch.(*vxmScratch)
	vxmColumnRange(t, s.r, s.v, s.mask, s.buckets, lo, hi)
	return StatusOk, nil
}

// AlgoVxMVector groups output columns into chunks and runs each chunk on
// its own goroutine; the underlying math is identical to AlgoVxMScalar,
// column slots never overlap so no synchronization is needed beyond the
// final join.
type AlgoVxMVector struct {
	priority  int
	chunkSize int
}

func NewAlgoVxMVector(priority, chunkSize int) *AlgoVxMVector {
	if chunkSize <= 0 {
		chunkSize = 64
	}
	return &AlgoVxMVector{priority: priority, chunkSize: chunkSize}
}

func (a *AlgoVxMVector) Name() string        { return "vxm_masked_vector" }
func (a *AlgoVxMVector) Description() string { return "chunked masked vector-matrix product across goroutines" }
func (a *AlgoVxMVector) Backend() Backend     { return BackendCPU }
func (a *AlgoVxMVector) Priority() int        { return a.priority }
func (a *AlgoVxMVector) RequiredFormats() []storage.Format {
	return []storage.Format{storage.MatCSR, storage.VecDense}
}

func (a *AlgoVxMVector) Execute(dc *DispatchContext) (Status, error) {
	t := dc.Task.(*TaskVxM)
	if err := checkOperands(t.Mul, t.Add, t.Select); err != nil {
		return StatusInvalidArgument, err
	}
	r, v, mask, m, err := validateVxMDenseMask(t)
	if err != nil {
		return StatusInvalidState, err
	}
	buckets := buildColumnBuckets(m)
	a.chunked(t, r, v, mask, buckets, 0, t.N)
	return StatusOk, nil
}

// PrepareBlocks validates operands and builds the column buckets once;
// ExecuteBlock further chunks its own [lo, hi) sub-range across
// goroutines, nesting this algo's internal chunking inside the
// scheduler's per-block decomposition.
func (a *AlgoVxMVector) PrepareBlocks(dc *DispatchContext) (Status, error) {
	t := dc.Task.(*TaskVxM)
	if err := checkOperands(t.Mul, t.Add, t.Select); err != nil {
		return StatusInvalidArgument, err
	}
	r, v, mask, m, err := validateVxMDenseMask(t)
	if err != nil {
		return StatusInvalidState, err
	}
	dc.scratch = &vxmScratch{r: r, v: v, mask: mask, buckets: buildColumnBuckets(m)}
	return StatusOk, nil
}

func (a *AlgoVxMVector) ExecuteBlock(dc *DispatchContext, lo, hi int) (Status, error) {
	t := dc.Task.(*TaskVxM)
	s := dc.scratch.(*vxmScratch)
	a.chunked(t, s.r, s.v, s.mask, s.buckets, lo, hi)
	return StatusOk, nil
}

// chunked splits [lo, hi) into chunkSize-wide pieces, one goroutine each.
func (a *AlgoVxMVector) chunked(t *TaskVxM, r, v, mask *storage.VectorDense, buckets [][]vxmColEntry, lo, hi int) {
	var wg sync.WaitGroup
	for start := lo; start < hi; start += a.chunkSize {
		end := start + a.chunkSize
		if end > hi {
			end = hi
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			vxmColumnRange(t, r, v, mask, buckets, start, end)
		}(start, end)
	}
	wg.Wait()
}

// AlgoVxMConfigScalar prepasses the mask in COO form to collect the
// compact set of selected columns before folding, avoiding a full dense
// mask scan. Preferred when the mask is already valid in COO and sparse.
type AlgoVxMConfigScalar struct{ priority int }

func NewAlgoVxMConfigScalar(priority int) *AlgoVxMConfigScalar {
	return &AlgoVxMConfigScalar{priority: priority}
}

func (a *AlgoVxMConfigScalar) Name() string { return "vxm_masked_config_scalar" }
func (a *AlgoVxMConfigScalar) Description() string {
	return "prepass over a sparse mask, then scalar fold over the surviving columns"
}
func (a *AlgoVxMConfigScalar) Backend() Backend { return BackendCPU }
func (a *AlgoVxMConfigScalar) Priority() int    { return a.priority }
func (a *AlgoVxMConfigScalar) RequiredFormats() []storage.Format {
	return []storage.Format{storage.MatCSR, storage.VecDense, storage.VecCOO}
}

func (a *AlgoVxMConfigScalar) Execute(dc *DispatchContext) (Status, error) {
	t, r, v, m, maskCOO, status, err := prepareVxMConfigScalar(dc)
	if err != nil {
		return status, err
	}
	buckets := buildColumnBuckets(m)
	configured := configuredColumns(t, maskCOO)
	foldConfiguredRange(t, r, v, buckets, configured, 0, t.N)
	return StatusOk, nil
}

// PrepareBlocks validates operands, fills r with Init, and precomputes the
// configured-column and column-bucket slices shared by every ExecuteBlock
// call below.
func (a *AlgoVxMConfigScalar) PrepareBlocks(dc *DispatchContext) (Status, error) {
	t, r, v, m, maskCOO, status, err := prepareVxMConfigScalar(dc)
	if err != nil {
		return status, err
	}
	dc.scratch = &vxmConfigScratch{
		r: r, v: v,
		buckets:    buildColumnBuckets(m),
		configured: configuredColumns(t, maskCOO),
	}
	return StatusOk, nil
}

// ExecuteBlock folds the configured columns that fall within [lo, hi),
// found via binary search since configured is ascending by construction.
func (a *AlgoVxMConfigScalar) ExecuteBlock(dc *DispatchContext, lo, hi int) (Status, error) {
	t := dc.Task.(*TaskVxM)
	s := dc.scratch.(*vxmConfigScratch)
	foldConfiguredRange(t, s.r, s.v, s.buckets, s.configured, lo, hi)
	return StatusOk, nil
}

func prepareVxMConfigScalar(dc *DispatchContext) (t *TaskVxM, r, v *storage.VectorDense, m *storage.MatrixCSR, maskCOO *storage.VectorCOO, status Status, err error) {
	t = dc.Task.(*TaskVxM)
	if err = checkOperands(t.Mul, t.Add, t.Select); err != nil {
		return t, nil, nil, nil, nil, StatusInvalidArgument, err
	}
	if err = t.R.ValidateRWD(storage.VecDense); err != nil {
		return t, nil, nil, nil, nil, StatusInvalidState, err
	}
	if err = t.V.ValidateRW(storage.VecDense); err != nil {
		return t, nil, nil, nil, nil, StatusInvalidState, err
	}
	if err = t.M.ValidateRW(storage.MatCSR); err != nil {
		return t, nil, nil, nil, nil, StatusInvalidState, err
	}
	if err = t.Mask.ValidateRW(storage.VecCOO); err != nil {
		return t, nil, nil, nil, nil, StatusInvalidState, err
	}
	r = t.R.Get(storage.VecDense).(*storage.VectorDense)
	v = t.V.Get(storage.VecDense).(*storage.VectorDense)
	m = t.M.Get(storage.MatCSR).(*storage.MatrixCSR)
	maskCOO = t.Mask.Get(storage.VecCOO).(*storage.VectorCOO)
	for j := 0; j < t.N; j++ {
		r.Ax[j] = t.Init
	}
	return t, r, v, m, maskCOO, StatusOk, nil
}

// configuredColumns returns the sorted (since maskCOO.Ai is sorted
// ascending) column indices the mask selects.
func configuredColumns(t *TaskVxM, maskCOO *storage.VectorCOO) []uint32 {
	configured := make([]uint32, 0, maskCOO.NNZ())
	for i, j := range maskCOO.Ai {
		if t.Select.Func(maskCOO.Ax[i]) {
			configured = append(configured, j)
		}
	}
	return configured
}

// foldConfiguredRange folds every configured column j with lo <= j < hi.
func foldConfiguredRange(t *TaskVxM, r, v *storage.VectorDense, buckets [][]vxmColEntry, configured []uint32, lo, hi int) {
	start := sort.Search(len(configured), func(i int) bool { return int(configured[i]) >= lo })
	for _, j := range configured[start:] {
		if int(j) >= hi {
			break
		}
		r.Ax[j] = vxmColumn(buckets[j], v, t.Mul.Func, t.Add.Func, t.Init)
	}
}
