// SPDX-License-Identifier: MIT
package kernel

import "github.com/sparseruntime/spla/storage"

// AlgoBuildFromTriples builds a matrix's LIL block from three equal-
// length (row, col, value) arrays, applying the target's registered
// reduce operator to duplicate keys, then marks LIL valid-fill so
// subsequent reads convert onward to CSR, the canonical device upload
// path.
type AlgoBuildFromTriples struct{ priority int }

func NewAlgoBuildFromTriples(priority int) *AlgoBuildFromTriples {
	return &AlgoBuildFromTriples{priority: priority}
}

func (a *AlgoBuildFromTriples) Name() string        { return "m_build_from_triples" }
func (a *AlgoBuildFromTriples) Description() string { return "build a matrix's LIL block from (row, col, value) triples" }
func (a *AlgoBuildFromTriples) Backend() Backend     { return BackendCPU }
func (a *AlgoBuildFromTriples) Priority() int        { return a.priority }
func (a *AlgoBuildFromTriples) RequiredFormats() []storage.Format {
	return []storage.Format{storage.MatLIL}
}

func (a *AlgoBuildFromTriples) Execute(dc *DispatchContext) (Status, error) {
	t := dc.Task.(*TaskBuild)
	if len(t.Rows) != len(t.Cols) || len(t.Rows) != len(t.Vals) {
		return StatusInvalidArgument, ErrLengthMismatch
	}
	for i := range t.Rows {
		if int(t.Rows[i]) >= t.Nrows || int(t.Cols[i]) >= t.Ncols {
			return StatusInvalidArgument, ErrIndexOutOfRange
		}
	}

	var reduceFn func(a, b any) any
	if t.Reduce != nil {
		reduceFn = t.Reduce.Func
	}

	if t.Sorted && t.NoDuplicates {
		// The caller promises canonical order with no repeated keys: build
		// COO directly and skip LIL's row-sort/reduce pass entirely.
		coo, err := storage.NewMatrixCOOFromTriples(t.Nrows, t.Ncols, t.Rows, t.Cols, t.Vals, t.Fill, reduceFn, true, true)
		if err != nil {
			return StatusInvalidArgument, err
		}
		if err := t.Target.ValidateRWD(storage.MatCOO); err != nil {
			return StatusInvalidState, err
		}
		t.Target.Set(storage.MatCOO, coo)
		return StatusOk, nil
	}

	if err := t.Target.ValidateRWD(storage.MatLIL); err != nil {
		return StatusInvalidState, err
	}
	lil := t.Target.Get(storage.MatLIL).(*storage.MatrixLIL)
	if reduceFn != nil {
		if err := lil.SetReduceOp(reduceFn); err != nil {
			return StatusInvalidArgument, err
		}
	}

	for i := range t.Rows {
		if err := lil.Append(int(t.Rows[i]), t.Cols[i], t.Vals[i]); err != nil {
			return StatusInvalidState, err
		}
	}
	t.Target.Set(storage.MatLIL, lil)
	return StatusOk, nil
}
