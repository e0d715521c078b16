// SPDX-License-Identifier: MIT
package kernel

import "github.com/sparseruntime/spla/storage"

// Algo is one implementation of one operation for one element type.
// Several Algos may be registered under the same (OpKind, *optype.Type)
// key; Select picks among them.
type Algo interface {
	Name() string
	Description() string
	RequiredFormats() []storage.Format
	Backend() Backend
	Priority() int
	Execute(dc *DispatchContext) (Status, error)
}

// BlockAlgo is implemented by an Algo whose work decomposes into
// independent per-block sub-tasks over the task's natural output
// dimension (output columns for a vector result, output rows for a
// matrix result). PrepareBlocks runs once, validating operand formats and
// allocating the output container; ExecuteBlock then fills only [lo, hi)
// of that dimension and may be called concurrently with other
// ExecuteBlock calls given the same dc, or copies of it that differ only
// in Device, once PrepareBlocks has returned. A dense target's disjoint index ranges never alias, so no
// further synchronization is needed between sub-tasks of one node.
type BlockAlgo interface {
	Algo
	PrepareBlocks(dc *DispatchContext) (Status, error)
	ExecuteBlock(dc *DispatchContext, lo, hi int) (Status, error)
}
