// SPDX-License-Identifier: MIT
package expr

import "github.com/sparseruntime/spla/kernel"

// Descriptor is the per-operation hint bag a node carries into kernel
// selection: EarlyExit asks a masked kernel to skip touching its other
// operands once the mask predicate fails, PreferredBackend narrows
// Select's candidates to one backend when non-nil. GroupSizeHint is
// carried on the node but the scheduler does not read it; sub-task
// ranges come from the scheduler's block size alone.
type Descriptor struct {
	EarlyExit        bool
	PreferredBackend *kernel.Backend
	GroupSizeHint    int
}

// NewDescriptor returns a Descriptor with no hints set.
func NewDescriptor() *Descriptor { return &Descriptor{} }
