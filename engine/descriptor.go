// SPDX-License-Identifier: MIT
package engine

import (
	"github.com/sparseruntime/spla/expr"
	"github.com/sparseruntime/spla/kernel"
)

// Descriptor is the per-operation hint bag passed to an Expression's
// node-building methods: EarlyExit, NoDuplicates and ValuesSorted are the
// enumerated descriptor flags, and PreferredBackend narrows kernel
// selection to one backend when set.
type Descriptor struct {
	EarlyExit        bool
	ValuesSorted     bool
	NoDuplicates     bool
	PreferredBackend *kernel.Backend
}

// NewDescriptor returns a Descriptor with no hints set.
func NewDescriptor() *Descriptor { return &Descriptor{} }

func (d *Descriptor) toExpr() *expr.Descriptor {
	if d == nil {
		return nil
	}
	return &expr.Descriptor{EarlyExit: d.EarlyExit, PreferredBackend: d.PreferredBackend}
}
