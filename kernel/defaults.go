// SPDX-License-Identifier: MIT
package kernel

import "github.com/sparseruntime/spla/optype"

// RegisterDefaults registers every CPU Algo this package provides for
// element type t, at the given base priority. Callers that also wire an
// accelerator backend (package accel) should register it at a higher
// priority so Select prefers it whenever its operands are available.
//
// Select breaks ties by registration order, so the dense-mask variants
// come first: they win when the mask is valid dense, and the COO-mask
// variants win when only the mask's COO form is valid.
func RegisterDefaults(reg *Registry, t *optype.Type, priority int) {
	reg.Register(OpVxM, t, NewAlgoVxMScalar(priority))
	reg.Register(OpVxM, t, NewAlgoVxMVector(priority, 64))
	reg.Register(OpVxM, t, NewAlgoVxMConfigScalar(priority))
	reg.Register(OpAssignMasked, t, NewAlgoAssignDenseToDense(priority))
	reg.Register(OpAssignMasked, t, NewAlgoAssignSparseToDense(priority))
	reg.Register(OpEWiseAdd, t, NewAlgoEWiseAdd(priority))
	reg.Register(OpBuild, t, NewAlgoBuildFromTriples(priority))
}
