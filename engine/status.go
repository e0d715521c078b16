// SPDX-License-Identifier: MIT
package engine

import "github.com/sparseruntime/spla/kernel"

// Status is the outcome of one expression's evaluation. It is a type
// alias for kernel.Status so that a kernel.Algo's return value and an
// expression's final status are the same value, never a parallel
// hierarchy that needs translating at the facade boundary.
type Status = kernel.Status

const (
	StatusOk               = kernel.StatusOk
	StatusInvalidArgument  = kernel.StatusInvalidArgument
	StatusInvalidState     = kernel.StatusInvalidState
	StatusNotImplemented   = kernel.StatusNotImplemented
	StatusCompilationError = kernel.StatusCompilationError
	StatusDeviceError      = kernel.StatusDeviceError
	StatusOutOfMemory      = kernel.StatusOutOfMemory
	StatusAborted          = kernel.StatusAborted
	StatusFailed           = kernel.StatusFailed
)
