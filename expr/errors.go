// SPDX-License-Identifier: MIT
package expr

import "errors"

var (
	ErrGraphFrozen       = errors.New("expr: graph already submitted")
	ErrAlreadySubmitted  = errors.New("expr: graph already submitted")
	ErrCycleDetected     = errors.New("expr: cycle detected among node predecessors")
	ErrForeignNode       = errors.New("expr: predecessor belongs to a different graph")
	ErrInvalidTransition = errors.New("expr: invalid node state transition")
	ErrNotSubmitted      = errors.New("expr: graph has not been submitted")
)
