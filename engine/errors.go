// SPDX-License-Identifier: MIT
package engine

import "errors"

var (
	// ErrDimensionMismatch is returned when an expression builder is given
	// operands whose shapes cannot possibly satisfy the operation's contract.
	ErrDimensionMismatch = errors.New("engine: operand dimensions do not match")

	// ErrNotEvaluated names a result read before the expression that
	// produces it has reached Evaluated. Nothing in this package returns
	// it: Vector and Matrix read accessors read the bundle's current
	// contents whatever the producing expression's state.
	ErrNotEvaluated = errors.New("engine: result read before its expression evaluated")
)
