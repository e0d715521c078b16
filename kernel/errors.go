// SPDX-License-Identifier: MIT
package kernel

import "errors"

var (
	// ErrNoAlgo is returned by Select when no registered algorithm for the
	// requested key is available given the current backend set.
	ErrNoAlgo = errors.New("kernel: no available algorithm")

	// ErrLengthMismatch is returned by build-from-triples when the three
	// input arrays do not share a common length.
	ErrLengthMismatch = errors.New("kernel: triple arrays have mismatched lengths")

	// ErrIndexOutOfRange is returned when a triple's row or column falls
	// outside the target matrix's shape.
	ErrIndexOutOfRange = errors.New("kernel: triple index out of range")

	// ErrInvalidOperands is returned when a task is missing a required
	// operator.
	ErrInvalidOperands = errors.New("kernel: missing required operator")
)
