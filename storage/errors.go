// SPDX-License-Identifier: MIT
package storage

import "errors"

// Sentinel errors for storage package operations.
var (
	// ErrUnknownFormat indicates a Format value this package does not recognize.
	ErrUnknownFormat = errors.New("storage: unknown format")

	// ErrNoValidFormat indicates a Bundle has no valid format and is not empty.
	ErrNoValidFormat = errors.New("storage: no valid format")

	// ErrNoConversionPath indicates the conversion graph has no route from any
	// currently-valid format to the requested target.
	ErrNoConversionPath = errors.New("storage: no conversion path to target format")

	// ErrLengthMismatch indicates parallel arrays (Ai/Ax, rows/cols/vals) of
	// differing lengths were supplied to a builder.
	ErrLengthMismatch = errors.New("storage: parallel array length mismatch")

	// ErrIndexOutOfRange indicates a coordinate fell outside [0, dim).
	ErrIndexOutOfRange = errors.New("storage: index out of range")

	// ErrTypeMismatch indicates an operator's element type does not match the
	// container's element type.
	ErrTypeMismatch = errors.New("storage: operator type mismatch")
)
