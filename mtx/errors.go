// SPDX-License-Identifier: MIT
package mtx

import "errors"

var (
	// ErrMalformedHeader is returned when the "nrows ncols nnz" header
	// line is missing or not three integers.
	ErrMalformedHeader = errors.New("mtx: malformed header line")

	// ErrIndexOutOfRange is returned when a data line's row or column
	// falls outside [1, nrows] or [1, ncols] respectively.
	ErrIndexOutOfRange = errors.New("mtx: index out of range")

	// ErrNNZMismatch is returned when the number of data lines actually
	// present does not equal the header's declared nnz.
	ErrNNZMismatch = errors.New("mtx: data line count does not match declared nnz")

	// ErrMalformedLine is returned when a data line does not parse as at
	// least two integers.
	ErrMalformedLine = errors.New("mtx: malformed data line")
)
