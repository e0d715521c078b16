// SPDX-License-Identifier: MIT

// Package mtx parses the Matrix Market coordinate format: a header line
// "nrows ncols nnz" (after any %-prefixed comment lines) followed by nnz
// data lines "i j [value]", 1-based indices converted to 0-based on load.
// It is a pure coordinate parser — it never computes degree statistics
// and never builds a storage.Bundle; callers feed its output to
// (*engine.Matrix).Build or an engine.Expression's Build node.
package mtx
