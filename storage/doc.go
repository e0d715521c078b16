// Package storage holds the concrete per-format containers for vectors and
// matrices (LIL, DOK, COO, CSR, Dense, and their accelerator mirrors) plus
// the Bundle version map that tracks which formats are currently valid and
// performs minimum-cost conversions between them on demand.
//
// Containers in this package are pure data holders: they know how to store
// and convert themselves but never decide when a conversion should happen.
// That policy lives in Bundle.
package storage
