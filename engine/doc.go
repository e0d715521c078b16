// SPDX-License-Identifier: MIT

// Package engine is the public facade over optype, storage, kernel,
// accel, block, expr, and schedule: a Library owns a kernel registry, a
// device manager, and a scheduler, and mints Scalars, Vectors, Matrices,
// and Expressions that reference them. Two lower packages still show
// through its API: Node.State returns an expr.State, so callers compare
// it against expr's state constants, and Descriptor.PreferredBackend is
// a *kernel.Backend.
package engine
