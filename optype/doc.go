// Package optype defines the runtime type-and-operator registry.
//
// A Type binds an element kind to a byte width and a table of named
// operators. Operators are immutable and compared by pointer identity,
// which is what keys the kernel and accelerator program caches. Two
// calls to NewBinaryOp with the same body produce two distinct, unrelated
// operators, on purpose: identity is the contract, not structural equality.
package optype
