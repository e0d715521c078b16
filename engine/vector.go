// SPDX-License-Identifier: MIT
package engine

import (
	"fmt"

	"github.com/sparseruntime/spla/optype"
	"github.com/sparseruntime/spla/storage"
)

// Vector is a dimension-n storage bundle of element type T, plus the
// fill value positions without an explicit entry carry.
type Vector struct {
	t      *optype.Type
	n      int
	fill   any
	bundle *storage.Bundle
}

// NewVector allocates an empty vector of dimension n and fill value
// fill. eq tests element equality for dense<->sparse conversions; nil
// falls back to Go's ==, which is correct for every comparable built-in
// element type this package ships.
func (l *Library) NewVector(t *optype.Type, n int, fill any, eq func(a, b any) bool) *Vector {
	return &Vector{t: t, n: n, fill: fill, bundle: storage.NewVectorBundle(n, fill, eq)}
}

// Type returns the vector's element type.
func (v *Vector) Type() *optype.Type { return v.t }

// Dim returns the vector's dimension.
func (v *Vector) Dim() int { return v.n }

// Fill returns the vector's fill value.
func (v *Vector) Fill() any { return v.fill }

// SetDense overwrites the vector with values, which must have length
// Dim(). This bypasses the kernel/scheduler layers entirely and is meant
// for seeding input vectors before an expression graph is built over
// them, not for writes an expression node should perform.
func (v *Vector) SetDense(values []any) error {
	if len(values) != v.n {
		return fmt.Errorf("engine: Vector.SetDense: %w", ErrDimensionMismatch)
	}
	if err := v.bundle.ValidateRWD(storage.VecDense); err != nil {
		return err
	}
	d := v.bundle.Get(storage.VecDense).(*storage.VectorDense)
	copy(d.Ax, values)
	return nil
}

// Slice returns a dense copy of the vector's current contents.
func (v *Vector) Slice() ([]any, error) {
	if err := v.bundle.ValidateRW(storage.VecDense); err != nil {
		return nil, err
	}
	d := v.bundle.Get(storage.VecDense).(*storage.VectorDense)
	out := make([]any, len(d.Ax))
	copy(out, d.Ax)
	return out, nil
}

// At reads a single position, materializing the dense format if needed.
func (v *Vector) At(i int) (any, error) {
	if i < 0 || i >= v.n {
		return nil, fmt.Errorf("engine: Vector.At(%d): %w", i, ErrDimensionMismatch)
	}
	if err := v.bundle.ValidateRW(storage.VecDense); err != nil {
		return nil, err
	}
	d := v.bundle.Get(storage.VecDense).(*storage.VectorDense)
	return d.Ax[i], nil
}
