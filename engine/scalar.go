// SPDX-License-Identifier: MIT
package engine

import "github.com/sparseruntime/spla/optype"

// Scalar is a single T value with no format variants, per the data
// model: scalars never go through the storage bundle machinery.
type Scalar struct {
	t     *optype.Type
	value any
}

// NewScalar returns a Scalar of type t holding value.
func (l *Library) NewScalar(t *optype.Type, value any) *Scalar {
	return &Scalar{t: t, value: value}
}

// Type returns the scalar's element type.
func (s *Scalar) Type() *optype.Type { return s.t }

// Value returns the scalar's current value.
func (s *Scalar) Value() any { return s.value }

// Set overwrites the scalar's value.
func (s *Scalar) Set(v any) { s.value = v }
