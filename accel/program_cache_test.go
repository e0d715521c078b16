// SPDX-License-Identifier: MIT
package accel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sparseruntime/spla/optype"
)

func TestProgramCache_RecordsFailurePermanently(t *testing.T) {
	c := NewProgramCache()
	ty := optype.Float32Type()

	_, ok := c.Failure("vxm_masked_simd_f32", ty)
	assert.False(t, ok)

	want := errors.New("boom")
	c.RecordFailure("vxm_masked_simd_f32", ty, want)

	got, ok := c.Failure("vxm_masked_simd_f32", ty)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestProgramCache_DistinctOperatorsAreDistinctKeys(t *testing.T) {
	c := NewProgramCache()
	ty := optype.Float32Type()
	plusA, _ := ty.NewBinaryOp("plusA", "a+b", func(a, b any) any { return a })
	plusB, _ := ty.NewBinaryOp("plusB", "a+b", func(a, b any) any { return a })

	c.RecordFailure("tmpl", ty, errors.New("a failed"), plusA)
	_, ok := c.Failure("tmpl", ty, plusB)
	assert.False(t, ok, "a different operator pointer must not share a's cached failure")
}
