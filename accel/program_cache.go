// SPDX-License-Identifier: MIT
package accel

import (
	"fmt"
	"sync"

	"github.com/sparseruntime/spla/optype"
)

// programKey identifies one compiled fast path: a template name, the
// element type it was built for, and the exact operator pointers bound
// into it. ops holds *optype.BinaryOp/*optype.UnaryOp/*optype.SelectOp
// values compared by identity, never by name, matching the rest of this
// runtime's operator-equality policy.
type programKey struct {
	templateID string
	t          *optype.Type
	ops        [4]any
}

func newProgramKey(templateID string, t *optype.Type, ops ...any) programKey {
	var k programKey
	k.templateID = templateID
	k.t = t
	copy(k.ops[:], ops)
	return k
}

// ProgramCache remembers which (templateID, Type, operators) combinations
// have already failed to build a SIMD fast path, so a caller never pays
// the probing cost twice. A hit here never has positive data to cache,
// since the fast paths in this package are plain Go functions rather
// than compiled device programs; the cache exists to make failures
// permanent, per the compilation-failure recording SIMDContext advertises.
type ProgramCache struct {
	mu     sync.Mutex
	failed map[programKey]error
}

// NewProgramCache returns an empty cache.
func NewProgramCache() *ProgramCache {
	return &ProgramCache{failed: make(map[programKey]error)}
}

// Failure returns the recorded error for key, if this exact combination
// has already failed to build, and ok=false otherwise.
func (c *ProgramCache) Failure(templateID string, t *optype.Type, ops ...any) (error, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	err, ok := c.failed[newProgramKey(templateID, t, ops...)]
	return err, ok
}

// RecordFailure permanently marks templateID/t/ops as unable to build a
// fast path; later lookups with the same key return this error without
// retrying.
func (c *ProgramCache) RecordFailure(templateID string, t *optype.Type, err error, ops ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failed[newProgramKey(templateID, t, ops...)] = err
}

// errNotRecognized builds the failure recorded when a requested operator
// pair does not match the fast path's expected operator identities.
func errNotRecognized(templateID string) error {
	return fmt.Errorf("accel: %s: operand operators are not the recognized fast-path identities", templateID)
}
