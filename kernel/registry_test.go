// SPDX-License-Identifier: MIT
package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparseruntime/spla/optype"
	"github.com/sparseruntime/spla/storage"
)

func optypeFloat(t *testing.T) *optype.Type {
	t.Helper()
	return optype.Float32Type()
}

type fakeAlgo struct {
	name     string
	formats  []storage.Format
	priority int
}

func (f *fakeAlgo) Name() string                          { return f.name }
func (f *fakeAlgo) Description() string                   { return f.name }
func (f *fakeAlgo) RequiredFormats() []storage.Format      { return f.formats }
func (f *fakeAlgo) Backend() Backend                       { return BackendCPU }
func (f *fakeAlgo) Priority() int                          { return f.priority }
func (f *fakeAlgo) Execute(dc *DispatchContext) (Status, error) { return StatusOk, nil }

func TestSelect_PrefersAvailableOverUnavailable(t *testing.T) {
	a := &fakeAlgo{name: "a", priority: 0}
	b := &fakeAlgo{name: "b", priority: 100}
	got, err := Select([]Algo{a, b}, func(al Algo) bool { return al.Name() == "a" }, func(Algo) int { return 0 })
	require.NoError(t, err)
	assert.Equal(t, "a", got.Name())
}

func TestSelect_PrefersFewerConversions(t *testing.T) {
	a := &fakeAlgo{name: "a", priority: 0}
	b := &fakeAlgo{name: "b", priority: 0}
	conv := map[string]int{"a": 2, "b": 1}
	got, err := Select([]Algo{a, b}, func(Algo) bool { return true }, func(al Algo) int { return conv[al.Name()] })
	require.NoError(t, err)
	assert.Equal(t, "b", got.Name())
}

func TestSelect_TieBreaksByPriorityThenRegistrationOrder(t *testing.T) {
	a := &fakeAlgo{name: "a", priority: 5}
	b := &fakeAlgo{name: "b", priority: 9}
	c := &fakeAlgo{name: "c", priority: 9}
	got, err := Select([]Algo{a, b, c}, func(Algo) bool { return true }, func(Algo) int { return 0 })
	require.NoError(t, err)
	assert.Equal(t, "b", got.Name())
}

func TestSelect_NoCandidatesErrors(t *testing.T) {
	_, err := Select(nil, func(Algo) bool { return true }, func(Algo) int { return 0 })
	assert.ErrorIs(t, err, ErrNoAlgo)
}

func TestSelect_AllUnavailableErrors(t *testing.T) {
	a := &fakeAlgo{name: "a"}
	_, err := Select([]Algo{a}, func(Algo) bool { return false }, func(Algo) int { return 0 })
	assert.ErrorIs(t, err, ErrNoAlgo)
}

func TestRegistry_LookupReturnsCopyInRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	ty := optypeFloat(t)
	a := &fakeAlgo{name: "a"}
	b := &fakeAlgo{name: "b"}
	r.Register(OpVxM, ty, a)
	r.Register(OpVxM, ty, b)

	got := r.Lookup(OpVxM, ty)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Name())
	assert.Equal(t, "b", got[1].Name())

	got[0] = nil
	assert.NotNil(t, r.Lookup(OpVxM, ty)[0], "Lookup must return a defensive copy")
}
