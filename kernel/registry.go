// SPDX-License-Identifier: MIT
package kernel

import (
	"sort"
	"sync"

	"github.com/sparseruntime/spla/optype"
)

type regKey struct {
	op OpKind
	t  *optype.Type
}

// Registry holds every Algo keyed by (OpKind, *optype.Type). Lookups
// preserve registration order, which Select uses as its final,
// deterministic tie-break.
type Registry struct {
	mu    sync.RWMutex
	algos map[regKey][]Algo
}

// NewRegistry allocates an empty registry.
func NewRegistry() *Registry {
	return &Registry{algos: make(map[regKey][]Algo)}
}

// Register appends a to the candidate list for (op, t).
func (r *Registry) Register(op OpKind, t *optype.Type, a Algo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := regKey{op, t}
	r.algos[k] = append(r.algos[k], a)
}

// Lookup returns the registered candidates for (op, t), in registration
// order. The returned slice is a copy; mutating it does not affect the
// registry.
func (r *Registry) Lookup(op OpKind, t *optype.Type) []Algo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	src := r.algos[regKey{op, t}]
	out := make([]Algo, len(src))
	copy(out, src)
	return out
}

// Select ranks candidates by (1) availability, (2) conversions triggered,
// (3) registered priority, and returns the best one. available and
// conversions are supplied by the caller, which alone knows which
// operand bundles are currently valid in which formats. Ties are broken
// by registration order, so the result is deterministic given a fixed
// bundle state and registry.
func Select(candidates []Algo, available func(Algo) bool, conversions func(Algo) int) (Algo, error) {
	if len(candidates) == 0 {
		return nil, ErrNoAlgo
	}
	type scored struct {
		a     Algo
		avail bool
		conv  int
		idx   int
	}
	scs := make([]scored, len(candidates))
	for i, a := range candidates {
		scs[i] = scored{a: a, avail: available(a), conv: conversions(a), idx: i}
	}
	sort.SliceStable(scs, func(i, j int) bool {
		if scs[i].avail != scs[j].avail {
			return scs[i].avail
		}
		if scs[i].conv != scs[j].conv {
			return scs[i].conv < scs[j].conv
		}
		if scs[i].a.Priority() != scs[j].a.Priority() {
			return scs[i].a.Priority() > scs[j].a.Priority()
		}
		return scs[i].idx < scs[j].idx
	})
	if !scs[0].avail {
		return nil, ErrNoAlgo
	}
	return scs[0].a, nil
}
