// SPDX-License-Identifier: MIT
package expr

import (
	"sync"

	"github.com/sparseruntime/spla/kernel"
	"github.com/sparseruntime/spla/optype"
)

// Graph is an arena of Nodes. Nodes can only be appended through
// AddNode, and AddNode only accepts *Node values this Graph has already
// returned, so every predecessor index is necessarily less than the
// index of the node that references it: the arena can never hold a
// forward edge, and therefore never holds a cycle either. detectCycle
// exists as a defensive check of that invariant rather than a load-
// bearing algorithm.
type Graph struct {
	mu     sync.Mutex
	nodes  []*Node
	frozen bool
}

// NewGraph returns an empty, unsubmitted graph.
func NewGraph() *Graph { return &Graph{} }

// AddNode appends a new node of the given operation kind, element type,
// and typed task (one of kernel's Task* structs), depending on preds. It
// fails once the graph has been submitted.
func (g *Graph) AddNode(op kernel.OpKind, t *optype.Type, task any, desc *Descriptor, preds ...*Node) (*Node, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return nil, ErrGraphFrozen
	}
	if desc == nil {
		desc = NewDescriptor()
	}
	n := &Node{graph: g, idx: len(g.nodes), Op: op, Type: t, Task: task, Descriptor: desc, state: Default}
	for _, p := range preds {
		if p.graph != g {
			return nil, ErrForeignNode
		}
		n.preds = append(n.preds, p.idx)
	}
	g.nodes = append(g.nodes, n)
	return n, nil
}

// Submit freezes the graph against further AddNode calls, rejects it if
// a cycle is found, and advances every node to Scheduled.
func (g *Graph) Submit() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return ErrAlreadySubmitted
	}
	if err := g.detectCycle(); err != nil {
		return err
	}
	g.frozen = true
	for _, n := range g.nodes {
		n.state = Scheduled
	}
	return nil
}

// IsSubmitted reports whether Submit has already run.
func (g *Graph) IsSubmitted() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.frozen
}

// Nodes returns the graph's nodes in append order (which, by
// construction, is also a valid topological order).
func (g *Graph) Nodes() []*Node {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// detectCycle walks every node once, in index order, confirming each of
// its predecessor indices is strictly smaller. See Graph's doc comment
// for why this can never actually fail given AddNode's API.
func (g *Graph) detectCycle() error {
	for _, n := range g.nodes {
		for _, p := range n.preds {
			if p >= n.idx {
				return ErrCycleDetected
			}
		}
	}
	return nil
}
