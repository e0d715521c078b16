// SPDX-License-Identifier: MIT
package expr

import (
	"sync"

	"github.com/sparseruntime/spla/kernel"
	"github.com/sparseruntime/spla/optype"
)

// Node is one operation in an expression graph. Its identity is its
// index within the owning Graph's node slice; Predecessors resolves the
// stored indices back to Node pointers on demand rather than holding
// them directly, so the graph stays a flat array with integer edges.
type Node struct {
	graph *Graph
	idx   int

	Op         kernel.OpKind
	Type       *optype.Type
	Task       any
	Descriptor *Descriptor

	preds []int

	mu    sync.Mutex
	state State
}

// Index returns this node's position in its graph, which is also its
// topological-sort-stable identity.
func (n *Node) Index() int { return n.idx }

// Predecessors returns the nodes this node depends on, in the order they
// were given to AddNode.
func (n *Node) Predecessors() []*Node {
	out := make([]*Node, len(n.preds))
	for i, p := range n.preds {
		out[i] = n.graph.nodes[p]
	}
	return out
}

// State returns the node's current lifecycle state.
func (n *Node) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// Transition advances the node to next, failing if that edge is not one
// of the state machine's allowed one-way moves.
func (n *Node) Transition(next State) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.state.canTransitionTo(next) {
		return ErrInvalidTransition
	}
	n.state = next
	return nil
}
