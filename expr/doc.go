// SPDX-License-Identifier: MIT

// Package expr holds the expression DAG a Library builds up before
// submitting it for execution. A Graph is an arena: Node identity is its
// index into the graph's node slice, and a Node's predecessors are
// stored as indices into that same slice rather than pointers, so the
// graph has no cyclic ownership for the garbage collector to chase.
//
// Building a Graph is mutation-only. Submit freezes it, rejects cycles,
// and advances every node to Scheduled; after that, only a node's own
// state machine changes (driven by package schedule).
package expr
