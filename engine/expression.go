// SPDX-License-Identifier: MIT
package engine

import (
	"context"

	"github.com/sparseruntime/spla/expr"
	"github.com/sparseruntime/spla/kernel"
	"github.com/sparseruntime/spla/optype"
	"github.com/sparseruntime/spla/storage"
)

// Node is one operation inside an Expression: the return value of every
// builder method below, and the value passed back in as a predecessor of
// a later node.
type Node struct {
	n *expr.Node
}

// State returns the node's current lifecycle state.
func (nd *Node) State() expr.State { return nd.n.State() }

func toExprNodes(preds []*Node) []*expr.Node {
	out := make([]*expr.Node, len(preds))
	for i, p := range preds {
		out[i] = p.n
	}
	return out
}

// Expression is a mutable DAG of operation nodes while being built, and a
// frozen, schedulable unit once Submit runs.
type Expression struct {
	lib *Library
	g   *expr.Graph
}

// NewExpression returns an empty, unsubmitted Expression bound to l's
// registry and scheduler.
func (l *Library) NewExpression() *Expression {
	return &Expression{lib: l, g: expr.NewGraph()}
}

// VxM appends a masked vector-matrix product node: r <- mask o (v x M),
// folded with mul/add and gated by sel, with r positions failing sel set
// to init.
func (e *Expression) VxM(r, v *Vector, m *Matrix, mask *Vector, mul, add *optype.BinaryOp, sel *optype.SelectOp, init any, desc *Descriptor, preds ...*Node) (*Node, error) {
	nrows, ncols := m.Shape()
	if v.Dim() != nrows || ncols != r.Dim() || mask.Dim() != r.Dim() {
		return nil, ErrDimensionMismatch
	}
	task := &kernel.TaskVxM{
		R: r.bundle, V: v.bundle, M: m.bundle, Mask: mask.bundle,
		Mul: mul, Add: add, Select: sel, Init: init,
		EarlyExit: desc != nil && desc.EarlyExit,
		K:         v.Dim(), N: r.Dim(),
	}
	en, err := e.g.AddNode(kernel.OpVxM, r.Type(), task, desc.toExpr(), toExprNodes(preds)...)
	if err != nil {
		return nil, err
	}
	return &Node{n: en}, nil
}

// AssignMasked appends a masked vector assign node: r[i] = assign(r[i],
// value) wherever sel(mask[i]) holds.
func (e *Expression) AssignMasked(r, mask *Vector, value any, assign *optype.BinaryOp, sel *optype.SelectOp, desc *Descriptor, preds ...*Node) (*Node, error) {
	if r.Dim() != mask.Dim() {
		return nil, ErrDimensionMismatch
	}
	task := &kernel.TaskAssignMasked{R: r.bundle, Mask: mask.bundle, Value: value, Assign: assign, Select: sel, N: r.Dim()}
	en, err := e.g.AddNode(kernel.OpAssignMasked, r.Type(), task, desc.toExpr(), toExprNodes(preds)...)
	if err != nil {
		return nil, err
	}
	return &Node{n: en}, nil
}

// EWiseAdd appends an element-wise vector add node: w <- (a add b),
// filtered through mask when non-nil.
func (e *Expression) EWiseAdd(w, a, b, mask *Vector, add *optype.BinaryOp, desc *Descriptor, preds ...*Node) (*Node, error) {
	if w.Dim() != a.Dim() || w.Dim() != b.Dim() {
		return nil, ErrDimensionMismatch
	}
	var maskBundle *storage.Bundle
	if mask != nil {
		maskBundle = mask.bundle
	}
	task := &kernel.TaskEWiseAdd{W: w.bundle, A: a.bundle, B: b.bundle, Mask: maskBundle, Add: add}
	en, err := e.g.AddNode(kernel.OpEWiseAdd, w.Type(), task, desc.toExpr(), toExprNodes(preds)...)
	if err != nil {
		return nil, err
	}
	return &Node{n: en}, nil
}

// Build appends a matrix-build-from-triples node, distinct from
// (*Matrix).Build's synchronous form: this one participates in the DAG
// and only runs once its predecessors have evaluated.
func (e *Expression) Build(target *Matrix, rows, cols []uint32, vals []any, reduce *optype.BinaryOp, desc *Descriptor, preds ...*Node) (*Node, error) {
	nrows, ncols := target.Shape()
	sorted, noDup := false, false
	if desc != nil {
		sorted, noDup = desc.ValuesSorted, desc.NoDuplicates
	}
	task := &kernel.TaskBuild{
		Target: target.bundle, Rows: rows, Cols: cols, Vals: vals,
		Reduce: reduce, Sorted: sorted, NoDuplicates: noDup,
		Nrows: nrows, Ncols: ncols, Fill: target.Fill(),
	}
	en, err := e.g.AddNode(kernel.OpBuild, target.Type(), task, desc.toExpr(), toExprNodes(preds)...)
	if err != nil {
		return nil, err
	}
	return &Node{n: en}, nil
}

// Submit freezes the expression against further node additions.
func (e *Expression) Submit() error { return e.g.Submit() }

// Wait drives the expression to completion, submitting it first if
// Submit has not already run, and returns the first scheduling-level
// error encountered (node-level failure is reported via each Node's
// State, not as an error here).
func (e *Expression) Wait(ctx context.Context) error { return e.lib.scheduler.Run(ctx, e.g) }
