// SPDX-License-Identifier: MIT
package storage

import "fmt"

// edge is one directed conversion in the format graph: Cost is the
// relative price of running Convert, a pure function from one format's
// container to another's.
type edge struct {
	cost    int
	convert func(any) (any, error)
}

// ConversionGraph is a small fixed directed graph over Format values,
// annotated with per-edge cost, used to find the cheapest route from any
// currently-valid format to a requested target. Vectors and matrices each
// build their own graph (see NewVectorConversionGraph,
// NewMatrixConversionGraph) since their format sets differ.
type ConversionGraph struct {
	edges      map[Format]map[Format]edge
	emptyFns   map[Format]func() any
	canonHost  Format
	canonAccel Format
}

// NewConversionGraph allocates an empty graph. canonHost/canonAccel name
// the canonical host and device formats (at least one of each must
// exist). They are recorded on the graph but path search does not read
// them: every transition follows the cheapest chain of registered edges.
func NewConversionGraph(canonHost, canonAccel Format) *ConversionGraph {
	return &ConversionGraph{
		edges:      make(map[Format]map[Format]edge),
		emptyFns:   make(map[Format]func() any),
		canonHost:  canonHost,
		canonAccel: canonAccel,
	}
}

// AddEdge registers a directed conversion from -> to at the given cost.
func (g *ConversionGraph) AddEdge(from, to Format, cost int, convert func(any) (any, error)) {
	if g.edges[from] == nil {
		g.edges[from] = make(map[Format]edge)
	}
	g.edges[from][to] = edge{cost: cost, convert: convert}
}

// SetEmptyFactory registers how to construct a fresh empty container for a
// format, used by validate_rwd/validate_wd/validate_ctor.
func (g *ConversionGraph) SetEmptyFactory(f Format, fn func() any) { g.emptyFns[f] = fn }

// shortestPath runs Dijkstra from the set of currently-valid formats to
// target. It returns the chosen valid source format and the ordered list
// of formats to hop through (excluding from, including target). The graph
// has a handful of nodes, so a simple O(V^2) relaxation loop is plenty.
func (g *ConversionGraph) shortestPath(valid map[Format]bool, target Format) (from Format, path []Format, err error) {
	if valid[target] {
		return target, nil, nil
	}
	const inf = int(1 << 30)
	dist := make(map[Format]int)
	prev := make(map[Format]Format)
	visited := make(map[Format]bool)
	all := make(map[Format]bool)
	for f := range g.edges {
		all[f] = true
		for to := range g.edges[f] {
			all[to] = true
		}
	}
	for f := range all {
		dist[f] = inf
	}
	for f := range valid {
		if valid[f] {
			dist[f] = 0
		}
	}

	for {
		// Pick the unvisited node with smallest distance.
		cur := Format(-1)
		best := inf
		for f := range all {
			if !visited[f] && dist[f] < best {
				best = dist[f]
				cur = f
			}
		}
		if cur == Format(-1) {
			break
		}
		visited[cur] = true
		if cur == target {
			break
		}
		for to, e := range g.edges[cur] {
			if nd := dist[cur] + e.cost; nd < dist[to] {
				dist[to] = nd
				prev[to] = cur
			}
		}
	}

	if dist[target] >= inf {
		return Format(-1), nil, fmt.Errorf("storage: shortestPath to %s: %w", target, ErrNoConversionPath)
	}
	var nodes []Format
	f := target
	for {
		nodes = append([]Format{f}, nodes...)
		if valid[f] {
			break
		}
		p, ok := prev[f]
		if !ok {
			break
		}
		f = p
	}
	return nodes[0], nodes[1:], nil
}

// convertChain runs the converters along path starting from src (the value
// held in the nearest valid predecessor format).
func (g *ConversionGraph) convertChain(path []Format, from Format, src any) (any, error) {
	cur, curFmt := src, from
	for _, to := range path {
		e, ok := g.edges[curFmt][to]
		if !ok {
			return nil, fmt.Errorf("storage: convertChain: no edge %s->%s: %w", curFmt, to, ErrNoConversionPath)
		}
		out, err := e.convert(cur)
		if err != nil {
			return nil, err
		}
		cur, curFmt = out, to
	}
	return cur, nil
}
