// SPDX-License-Identifier: MIT

// Package bfs computes one breadth-first-search level over an adjacency
// matrix using the Boolean semiring (⊗=AND, ⊕=OR): Level(frontier) is the
// set of vertices reachable from frontier in exactly one hop, restricted
// to the positions a mask (typically "unvisited") allows writing to. It is
// a thin fixture over engine's expression API, not a general-purpose
// graph library — callers drive repeated calls themselves to walk a full
// traversal, updating frontier and mask between levels.
package bfs
