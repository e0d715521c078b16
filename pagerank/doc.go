// SPDX-License-Identifier: MIT

// Package pagerank computes the stationary PageRank distribution of a
// directed graph's adjacency matrix by power iteration: repeated VxM
// propagation over the row-normalized transition matrix, damped by a
// teleportation term and a dangling-mass redistribution term computed in
// plain Go around the engine call. It is a thin fixture over engine's
// expression API, not a general ranking library.
package pagerank
