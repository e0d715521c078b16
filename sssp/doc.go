// SPDX-License-Identifier: MIT

// Package sssp computes one single-source-shortest-path relaxation step
// over a weighted adjacency matrix using the tropical (min, +) semiring:
// Step folds each vertex's current distance with the distance reachable
// through its masked neighbors, keeping the smaller of the two. It is a
// thin fixture over engine's expression API; callers repeat Step until
// distances stop changing to reach a fixed point.
package sssp
