// SPDX-License-Identifier: MIT

// Package block partitions vectors and matrices into fixed-size blocks
// for sub-task dispatch, and assigns accelerator devices to expression
// nodes deterministically: the same node always lands on the same
// devices, while different nodes round-robin across the device pool to
// spread load.
package block
