// SPDX-License-Identifier: MIT

// Package schedule walks a frozen expr.Graph to completion. Scheduler.Run
// dispatches every node whose predecessors have all evaluated, running
// them under a golang.org/x/sync/errgroup group with a numWorkers-slot
// semaphore bounding how many nodes run concurrently. A
// node that fails leaves its descendants' indegree undecremented, which
// naturally starves them; Run sweeps any node still Scheduled once the
// group drains and marks it Aborted.
package schedule
