// SPDX-License-Identifier: MIT
package schedule

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/sparseruntime/spla/block"
	"github.com/sparseruntime/spla/expr"
	"github.com/sparseruntime/spla/kernel"
)

// Scheduler drives one expr.Graph's nodes to completion against a fixed
// kernel.Registry and block.DeviceManager, bounding concurrency to
// numWorkers in-flight nodes at a time.
type Scheduler struct {
	registry   *kernel.Registry
	devices    *block.DeviceManager
	numWorkers int
	blockSize  int
}

// NewScheduler returns a Scheduler that selects algorithms from reg,
// assigns devices via dm, and runs at most numWorkers nodes concurrently.
// A non-positive numWorkers runs one node at a time. Block decomposition
// uses block.DefaultBlockSize; use NewSchedulerWithBlockSize to exercise
// a different grid size, e.g. in tests that want several blocks without
// allocating a vector hundreds of entries wide.
func NewScheduler(reg *kernel.Registry, dm *block.DeviceManager, numWorkers int) *Scheduler {
	return NewSchedulerWithBlockSize(reg, dm, numWorkers, block.DefaultBlockSize)
}

// NewSchedulerWithBlockSize is NewScheduler with an explicit block.Grid
// edge length.
func NewSchedulerWithBlockSize(reg *kernel.Registry, dm *block.DeviceManager, numWorkers, blockSize int) *Scheduler {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return &Scheduler{registry: reg, devices: dm, numWorkers: numWorkers, blockSize: blockSize}
}

// Run submits g if it has not already been submitted, then dispatches
// its nodes in a Kahn's-algorithm-style concurrent topological order: a
// node becomes eligible once every predecessor has reached Evaluated. It
// returns an error only when Submit fails; a node whose Algo fails is
// left in the Failed state rather than reported as an error, and nodes
// that never became eligible because an ancestor failed are left in the
// Aborted state.
func (s *Scheduler) Run(ctx context.Context, g *expr.Graph) error {
	if !g.IsSubmitted() {
		if err := g.Submit(); err != nil {
			return err
		}
	}

	nodes := g.Nodes()
	dependents := make([][]int, len(nodes))
	indeg := make([]int, len(nodes))
	for _, n := range nodes {
		indeg[n.Index()] = len(n.Predecessors())
		for _, p := range n.Predecessors() {
			dependents[p.Index()] = append(dependents[p.Index()], n.Index())
		}
	}

	eg, egCtx := errgroup.WithContext(ctx)
	// slots bounds how many nodes run at once. A node gives its slot back
	// before it dispatches its dependents, so eg.Go never waits on a slot
	// held by the goroutine calling it.
	slots := make(chan struct{}, s.numWorkers)

	var mu sync.Mutex
	var dispatch func(idx int)
	dispatch = func(idx int) {
		n := nodes[idx]
		eg.Go(func() error {
			slots <- struct{}{}
			ok := s.runNode(egCtx, n)
			<-slots

			mu.Lock()
			ready := make([]int, 0)
			if ok {
				for _, d := range dependents[idx] {
					indeg[d]--
					if indeg[d] == 0 {
						ready = append(ready, d)
					}
				}
			}
			mu.Unlock()

			for _, d := range ready {
				dispatch(d)
			}
			return nil
		})
	}

	for _, n := range nodes {
		if indeg[n.Index()] == 0 {
			dispatch(n.Index())
		}
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	for _, n := range nodes {
		if n.State() == expr.Scheduled {
			_ = n.Transition(expr.Aborted)
		}
	}
	return nil
}

// runNode transitions n to Running, selects the best available Algo for
// its (Op, Type), dispatches it, and transitions n to Evaluated or Failed
// accordingly. It reports whether n reached Evaluated, which is what
// lets its dependents become eligible.
//
// When the selected Algo implements kernel.BlockAlgo, n's result is
// decomposed into block.Grid sub-tasks and run through dispatchBlocked:
// one sub-task per block, concurrently, each routed through a device
// FetchDevices assigned. Algos that do not implement it (EWiseAdd,
// Build, and every SIMD kernel) run as a single coarse sub-task instead;
// see DESIGN.md for why those are not decomposed further.
func (s *Scheduler) runNode(ctx context.Context, n *expr.Node) bool {
	if err := n.Transition(expr.Running); err != nil {
		return false
	}

	candidates := s.registry.Lookup(n.Op, n.Type)
	operands, _ := n.Task.(kernel.Operands)

	preferred := n.Descriptor.PreferredBackend
	available := func(a kernel.Algo) bool {
		return preferred == nil || *preferred == a.Backend()
	}
	conversions := func(a kernel.Algo) int {
		if operands == nil {
			return 0
		}
		need := a.RequiredFormats()
		count := 0
		for _, b := range operands.Bundles() {
			satisfied := false
			for _, f := range need {
				if b.IsValid(f) {
					satisfied = true
					break
				}
			}
			if !satisfied {
				count++
			}
		}
		return count
	}

	algo, err := kernel.Select(candidates, available, conversions)
	if err != nil {
		_ = n.Transition(expr.Failed)
		return false
	}

	// The device request's size follows what will actually be dispatched:
	// one device per sub-task for a BlockAlgo, one device for everything
	// else, so FetchDevices never hands out devices nothing reads.
	var status kernel.Status
	if blocked, ok := algo.(kernel.BlockAlgo); ok {
		ranges := s.blockRanges(n)
		devices := s.devices.FetchDevices(len(ranges), n)
		status, err = s.dispatchBlocked(ctx, n, blocked, ranges, devices)
	} else {
		devices := s.devices.FetchDevices(1, n)
		status, err = algo.Execute(&kernel.DispatchContext{Ctx: ctx, Task: n.Task, Device: deviceAt(devices, 0)})
	}
	if err != nil || status != kernel.StatusOk {
		_ = n.Transition(expr.Failed)
		return false
	}

	return n.Transition(expr.Evaluated) == nil
}

// dispatchBlocked runs algo.PrepareBlocks once, then algo.ExecuteBlock
// once per entry of ranges, each as its own sub-task under the errgroup
// so sub-tasks of this node run concurrently. Ctx is shared by every
// sub-task so that once one fails, errgroup.WithContext's cancellation
// reaches the rest before they start their own fold: no new sub-task
// does real work once the node has failed.
func (s *Scheduler) dispatchBlocked(ctx context.Context, n *expr.Node, algo kernel.BlockAlgo, ranges []blockRange, devices []block.DeviceID) (kernel.Status, error) {
	dc := &kernel.DispatchContext{Ctx: ctx, Task: n.Task, Device: deviceAt(devices, 0)}
	if status, err := algo.PrepareBlocks(dc); err != nil || status != kernel.StatusOk {
		return status, err
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for i, r := range ranges {
		i, r := i, r
		eg.Go(func() error {
			select {
			case <-egCtx.Done():
				return egCtx.Err()
			default:
			}
			sub := *dc
			sub.Device = deviceAt(devices, i)
			status, err := algo.ExecuteBlock(&sub, r.lo, r.hi)
			if err != nil {
				return err
			}
			if status != kernel.StatusOk {
				return fmt.Errorf("schedule: node %d sub-task %d: %s", n.Index(), i, status)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return kernel.StatusFailed, err
	}
	return kernel.StatusOk, nil
}

// deviceAt returns devices[i] as an int, or -1 if devices has no entry
// for i (no device pool in play for this dispatch).
func deviceAt(devices []block.DeviceID, i int) int {
	if i < 0 || i >= len(devices) {
		return -1
	}
	return int(devices[i])
}

// blockRange is one sub-task's half-open [lo, hi) slice of a task's
// natural output dimension: output columns for a vector result, output
// rows for a matrix result.
type blockRange struct{ lo, hi int }

// blockRanges partitions n's result into the br-many row-blocks a vector
// result decomposes into. Called only once runNode already knows the
// selected Algo implements kernel.BlockAlgo, which today means TaskVxM
// or TaskAssignMasked; the default case is defensive, since nothing else
// currently reaches it.
func (s *Scheduler) blockRanges(n *expr.Node) []blockRange {
	switch t := n.Task.(type) {
	case *kernel.TaskVxM:
		return s.vectorRanges(t.N)
	case *kernel.TaskAssignMasked:
		return s.vectorRanges(t.N)
	default:
		return []blockRange{{lo: 0, hi: 1}}
	}
}

// vectorRanges partitions an n-length vector into block.NewVectorGrid's
// row-blocks, one per block-row (an Nbc=1 grid, since a vector is an
// Nrows x 1 grid): the 1x1 case is n <= s.blockSize, the Nbr x 1 case
// (Nbr > 1) is any larger n.
func (s *Scheduler) vectorRanges(n int) []blockRange {
	g := block.NewVectorGrid(n, s.blockSize)
	ranges := make([]blockRange, 0, g.BR)
	for bi := 0; bi < g.BR; bi++ {
		r0, r1, _, _ := g.Bounds(bi, 0)
		ranges = append(ranges, blockRange{lo: r0, hi: r1})
	}
	return ranges
}
