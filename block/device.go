// SPDX-License-Identifier: MIT
package block

import (
	"sync"

	"github.com/sparseruntime/spla/expr"
)

// DeviceID identifies one accelerator device slot in the pool a
// DeviceManager round-robins across.
type DeviceID int

// DeviceManager assigns devices to expression nodes. FetchDevices is
// deterministic per node identity and round-robins across nodes, so
// sibling sub-tasks of one node always target the same device
// partitions while load spreads across the pool over time.
type DeviceManager struct {
	mu         sync.Mutex
	numDevices int
	next       int
	assigned   map[*expr.Node][]DeviceID
}

// NewDeviceManager returns a manager round-robining across numDevices
// devices. A non-positive numDevices is treated as a single device.
func NewDeviceManager(numDevices int) *DeviceManager {
	if numDevices <= 0 {
		numDevices = 1
	}
	return &DeviceManager{numDevices: numDevices, assigned: make(map[*expr.Node][]DeviceID)}
}

// FetchDevices returns n device ids for node. The first call for a given
// node advances the round-robin cursor and memoizes the result; later
// calls with the same node return a prefix or extension of that same
// memoized slice, never a re-shuffled one.
func (dm *DeviceManager) FetchDevices(n int, node *expr.Node) []DeviceID {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	if n <= 0 {
		return nil
	}
	existing := dm.assigned[node]
	if len(existing) >= n {
		out := make([]DeviceID, n)
		copy(out, existing[:n])
		return out
	}
	for len(existing) < n {
		existing = append(existing, DeviceID(dm.next%dm.numDevices))
		dm.next++
	}
	dm.assigned[node] = existing
	out := make([]DeviceID, n)
	copy(out, existing)
	return out
}
