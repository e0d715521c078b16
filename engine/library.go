// SPDX-License-Identifier: MIT
package engine

import (
	"github.com/sparseruntime/spla/accel"
	"github.com/sparseruntime/spla/block"
	"github.com/sparseruntime/spla/kernel"
	"github.com/sparseruntime/spla/optype"
	"github.com/sparseruntime/spla/schedule"
)

// Option configures a Library at construction.
type Option func(*libConfig)

type libConfig struct {
	numDevices int
	numWorkers int
}

// WithDevices sets the number of accelerator device slots the Library's
// device manager round-robins across. A non-positive n is one device.
func WithDevices(n int) Option { return func(c *libConfig) { c.numDevices = n } }

// WithWorkers sets how many expression nodes the Library's scheduler runs
// concurrently. A non-positive n runs one node at a time.
func WithWorkers(n int) Option { return func(c *libConfig) { c.numWorkers = n } }

// Library is the top-level handle threaded through every call in this
// package: it owns the kernel registry, the device manager, and the
// scheduler, and is the factory for every Scalar, Vector, Matrix, and
// Expression.
type Library struct {
	registry  *kernel.Registry
	devices   *block.DeviceManager
	scheduler *schedule.Scheduler
	simd      *accel.SIMDContext
}

// NewLibrary allocates a Library with an empty kernel registry. Call
// RegisterType (and optionally EnableSIMD) before building expressions
// over a given element type.
func NewLibrary(opts ...Option) *Library {
	cfg := libConfig{numDevices: 1, numWorkers: 1}
	for _, o := range opts {
		o(&cfg)
	}
	reg := kernel.NewRegistry()
	dm := block.NewDeviceManager(cfg.numDevices)
	return &Library{
		registry:  reg,
		devices:   dm,
		scheduler: schedule.NewScheduler(reg, dm, cfg.numWorkers),
	}
}

// RegisterType wires this package's reference CPU algorithms for every
// operation kind against element type t, at priority.
func (l *Library) RegisterType(t *optype.Type, priority int) {
	kernel.RegisterDefaults(l.registry, t, priority)
}

// EnableSIMD wires accel's CPU-SIMD fast paths for the built-in float32
// and float64 arithmetic semirings (StdFloat32/StdFloat64) at priority,
// on top of whatever CPU algorithms RegisterType already registered for
// those same types. Select prefers the fast path whenever its required
// formats are already valid and priority ties are broken in its favor.
func (l *Library) EnableSIMD(priority int) {
	if l.simd == nil {
		l.simd = accel.NewSIMDContext()
	}
	accel.Register(l.registry, l.simd, priority)
}

// StdFloat32 returns the float32 arithmetic semiring accel's SIMD fast
// path recognizes by operator identity. Pass StdFloat32().Type to
// RegisterType to make both the CPU and (after EnableSIMD) SIMD
// implementations available for it.
func (l *Library) StdFloat32() *optype.StdFloat32 { return accel.StdFloat32() }

// StdFloat64 is StdFloat32's 64-bit counterpart.
func (l *Library) StdFloat64() *optype.StdFloat64 { return accel.StdFloat64() }

// StdBool returns a fresh Boolean (OR/AND) semiring over a uint32 carrier,
// as used by the adjacency-matrix formulation of BFS.
func (l *Library) StdBool() *optype.StdBool { return optype.NewStdBool() }
