// SPDX-License-Identifier: MIT
package accel

// Context names a place kernel.Algo implementations can run and exposes
// work-group sizing helpers, independent of whether the backend has a
// literal work-group concept. Package schedule does not call them; it
// takes sub-task ranges from block.Grid.
type Context interface {
	Name() string
	DefaultGroupSize() int
	WaveSize() int
	GroupCount(n, groupSize, cap int) int
}

// CPUContext is the scalar reference context, always available. It has
// no SIMD primitives of its own; its group sizing exists so that code
// written against Context works the same whether or not a SIMDContext is
// also registered.
type CPUContext struct{}

// NewCPUContext returns the always-available scalar context.
func NewCPUContext() *CPUContext { return &CPUContext{} }

func (c *CPUContext) Name() string                 { return "cpu" }
func (c *CPUContext) DefaultGroupSize() int        { return DefaultGroupSize }
func (c *CPUContext) WaveSize() int                { return WaveSize }
func (c *CPUContext) GroupCount(n, g, cap int) int { return GroupCount(n, g, cap) }

// SIMDContext is the CPU-SIMD accelerator context backed by go-highway's
// runtime-dispatched kernels. It carries a ProgramCache in which its
// algorithms record every operator set they do not recognize; they check
// operator identity on each call and do not consult the cache first.
type SIMDContext struct {
	cache *ProgramCache
}

// NewSIMDContext returns a SIMD context with a fresh program cache.
func NewSIMDContext() *SIMDContext {
	return &SIMDContext{cache: NewProgramCache()}
}

func (c *SIMDContext) Name() string                 { return "simd" }
func (c *SIMDContext) DefaultGroupSize() int        { return DefaultGroupSize }
func (c *SIMDContext) WaveSize() int                { return WaveSize }
func (c *SIMDContext) GroupCount(n, g, cap int) int { return GroupCount(n, g, cap) }

// Cache returns the context's program cache, shared by every SIMD Algo
// registered against this context.
func (c *SIMDContext) Cache() *ProgramCache { return c.cache }
