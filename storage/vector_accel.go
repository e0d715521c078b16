// SPDX-License-Identifier: MIT
package storage

// VectorDenseAccel mirrors VectorDense on the accelerator: a DeviceBuffer
// of length N plus the fill value needed to interpret it.
type VectorDenseAccel struct {
	N      int
	Buffer *DeviceBuffer
	Fill   any
}

// UploadVectorDense creates an accelerator mirror of d.
func UploadVectorDense(d *VectorDense) *VectorDenseAccel {
	buf := &DeviceBuffer{Data: append([]any(nil), d.Ax...)}
	return &VectorDenseAccel{N: d.N, Buffer: buf, Fill: d.Fill}
}

// Download materializes a host VectorDense from the accelerator mirror.
func (a *VectorDenseAccel) Download() *VectorDense {
	out := &VectorDense{N: a.N, Fill: a.Fill, Ax: make([]any, a.N)}
	copy(out.Ax, a.Buffer.Data)
	return out
}

// VectorCOOAccel mirrors VectorCOO on the accelerator.
type VectorCOOAccel struct {
	N      int
	Ai     []uint32
	Buffer *DeviceBuffer
	Fill   any
}

// UploadVectorCOO creates an accelerator mirror of c.
func UploadVectorCOO(c *VectorCOO) *VectorCOOAccel {
	buf := &DeviceBuffer{Data: append([]any(nil), c.Ax...)}
	return &VectorCOOAccel{N: c.N, Ai: append([]uint32(nil), c.Ai...), Buffer: buf, Fill: c.Fill}
}

// Download materializes a host VectorCOO from the accelerator mirror.
func (a *VectorCOOAccel) Download() *VectorCOO {
	return &VectorCOO{N: a.N, Fill: a.Fill, Ai: append([]uint32(nil), a.Ai...), Ax: append([]any(nil), a.Buffer.Data...)}
}
