// SPDX-License-Identifier: MIT
package storage

// MatrixCSRAccel mirrors MatrixCSR on the accelerator.
type MatrixCSRAccel struct {
	Nrows, Ncols int
	Ap, Aj       []uint32
	Buffer       *DeviceBuffer
	Fill         any
}

// UploadMatrixCSR creates an accelerator mirror of m.
func UploadMatrixCSR(m *MatrixCSR) *MatrixCSRAccel {
	return &MatrixCSRAccel{
		Nrows: m.Nrows, Ncols: m.Ncols, Fill: m.Fill,
		Ap:     append([]uint32(nil), m.Ap...),
		Aj:     append([]uint32(nil), m.Aj...),
		Buffer: &DeviceBuffer{Data: append([]any(nil), m.Ax...)},
	}
}

// Download materializes a host MatrixCSR from the accelerator mirror.
func (a *MatrixCSRAccel) Download() *MatrixCSR {
	return &MatrixCSR{
		Nrows: a.Nrows, Ncols: a.Ncols, Fill: a.Fill,
		Ap: append([]uint32(nil), a.Ap...),
		Aj: append([]uint32(nil), a.Aj...),
		Ax: append([]any(nil), a.Buffer.Data...),
	}
}

// MatrixDenseAccel mirrors MatrixDense on the accelerator.
type MatrixDenseAccel struct {
	Nrows, Ncols int
	Buffer       *DeviceBuffer
	Fill         any
}

// UploadMatrixDense creates an accelerator mirror of m.
func UploadMatrixDense(m *MatrixDense) *MatrixDenseAccel {
	return &MatrixDenseAccel{Nrows: m.Nrows, Ncols: m.Ncols, Fill: m.Fill, Buffer: &DeviceBuffer{Data: append([]any(nil), m.Ax...)}}
}

// Download materializes a host MatrixDense from the accelerator mirror.
func (a *MatrixDenseAccel) Download() *MatrixDense {
	return &MatrixDense{Nrows: a.Nrows, Ncols: a.Ncols, Fill: a.Fill, Ax: append([]any(nil), a.Buffer.Data...)}
}
