// SPDX-License-Identifier: MIT

// Package backend provides the numerical array primitives used by the
// graph-to-tensor pipeline, behind a small capability interface.
//
// Two CPU implementations are registered:
//
//	native - strided loops over the row-major buffer (reference semantics)
//	gonum  - gonum.org/v1/gonum mat/floats kernels (the default)
//
// Callers pick one explicitly (New("native")) or take Default(); nothing in
// this module keeps a process-wide "current backend". Both implementations
// produce identical values for every operation; dtype is preserved by every
// op except VStack, which always yields Float64.
//
// Example:
//
//	b := backend.Default()
//	cum, _ := b.VStack([][]float64{{0, 5, 3, 3, 10}})
//	inc, _ := b.Diff(cum, -1)               // [[5 -2 0 7]]
//	inc, _ = b.Clip(inc, backend.AtLeast(0)) // [[5 0 0 7]]
package backend
