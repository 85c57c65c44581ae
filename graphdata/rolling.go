// SPDX-License-Identifier: MIT

package graphdata

import (
	"fmt"

	"github.com/katalvlaran/regiongraph/backend"
	"github.com/katalvlaran/regiongraph/ndarray"
)

// RollingMean returns the trailing mean over window consecutive elements
// along axis. The output keeps every other axis; axis shrinks to
// max(len-window+1, 0). Output dtype is Float64.
//
// Implementation:
//   - Swap axis to the end, treat the array as rows, convolve each row with
//     a ones kernel in "valid" mode and divide by window, swap back.
//
// Errors: ErrWindow, ndarray.ErrAxis.
func RollingMean(b backend.Backend, a *ndarray.Array, window, axis int) (*ndarray.Array, error) {
	if b == nil {
		b = backend.Default()
	}
	if window < 1 {
		return nil, fmt.Errorf("RollingMean(window=%d): %w", window, ErrWindow)
	}
	ax, err := ndarray.NormalizeAxis(axis, a.NDim())
	if err != nil {
		return nil, fmt.Errorf("RollingMean: %w", err)
	}
	last := a.NDim() - 1
	sw, err := a.SwapAxes(ax, last)
	if err != nil {
		return nil, fmt.Errorf("RollingMean: %w", err)
	}

	shape := sw.Shape()
	n := shape[last]
	m := n - window + 1
	if m < 0 {
		m = 0
	}
	rows := 1
	for _, d := range shape[:last] {
		rows *= d
	}

	kernel := make([]float64, window)
	for i := range kernel {
		kernel[i] = 1
	}
	src := sw.Data()
	out := make([]float64, 0, rows*m)
	for r := 0; r < rows; r++ {
		conv, err := b.ConvolveValid(src[r*n:(r+1)*n], kernel)
		if err != nil {
			return nil, fmt.Errorf("RollingMean: %w", err)
		}
		for _, v := range conv {
			out = append(out, v/float64(window))
		}
	}

	shape[last] = m
	res, err := ndarray.FromSlice(out, shape...)
	if err != nil {
		return nil, fmt.Errorf("RollingMean: %w", err)
	}

	return res.SwapAxes(ax, last)
}
