// SPDX-License-Identifier: MIT

package backend

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/regiongraph/ndarray"
)

// Backend is the set of vectorized array primitives the graph pipeline is
// written against. Implementations never mutate their inputs and always
// return freshly allocated arrays.
//
// Every op except VStack preserves the input dtype; VStack yields Float64.
// Axes may be negative (-1 is the last axis).
type Backend interface {
	// Name returns the registry name of the implementation.
	Name() string

	// VStack stacks equal-length rows into a [len(rows), len(rows[0])] array.
	VStack(rows [][]float64) (*ndarray.Array, error)

	// Transpose reverses the axis order.
	Transpose(a *ndarray.Array) (*ndarray.Array, error)

	// Diff returns the first discrete difference along axis (length shrinks by one).
	Diff(a *ndarray.Array, axis int) (*ndarray.Array, error)

	// Clip saturates every element into b. Inactive bounds copy a unchanged.
	Clip(a *ndarray.Array, b Bounds) (*ndarray.Array, error)

	// ConvolveValid returns the discrete linear convolution of x and kernel
	// restricted to positions where they overlap completely
	// (length max(len(x)-len(kernel)+1, 0)).
	ConvolveValid(x, kernel []float64) ([]float64, error)

	// SumAxis reduces axis by summation.
	SumAxis(a *ndarray.Array, axis int) (*ndarray.Array, error)

	// Max returns the largest element as a 0-d array.
	Max(a *ndarray.Array) (*ndarray.Array, error)

	// ScatterAdd sums row n of src into row index[n] of a zero array shaped
	// (groups,)+src.Shape()[1:].
	ScatterAdd(index []int, src *ndarray.Array, groups int) (*ndarray.Array, error)

	// ToHost transfers a size-1 array to a host scalar.
	ToHost(a *ndarray.Array) (float64, error)
}

// Bounds configures saturating clip limits. Zero value = no clipping.
type Bounds struct {
	Min, Max       float64
	HasMin, HasMax bool
}

// AtLeast clips from below only.
func AtLeast(min float64) Bounds { return Bounds{Min: min, HasMin: true} }

// AtMost clips from above only.
func AtMost(max float64) Bounds { return Bounds{Max: max, HasMax: true} }

// Between clips into [min, max].
func Between(min, max float64) Bounds {
	return Bounds{Min: min, Max: max, HasMin: true, HasMax: true}
}

// Active reports whether any limit is configured.
func (b Bounds) Active() bool { return b.HasMin || b.HasMax }

// Validate rejects NaN limits and Min > Max.
func (b Bounds) Validate() error {
	if (b.HasMin && math.IsNaN(b.Min)) || (b.HasMax && math.IsNaN(b.Max)) {
		return fmt.Errorf("%+v: %w", b, ErrBadBounds)
	}
	if b.HasMin && b.HasMax && b.Min > b.Max {
		return fmt.Errorf("min %g > max %g: %w", b.Min, b.Max, ErrBadBounds)
	}

	return nil
}

// apply saturates v.
func (b Bounds) apply(v float64) float64 {
	if b.HasMin && v < b.Min {
		v = b.Min
	}
	if b.HasMax && v > b.Max {
		v = b.Max
	}

	return v
}

// Registry names.
const (
	NameNative = "native"
	NameGonum  = "gonum"
)

var registry = map[string]func() Backend{
	NameNative: func() Backend { return Native{} },
	NameGonum:  func() Backend { return Gonum{} },
}

// New returns the backend registered under name.
// Errors: ErrUnknownBackend.
func New(name string) (Backend, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("backend.New(%q): %w", name, ErrUnknownBackend)
	}

	return ctor(), nil
}

// Default returns the gonum-backed implementation.
func Default() Backend { return Gonum{} }

// Names lists the registered backend names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// layout splits shape around axis into (outer, n, inner) so that element
// (o, k, i) lives at offset (o*n+k)*inner+i.
func layout(shape []int, axis int) (outer, n, inner int) {
	outer, inner = 1, 1
	for _, d := range shape[:axis] {
		outer *= d
	}
	for _, d := range shape[axis+1:] {
		inner *= d
	}

	return outer, shape[axis], inner
}

// checkRows validates VStack input and returns the common row length.
func checkRows(rows [][]float64) (int, error) {
	if len(rows) == 0 {
		return 0, ErrEmptyInput
	}
	width := len(rows[0])
	for i, r := range rows {
		if len(r) != width {
			return 0, fmt.Errorf("row %d has %d elements, row 0 has %d: %w", i, len(r), width, ErrRaggedRows)
		}
	}

	return width, nil
}

// MaxElements bounds the size of a ScatterAdd result, whose extent comes
// from caller data (the largest group id) rather than from an existing array.
const MaxElements = 1 << 28

// checkScatter validates ScatterAdd operands and returns the trailing row width.
func checkScatter(index []int, src *ndarray.Array, groups int) (int, error) {
	if src.NDim() == 0 {
		return 0, fmt.Errorf("0-d source: %w", ErrShape)
	}
	shape := src.Shape()
	if shape[0] != len(index) {
		return 0, fmt.Errorf("%d indices for leading axis %d: %w", len(index), shape[0], ErrShape)
	}
	if groups < 0 {
		return 0, fmt.Errorf("groups %d: %w", groups, ErrIndex)
	}
	for n, g := range index {
		if g < 0 || g >= groups {
			return 0, fmt.Errorf("index[%d]=%d outside [0,%d): %w", n, g, groups, ErrIndex)
		}
	}
	width := 1
	for _, d := range shape[1:] {
		width *= d
	}
	if width > 0 && groups > MaxElements/width {
		return 0, fmt.Errorf("%d groups of width %d: %w", groups, width, ErrTooLarge)
	}

	return width, nil
}

// scatterShape returns (groups,)+shape[1:].
func scatterShape(shape []int, groups int) []int {
	out := make([]int, len(shape))
	copy(out, shape)
	out[0] = groups

	return out
}

// dropAxis removes axis from shape.
func dropAxis(shape []int, axis int) []int {
	out := make([]int, 0, len(shape)-1)
	out = append(out, shape[:axis]...)

	return append(out, shape[axis+1:]...)
}

// shrinkAxis returns shape with shape[axis] decremented, floored at zero.
func shrinkAxis(shape []int, axis int) []int {
	out := make([]int, len(shape))
	copy(out, shape)
	if out[axis] > 0 {
		out[axis]--
	}

	return out
}

func toHost(impl string, a *ndarray.Array) (float64, error) {
	v, err := a.Item()
	if err != nil {
		return 0, opErrorf(impl, "ToHost", err)
	}

	return v, nil
}
