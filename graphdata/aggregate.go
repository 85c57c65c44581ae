// SPDX-License-Identifier: MIT

package graphdata

import (
	"fmt"

	"github.com/katalvlaran/regiongraph/backend"
	"github.com/katalvlaran/regiongraph/ndarray"
)

// Aggregate collapses the leading (fine) axis of x into numGroups coarse rows:
// Y[g, ...] = Σ_{n: groups[n]==g} X[n, ...]. Groups without members yield
// zero rows; dtype is preserved.
//
// Errors: ErrGroupMismatch, backend.ErrIndex (group outside [0, numGroups)).
//
// Complexity: O(size(x) + numGroups·width).
func Aggregate(b backend.Backend, x *ndarray.Array, groups []int, numGroups int) (*ndarray.Array, error) {
	if b == nil {
		b = backend.Default()
	}
	if x.NDim() == 0 {
		return nil, fmt.Errorf("Aggregate: 0-d array: %w", ErrGroupMismatch)
	}
	if lead, _ := x.Dim(0); lead != len(groups) {
		return nil, fmt.Errorf("Aggregate: %d groups for leading axis %d: %w", len(groups), lead, ErrGroupMismatch)
	}
	y, err := b.ScatterAdd(groups, x, numGroups)
	if err != nil {
		return nil, fmt.Errorf("Aggregate: %w", err)
	}

	return y, nil
}
