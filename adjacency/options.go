// SPDX-License-Identifier: MIT

// Package adjacency: functional configuration for Build.
//
// Notes:
//   - Storage: sparse (CSR) is the default, matching how region graphs are
//     consumed (few neighbors per region, thousands of regions).
//   - Symmetry: by default undirected edges are mirrored, directed edges are not.
//     WithSymmetric(false) keeps only the stored From→To orientation.
//   - Weights: edge weights are used as-is; WithUnitWeights() turns every edge
//     into 1 (pure connectivity).

package adjacency

// DefaultSparse selects CSR storage when no option overrides it.
const DefaultSparse = true

// Option configures Build.
type Option func(*Options)

// Options is the resolved Build configuration.
type Options struct {
	sparse       bool
	symmetric    bool
	symmetricSet bool
	unitWeights  bool
}

// WithSparse selects CSR (true) or dense gonum storage (false).
func WithSparse(sparse bool) Option {
	return func(o *Options) { o.sparse = sparse }
}

// WithSymmetric overrides whether undirected edges are mirrored.
func WithSymmetric(symmetric bool) Option {
	return func(o *Options) {
		o.symmetric = symmetric
		o.symmetricSet = true
	}
}

// WithUnitWeights replaces every edge weight by 1.
func WithUnitWeights() Option {
	return func(o *Options) { o.unitWeights = true }
}

// gatherOptions applies setters over the defaults; last writer wins.
// directed is the source graph flag, used when symmetry was not set explicitly.
func gatherOptions(directed bool, user ...Option) Options {
	o := Options{sparse: DefaultSparse}
	for _, set := range user {
		set(&o)
	}
	if !o.symmetricSet {
		o.symmetric = !directed
	}

	return o
}
