// SPDX-License-Identifier: MIT

package graphdata

import (
	"fmt"
	"math"

	"github.com/katalvlaran/regiongraph/adjacency"
	"github.com/katalvlaran/regiongraph/backend"
	"github.com/katalvlaran/regiongraph/core"
	"github.com/katalvlaran/regiongraph/metrics"
)

// Defaults for New.
const (
	DefaultRollingWindow   = 7
	DefaultPopulationFloor = 1e-5
	DefaultSparse          = true
)

// AttributeNames names the node attributes and graph metadata keys New reads.
type AttributeNames struct {
	Cases      string // cumulative case series per node
	Deaths     string // cumulative death series per node
	Population string // population per age bucket per node
	FineKey    string // graph metadata key naming the fine id attribute
	CoarseKey  string // graph metadata key naming the coarse id attribute
}

// DefaultAttributeNames returns the conventional attribute names.
func DefaultAttributeNames() AttributeNames {
	return AttributeNames{
		Cases:      "case_hist",
		Deaths:     "death_hist",
		Population: "N_age_init",
		FineKey:    "adm2_key",
		CoarseKey:  "adm1_key",
	}
}

// Option configures New. Options are scoped to the call.
type Option func(*config)

type config struct {
	backend     backend.Backend
	backendName string
	sparse      bool
	window      int
	popFloor    float64
	order       core.LabelOrder
	recorder    *metrics.Recorder
	names       AttributeNames
	adjOpts     []adjacency.Option
}

// WithBackend uses b for every array operation.
func WithBackend(b backend.Backend) Option {
	return func(c *config) { c.backend, c.backendName = b, "" }
}

// WithBackendName selects a registered backend by name (see backend.Names).
func WithBackendName(name string) Option {
	return func(c *config) { c.backend, c.backendName = nil, name }
}

// WithSparse selects CSR (true, default) or dense adjacency storage.
func WithSparse(sparse bool) Option {
	return func(c *config) { c.sparse = sparse }
}

// WithRollingWindow sets the trailing window of the rolling means.
func WithRollingWindow(w int) Option {
	return func(c *config) { c.window = w }
}

// WithPopulationFloor sets the strictly positive lower bound applied to Nij.
func WithPopulationFloor(floor float64) Option {
	return func(c *config) { c.popFloor = floor }
}

// WithOrder selects the canonical node ordering.
func WithOrder(o core.LabelOrder) Option {
	return func(c *config) { c.order = o }
}

// WithRecorder reports build metrics to r.
func WithRecorder(r *metrics.Recorder) Option {
	return func(c *config) { c.recorder = r }
}

// WithAttributeNames overrides attribute and metadata key names.
// Empty fields keep their defaults.
func WithAttributeNames(n AttributeNames) Option {
	return func(c *config) {
		keep(&c.names.Cases, n.Cases)
		keep(&c.names.Deaths, n.Deaths)
		keep(&c.names.Population, n.Population)
		keep(&c.names.FineKey, n.FineKey)
		keep(&c.names.CoarseKey, n.CoarseKey)
	}
}

func keep(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// WithAdjacencyOptions forwards extra options to adjacency.Build.
func WithAdjacencyOptions(opts ...adjacency.Option) Option {
	return func(c *config) { c.adjOpts = append(c.adjOpts, opts...) }
}

// newConfig applies opts over the defaults and resolves the backend.
func newConfig(opts ...Option) (*config, error) {
	c := &config{
		sparse:   DefaultSparse,
		window:   DefaultRollingWindow,
		popFloor: DefaultPopulationFloor,
		order:    core.OrderInsertion,
		names:    DefaultAttributeNames(),
	}
	for _, set := range opts {
		set(c)
	}

	if c.window < 1 {
		return nil, fmt.Errorf("rolling window %d: %w", c.window, ErrWindow)
	}
	if !(c.popFloor > 0) || math.IsInf(c.popFloor, 0) {
		return nil, fmt.Errorf("population floor %v must be finite and > 0: %w", c.popFloor, ErrInvalidOption)
	}
	switch {
	case c.backendName != "":
		b, err := backend.New(c.backendName)
		if err != nil {
			return nil, err
		}
		c.backend = b
	case c.backend == nil:
		c.backend = backend.Default()
	}

	return c, nil
}
