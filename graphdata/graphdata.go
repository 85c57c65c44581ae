// SPDX-License-Identifier: MIT

package graphdata

import (
	"fmt"
	"time"

	"github.com/golang/glog"

	"github.com/katalvlaran/regiongraph/adjacency"
	"github.com/katalvlaran/regiongraph/backend"
	"github.com/katalvlaran/regiongraph/bfs"
	"github.com/katalvlaran/regiongraph/core"
	"github.com/katalvlaran/regiongraph/ndarray"
)

// GraphData holds every array derived from one region-graph snapshot.
// It is immutable after New returns: all arrays are frozen and no method
// mutates state, so a *GraphData may be shared across goroutines.
type GraphData struct {
	ix *core.Indexed
	b  backend.Backend

	cumCaseHist, incCaseHist   *ndarray.Array // [T, N], [T-1, N]
	cumDeathHist, incDeathHist *ndarray.Array
	rollingCases               *ndarray.Array // [T-1-w+1, N]
	rollingDeaths              *ndarray.Array
	nij                        *ndarray.Array // [A, N]
	nj                         *ndarray.Array // [N]

	fineID, coarseID   *ndarray.Array // [N] Int64
	coarseIdx          []int
	maxFine, maxCoarse int
	adj                adjacency.Matrix
	component          []int // weakly connected component per node
	componentSizes     []int

	window        int
	clippedCases  int
	clippedDeaths int
	isolated      int
}

// Stats summarizes a GraphData for logging.
type Stats struct {
	Backend       string
	Nodes         int
	Steps         int
	AgeBuckets    int
	RollingWindow int
	MaxFine       int
	MaxCoarse     int
	AdjacencyNNZ  int
	Sparse        bool
	Isolated      int
	Components    int
	LargestPart   int
	ClippedCases  int
	ClippedDeaths int
}

// New BUILDS the derived dataset from g.
// Implementation:
//   - Stage 1: relabel g onto [0, N) (the canonical ordering).
//   - Stage 2: cumulative/incremental case and death series, clipped at 0.
//   - Stage 3: Nij clipped at the population floor; Nj = Σ_age Nij.
//   - Stage 4: rolling means of the incremental series.
//   - Stage 5: fine/coarse ids (Int64, no clip) and their maxima, moved to
//     the host once.
//   - Stage 6: adjacency from the relabeled snapshot.
//
// Behavior highlights:
//   - Atomic: on any error nothing is returned but the error.
//   - Negative increments (data corrections) are floored to 0, counted and logged.
//   - Every returned array is frozen.
//
// Errors:
//   - core.ErrNilGraph, ErrEmptyGraph, ErrMissingAttribute, ErrAttributeType,
//     ErrShapeMismatch, ErrMissingMetadata, ErrNegativeID, ErrWindow,
//     ErrInvalidOption, backend.ErrUnknownBackend; wrapped as
//     "graphdata: New: <step>: ...".
//
// Complexity:
//   - Time O(N·(T·w + A) + M log M), Space O(N·(T + A)) plus the adjacency.
func New(g *core.Graph, opts ...Option) (gd *GraphData, err error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("graphdata: New: config: %w", err)
	}
	b := cfg.backend
	start := time.Now()
	defer func() { cfg.recorder.ObserveBuild(b.Name(), time.Since(start), err) }()

	step := func(name string, err error) error {
		return fmt.Errorf("graphdata: New: %s: %w", name, err)
	}
	if g == nil {
		return nil, step("relabel", core.ErrNilGraph)
	}

	// 1. canonical ordering
	ix, err := core.Relabel(g, core.WithOrder(cfg.order))
	if err != nil {
		return nil, step("relabel", err)
	}
	if ix.Len() == 0 {
		return nil, step("relabel", ErrEmptyGraph)
	}
	glog.V(2).Infof("graphdata: relabeled %d nodes (%s order, backend %s)", ix.Len(), cfg.order, b.Name())

	d := &GraphData{ix: ix, b: b, window: cfg.window}

	// 2. case/death histories
	cases, err := ReadNodeAttr(b, ix, cfg.names.Cases, WithDiff(), WithMin(0))
	if err != nil {
		return nil, step("cases", err)
	}
	deaths, err := ReadNodeAttr(b, ix, cfg.names.Deaths, WithDiff(), WithMin(0))
	if err != nil {
		return nil, step("deaths", err)
	}
	d.cumCaseHist, d.incCaseHist, d.clippedCases = cases.Raw, cases.Diff, cases.DiffClipped
	d.cumDeathHist, d.incDeathHist, d.clippedDeaths = deaths.Raw, deaths.Diff, deaths.DiffClipped
	if d.clippedCases > 0 {
		glog.Warningf("graphdata: %d negative %s increments floored to 0", d.clippedCases, cfg.names.Cases)
	}
	if d.clippedDeaths > 0 {
		glog.Warningf("graphdata: %d negative %s increments floored to 0", d.clippedDeaths, cfg.names.Deaths)
	}
	cfg.recorder.AddClipped("case", d.clippedCases)
	cfg.recorder.AddClipped("death", d.clippedDeaths)
	glog.V(2).Infof("graphdata: histories extracted, shape %v", d.cumCaseHist.Shape())

	// 3. population
	pop, err := ReadNodeAttr(b, ix, cfg.names.Population, WithMin(cfg.popFloor))
	if err != nil {
		return nil, step("population", err)
	}
	d.nij = pop.Raw
	if d.nj, err = b.SumAxis(d.nij, 0); err != nil {
		return nil, step("population", err)
	}

	// 4. rolling means
	if d.rollingCases, err = RollingMean(b, d.incCaseHist, cfg.window, 0); err != nil {
		return nil, step("rolling cases", err)
	}
	if d.rollingDeaths, err = RollingMean(b, d.incDeathHist, cfg.window, 0); err != nil {
		return nil, step("rolling deaths", err)
	}
	if steps, _ := d.rollingCases.Dim(0); steps == 0 {
		glog.Warningf("graphdata: %d increments shorter than rolling window %d; rolling series are empty",
			d.Steps()-1, cfg.window)
	}

	// 5. hierarchy
	if d.fineID, d.maxFine, _, err = d.readHierarchy(ix, cfg.names.FineKey); err != nil {
		return nil, step("fine ids", err)
	}
	if d.coarseID, d.maxCoarse, d.coarseIdx, err = d.readHierarchy(ix, cfg.names.CoarseKey); err != nil {
		return nil, step("coarse ids", err)
	}
	glog.V(2).Infof("graphdata: hierarchy max_fine=%d max_coarse=%d", d.maxFine, d.maxCoarse)

	// 6. adjacency
	adjOpts := append([]adjacency.Option{adjacency.WithSparse(cfg.sparse)}, cfg.adjOpts...)
	if d.adj, err = adjacency.Build(ix, adjOpts...); err != nil {
		return nil, step("adjacency", err)
	}
	rs, cs := d.adj.RowSums(), d.adj.ColSums()
	for i := range rs {
		if rs[i] == 0 && cs[i] == 0 {
			d.isolated++
		}
	}
	if d.isolated > 0 {
		glog.Warningf("graphdata: %d of %d nodes have no connectivity", d.isolated, ix.Len())
	}
	if d.component, d.componentSizes, err = bfs.Components(ix); err != nil {
		return nil, step("components", err)
	}
	if len(d.componentSizes) > 1 {
		glog.V(1).Infof("graphdata: mobility graph has %d weakly connected components", len(d.componentSizes))
	}

	for _, a := range []*ndarray.Array{
		d.cumCaseHist, d.incCaseHist, d.cumDeathHist, d.incDeathHist,
		d.rollingCases, d.rollingDeaths, d.nij, d.nj, d.fineID, d.coarseID,
	} {
		a.Freeze()
	}
	cfg.recorder.SetShape(d.Len(), d.Steps(), d.AgeBuckets())
	glog.V(2).Infof("graphdata: ready %+v", d.Stats())

	return d, nil
}

// readHierarchy reads the id attribute named by graph metadata key, taking
// the first element of each node's value. It returns the frozen-to-be [N]
// Int64 ids, their maximum (transferred to the host once) and the ids as ints.
func (d *GraphData) readHierarchy(ix *core.Indexed, key string) (*ndarray.Array, int, []int, error) {
	v, ok := ix.GraphAttr(key)
	if !ok {
		return nil, 0, nil, fmt.Errorf("metadata %q: %w", key, ErrMissingMetadata)
	}
	name, ok := v.(string)
	if !ok || name == "" {
		return nil, 0, nil, fmt.Errorf("metadata %q is %T, want attribute name: %w", key, v, ErrMissingMetadata)
	}
	attr, err := ReadNodeAttr(d.b, ix, name, WithDType(ndarray.Int64))
	if err != nil {
		return nil, 0, nil, err
	}
	if rows, _ := attr.Raw.Dim(0); rows == 0 {
		return nil, 0, nil, fmt.Errorf("attribute %q is empty: %w", name, ErrShapeMismatch)
	}

	n := ix.Len()
	data := attr.Raw.Data()[:n] // row 0
	idx := make([]int, n)
	for i, f := range data {
		if f < 0 {
			label, _ := ix.Label(i)
			return nil, 0, nil, fmt.Errorf("attribute %q of node %q is %v: %w", name, label, f, ErrNegativeID)
		}
		if f >= backend.MaxElements {
			label, _ := ix.Label(i)
			return nil, 0, nil, fmt.Errorf("attribute %q of node %q is %v: %w", name, label, f, ErrIDTooLarge)
		}
		idx[i] = int(f)
	}
	ids, err := ndarray.FromSliceAs(ndarray.Int64, data, n)
	if err != nil {
		return nil, 0, nil, err
	}
	mx, err := d.b.Max(ids)
	if err != nil {
		return nil, 0, nil, err
	}
	host, err := d.b.ToHost(mx)
	if err != nil {
		return nil, 0, nil, err
	}

	return ids, int(host), idx, nil
}

// CumCaseHist returns cumulative cases [T, N].
func (d *GraphData) CumCaseHist() *ndarray.Array { return d.cumCaseHist }

// IncCaseHist returns incremental cases [T-1, N].
func (d *GraphData) IncCaseHist() *ndarray.Array { return d.incCaseHist }

// CumDeathHist returns cumulative deaths [T, N].
func (d *GraphData) CumDeathHist() *ndarray.Array { return d.cumDeathHist }

// IncDeathHist returns incremental deaths [T-1, N].
func (d *GraphData) IncDeathHist() *ndarray.Array { return d.incDeathHist }

// RollingCases returns the trailing mean of IncCaseHist.
func (d *GraphData) RollingCases() *ndarray.Array { return d.rollingCases }

// RollingDeaths returns the trailing mean of IncDeathHist.
func (d *GraphData) RollingDeaths() *ndarray.Array { return d.rollingDeaths }

// Nij returns population per age bucket [A, N]; every entry is > 0.
func (d *GraphData) Nij() *ndarray.Array { return d.nij }

// Nj returns total population per node [N].
func (d *GraphData) Nj() *ndarray.Array { return d.nj }

// FineID returns the per-node fine administrative id [N] (Int64).
func (d *GraphData) FineID() *ndarray.Array { return d.fineID }

// CoarseID returns the per-node coarse administrative id [N] (Int64).
func (d *GraphData) CoarseID() *ndarray.Array { return d.coarseID }

// MaxFine returns the largest fine id.
func (d *GraphData) MaxFine() int { return d.maxFine }

// MaxCoarse returns the largest coarse id.
func (d *GraphData) MaxCoarse() int { return d.maxCoarse }

// Adjacency returns the connectivity structure in canonical node order.
func (d *GraphData) Adjacency() adjacency.Matrix { return d.adj }

// Backend returns the backend the arrays were built with.
func (d *GraphData) Backend() backend.Backend { return d.b }

// Len returns the node count N.
func (d *GraphData) Len() int { return d.ix.Len() }

// Steps returns the number of time steps T.
func (d *GraphData) Steps() int {
	t, _ := d.cumCaseHist.Dim(0)
	return t
}

// AgeBuckets returns the number of age buckets A.
func (d *GraphData) AgeBuckets() int {
	a, _ := d.nij.Dim(0)
	return a
}

// Label returns the original label of node i.
func (d *GraphData) Label(i int) (string, bool) { return d.ix.Label(i) }

// Index returns the canonical index of label.
func (d *GraphData) Index(label string) (int, bool) { return d.ix.Index(label) }

// Labels returns all labels in canonical order.
func (d *GraphData) Labels() []string { return d.ix.Labels() }

// Component returns the weakly connected component of node i. Components
// are numbered by their smallest node index.
func (d *GraphData) Component(i int) (int, bool) {
	if i < 0 || i >= len(d.component) {
		return 0, false
	}
	return d.component[i], true
}

func largest(sizes []int) int {
	m := 0
	for _, s := range sizes {
		if s > m {
			m = s
		}
	}
	return m
}

// Stats returns a summary of the container.
func (d *GraphData) Stats() Stats {
	return Stats{
		Backend:       d.b.Name(),
		Nodes:         d.Len(),
		Steps:         d.Steps(),
		AgeBuckets:    d.AgeBuckets(),
		RollingWindow: d.window,
		MaxFine:       d.maxFine,
		MaxCoarse:     d.maxCoarse,
		AdjacencyNNZ:  d.adj.NNZ(),
		Sparse:        d.adj.Sparse(),
		Isolated:      d.isolated,
		Components:    len(d.componentSizes),
		LargestPart:   largest(d.componentSizes),
		ClippedCases:  d.clippedCases,
		ClippedDeaths: d.clippedDeaths,
	}
}

// SumCoarse aggregates x, whose leading axis is the canonical node axis,
// into MaxCoarse()+1 coarse rows using the container's coarse ids.
// Errors: ErrGroupMismatch.
func (d *GraphData) SumCoarse(x *ndarray.Array) (*ndarray.Array, error) {
	y, err := Aggregate(d.b, x, d.coarseIdx, d.maxCoarse+1)
	if err != nil {
		return nil, fmt.Errorf("GraphData.SumCoarse: %w", err)
	}

	return y, nil
}

// SumCoarseAxis is SumCoarse along an arbitrary node axis, e.g. axis 1 of a
// [T, N] series. The node axis is replaced by the coarse axis in place.
// Errors: ndarray.ErrAxis, ErrGroupMismatch.
func (d *GraphData) SumCoarseAxis(x *ndarray.Array, axis int) (*ndarray.Array, error) {
	ax, err := ndarray.NormalizeAxis(axis, x.NDim())
	if err != nil {
		return nil, fmt.Errorf("GraphData.SumCoarseAxis: %w", err)
	}
	front, err := x.MoveAxis(ax, 0)
	if err != nil {
		return nil, fmt.Errorf("GraphData.SumCoarseAxis: %w", err)
	}
	y, err := d.SumCoarse(front)
	if err != nil {
		return nil, fmt.Errorf("GraphData.SumCoarseAxis: %w", err)
	}

	return y.MoveAxis(0, ax)
}
