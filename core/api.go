// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing constructors and read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.
// AI-HINT (file):
//   - Stats() is an O(V+E) snapshot; use it for admission checks before Relabel.

package core

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	DirectedDefault bool // default orientation for new edges
	Weighted        bool // non-zero weights permitted
	AllowsMulti     bool // parallel edges permitted
	AllowsLoops     bool // self-loops permitted
	MixedMode       bool // per-edge direction overrides permitted

	VertexCount         int // |V|
	EdgeCount           int // |E|
	DirectedEdgeCount   int // edges with Directed == true
	UndirectedEdgeCount int // edges with Directed == false
	GraphAttrCount      int // number of graph-level metadata keys
}

// NewMixedGraph creates a new Graph that allows per-edge directedness overrides via EdgeOption.
//
// Implementation:
//   - Stage 1: Prepend WithMixedEdges() to the caller-provided options.
//   - Stage 2: Delegate to NewGraph(...) to allocate and apply options deterministically.
//
// Complexity:
//   - Time O(len(opts)), Space O(len(opts)).
func NewMixedGraph(opts ...GraphOption) *Graph {
	mixed := make([]GraphOption, 0, len(opts)+1)
	mixed = append(mixed, WithMixedEdges())
	mixed = append(mixed, opts...)

	return NewGraph(mixed...)
}

// Weighted reports the construction-time "weighted" capability flag.
// If false, AddEdge rejects non-zero weights with ErrBadWeight and
// Relabel reports every edge with unit weight.
// Complexity: O(1).
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports the graph-wide default directedness applied to newly created edges.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted.
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// MixedEdges reports whether per-edge Directed overrides are permitted.
// Complexity: O(1).
func (g *Graph) MixedEdges() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMixed
}

// Stats produces a deterministic, read-only snapshot of configuration flags and catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot flags, vertex count and metadata count, then release.
//   - Stage 2: Acquire muEdgeAdj.RLock, snapshot edge count and classify edges, then release.
//
// Notes:
//   - Both locks are never held simultaneously here.
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		DirectedDefault: g.directed,
		Weighted:        g.weighted,
		AllowsMulti:     g.allowMulti,
		AllowsLoops:     g.allowLoops,
		MixedMode:       g.allowMixed,
		VertexCount:     len(g.vertices),
		GraphAttrCount:  len(g.attrs),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.Directed {
			stats.DirectedEdgeCount++
		} else {
			stats.UndirectedEdgeCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
