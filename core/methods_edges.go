// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() returns edges sorted by Edge.ID ascending; IDs are "e1","e2",... in
//     insertion order, so numeric suffix order equals insertion order.
//
// Concurrency:
//   - Edge catalog & adjacency protected by muEdgeAdj; vertex auto-creation goes through AddVertex.

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to with the given weight and returns its ID.
//
// Implementation:
//   - Stage 1: Validate endpoints, weight policy, loop policy and mixed-mode overrides.
//   - Stage 2: Auto-create missing endpoints (insertion order follows from, then to).
//   - Stage 3: Under muEdgeAdj, enforce multi-edge policy, allocate ID, store, link adjacency.
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight (non-zero on unweighted graph, or NaN/±Inf),
//     ErrLoopNotAllowed, ErrMixedEdgesNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", ErrBadWeight
	}
	if !g.Weighted() && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.Looped() {
		return "", ErrLoopNotAllowed
	}
	if len(opts) > 0 && !g.MixedEdges() {
		return "", ErrMixedEdgesNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	directed := g.Directed()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if len(g.adjacencyList[from][to]) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	e := &Edge{ID: nextEdgeID(g), From: from, To: to, Weight: weight, Directed: directed}
	for _, opt := range opts {
		opt(e)
	}

	g.edges[e.ID] = e
	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][e.ID] = struct{}{}

	if !e.Directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacencyList[to][from][e.ID] = struct{}{}
	}

	return e.ID, nil
}

// RemoveEdge deletes the edge by ID.
// Errors: ErrEdgeNotFound.
// Complexity: O(1) average plus adjacency cleanup.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
// Undirected edges are mirrored, so HasEdge works both ways for them.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// Edges returns all edges in insertion order (Edge.ID sequence ascending).
// Complexity: Time O(E log E), Space O(E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// EdgeCount returns the number of edges in the catalog.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// HasDirectedEdges reports whether any stored edge is directed.
// Complexity: O(E).
func (g *Graph) HasDirectedEdges() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, e := range g.edges {
		if e.Directed {
			return true
		}
	}

	return false
}

// FilterEdges removes every edge for which pred returns false.
// Complexity: O(E).
func (g *Graph) FilterEdges(pred func(*Edge) bool) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	for eid, e := range g.edges {
		if !pred(e) {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}

	cleanupAdjacency(g)
}

// nextEdgeID reserves the next textual edge ID ("e1","e2",...).
// Must be called under muEdgeAdj write lock.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSeq parses the numeric suffix of an edge ID; malformed IDs sort last.
func edgeSeq(id string) uint64 {
	if len(id) < 2 || id[0] != edgeIDPrefix {
		return math.MaxUint64
	}
	n, err := strconv.ParseUint(id[1:], 10, 64)
	if err != nil {
		return math.MaxUint64
	}

	return n
}
