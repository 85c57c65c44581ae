// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone carries nextEdgeID and vertex insertion sequence, so IDs and
//     VerticesInOrder() match the source.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration, vertices and
// graph-level metadata, but no edges.
//
// Notes:
//   - Vertex Metadata maps are copied one level deep: values (e.g. slices) are shared.
//
// Complexity: O(V + attrs).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	if g.allowMixed {
		opts = append(opts, WithMixedEdges())
	}
	clone := NewGraph(opts...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	clone.nextVertexSeq = g.nextVertexSeq

	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: copyAttrs(v.Metadata), seq: v.seq}
		clone.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	clone.attrs = copyAttrs(g.attrs)

	return clone
}

// Clone returns a copy of the Graph: configuration, vertices, metadata, edges, and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for eid, e := range g.edges {
		clone.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed}
		ensureAdjacency(clone, e.From, e.To)
		clone.adjacencyList[e.From][e.To][eid] = struct{}{}
		if !e.Directed && e.From != e.To {
			ensureAdjacency(clone, e.To, e.From)
			clone.adjacencyList[e.To][e.From][eid] = struct{}{}
		}
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration flags.
// Graph-level metadata is dropped together with vertices and edges.
// Complexity: O(1).
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.attrs = make(map[string]interface{})
	g.adjacencyList = make(map[string]map[string]map[string]struct{})
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.nextVertexSeq = 0
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}
