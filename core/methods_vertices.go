// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//   - VerticesInOrder() returns IDs in insertion order (the order regions were loaded).
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (lock order muVert -> muEdgeAdj).

package core

import "sort"

// IsNil reports whether the receiver should be treated as nil when stored inside interfaces.
// Complexity: O(1).
func (v *Vertex) IsNil() bool { return v == nil }

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, register the vertex with the next insertion sequence.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap adjacency buckets.
//
// Behavior highlights:
//   - Idempotent: re-adding keeps the original insertion position and attributes.
//   - Metadata is initialized to a non-nil map.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}

	g.nextVertexSeq++
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{}), seq: g.nextVertexSeq}

	g.muEdgeAdj.Lock()
	ensureAdjacency(g, id, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// AddVertexWithAttrs inserts a vertex (if missing) and merges attrs into its Metadata.
// Keys in attrs overwrite existing keys; other keys are preserved.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrEmptyAttrKey: if attrs contains the empty key (nothing is written in that case).
//
// Complexity:
//   - Time O(len(attrs)), Space O(len(attrs)).
func (g *Graph) AddVertexWithAttrs(id string, attrs map[string]interface{}) error {
	if _, bad := attrs[""]; bad {
		return ErrEmptyAttrKey
	}
	if err := g.AddVertex(id); err != nil {
		return err
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		// removed concurrently between AddVertex and the merge
		return ErrVertexNotFound
	}
	for k, val := range attrs {
		v.Metadata[k] = val
	}

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and all incident edges (directed and undirected).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert and muEdgeAdj write locks for an atomic topology update.
//   - Stage 3: Verify presence (ErrVertexNotFound).
//   - Stage 4: Unlink and delete every incident edge, then the vertex itself.
//
// Complexity:
//   - Time O(E), Space O(1) extra.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}

	delete(g.vertices, id)
	delete(g.adjacencyList, id)
	cleanupAdjacency(g)

	return nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
// Complexity: Time O(V log V), Space O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VerticesInOrder returns all vertex IDs in the order they were first inserted.
//
// Notes:
//   - Removing and re-adding a vertex moves it to the end.
//   - Clone preserves the order of the source graph.
//
// Complexity: Time O(V log V), Space O(V).
func (g *Graph) VerticesInOrder() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	vs := make([]*Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i].seq < vs[j].seq })

	ids := make([]string, len(vs))
	for i, v := range vs {
		ids[i] = v.ID
	}

	return ids
}

// VertexCount returns the current number of vertices in the graph.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// VerticesMap returns a shallow copy of the vertex catalog (ID -> *Vertex).
// Vertex pointers refer to live objects; treat them as read-only.
// Complexity: Time O(V), Space O(V).
func (g *Graph) VerticesMap() map[string]*Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make(map[string]*Vertex, len(g.vertices))
	for id, v := range g.vertices {
		out[id] = v
	}

	return out
}

// Degree returns the degree components of the given vertex ID:
//
//   - in: number of incoming directed edges (e.To == id)
//   - out: number of outgoing directed edges (e.From == id)
//   - undirected: contribution from undirected edges (self-loop counts twice)
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(E), Space O(1).
func (g *Graph) Degree(id string) (in, out, undirected int, err error) {
	if id == "" {
		return 0, 0, 0, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, 0, 0, ErrVertexNotFound
	}

	for _, e := range g.edges {
		isFrom, isTo := e.From == id, e.To == id
		if !isFrom && !isTo {
			continue
		}
		if e.Directed {
			if isFrom {
				out++
			}
			if isTo {
				in++
			}
			continue
		}
		if isFrom && isTo {
			undirected += 2
		} else {
			undirected++
		}
	}

	return in, out, undirected, nil
}
