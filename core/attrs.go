// SPDX-License-Identifier: MIT
//
// File: attrs.go
// Role: Vertex attributes and graph-level metadata.
// Concurrency:
//   - Both live under muVert: attribute writes take the write lock, reads the read lock.
// AI-HINT (file):
//   - Graph-level metadata names roles, e.g. SetAttr("adm1_key", "adm1") tells
//     consumers which vertex attribute holds the coarse identifier.
//   - Values are stored as given (no copy); do not mutate slices after handing them over.

package core

// SetAttr stores a graph-level metadata value under key.
// Errors: ErrEmptyAttrKey.
// Complexity: O(1).
func (g *Graph) SetAttr(key string, value interface{}) error {
	if key == "" {
		return ErrEmptyAttrKey
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.attrs[key] = value

	return nil
}

// Attr returns the graph-level metadata value for key and whether it exists.
// Complexity: O(1).
func (g *Graph) Attr(key string) (interface{}, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.attrs[key]

	return v, ok
}

// Attrs returns a shallow copy of the graph-level metadata.
// Complexity: O(attrs).
func (g *Graph) Attrs() map[string]interface{} {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return copyAttrs(g.attrs)
}

// SetVertexAttr stores value under key on vertex id.
//
// Errors:
//   - ErrEmptyVertexID, ErrEmptyAttrKey, ErrVertexNotFound.
//
// Complexity: O(1).
func (g *Graph) SetVertexAttr(id, key string, value interface{}) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if key == "" {
		return ErrEmptyAttrKey
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Metadata[key] = value

	return nil
}

// VertexAttr returns the attribute stored under key on vertex id.
// The boolean is false when either the vertex or the key is missing.
// Complexity: O(1).
func (g *Graph) VertexAttr(id, key string) (interface{}, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, false
	}
	val, ok := v.Metadata[key]

	return val, ok
}

// VertexAttrs returns every vertex that carries key, mapped to its value.
// Vertices lacking key are absent from the result.
// Complexity: O(V).
func (g *Graph) VertexAttrs(key string) map[string]interface{} {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make(map[string]interface{}, len(g.vertices))
	for id, v := range g.vertices {
		if val, ok := v.Metadata[key]; ok {
			out[id] = val
		}
	}

	return out
}

// copyAttrs returns a one-level copy of m (nil-safe, never returns nil).
func copyAttrs(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
