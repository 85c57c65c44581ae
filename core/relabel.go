// SPDX-License-Identifier: MIT
//
// File: relabel.go
// Role: Canonical integer relabeling of a Graph onto [0, N).
//
// Contract:
//   - Relabel assigns every vertex a fixed index exactly once; all numeric code
//     downstream addresses vertices by that index and never by label again.
//   - The returned Indexed is an immutable snapshot: later mutations of the
//     source graph are not observed.
//
// AI-HINT (file):
//   - OrderInsertion (default) keeps the order in which regions were loaded.
//   - OrderSorted gives a label-sorted ordering independent of load order.

package core

import (
	"fmt"
	"strconv"
)

// LabelOrder selects how vertices are ranked when relabeled.
type LabelOrder uint8

const (
	// OrderInsertion ranks vertices by first insertion into the source graph.
	OrderInsertion LabelOrder = iota
	// OrderSorted ranks vertices by label, lexicographically ascending.
	OrderSorted
)

// String implements fmt.Stringer.
func (o LabelOrder) String() string {
	switch o {
	case OrderInsertion:
		return "insertion"
	case OrderSorted:
		return "sorted"
	default:
		return "LabelOrder(" + strconv.Itoa(int(o)) + ")"
	}
}

// RelabelOption configures Relabel.
type RelabelOption func(*relabelConfig)

type relabelConfig struct {
	order LabelOrder
}

// WithOrder selects the canonical ordering policy.
func WithOrder(o LabelOrder) RelabelOption {
	return func(c *relabelConfig) { c.order = o }
}

// IndexedEdge is an edge expressed in canonical indices.
// Weight is 1 for every edge of an unweighted source graph.
type IndexedEdge struct {
	From, To int
	Weight   float64
	Directed bool
}

// Indexed is an immutable snapshot of a Graph relabeled onto [0, N).
type Indexed struct {
	graph    *Graph
	labels   []string
	index    map[string]int
	attrs    []map[string]interface{}
	meta     map[string]interface{}
	edges    []IndexedEdge
	directed bool
	weighted bool
}

// Relabel snapshots g and assigns every vertex a canonical index.
//
// Implementation:
//   - Stage 1: Rank vertex labels by the configured LabelOrder.
//   - Stage 2: Build a relabeled *Graph whose vertex IDs are the decimal indices,
//     inserted in index order, with attribute maps copied one level deep.
//   - Stage 3: Translate every edge (insertion order) to index pairs.
//
// Errors:
//   - ErrNilGraph when g is nil; ErrVertexNotFound when a vertex disappears
//     while the snapshot is taken; any AddEdge/AddVertex error is wrapped (not expected
//     for a consistent source graph, since flags are copied).
//
// Complexity:
//   - Time O(V log V + E), Space O(V + E).
func Relabel(g *Graph, opts ...RelabelOption) (*Indexed, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := relabelConfig{order: OrderInsertion}
	for _, opt := range opts {
		opt(&cfg)
	}

	var labels []string
	switch cfg.order {
	case OrderSorted:
		labels = g.Vertices()
	default:
		labels = g.VerticesInOrder()
	}

	directed, weighted, mixed := g.Directed(), g.Weighted(), g.MixedEdges()
	gopts := []GraphOption{WithDirected(directed)}
	if weighted {
		gopts = append(gopts, WithWeighted())
	}
	if g.Multigraph() {
		gopts = append(gopts, WithMultiEdges())
	}
	if g.Looped() {
		gopts = append(gopts, WithLoops())
	}
	if mixed {
		gopts = append(gopts, WithMixedEdges())
	}
	rg := NewGraph(gopts...)

	ix := &Indexed{
		graph:    rg,
		labels:   labels,
		index:    make(map[string]int, len(labels)),
		attrs:    make([]map[string]interface{}, len(labels)),
		meta:     g.Attrs(),
		directed: directed,
		weighted: weighted,
	}
	vmap := g.VerticesMap()
	for i, label := range labels {
		ix.index[label] = i
		attrs, err := g.vertexAttrs(vmap, label)
		if err != nil {
			return nil, fmt.Errorf("Relabel: %w", err)
		}
		ix.attrs[i] = attrs
		if err := rg.AddVertexWithAttrs(strconv.Itoa(i), ix.attrs[i]); err != nil {
			return nil, fmt.Errorf("Relabel: vertex %q: %w", label, err)
		}
	}
	for k, v := range ix.meta {
		if err := rg.SetAttr(k, v); err != nil {
			return nil, fmt.Errorf("Relabel: graph attr %q: %w", k, err)
		}
	}

	edges := g.Edges()
	ix.edges = make([]IndexedEdge, 0, len(edges))
	for _, e := range edges {
		from, okFrom := ix.index[e.From]
		to, okTo := ix.index[e.To]
		if !okFrom || !okTo {
			// vertex removed between the label snapshot and the edge snapshot
			return nil, fmt.Errorf("Relabel: edge %s: %w", e.ID, ErrVertexNotFound)
		}
		var eopts []EdgeOption
		if mixed {
			eopts = append(eopts, WithEdgeDirected(e.Directed))
		}
		if _, err := rg.AddEdge(strconv.Itoa(from), strconv.Itoa(to), e.Weight, eopts...); err != nil {
			return nil, fmt.Errorf("Relabel: edge %s: %w", e.ID, err)
		}
		w := e.Weight
		if !weighted {
			w = 1
		}
		ix.edges = append(ix.edges, IndexedEdge{From: from, To: to, Weight: w, Directed: e.Directed})
	}

	return ix, nil
}

// vertexAttrs copies the attributes of label out of a VerticesMap snapshot.
// A label missing from vmap was removed after the label ranking was taken.
func (g *Graph) vertexAttrs(vmap map[string]*Vertex, label string) (map[string]interface{}, error) {
	v := vmap[label]
	if v.IsNil() {
		return nil, fmt.Errorf("vertex %q: %w", label, ErrVertexNotFound)
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return copyAttrs(v.Metadata), nil
}

// Len returns the number of vertices N.
func (ix *Indexed) Len() int { return len(ix.labels) }

// Label returns the original label of index i.
func (ix *Indexed) Label(i int) (string, bool) {
	if i < 0 || i >= len(ix.labels) {
		return "", false
	}

	return ix.labels[i], true
}

// Labels returns a copy of the index → label table.
func (ix *Indexed) Labels() []string {
	out := make([]string, len(ix.labels))
	copy(out, ix.labels)

	return out
}

// Index returns the canonical index of the original label.
func (ix *Indexed) Index(label string) (int, bool) {
	i, ok := ix.index[label]

	return i, ok
}

// NodeAttr returns attribute key of the vertex at index i.
func (ix *Indexed) NodeAttr(i int, key string) (interface{}, bool) {
	if i < 0 || i >= len(ix.attrs) {
		return nil, false
	}
	v, ok := ix.attrs[i][key]

	return v, ok
}

// GraphAttr returns the graph-level metadata value for key.
func (ix *Indexed) GraphAttr(key string) (interface{}, bool) {
	v, ok := ix.meta[key]

	return v, ok
}

// Edges returns a copy of the edges in canonical indices (source insertion order).
func (ix *Indexed) Edges() []IndexedEdge {
	out := make([]IndexedEdge, len(ix.edges))
	copy(out, ix.edges)

	return out
}

// Directed reports the default directedness of the source graph.
func (ix *Indexed) Directed() bool { return ix.directed }

// Weighted reports whether the source graph carried weights.
func (ix *Indexed) Weighted() bool { return ix.weighted }

// Graph returns the relabeled graph (vertex IDs "0".."N-1").
// It is shared, not copied; treat it as read-only.
func (ix *Indexed) Graph() *Graph { return ix.graph }
