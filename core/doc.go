// Package core provides a thread-safe in-memory Graph for attributed region
// networks, plus the canonical relabeling that turns such a graph into an
// index space usable by numerical code.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Per-edge orientation in “mixed” graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weights are finite float64
//   - Parallel edges (WithMultiEdges) and self-loops (WithLoops)
//   - Named vertex attributes (SetVertexAttr, AddVertexWithAttrs, VertexAttr)
//   - Graph-level metadata (SetAttr, Attr), e.g. which vertex attribute holds
//     the coarse administrative identifier
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Canonical ordering:
//
//	ix, err := core.Relabel(g)               // insertion order
//	ix, err := core.Relabel(g, core.WithOrder(core.OrderSorted))
//
// Relabel returns an immutable *Indexed snapshot: vertex i has original label
// ix.Label(i), attributes ix.NodeAttr(i, key), and every edge is reported as an
// IndexedEdge over [0, N). ix.Graph() is the relabeled *Graph whose vertex IDs
// are the decimal indices.
//
// Core Methods:
//
//	AddVertex(id string) error                                   // O(1)
//	AddVertexWithAttrs(id string, attrs map[string]any) error    // O(len(attrs))
//	RemoveVertex(id string) error                                // O(E)
//	AddEdge(from, to string, w float64, opts ...EdgeOption) (string, error) // O(1)
//	RemoveEdge(edgeID string) error                              // O(1)
//	Vertices() []string         // sorted
//	VerticesInOrder() []string  // insertion order
//	Edges() []*Edge             // insertion order
//	Clone(), CloneEmpty(), Clear(), Stats()
package core
