// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Vertex, and Edge types used to carry
// an attributed region network: every vertex is a region holding named
// attributes (time series, population by age, hierarchy identifiers), every
// edge a weighted coupling between two regions, and the graph itself holds
// metadata naming which vertex attributes play which role.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// attributes and graph metadata, muEdgeAdj for edges and adjacency), so graphs
// can be assembled concurrently before they are frozen into an Indexed snapshot.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero or non-finite weight rejected by policy.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - attempt to add parallel edge when multi-edges disabled.
//	ErrEmptyAttrKey        - attribute key is the empty string.
//	ErrNilGraph            - nil *Graph passed to a snapshot helper.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight on an unweighted graph, or a NaN/±Inf weight.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed indicates a per-edge direction override when mixed-edges are disabled.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")

	// ErrEmptyAttrKey indicates an attribute (vertex or graph level) with an empty key.
	ErrEmptyAttrKey = errors.New("core: attribute key is empty")

	// ErrNilGraph indicates a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Vertex represents a region in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores the region's attributes (e.g. "case_hist", "N_age_init").
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores attribute values keyed by name. It is shallow-copied by Clone.
	Metadata map[string]interface{}

	// seq is the insertion sequence number; it defines OrderInsertion.
	seq uint64
}

// Edge represents a weighted coupling between two vertices.
//
// Each Edge has a unique ID, endpoints From→To, a float Weight, and a Directed flag
// that overrides the Graph's default directedness when mixed edges are enabled.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the coupling strength (e.g. commuter flow) of the edge.
	Weight float64

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMixedEdges lets per-edge directedness overrides take effect.
func WithMixedEdges() GraphOption {
	return func(g *Graph) { g.allowMixed = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the Graph's default directedness for this edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// Graph is the core in-memory graph data structure.
//
// muVert protects vertices, their attribute maps and the graph-level attrs;
// muEdgeAdj protects edges and adjacencyList. Lock order is always
// muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, attrs, nextVertexSeq
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	directed   bool // default directedness
	weighted   bool // allow non-zero weights
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops
	allowMixed bool // allow mixed directed edges

	// Storage
	nextEdgeID    uint64                 // atomic edge ID generator
	nextVertexSeq uint64                 // insertion counter for OrderInsertion
	vertices      map[string]*Vertex     // vertex ID → Vertex
	edges         map[string]*Edge       // edge ID → Edge
	attrs         map[string]interface{} // graph-level metadata

	// adjacencyList[from][to][edgeID] = struct{}{}
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted, no loops, no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		attrs:         make(map[string]interface{}),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
