// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: adjacency index maintenance (from -> to -> edge IDs).
// Traversals run on the Relabel snapshot (see relabel.go and package bfs),
// so the live graph only keeps the index consistent for HasEdge and the
// multi-edge policy.
// Concurrency:
//   - Helpers are called only under muEdgeAdj write lock by mutating code.

package core

// ensureAdjacency makes sure adjacencyList[from][to] exists.
// Must be called ONLY under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency removes e.ID from from→to and, for undirected non-loops, to→from.
// Must be called ONLY under muEdgeAdj write lock.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	if !e.Directed && e.From != e.To {
		if m := g.adjacencyList[e.To][e.From]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacencyList[e.To], e.From)
			}
		}
	}
}

// cleanupAdjacency prunes empty nested buckets after bulk removals.
// Must be called ONLY under muEdgeAdj write lock.
func cleanupAdjacency(g *Graph) {
	for u, toMap := range g.adjacencyList {
		for v, edgeSet := range toMap {
			if len(edgeSet) == 0 {
				delete(toMap, v)
			}
		}
		if len(toMap) == 0 {
			delete(g.adjacencyList, u)
		}
	}
}
