// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a relabeled region graph
// (core.Indexed), returning hop distances, parent links, and visit order,
// plus weakly connected component labelling.
//
// What
//
//   - BFS explores nodes in non-decreasing hop count from a start node and
//     returns a Result with Order, Depth and Parent indexed by node.
//   - Directed edges are followed forward only unless WithWeak is given;
//     undirected edges are followed both ways. Mixed graphs honor each
//     edge's own direction.
//   - Components labels weakly connected components. graphdata uses it to
//     report how fragmented a mobility graph is.
//
// Determinism
//
//	Neighbours are expanded in ascending node index, so results depend only
//	on the snapshot, never on map iteration order.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E log E) (neighbour lists are sorted once)
//   - Memory: O(V + E)
package bfs
