// SPDX-License-Identifier: MIT

// Package graphdata turns an attributed region graph into the arrays an
// epidemic model consumes.
//
// Pipeline (New):
//
//	core.Relabel      canonical [0, N) ordering, the only node index used below
//	ReadNodeAttr      case_hist / death_hist -> cumulative [T,N] + incremental [T-1,N], clipped at 0
//	ReadNodeAttr      N_age_init -> Nij [A,N] clipped at a small epsilon; Nj = Σ_age Nij
//	RollingMean       trailing w-step means of the incremental series
//	ReadNodeAttr      fine/coarse administrative ids (names from graph metadata)
//	adjacency.Build   connectivity in the same node order
//
// The resulting *GraphData is read-only. Its one query, SumCoarse, scatter-adds
// any node-indexed array into coarse administrative regions.
//
// Edge cases that are not errors:
//   - a series shorter than the rolling window gives a zero-length time axis;
//   - a coarse region with no member nodes gives an all-zero row.
//
// Logging goes through glog: construction steps at V(2), floored negative
// increments and unconnected nodes as warnings.
package graphdata
