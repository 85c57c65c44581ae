// Package regiongraph turns a region graph (administrative regions as
// vertices, mobility links as edges, per-region epidemic histories as
// attributes) into the dense arrays an epidemiological model consumes.
//
// The pipeline:
//
//	core.Graph ──Relabel──▶ core.Indexed ──graphdata.New──▶ GraphData
//	                                        │
//	                                        ├─ case/death histories [T, N] (cumulative, increments, rolling means)
//	                                        ├─ population [A, N] and totals [N]
//	                                        ├─ fine and coarse region ids, coarse roll-ups (scatter-add)
//	                                        └─ adjacency matrix (CSR or dense)
//
// Subpackages:
//
//	core/       thread-safe Graph with vertex and graph attributes; Relabel onto [0, N)
//	ndarray/    small n-d float64 array with an int64 dtype tag and read-only freezing
//	backend/    array operations behind one interface ("gonum" default, "native")
//	adjacency/  adjacency matrices from an indexed graph, with L1 normalization
//	graphdata/  attribute extraction, rolling smoothing, hierarchical aggregation
//	bfs/        hop distances and weakly connected components
//	metrics/    Prometheus build metrics
//	synth/      deterministic synthetic region graphs for tests and demos
//	cmd/graphdata  CLI: generate, build, summarize, optionally serve /metrics
//
//	go get github.com/katalvlaran/regiongraph
package regiongraph
