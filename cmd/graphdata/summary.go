// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/regiongraph/graphdata"
)

// coarseSummary is one coarse region at the last observed day.
type coarseSummary struct {
	Coarse      int     `json:"coarse"`
	Nodes       int     `json:"nodes"`
	Population  float64 `json:"population"`
	Cases       float64 `json:"cases"`
	Deaths      float64 `json:"deaths"`
	CasesPerDay float64 `json:"casesPerDay"`
}

// nodeSummary describes one fine region.
type nodeSummary struct {
	Label      string  `json:"label"`
	Index      int     `json:"index"`
	Fine       int64   `json:"fine"`
	Coarse     int64   `json:"coarse"`
	Component  int     `json:"component"`
	Population float64 `json:"population"`
	Cases      float64 `json:"cases"`
	Deaths     float64 `json:"deaths"`
}

// coarseSummaries rolls population, final cumulative counts and the last
// rolling mean of daily cases up to every coarse slot 0..MaxCoarse.
func coarseSummaries(gd *graphdata.GraphData) ([]coarseSummary, error) {
	pop, err := gd.SumCoarse(gd.Nj())
	if err != nil {
		return nil, err
	}
	cases, err := gd.SumCoarseAxis(gd.CumCaseHist(), 1)
	if err != nil {
		return nil, err
	}
	deaths, err := gd.SumCoarseAxis(gd.CumDeathHist(), 1)
	if err != nil {
		return nil, err
	}
	rolling, err := gd.SumCoarseAxis(gd.RollingCases(), 1)
	if err != nil {
		return nil, err
	}
	coarse, err := gd.CoarseID().Ints()
	if err != nil {
		return nil, err
	}

	last := gd.Steps() - 1
	lastRolling, _ := rolling.Dim(0)
	out := make([]coarseSummary, gd.MaxCoarse()+1)
	for k := range out {
		out[k].Coarse = k
		out[k].Population, _ = pop.At(k)
		out[k].Cases, _ = cases.At(last, k)
		out[k].Deaths, _ = deaths.At(last, k)
		if lastRolling > 0 {
			out[k].CasesPerDay, _ = rolling.At(lastRolling-1, k)
		}
	}
	for _, c := range coarse {
		out[c].Nodes++
	}

	return out, nil
}

// describeNode summarizes node i; ok is false when i is out of range.
func describeNode(gd *graphdata.GraphData, i int) (nodeSummary, bool) {
	label, ok := gd.Label(i)
	if !ok {
		return nodeSummary{}, false
	}
	n := nodeSummary{Label: label, Index: i}
	n.Component, _ = gd.Component(i)
	fine, _ := gd.FineID().At(i)
	coarse, _ := gd.CoarseID().At(i)
	n.Fine, n.Coarse = int64(fine), int64(coarse)
	n.Population, _ = gd.Nj().At(i)
	last := gd.Steps() - 1
	n.Cases, _ = gd.CumCaseHist().At(last, i)
	n.Deaths, _ = gd.CumDeathHist().At(last, i)

	return n, true
}
