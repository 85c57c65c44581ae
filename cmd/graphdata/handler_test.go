// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regiongraph/graphdata"
	"github.com/katalvlaran/regiongraph/metrics"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	cli, err := parseFlags([]string{"-rows", "2", "-cols", "2", "-days", "15", "-age-buckets", "2"})
	require.NoError(t, err)
	g, err := generate(cli)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)
	gd, err := graphdata.New(g, graphdata.WithRecorder(rec))
	require.NoError(t, err)

	return newHandler(gd, rec, reg)
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, httptest.NewRequest(http.MethodGet, path, nil))

	return rw
}

func TestHandler_Routes(t *testing.T) {
	h := newTestHandler(t)

	rw := get(t, h, "/_healthz")
	assert.Equal(t, http.StatusOK, rw.Code)
	var health healthResponse
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &health))
	assert.True(t, health.Healthy)
	_, err := uuid.Parse(health.Run)
	assert.NoError(t, err)

	rw = get(t, h, "/data/stats")
	require.Equal(t, http.StatusOK, rw.Code)
	var st graphdata.Stats
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &st))
	assert.Equal(t, 4, st.Nodes)
	assert.Equal(t, 15, st.Steps)

	rw = get(t, h, "/data/regions")
	require.Equal(t, http.StatusOK, rw.Code)
	var regions []coarseSummary
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &regions))
	require.Len(t, regions, 3, "slots 0..MaxCoarse")
	assert.Zero(t, regions[0].Nodes)
	assert.Equal(t, 2, regions[1].Nodes)
	assert.Positive(t, regions[2].Population)

	rw = get(t, h, "/data/regions/2")
	require.Equal(t, http.StatusOK, rw.Code)
	var one coarseSummary
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &one))
	assert.Equal(t, regions[2], one)

	rw = get(t, h, "/data/nodes/02001")
	require.Equal(t, http.StatusOK, rw.Code)
	var n nodeSummary
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &n))
	assert.Equal(t, int64(2001), n.Fine)
	assert.Equal(t, int64(2), n.Coarse)
	assert.Equal(t, 2, n.Index)

	rw = get(t, h, "/metrics")
	assert.Equal(t, http.StatusOK, rw.Code)
	assert.Contains(t, rw.Body.String(), "regiongraph_graphdata_builds_total")
}

func TestHandler_Errors(t *testing.T) {
	h := newTestHandler(t)
	assert.Equal(t, http.StatusBadRequest, get(t, h, "/data/regions/x").Code)
	assert.Equal(t, http.StatusNotFound, get(t, h, "/data/regions/9").Code)
	assert.Equal(t, http.StatusNotFound, get(t, h, "/data/nodes/99999").Code)
	assert.Equal(t, http.StatusNotFound, get(t, h, "/nope").Code)
}
