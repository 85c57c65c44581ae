// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/regiongraph/graphdata"
	"github.com/katalvlaran/regiongraph/metrics"
)

const (
	coarseParam = "coarse"
	labelParam  = "label"
)

type apiHandler struct {
	runID   string
	gd      *graphdata.GraphData
	regions []coarseSummary
}

// newHandler serves /_healthz, /metrics and the read-only /data API.
// The dataset is immutable, so the coarse summaries are computed once.
func newHandler(gd *graphdata.GraphData, rec *metrics.Recorder, reg *prometheus.Registry) http.Handler {
	regions, err := coarseSummaries(gd)
	if err != nil {
		glog.Errorf("Error computing coarse summaries. err=%q", err)
	}
	h := &apiHandler{runID: uuid.NewString(), gd: gd, regions: regions}
	glog.Infof("API handler ready. run=%s", h.runID)

	router := chi.NewRouter()
	router.Get("/_healthz", h.healthcheck)
	router.Method("GET", "/metrics", rec.Handler(reg))

	router.Route("/data", func(router chi.Router) {
		router.Use(chimiddleware.Recoverer)
		router.Use(chimiddleware.NewCompressor(5, "application/json").Handler)

		router.Get("/stats", h.stats)
		router.Get("/regions", h.listRegions)
		router.Get(`/regions/{`+coarseParam+`}`, h.getRegion)
		router.Get(`/nodes/{`+labelParam+`}`, h.getNode)
	})

	return router
}

func (h *apiHandler) healthcheck(rw http.ResponseWriter, r *http.Request) {
	respondJson(rw, http.StatusOK, healthResponse{Healthy: h.regions != nil, Run: h.runID})
}

func (h *apiHandler) stats(rw http.ResponseWriter, r *http.Request) {
	respondJson(rw, http.StatusOK, h.gd.Stats())
}

func (h *apiHandler) listRegions(rw http.ResponseWriter, r *http.Request) {
	respondJson(rw, http.StatusOK, h.regions)
}

func (h *apiHandler) getRegion(rw http.ResponseWriter, r *http.Request) {
	k, err := strconv.Atoi(chi.URLParam(r, coarseParam))
	if err != nil {
		respondError(rw, http.StatusBadRequest, "coarse id must be an integer")
		return
	}
	if k < 0 || k >= len(h.regions) {
		respondError(rw, http.StatusNotFound, "coarse region not found")
		return
	}
	respondJson(rw, http.StatusOK, h.regions[k])
}

func (h *apiHandler) getNode(rw http.ResponseWriter, r *http.Request) {
	i, ok := h.gd.Index(chi.URLParam(r, labelParam))
	if !ok {
		respondError(rw, http.StatusNotFound, "node not found")
		return
	}
	n, _ := describeNode(h.gd, i)
	respondJson(rw, http.StatusOK, n)
}

type healthResponse struct {
	Healthy bool   `json:"healthy"`
	Run     string `json:"run"`
}

type errorResponse struct {
	Errors []string `json:"errors"`
}

func respondError(rw http.ResponseWriter, status int, msgs ...string) {
	respondJson(rw, status, errorResponse{msgs})
}

func respondJson(rw http.ResponseWriter, status int, response interface{}) {
	rw.Header().Set("Content-Type", "application/json; charset=utf-8")
	rw.WriteHeader(status)
	if err := json.NewEncoder(rw).Encode(response); err != nil {
		glog.Errorf("Error writing response. err=%q, response=%+v", err, response)
	}
}
