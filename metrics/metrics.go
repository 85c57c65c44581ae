// SPDX-License-Identifier: MIT

// Package metrics exposes prometheus instrumentation for GraphData builds.
//
// A Recorder is created against an explicit prometheus.Registerer; there is no
// package-level registry. A nil *Recorder is valid and records nothing, so
// library callers that do not care about metrics pass nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metric name prefix.
const (
	Namespace = "regiongraph"
	Subsystem = "graphdata"
)

// FQName builds the fully-qualified metric name for name.
func FQName(name string) string {
	return prometheus.BuildFQName(Namespace, Subsystem, name)
}

// Recorder holds the build metrics.
type Recorder struct {
	builds        *prometheus.CounterVec
	buildDuration *prometheus.HistogramVec
	nodes         prometheus.Gauge
	steps         prometheus.Gauge
	ageBuckets    prometheus.Gauge
	clipped       *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
}

// NewRecorder registers the build metrics on reg.
// Registering twice on the same registry panics (promauto semantics).
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		builds: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: FQName("builds_total"),
				Help: "GraphData constructions by backend and result",
			},
			[]string{"backend", "result"},
		),
		buildDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    FQName("build_duration_seconds"),
				Help:    "Duration of GraphData constructions in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
			},
			[]string{"backend"},
		),
		nodes: f.NewGauge(prometheus.GaugeOpts{
			Name: FQName("nodes"),
			Help: "Node count of the last successful build",
		}),
		steps: f.NewGauge(prometheus.GaugeOpts{
			Name: FQName("time_steps"),
			Help: "Time steps of the last successful build",
		}),
		ageBuckets: f.NewGauge(prometheus.GaugeOpts{
			Name: FQName("age_buckets"),
			Help: "Age buckets of the last successful build",
		}),
		clipped: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: FQName("clipped_increments_total"),
				Help: "Negative day-over-day increments floored to zero, by series",
			},
			[]string{"series"},
		),
		httpDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: FQName("http_request_duration_seconds"),
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"code", "method"},
		),
	}
}

// ObserveBuild records one construction attempt.
func (r *Recorder) ObserveBuild(backend string, d time.Duration, err error) {
	if r == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.builds.WithLabelValues(backend, result).Inc()
	r.buildDuration.WithLabelValues(backend).Observe(d.Seconds())
}

// SetShape publishes the dimensions of a successful build.
func (r *Recorder) SetShape(nodes, steps, ageBuckets int) {
	if r == nil {
		return
	}
	r.nodes.Set(float64(nodes))
	r.steps.Set(float64(steps))
	r.ageBuckets.Set(float64(ageBuckets))
}

// AddClipped counts n negative increments floored to zero in series.
func (r *Recorder) AddClipped(series string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.clipped.WithLabelValues(series).Add(float64(n))
}

// Handler serves g in the prometheus exposition format, instrumented with the
// recorder's request-duration histogram.
func (r *Recorder) Handler(g prometheus.Gatherer) http.Handler {
	h := promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	if r == nil {
		return h
	}

	return promhttp.InstrumentHandlerDuration(r.httpDuration, h)
}
