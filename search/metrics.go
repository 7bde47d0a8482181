package search

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	searchRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridpath_search_runs_total",
		Help: "Total search runs by algorithm and outcome",
	}, []string{"algorithm", "outcome"})

	searchSettled = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridpath_search_settled_nodes",
		Help:    "Cells settled per search run",
		Buckets: []float64{1, 10, 25, 50, 100, 200, 400, 1000},
	}, []string{"algorithm"})

	searchPathLength = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridpath_search_path_length",
		Help:    "Path cost of successful search runs",
		Buckets: []float64{1, 5, 10, 20, 40, 80, 160},
	}, []string{"algorithm"})

	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridpath_search_duration_seconds",
		Help:    "Wall-clock duration of search runs, pacing included",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"algorithm"})
)

// observe records a finished run.
func observe(res *Result, took time.Duration) {
	alg := res.Algorithm.String()
	searchRuns.WithLabelValues(alg, res.Outcome.String()).Inc()
	searchSettled.WithLabelValues(alg).Observe(float64(len(res.Visited)))
	searchDuration.WithLabelValues(alg).Observe(took.Seconds())
	if res.Found() {
		searchPathLength.WithLabelValues(alg).Observe(float64(res.Cost))
	}
}
