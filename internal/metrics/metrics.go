// Package metrics exposes the service's Prometheus instrumentation on
// its own registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	QueriesTotal          *prometheus.CounterVec
	QueryErrorsTotal      *prometheus.CounterVec
	QueryDuration         *prometheus.HistogramVec
	SnapshotRefreshes     prometheus.Counter
	SnapshotInvalidations prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	queries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vendite_queries_total",
		Help: "Analytical queries served, by query name.",
	}, []string{"query"})
	queryErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vendite_query_errors_total",
		Help: "Failed queries, by query name and error kind.",
	}, []string{"query", "kind"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vendite_query_duration_seconds",
		Help:    "Query handling latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"query"})
	refreshes := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "vendite_snapshot_refreshes_total",
		Help: "Times the raw dataset snapshot was fetched from the source.",
	})
	invalidations := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "vendite_snapshot_invalidations_total",
		Help: "Times the cached snapshot was invalidated by a refresh message.",
	})

	r.MustRegister(queries, queryErrors, duration, refreshes, invalidations)

	return &Registry{
		reg:                   r,
		QueriesTotal:          queries,
		QueryErrorsTotal:      queryErrors,
		QueryDuration:         duration,
		SnapshotRefreshes:     refreshes,
		SnapshotInvalidations: invalidations,
	}
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
