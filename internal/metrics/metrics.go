// Package metrics provides Prometheus metrics for the tantei resolver.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SPARQLQueries counts SELECT queries issued, by query kind.
	SPARQLQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tantei_sparql_queries_total",
			Help: "Total number of SPARQL queries issued",
		},
		[]string{"kind"},
	)

	// SPARQLFailures counts queries degraded to empty results, by failure reason.
	SPARQLFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tantei_sparql_failures_total",
			Help: "Total number of SPARQL queries that failed and degraded to empty results",
		},
		[]string{"reason"},
	)

	// ResolveRuns counts aggregation runs started.
	ResolveRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tantei_resolve_runs_total",
			Help: "Total number of aggregation runs started",
		},
	)

	// ResolveSuperseded counts runs whose output was discarded as stale.
	ResolveSuperseded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tantei_resolve_superseded_total",
			Help: "Total number of aggregation runs superseded before commit",
		},
	)

	// ResolveDuration observes end-to-end run duration in seconds.
	ResolveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tantei_resolve_duration_seconds",
			Help:    "Duration of aggregation runs in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// SearchRequests counts entity-search requests, by outcome.
	SearchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tantei_search_requests_total",
			Help: "Total number of entity search requests",
		},
		[]string{"outcome"},
	)
)
