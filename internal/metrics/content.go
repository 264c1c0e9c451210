package metrics

import "github.com/prometheus/client_golang/prometheus"

// Content Prometheus metrics.
var (
	FilterQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "folio",
			Name:      "filter_queries_total",
			Help:      "Total number of filter queries",
		},
		[]string{"kind"}, // "card" / "post"
	)

	FilterMatches = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "folio",
			Name:      "filter_matches",
			Help:      "Number of records matched per filter query",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
		[]string{"kind"},
	)

	PreferenceResolvedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "folio",
			Name:      "preference_resolved_total",
			Help:      "Preference resolutions by winning source",
		},
		[]string{"setting", "source"}, // source: "url" / "stored" / "none"
	)

	PreferenceCommitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "folio",
			Name:      "preference_commits_total",
			Help:      "Total preference commits",
		},
		[]string{"setting", "status"},
	)

	CatalogReloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "folio",
			Name:      "catalog_reloads_total",
			Help:      "Catalog reload attempts",
		},
		[]string{"status"}, // "ok" / "error"
	)

	CatalogRecords = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "folio",
			Name:      "catalog_records",
			Help:      "Number of records in the current catalog snapshot",
		},
	)
)

var contentMetricsRegistered bool

// RegisterContentMetrics registers Prometheus content metrics. Must be called once from main.
func RegisterContentMetrics() {
	if contentMetricsRegistered {
		return
	}
	prometheus.MustRegister(FilterQueriesTotal)
	prometheus.MustRegister(FilterMatches)
	prometheus.MustRegister(PreferenceResolvedTotal)
	prometheus.MustRegister(PreferenceCommitsTotal)
	prometheus.MustRegister(CatalogReloadsTotal)
	prometheus.MustRegister(CatalogRecords)
	contentMetricsRegistered = true
}
