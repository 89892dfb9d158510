// Package metrics provides Prometheus metrics for unrot.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	SourceDigest = "digest"
	SourceGitHub = "github"

	StatusSuccess     = "success"
	StatusCacheHit    = "cache_hit"
	StatusError       = "error"
	StatusRateLimited = "rate_limited"
)

var (
	// SourceFetchTotal counts upstream fetches by source and outcome.
	SourceFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "unrot",
			Name:      "source_fetch_total",
			Help:      "Total number of upstream source fetches",
		},
		[]string{"source", "status"},
	)

	SourceFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "unrot",
			Name:      "source_fetch_duration_seconds",
			Help:      "Duration of upstream source fetches in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	// RefreshAddedTotal counts feed items persisted by refreshes.
	RefreshAddedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "unrot",
			Name:      "feed_refresh_added_total",
			Help:      "Total number of feed items added by refreshes",
		},
	)

	FeedLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "unrot",
			Name:      "feed_length",
			Help:      "Number of items in the feed after the last write",
		},
	)

	// StoreErrorsTotal counts feed store failures by operation.
	StoreErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "unrot",
			Name:      "store_errors_total",
			Help:      "Total number of feed store errors",
		},
		[]string{"operation"},
	)
)

// RecordSourceFetch records one upstream fetch.
func RecordSourceFetch(source, status string, duration float64) {
	SourceFetchTotal.WithLabelValues(source, status).Inc()
	SourceFetchDuration.WithLabelValues(source).Observe(duration)
}

func RecordCacheHit(source string) {
	SourceFetchTotal.WithLabelValues(source, StatusCacheHit).Inc()
}

func RecordRefresh(added, length int) {
	RefreshAddedTotal.Add(float64(added))
	FeedLength.Set(float64(length))
}

func RecordStoreError(operation string) {
	StoreErrorsTotal.WithLabelValues(operation).Inc()
}
