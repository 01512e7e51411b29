// Package metrics provides a Prometheus driven.SearchObserver.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/custodia-labs/lorequery/internal/core/domain"
	"github.com/custodia-labs/lorequery/internal/core/ports/driven"
)

// Ensure Observer implements the interface.
var _ driven.SearchObserver = (*Observer)(nil)

const namespace = "lorequery"

// Label values.
const (
	statusOK    = "ok"
	statusError = "error"
	resultHit   = "hit"
	resultMiss  = "miss"
)

// Observer records search and cache events as Prometheus metrics.
type Observer struct {
	registry *prometheus.Registry

	// DomainSearches counts per-domain searches by status.
	DomainSearches *prometheus.CounterVec
	// DomainDuration measures per-domain search latency.
	DomainDuration *prometheus.HistogramVec
	// CacheLookups counts result cache lookups by result.
	CacheLookups *prometheus.CounterVec
	// UnifiedDuration measures end-to-end unified search latency.
	UnifiedDuration prometheus.Histogram
	// UnifiedResults observes the total results per unified search.
	UnifiedResults prometheus.Histogram
}

// NewObserver creates an observer whose metrics live in a private registry.
func NewObserver() *Observer {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Observer{
		registry: reg,
		DomainSearches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "domain_searches_total",
				Help:      "Total number of per-domain searches",
			},
			[]string{"content_type", "status"},
		),
		DomainDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "domain_search_duration_seconds",
				Help:      "Duration of per-domain searches in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"content_type"},
		),
		CacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_lookups_total",
				Help:      "Total number of result cache lookups",
			},
			[]string{"result"},
		),
		UnifiedDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "unified_search_duration_seconds",
				Help:      "Duration of unified searches in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
		UnifiedResults: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "unified_search_results",
				Help:      "Distribution of total results per unified search",
				Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 240},
			},
		),
	}
}

// DomainSearched records one per-domain search.
func (o *Observer) DomainSearched(ct domain.ContentType, elapsed time.Duration, err error) {
	status := statusOK
	if err != nil {
		status = statusError
	}
	o.DomainSearches.WithLabelValues(ct.String(), status).Inc()
	o.DomainDuration.WithLabelValues(ct.String()).Observe(elapsed.Seconds())
}

// CacheLookup records one result cache lookup.
func (o *Observer) CacheLookup(hit bool) {
	result := resultMiss
	if hit {
		result = resultHit
	}
	o.CacheLookups.WithLabelValues(result).Inc()
}

// UnifiedSearched records one completed unified search.
func (o *Observer) UnifiedSearched(elapsed time.Duration, total int) {
	o.UnifiedDuration.Observe(elapsed.Seconds())
	o.UnifiedResults.Observe(float64(total))
}

// Handler serves the observer's metrics in the Prometheus text format.
func (o *Observer) Handler() http.Handler {
	return promhttp.HandlerFor(o.registry, promhttp.HandlerOpts{})
}

// Registry returns the registry holding the metrics.
func (o *Observer) Registry() *prometheus.Registry {
	return o.registry
}
