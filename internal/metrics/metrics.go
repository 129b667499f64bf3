package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)

	HTTPRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRateLimited,
			Help: HelpTextHTTPRateLimited,
		},
	)
)

// Resolution Metrics
var (
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResolutionsTotal,
			Help: HelpTextResolutionsTotal,
		},
		[]string{LabelOutcome, LabelTarget},
	)

	ResolutionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameResolutionDuration,
			Help:    HelpTextResolutionDuration,
			Buckets: ResolutionLatencyBuckets,
		},
		[]string{LabelTarget},
	)

	ClosureRecipes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameClosureRecipes,
			Help:    HelpTextClosureRecipes,
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)
)

// Catalog Metrics
var (
	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogReloads,
			Help: HelpTextCatalogReloads,
		},
		[]string{LabelResult},
	)

	CatalogRecipes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogRecipes,
			Help: HelpTextCatalogRecipes,
		},
	)
)
