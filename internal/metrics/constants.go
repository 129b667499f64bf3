package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameHTTPRateLimited      = "http_rate_limited_total"
)

// Resolution metric names
const (
	MetricNameResolutionsTotal   = "requirement_resolutions_total"
	MetricNameResolutionDuration = "requirement_resolution_duration_seconds"
	MetricNameClosureRecipes     = "requirement_closure_recipes"
)

// Catalog metric names
const (
	MetricNameCatalogReloads = "catalog_reloads_total"
	MetricNameCatalogRecipes = "catalog_recipes"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextHTTPRateLimited      = "Total number of HTTP requests rejected by the rate limiter"
)

// Resolution metric help text
const (
	HelpTextResolutionsTotal   = "Total number of requirement resolutions by outcome"
	HelpTextResolutionDuration = "Requirement resolution latency in seconds"
	HelpTextClosureRecipes     = "Number of recipes in the closure of a resolved item"
)

// Catalog metric help text
const (
	HelpTextCatalogReloads = "Total number of catalog reload attempts by result"
	HelpTextCatalogRecipes = "Number of recipes in the active catalog"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelTarget  = "target"
	LabelResult  = "result"
)

// ============================================================================
// Label Values
// ============================================================================

// Resolution outcomes
const (
	OutcomeOK               = "ok"
	OutcomeInvalidInput     = "invalid_input"
	OutcomeUnknownItem      = "unknown_item"
	OutcomeGated            = "gated"
	OutcomeOverrideConflict = "override_conflict"
	OutcomeCanceled         = "canceled"
	OutcomeInternal         = "internal"
)

// Catalog reload results
const (
	ReloadApplied   = "applied"
	ReloadUnchanged = "unchanged"
	ReloadFailed    = "failed"
)

// UnmatchedRoute labels requests no route matched
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ResolutionLatencyBuckets covers resolutions from 100µs to 5s
var ResolutionLatencyBuckets = []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5}
