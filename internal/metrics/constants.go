package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameReconciliations   = "village_reconciliations_total"
	MetricNameVersionConflicts  = "village_version_conflicts_total"
	MetricNameResourcesProduced = "village_resources_produced_total"
	MetricNameVillagesFounded   = "villages_founded_total"
	MetricNameTribesSelected    = "tribes_selected_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextReconciliations   = "Village resource reconciliations by outcome"
	HelpTextVersionConflicts  = "Resource write-backs rejected by a concurrent update"
	HelpTextResourcesProduced = "Resource units credited by reconciliation and persisted"
	HelpTextVillagesFounded   = "Total number of villages founded"
	HelpTextTribesSelected    = "Tribe selections by tribe"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelOutcome  = "outcome"
	LabelResource = "resource"
	LabelTribe    = "tribe"
)

// Reconciliation outcomes
const (
	OutcomePersisted = "persisted"
	OutcomeUnchanged = "unchanged"
	OutcomeReadOnly  = "read_only"
	OutcomeExhausted = "exhausted"
	OutcomeFailed    = "failed"
)

// UnmatchedRoute labels requests that no route matched
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
