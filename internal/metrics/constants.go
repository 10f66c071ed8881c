package metrics

// ============================================================================
// Metric Names
// ============================================================================

const (
	MetricNameAPIRequestsTotal   = "user_summary_api_requests_total"
	MetricNameAPIRequestDuration = "user_summary_api_request_duration_seconds"
	MetricNameSummariesReported  = "user_summary_summaries_reported_total"
	MetricNameFallbacksTaken     = "user_summary_city_fallbacks_total"
	MetricNameErrorsHandled      = "user_summary_errors_handled_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextAPIRequestsTotal   = "Total number of requests made to the users API"
	HelpTextAPIRequestDuration = "Users API request latency in seconds"
	HelpTextSummariesReported  = "Total number of summary lines reported"
	HelpTextFallbacksTaken     = "Number of times the fallback city prefix was used"
	HelpTextErrorsHandled      = "Errors caught at an operation boundary, by operation and kind"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelEndpoint  = "endpoint"
	LabelStatus    = "status"
	LabelOperation = "operation"
	LabelKind      = "kind"
)

// StatusTransportError is the status label used when no response arrived.
const StatusTransportError = "transport_error"

// APILatencyBuckets covers a fast local stub up to a slow public API.
var APILatencyBuckets = []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10}
