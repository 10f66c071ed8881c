package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// API Metrics
var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAPIRequestsTotal,
			Help: HelpTextAPIRequestsTotal,
		},
		[]string{LabelEndpoint, LabelStatus},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameAPIRequestDuration,
			Help:    HelpTextAPIRequestDuration,
			Buckets: APILatencyBuckets,
		},
		[]string{LabelEndpoint},
	)
)

// Pipeline Metrics
var (
	SummariesReported = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSummariesReported,
			Help: HelpTextSummariesReported,
		},
	)

	FallbacksTaken = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFallbacksTaken,
			Help: HelpTextFallbacksTaken,
		},
	)

	ErrorsHandled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameErrorsHandled,
			Help: HelpTextErrorsHandled,
		},
		[]string{LabelOperation, LabelKind},
	)
)
