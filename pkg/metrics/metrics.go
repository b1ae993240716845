// Package metrics provides Prometheus metrics for observability of the
// service-linked role provisioner.
//
// This package exposes metrics about:
// - Ensure operations and their outcomes
// - AWS API call performance and errors
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ============================================
	// Ensure Operation Metrics
	// ============================================

	// EnsureTotal tracks the total number of ensure operations per service and outcome.
	// Labels: service (inspector.amazonaws.com, etc.), result (pre_existing, created, unsupported, create_failed)
	EnsureTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slr_provisioner_ensure_total",
			Help: "Total number of ensure operations per service and result",
		},
		[]string{"service", "result"},
	)

	// EnsureDuration tracks the duration of ensure operations in seconds.
	// Labels: service
	EnsureDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "slr_provisioner_ensure_duration_seconds",
			Help:    "Duration of ensure operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service"},
	)

	// ============================================
	// AWS API Metrics
	// ============================================

	// AWSAPICallsTotal tracks the total number of AWS API calls.
	// Labels: operation (GetRole, CreateServiceLinkedRole), result (success, error)
	AWSAPICallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slr_provisioner_aws_api_calls_total",
			Help: "Total number of AWS API calls by operation and result",
		},
		[]string{"operation", "result"},
	)

	// AWSAPICallDuration tracks the duration of AWS API calls in seconds.
	// Labels: operation
	AWSAPICallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "slr_provisioner_aws_api_call_duration_seconds",
			Help:    "Duration of AWS API calls in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)

	// AWSAPIErrors tracks the total number of AWS API errors.
	// Labels: operation, error_code (NoSuchEntity, AccessDenied, etc.)
	AWSAPIErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slr_provisioner_aws_api_errors_total",
			Help: "Total number of AWS API errors by operation and error code",
		},
		[]string{"operation", "error_code"},
	)
)

// Registry holds every metric of the provisioner. The local harness exposes
// it on /metrics; inside Lambda the registrations are inert.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(
		EnsureTotal,
		EnsureDuration,
		AWSAPICallsTotal,
		AWSAPICallDuration,
		AWSAPIErrors,
	)
}

// Ensure operation results for standardized result labels
const (
	ResultPreExisting  = "pre_existing"
	ResultCreated      = "created"
	ResultUnsupported  = "unsupported"
	ResultCreateFailed = "create_failed"
)

// AWS API call results
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// AWS API operations for standardized operation labels
const (
	OperationGetRole                 = "GetRole"
	OperationCreateServiceLinkedRole = "CreateServiceLinkedRole"
)
