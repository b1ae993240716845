// Package metrics provides helpers for recording metrics in a consistent way.
package metrics

import (
	"errors"
	"time"

	"github.com/aws/smithy-go"
)

// EnsureMetricsRecorder helps record ensure operation metrics consistently.
// Usage:
//
//	recorder := metrics.NewEnsureMetricsRecorder("inspector.amazonaws.com")
//	...
//	recorder.Record(metrics.ResultCreated)
type EnsureMetricsRecorder struct {
	service   string
	startTime time.Time
}

// NewEnsureMetricsRecorder creates a new ensure metrics recorder.
// It automatically starts timing the operation.
func NewEnsureMetricsRecorder(service string) *EnsureMetricsRecorder {
	return &EnsureMetricsRecorder{
		service:   service,
		startTime: time.Now(),
	}
}

// Record records the outcome of an ensure operation and its duration.
func (r *EnsureMetricsRecorder) Record(result string) {
	EnsureTotal.WithLabelValues(r.service, result).Inc()
	EnsureDuration.WithLabelValues(r.service).Observe(time.Since(r.startTime).Seconds())
}

// AWSAPIMetricsRecorder helps record AWS API call metrics consistently.
// Usage:
//
//	recorder := metrics.NewAWSAPIMetricsRecorder(metrics.OperationGetRole)
//	output, err := r.client.GetRole(ctx, input)
//	recorder.Record(err)
type AWSAPIMetricsRecorder struct {
	operation string
	startTime time.Time
}

// NewAWSAPIMetricsRecorder creates a new AWS API metrics recorder.
// It automatically starts timing the API call.
func NewAWSAPIMetricsRecorder(operation string) *AWSAPIMetricsRecorder {
	return &AWSAPIMetricsRecorder{
		operation: operation,
		startTime: time.Now(),
	}
}

// Record records the API call result. On error it extracts the AWS error
// code and records it.
func (a *AWSAPIMetricsRecorder) Record(err error) {
	AWSAPICallDuration.WithLabelValues(a.operation).Observe(time.Since(a.startTime).Seconds())

	if err == nil {
		AWSAPICallsTotal.WithLabelValues(a.operation, ResultSuccess).Inc()
		return
	}

	AWSAPICallsTotal.WithLabelValues(a.operation, ResultError).Inc()
	AWSAPIErrors.WithLabelValues(a.operation, extractAWSErrorCode(err)).Inc()
}

// extractAWSErrorCode extracts the AWS error code from an error.
// Returns "Unknown" if the error is not an AWS error.
func extractAWSErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return "Unknown"
}
