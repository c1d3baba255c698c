// Package metrics records Prometheus metrics for Redfish system fetches.
//
// The recorder exposes the following metrics:
//
//	rfconn_redfish_attempts_total{result} - Connection attempts, by result
//	    (success, transient, permanent).
//	rfconn_redfish_requests_total{outcome} - Completed GetSystem calls, by
//	    outcome (success, not_found, redfish_error, connection_error).
//	rfconn_redfish_request_duration_seconds{outcome} - Duration of GetSystem
//	    calls including retry waits.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Attempt results.
const (
	ResultSuccess   = "success"
	ResultTransient = "transient"
	ResultPermanent = "permanent"
)

// Request outcomes.
const (
	OutcomeSuccess         = "success"
	OutcomeNotFound        = "not_found"
	OutcomeRedfishError    = "redfish_error"
	OutcomeConnectionError = "connection_error"
)

const namespace = "rfconn"

// Recorder records fetch metrics. The zero value is not usable, use New.
type Recorder struct {
	attempts *prometheus.CounterVec
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates a Recorder and registers its collectors with registerer.
// Collectors already registered by a previous Recorder are reused.
func New(registerer prometheus.Registerer) (*Recorder, error) {
	attempts := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "redfish",
			Name:      "attempts_total",
			Help:      "Number of attempts to connect to a Redfish service and fetch a system.",
		},
		[]string{"result"},
	)
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "redfish",
			Name:      "requests_total",
			Help:      "Number of completed system fetches, including all their attempts.",
		},
		[]string{"outcome"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "redfish",
			Name:      "request_duration_seconds",
			Help:      "Time to fetch a system, including waits between attempts.",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 20, 30, 60},
		},
		[]string{"outcome"},
	)

	var err error
	if attempts, err = register(registerer, attempts); err != nil {
		return nil, err
	}
	if requests, err = register(registerer, requests); err != nil {
		return nil, err
	}
	if duration, err = register(registerer, duration); err != nil {
		return nil, err
	}

	return &Recorder{attempts: attempts, requests: requests, duration: duration}, nil
}

func register[C prometheus.Collector](registerer prometheus.Registerer, c C) (C, error) {
	err := registerer.Register(c)
	if err == nil {
		return c, nil
	}
	var alreadyRegisteredError prometheus.AlreadyRegisteredError
	if errors.As(err, &alreadyRegisteredError) {
		if existing, ok := alreadyRegisteredError.ExistingCollector.(C); ok {
			return existing, nil
		}
	}
	return c, err
}

// ObserveAttempt counts one attempt with the given result.
func (r *Recorder) ObserveAttempt(result string) {
	r.attempts.WithLabelValues(result).Inc()
}

// ObserveRequest counts one completed fetch and its duration.
func (r *Recorder) ObserveRequest(outcome string, elapsed time.Duration) {
	r.requests.WithLabelValues(outcome).Inc()
	r.duration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// WriteTextfile writes everything gathered by gatherer to path in the text
// exposition format, for the node exporter textfile collector.
func WriteTextfile(path string, gatherer prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, gatherer)
}
