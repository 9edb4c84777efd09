package client

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const (
	// MetricsSubsystem is a subsystem shared by all metrics exposed by this
	// package.
	MetricsSubsystem = "rpc_client"

	batchMethod = "batch"
)

// Metrics contains metrics exposed by the JSON-RPC client.
type Metrics struct {
	// Number of requests sent, by method.
	Requests metrics.Counter
	// Number of requests that returned an error, by method.
	Errors metrics.Counter
	// Round trip time of requests in seconds, by method.
	RequestDuration metrics.Histogram
}

// PrometheusMetrics returns Metrics build using Prometheus client library.
// Optionally, labels can be provided along with their values ("foo",
// "fooValue").
func PrometheusMetrics(namespace string, labelsAndValues ...string) *Metrics {
	labels := []string{}
	for i := 0; i < len(labelsAndValues); i += 2 {
		labels = append(labels, labelsAndValues[i])
	}
	labels = append(labels, "method")

	return &Metrics{
		Requests: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "requests_total",
			Help:      "Total RPC requests sent to the node.",
		}, labels).With(labelsAndValues...),
		Errors: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "errors_total",
			Help:      "Total RPC requests that failed at the transport or JSON-RPC level.",
		}, labels).With(labelsAndValues...),
		RequestDuration: prometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "request_duration_seconds",
			Help:      "Histogram of RPC request round trip durations.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, labels).With(labelsAndValues...),
	}
}

// NopMetrics returns no-op Metrics.
func NopMetrics() *Metrics {
	return &Metrics{
		Requests:        discard.NewCounter(),
		Errors:          discard.NewCounter(),
		RequestDuration: discard.NewHistogram(),
	}
}
