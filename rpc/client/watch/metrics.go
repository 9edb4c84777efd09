package watch

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

// MetricsSubsystem is a subsystem shared by all metrics exposed by this
// package.
const MetricsSubsystem = "head_watcher"

// Metrics contains metrics exposed by this package.
type Metrics struct {
	// Height of the latest block seen by the watcher.
	Height metrics.Gauge
	// Number of blocks published.
	Blocks metrics.Counter
	// Number of failed polls.
	PollErrors metrics.Counter
}

// PrometheusMetrics returns Metrics build using Prometheus client library.
// Optionally, labels can be provided along with their values ("foo",
// "fooValue").
func PrometheusMetrics(namespace string, labelsAndValues ...string) *Metrics {
	labels := []string{}
	for i := 0; i < len(labelsAndValues); i += 2 {
		labels = append(labels, labelsAndValues[i])
	}
	return &Metrics{
		Height: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "height",
			Help:      "Height of the latest block seen.",
		}, labels).With(labelsAndValues...),
		Blocks: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "blocks",
			Help:      "Number of blocks published.",
		}, labels).With(labelsAndValues...),
		PollErrors: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "poll_errors",
			Help:      "Number of failed polls of the node.",
		}, labels).With(labelsAndValues...),
	}
}

// NopMetrics returns no-op Metrics.
func NopMetrics() *Metrics {
	return &Metrics{
		Height:     discard.NewGauge(),
		Blocks:     discard.NewCounter(),
		PollErrors: discard.NewCounter(),
	}
}
