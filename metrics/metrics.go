// Package metrics exposes Prometheus collectors for imputation runs.
//
// Collectors are registered on a caller-supplied registerer so tests and
// one-shot CLI runs can use a private registry and dump it with
// WriteTextfile.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "graphimpute"

// Collector groups the run metrics, labeled by strategy.
type Collector struct {
	// Runs counts finished runs by outcome ("ok" or "error").
	Runs *prometheus.CounterVec
	// Duration measures wall time per run.
	Duration *prometheus.HistogramVec
	// Imputed counts values written by strategies.
	Imputed *prometheus.CounterVec
	// Missing reports values still missing after the last run.
	Missing *prometheus.GaugeVec
}

// New registers the collectors on reg. A nil reg uses a fresh registry.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)

	return &Collector{
		Runs: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Total number of imputation runs",
			},
			[]string{"strategy", "status"},
		),
		Duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Duration of imputation runs in seconds",
				// from toy graphs to large embedding runs
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 15, 60, 300, 1800},
			},
			[]string{"strategy"},
		),
		Imputed: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "values_imputed_total",
				Help:      "Total number of missing values filled",
			},
			[]string{"strategy"},
		),
		Missing: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "values_missing",
				Help:      "Values still missing after the last run",
			},
			[]string{"strategy"},
		),
	}
}

// ObserveRun records one finished run.
func (c *Collector) ObserveRun(strategy string, d time.Duration, filled, missing int, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.Runs.WithLabelValues(strategy, status).Inc()
	c.Duration.WithLabelValues(strategy).Observe(d.Seconds())
	if filled > 0 {
		c.Imputed.WithLabelValues(strategy).Add(float64(filled))
	}
	c.Missing.WithLabelValues(strategy).Set(float64(missing))
}

// WriteTextfile writes every metric gathered from g to path in the text
// exposition format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
