// Package metrics records run measurements in a Prometheus registry and reads
// runtime memory statistics.
package metrics

import (
	"math"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "seriescalc"

// Run status label values for seriescalc_runs_total.
const (
	StatusSuccess   = "success"
	StatusNonFinite = "non_finite"
	StatusError     = "error"
)

// Run is the subset of a harness result recorded as metrics.
type Run struct {
	Iterations int64
	Value      float64
	Scaled     float64
	Duration   time.Duration
	CPU        time.Duration
	Err        error
}

// Status returns the runs_total label for the run.
func (r Run) Status() string {
	switch {
	case r.Err != nil:
		return StatusError
	case math.IsNaN(r.Value) || math.IsInf(r.Value, 0):
		return StatusNonFinite
	default:
		return StatusSuccess
	}
}

// Recorder owns a private Prometheus registry holding the metrics of the
// runs observed by this process.
type Recorder struct {
	registry   *prometheus.Registry
	iterations prometheus.Gauge
	result     prometheus.Gauge
	scaled     prometheus.Gauge
	duration   prometheus.Gauge
	cpu        prometheus.Gauge
	runs       *prometheus.CounterVec
}

// NewRecorder creates a Recorder with the Go runtime collector registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		iterations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "iterations",
			Help:      "Iteration count of the last run.",
		}),
		result: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "result",
			Help:      "Unscaled accumulator value of the last successful run.",
		}),
		scaled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "scaled_result",
			Help:      "Scaled accumulator value of the last successful run.",
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "duration_seconds",
			Help:      "Wall-clock time of the last run.",
		}),
		cpu: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cpu_seconds",
			Help:      "Process CPU time (user+system) spent in the last run.",
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Number of runs by status.",
		}, []string{"status"}),
	}
	r.registry.MustRegister(
		r.iterations, r.result, r.scaled, r.duration, r.cpu, r.runs,
		collectors.NewGoCollector(),
	)
	return r
}

// Observe records one run. Value gauges are left untouched for failed runs.
func (r *Recorder) Observe(run Run) {
	r.runs.WithLabelValues(run.Status()).Inc()
	r.iterations.Set(float64(run.Iterations))
	if run.Err != nil {
		return
	}
	r.result.Set(run.Value)
	r.scaled.Set(run.Scaled)
	r.duration.Set(run.Duration.Seconds())
	r.cpu.Set(run.CPU.Seconds())
}

// RunsCounter returns the runs_total counter for status.
func (r *Recorder) RunsCounter(status string) prometheus.Counter {
	return r.runs.WithLabelValues(status)
}

// Gatherer exposes the underlying registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// WriteTextfile writes the registry to path in the node-exporter textfile
// collector format. The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
