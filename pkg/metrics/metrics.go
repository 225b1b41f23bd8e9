// Package metrics provides Prometheus counters for benchmark run accounting
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RunsStarted counts lifecycle runs started, by benchmark
	RunsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snafu",
			Subsystem: "benchmark",
			Name:      "runs_started_total",
			Help:      "Total number of benchmark runs started",
		},
		[]string{"benchmark"},
	)

	// SetupFailures counts runs aborted by a failed setup phase
	SetupFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snafu",
			Subsystem: "benchmark",
			Name:      "setup_failures_total",
			Help:      "Total number of benchmark runs that failed during setup",
		},
		[]string{"benchmark"},
	)

	// CleanupFailures counts runs whose cleanup phase reported failure
	CleanupFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snafu",
			Subsystem: "benchmark",
			Name:      "cleanup_failures_total",
			Help:      "Total number of benchmark runs that failed during cleanup",
		},
		[]string{"benchmark"},
	)

	// ResultsProduced counts results yielded during collection, by benchmark
	ResultsProduced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snafu",
			Subsystem: "benchmark",
			Name:      "results_produced_total",
			Help:      "Total number of results produced by benchmark collection",
		},
		[]string{"benchmark"},
	)

	// RunDuration observes wall-clock duration of complete runs
	RunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "snafu",
			Subsystem: "benchmark",
			Name:      "run_duration_seconds",
			Help:      "Duration of complete benchmark runs in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 60, 300, 900, 3600},
		},
		[]string{"benchmark"},
	)
)

// Timer tracks the duration of one run for RunDuration
type Timer struct {
	benchmark string
	start     time.Time
}

// NewTimer starts a run timer for the named benchmark
func NewTimer(benchmark string) *Timer {
	return &Timer{benchmark: benchmark, start: time.Now()}
}

// Stop records the elapsed duration and returns it
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	RunDuration.WithLabelValues(t.benchmark).Observe(elapsed.Seconds())
	return elapsed
}
