package benchmark

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mnmehta/benchmark-wrapper/pkg/logger"
	"github.com/mnmehta/benchmark-wrapper/pkg/metrics"
)

// Runner drives the benchmark lifecycle: setup, collect, cleanup. Phases for
// one benchmark never overlap; collection is drained to exhaustion before
// cleanup begins.
type Runner struct {
	logger *zap.Logger
}

// NewRunner creates a lifecycle runner
func NewRunner() *Runner {
	return &Runner{logger: logger.Get().Named("snafu")}
}

// Run executes the full lifecycle of b and streams its results as they are
// produced. If setup fails the run terminates immediately: no results are
// produced and collect and cleanup are never invoked. A cleanup failure is
// logged, already-delivered results stand. The returned channel is closed
// when the run is over.
func (r *Runner) Run(b Benchmark) <-chan Result {
	log := r.logger.With(
		zap.String("benchmark", b.Name()),
		zap.String("run_id", uuid.NewString()),
	)
	out := make(chan Result, 1)

	metrics.RunsStarted.WithLabelValues(b.Name()).Inc()
	timer := metrics.NewTimer(b.Name())

	go func() {
		defer close(out)
		defer timer.Stop()

		log.Info("starting benchmark wrapper")
		log.Info("running setup tasks")
		if !b.Setup() {
			metrics.SetupFailures.WithLabelValues(b.Name()).Inc()
			log.Error("something went wrong during setup, refusing to run",
				zap.Bool("critical", true))
			return
		}

		log.Info("collecting results from benchmark")
		produced := 0
		for result := range b.Collect() {
			out <- result
			produced++
			metrics.ResultsProduced.WithLabelValues(b.Name()).Inc()
		}

		log.Info("cleaning up", zap.Int("results", produced))
		if !b.Cleanup() {
			metrics.CleanupFailures.WithLabelValues(b.Name()).Inc()
			log.Error("something went wrong during cleanup",
				zap.Bool("critical", true))
			return
		}

		log.Info("benchmark run complete")
	}()

	return out
}
