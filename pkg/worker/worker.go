package worker

import (
	"log/slog"
	"sync/atomic"

	"github.com/screa/sui-address-grinder/pkg/keygen"
	"github.com/screa/sui-address-grinder/pkg/types"
)

// Shared is the state a worker shares with the grinder and its siblings.
type Shared struct {
	// Stop is the termination signal. It is set once and never cleared.
	Stop *atomic.Bool
	// Attempts counts non-matching generation attempts across all workers.
	Attempts *atomic.Uint64
	// Solutions receives the single claimed solution. It must have capacity 1.
	Solutions chan<- types.Solution
}

// Worker runs the generate-and-match loop for one core.
type Worker struct {
	core   int
	config types.SearchConfig
	gen    keygen.Generator
	shared Shared
	logger *slog.Logger

	attempts uint64
	failures uint64
}

// NewWorker creates a worker bound to core. The generator must not be shared.
func NewWorker(core int, config types.SearchConfig, gen keygen.Generator, shared Shared, logger *slog.Logger) *Worker {
	return &Worker{
		core:   core,
		config: config,
		gen:    gen,
		shared: shared,
		logger: logger.With("core", core),
	}
}

// Run loops until the stop signal is observed, a solution is claimed, or the
// per-worker attempt cap is reached. It reports whether this worker published
// the solution.
func (w *Worker) Run() bool {
	for {
		if w.shared.Stop.Load() {
			return false
		}
		if w.config.MaxAttempts > 0 && w.attempts >= w.config.MaxAttempts {
			w.logger.Debug("attempt limit reached", "attempts", w.attempts)
			return false
		}

		w.attempts++
		candidate, err := w.gen.Generate(w.config.Scheme)
		if err != nil {
			w.failures++
			w.logger.Debug("generation failed, retrying", "err", err, "failures", w.failures)
			continue
		}

		if !Matches(candidate.Address, w.config.Pattern) {
			w.shared.Attempts.Add(1)
			continue
		}

		if !w.shared.Stop.CompareAndSwap(false, true) {
			// a sibling claimed first
			return false
		}
		w.shared.Solutions <- types.Solution{Candidate: candidate, Core: w.core}
		return true
	}
}

// Attempts returns how many generation attempts this worker made.
// Only valid after Run returns.
func (w *Worker) Attempts() uint64 {
	return w.attempts
}

// Failures returns how many generation attempts failed.
// Only valid after Run returns.
func (w *Worker) Failures() uint64 {
	return w.failures
}
