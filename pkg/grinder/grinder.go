// Package grinder coordinates the parallel search for a matching address.
//
// One worker runs per enumerated core. The first worker to find a match wins
// a compare-and-swap on the shared stop signal and hands its candidate over a
// single-slot channel; every other worker observes the signal before its next
// attempt and exits. Run joins all workers before returning, so no search
// goroutine outlives the call.
package grinder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/screa/sui-address-grinder/internal/cores"
	"github.com/screa/sui-address-grinder/pkg/keygen"
	"github.com/screa/sui-address-grinder/pkg/types"
	"github.com/screa/sui-address-grinder/pkg/worker"
)

var (
	ErrNoCoresAvailable = errors.New("no processor cores available")
	ErrSearchExhausted  = errors.New("all workers stopped without a match")
)

// Option customises a Grinder.
type Option func(*Grinder)

// WithGeneratorFactory replaces the Sui key generator.
func WithGeneratorFactory(f keygen.Factory) Option {
	return func(g *Grinder) { g.newGenerator = f }
}

// WithCoreEnumerator replaces core discovery.
func WithCoreEnumerator(f func(limit int) ([]cores.ID, error)) Option {
	return func(g *Grinder) { g.enumerate = f }
}

// WithPinner replaces core pinning.
func WithPinner(f func(cores.ID) error) Option {
	return func(g *Grinder) { g.pin = f }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(g *Grinder) { g.logger = l }
}

// WithProgressWriter sets where progress lines are written (default stderr).
func WithProgressWriter(w io.Writer) Option {
	return func(g *Grinder) { g.progress = w }
}

// Grinder searches for one address matching its SearchConfig.
// A Grinder runs once.
type Grinder struct {
	config types.SearchConfig

	newGenerator keygen.Factory
	enumerate    func(limit int) ([]cores.ID, error)
	pin          func(cores.ID) error
	logger       *slog.Logger
	progress     io.Writer

	stop     atomic.Bool
	attempts atomic.Uint64
}

// NewGrinder creates a grinder for cfg.
func NewGrinder(cfg types.SearchConfig, opts ...Option) *Grinder {
	g := &Grinder{
		config:       cfg,
		newGenerator: keygen.NewFactory(),
		enumerate:    cores.Enumerate,
		pin:          cores.Pin,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		progress:     os.Stderr,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run searches until a worker claims a solution. Cancelling ctx sets the stop
// signal; if no worker had claimed by then Run returns ErrSearchExhausted
// wrapping the cancellation cause.
func (g *Grinder) Run(ctx context.Context) (*types.Solution, error) {
	ids, err := g.enumerate(g.config.CoreLimit)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, ErrNoCoresAvailable
	}

	start := time.Now()
	solutions := make(chan types.Solution, 1)
	shared := worker.Shared{
		Stop:      &g.stop,
		Attempts:  &g.attempts,
		Solutions: solutions,
	}

	stopOnCancel := context.AfterFunc(ctx, g.Stop)
	defer stopOnCancel()

	g.logger.InfoContext(ctx, "grinding started",
		"cores", len(ids),
		"scheme", g.config.Scheme,
		"starts_with", g.config.Pattern.StartsWith,
		"ends_with", g.config.Pattern.EndsWith,
		"ignore_case", g.config.Pattern.IgnoreCase)

	var eg errgroup.Group
	for _, id := range ids {
		id := id
		w := worker.NewWorker(int(id), g.config, g.newGenerator(), shared, g.logger)
		eg.Go(func() error {
			if err := g.pin(id); err != nil {
				g.logger.WarnContext(ctx, "core pinning failed, continuing unpinned", "core", id, "err", err)
			}
			if w.Run() {
				g.logger.DebugContext(ctx, "solution claimed", "core", id, "attempts", w.Attempts())
			}
			return nil
		})
	}

	stopReporter := g.startReporter(len(ids))
	_ = eg.Wait()
	stopReporter()

	select {
	case s := <-solutions:
		s.Attempts = g.attempts.Load() + 1
		s.Duration = time.Since(start)
		g.logger.InfoContext(ctx, "grinding finished",
			"address", s.Address,
			"attempts", s.Attempts,
			"duration", s.Duration)
		return &s, nil
	default:
	}

	if cause := context.Cause(ctx); cause != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearchExhausted, cause)
	}
	return nil, ErrSearchExhausted
}

func (g *Grinder) startReporter(coreCount int) (stop func()) {
	if g.config.ProgressInterval <= 0 {
		return func() {}
	}
	r := NewReporter(g.progress, coreCount, &g.attempts, g.config.ProgressInterval)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		r.Run(ctx)
	}()
	return func() {
		cancel()
		<-done
	}
}

// Stop sets the stop signal. Workers exit before their next attempt.
func (g *Grinder) Stop() {
	g.stop.CompareAndSwap(false, true)
}

// Stopped reports whether the stop signal has been set.
func (g *Grinder) Stopped() bool {
	return g.stop.Load()
}

// Attempts returns the number of non-matching keys processed so far.
func (g *Grinder) Attempts() uint64 {
	return g.attempts.Load()
}

// Run is a convenience wrapper for NewGrinder(cfg, opts...).Run(ctx).
func Run(ctx context.Context, cfg types.SearchConfig, opts ...Option) (*types.Solution, error) {
	return NewGrinder(cfg, opts...).Run(ctx)
}
