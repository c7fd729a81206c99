package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/nao1215/sfac/internal/model"
	"github.com/nao1215/sfac/internal/probe"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of probes in flight when none is set.
const DefaultConcurrency = 10

// Observer receives progress events from CheckAll. All calls for one
// CheckAll are made from a single goroutine, in order: Start once,
// Observe once per candidate with done counting 1..total, then Finish.
type Observer interface {
	Start(total int)
	Observe(done int, result model.ProbeResult)
	Finish()
}

// NopObserver ignores every event.
type NopObserver struct{}

// Start implements Observer.
func (NopObserver) Start(int) {}

// Observe implements Observer.
func (NopObserver) Observe(int, model.ProbeResult) {}

// Finish implements Observer.
func (NopObserver) Finish() {}

// Checker probes many candidates with bounded concurrency.
type Checker struct {
	prober      probe.Prober
	concurrency int
	observer    Observer
	logger      *slog.Logger
}

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithConcurrency sets the maximum number of probes in flight.
// Values below one select DefaultConcurrency.
func WithConcurrency(n int) CheckerOption {
	return func(c *Checker) {
		c.concurrency = n
	}
}

// WithObserver sets the progress observer.
func WithObserver(o Observer) CheckerOption {
	return func(c *Checker) {
		if o != nil {
			c.observer = o
		}
	}
}

// WithCheckerLogger sets the logger.
func WithCheckerLogger(logger *slog.Logger) CheckerOption {
	return func(c *Checker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewChecker returns a Checker that probes with prober.
func NewChecker(prober probe.Prober, opts ...CheckerOption) *Checker {
	c := &Checker{
		prober:      prober,
		concurrency: DefaultConcurrency,
		observer:    NopObserver{},
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.concurrency <= 0 {
		c.logger.Warn("concurrency must be at least 1, using default",
			"requested", c.concurrency,
			"default", DefaultConcurrency,
		)
		c.concurrency = DefaultConcurrency
	}
	return c
}

// Concurrency returns the effective concurrency limit.
func (c *Checker) Concurrency() int {
	return c.concurrency
}

// CheckAll probes every candidate and returns one result per candidate,
// results[i] belonging to candidates[i]. At most Concurrency probes run at
// once. Duplicates are probed independently.
//
// If ctx is cancelled, no further probes are started, the ones in flight
// are allowed to finish, and ctx.Err() is returned with a nil slice.
func (c *Checker) CheckAll(ctx context.Context, candidates []string) ([]model.ProbeResult, error) {
	total := len(candidates)
	c.logger.Info("starting checks",
		"total", total,
		"concurrency", c.concurrency,
	)
	startTime := time.Now()

	results := make([]model.ProbeResult, total)

	// Workers send the index of the slot they filled; the collector is the
	// only goroutine that talks to the observer.
	completed := make(chan int, c.concurrency)
	collectorDone := make(chan struct{})
	c.observer.Start(total)
	go func() {
		defer close(collectorDone)
		done := 0
		for i := range completed {
			done++
			c.observer.Observe(done, results[i])
		}
		c.observer.Finish()
	}()

	g := new(errgroup.Group)
	g.SetLimit(c.concurrency)

	var cancelled error
	for i, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			cancelled = err
			break
		}
		g.Go(func() error {
			results[i] = c.prober.Probe(ctx, candidate)
			completed <- i
			return nil
		})
	}

	_ = g.Wait() //nolint:errcheck // workers never return errors
	close(completed)
	<-collectorDone

	if cancelled == nil {
		cancelled = ctx.Err()
	}
	if cancelled != nil {
		c.logger.Warn("checks cancelled", "reason", cancelled)
		return nil, cancelled
	}

	c.logger.Info("checks complete",
		"total", total,
		"elapsed", time.Since(startTime),
	)
	return results, nil
}
