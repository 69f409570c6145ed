package engine

import (
	"context"
	"math/rand"
	"time"
)

// Engine simulates query execution: it blocks for a randomized latency and
// fabricates a result for the plan.
type Engine struct {
	baseDelay time.Duration
	jitter    time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithLatency overrides the simulated execution delay: every Execute blocks
// for base plus a random duration below jitter.
func WithLatency(base, jitter time.Duration) Option {
	return func(e *Engine) {
		e.baseDelay = base
		e.jitter = jitter
	}
}

// NewEngine creates an Engine with the reference latency of 150-300ms.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		baseDelay: 150 * time.Millisecond,
		jitter:    150 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs the plan, blocking for the simulated latency. The wait honors
// ctx cancellation; the cache core itself never sees a partial result.
func (e *Engine) Execute(ctx context.Context, plan string) (string, error) {
	delay := e.baseDelay
	if e.jitter > 0 {
		delay += time.Duration(rand.Int63n(int64(e.jitter)))
	}

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	return "Result for " + plan, nil
}
