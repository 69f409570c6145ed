package ports

import (
	"context"
	"time"

	"query-cache-service/internal/store"
	"query-cache-service/internal/strategy"
)

// Result is the outcome of one processed query.
type Result struct {
	Value string `json:"result"`
	Hit   bool   `json:"hit"`
}

// BenchmarkReport summarizes one benchmark run.
type BenchmarkReport struct {
	Queries int           `json:"queries"`
	Hits    int           `json:"hits"`
	Misses  int           `json:"misses"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

// QueryService maps incoming requests to the query pipeline.
type QueryService interface {
	Process(ctx context.Context, query string) (Result, error)
	SetStrategy(name string) strategy.Name
	Stats() store.Stats
	Benchmark(ctx context.Context) (BenchmarkReport, error)
}

// ResultCache is the surface the pipeline needs from the strategy manager.
type ResultCache interface {
	Get(key string) (string, bool)
	Put(key, value string)
	Stats() store.Stats
	Set(raw string) strategy.Name
}

// Executor runs an optimized plan and produces a result.
type Executor interface {
	Execute(ctx context.Context, plan string) (string, error)
}

// Transactions simulates transaction control around query execution.
type Transactions interface {
	Begin()
	Commit()
	Rollback()
}

// Locks simulates resource-level locking.
type Locks interface {
	Acquire(resource string)
	Release(resource string)
}
