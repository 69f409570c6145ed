package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"query-cache-service/internal/core/ports"
	"query-cache-service/internal/engine"
	"query-cache-service/internal/observability"
	"query-cache-service/internal/store"
	"query-cache-service/internal/strategy"
)

// ensure implementation
var _ ports.QueryService = (*ServiceImpl)(nil)

// lockedResource is the simulated resource every execution locks.
const lockedResource = "table"

// ServiceImpl drives a query through parse, optimize and cache lookup, and on
// a miss through locked, transactional execution before caching the result.
type ServiceImpl struct {
	cache     ports.ResultCache
	parser    engine.Parser
	optimizer engine.Optimizer
	executor  ports.Executor
	txns      ports.Transactions
	locks     ports.Locks
	logger    *slog.Logger
}

func New(cache ports.ResultCache, executor ports.Executor, txns ports.Transactions, locks ports.Locks, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		cache:    cache,
		executor: executor,
		txns:     txns,
		locks:    locks,
		logger:   logger,
	}
}

// Process runs one query through the pipeline. The normalized query text is
// the cache key; an empty cached value is indistinguishable from an absent
// key and is treated as a miss.
func (s *ServiceImpl) Process(ctx context.Context, query string) (ports.Result, error) {
	queryID := uuid.NewString()
	start := time.Now()

	parsed := s.parser.Parse(query)
	plan := s.optimizer.Optimize(parsed)

	cached, _ := s.cache.Get(parsed)
	if cached != "" {
		observability.CacheHitsTotal.Inc()
		observability.QueryOperationsTotal.WithLabelValues("query", "hit").Inc()
		observability.QueryDurationSeconds.WithLabelValues("hit").Observe(time.Since(start).Seconds())
		s.logger.Info("cache hit", "query_id", queryID, "key", parsed)
		return ports.Result{Value: cached, Hit: true}, nil
	}

	observability.CacheMissesTotal.Inc()
	s.logger.Info("cache miss, executing query", "query_id", queryID, "key", parsed)

	s.locks.Acquire(lockedResource)
	s.txns.Begin()
	result, err := s.executor.Execute(ctx, plan)
	if err != nil {
		s.txns.Rollback()
		s.locks.Release(lockedResource)
		observability.QueryOperationsTotal.WithLabelValues("query", "error").Inc()
		return ports.Result{}, fmt.Errorf("execute plan: %w", err)
	}
	s.txns.Commit()
	s.locks.Release(lockedResource)

	s.cache.Put(parsed, result)

	observability.QueryOperationsTotal.WithLabelValues("query", "miss").Inc()
	observability.QueryDurationSeconds.WithLabelValues("miss").Observe(time.Since(start).Seconds())
	return ports.Result{Value: result, Hit: false}, nil
}

// SetStrategy swaps the active caching strategy, discarding all cached
// entries and counters. It returns the strategy actually installed.
func (s *ServiceImpl) SetStrategy(name string) strategy.Name {
	return s.cache.Set(name)
}

// Stats reports the active cache's counters and cached keys.
func (s *ServiceImpl) Stats() store.Stats {
	return s.cache.Stats()
}
