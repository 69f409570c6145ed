package service

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"query-cache-service/internal/observability"
)

// Prometheus globals are sticky across tests, so each assertion compares the
// delta around a single pipeline call instead of an absolute value.

func TestMetrics_HitAndMiss(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	initialMisses := testutil.ToFloat64(observability.CacheMissesTotal)

	_, err := svc.Process(ctx, "select 42")
	assert.NoError(t, err)

	newMisses := testutil.ToFloat64(observability.CacheMissesTotal)
	assert.Equal(t, initialMisses+1, newMisses, "CacheMissesTotal should increment by 1")

	initialHits := testutil.ToFloat64(observability.CacheHitsTotal)

	res, err := svc.Process(ctx, "select 42")
	assert.NoError(t, err)
	assert.True(t, res.Hit)

	newHits := testutil.ToFloat64(observability.CacheHitsTotal)
	assert.Equal(t, initialHits+1, newHits, "CacheHitsTotal should increment by 1")
}

func TestMetrics_OperationCounters(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	missCtr := observability.QueryOperationsTotal.WithLabelValues("query", "miss")
	hitCtr := observability.QueryOperationsTotal.WithLabelValues("query", "hit")

	initialMiss := testutil.ToFloat64(missCtr)
	initialHit := testutil.ToFloat64(hitCtr)

	_, err := svc.Process(ctx, "select now()")
	assert.NoError(t, err)
	_, err = svc.Process(ctx, "select now()")
	assert.NoError(t, err)

	assert.Equal(t, initialMiss+1, testutil.ToFloat64(missCtr))
	assert.Equal(t, initialHit+1, testutil.ToFloat64(hitCtr))
}

func TestMetrics_Evictions(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	initial := testutil.ToFloat64(observability.CacheEvictionsTotal)

	// Six distinct queries against the reference capacity of five force one
	// eviction.
	queries := []string{"q1", "q2", "q3", "q4", "q5", "q6"}
	for _, q := range queries {
		_, err := svc.Process(ctx, q)
		assert.NoError(t, err)
	}

	assert.Equal(t, initial+1, testutil.ToFloat64(observability.CacheEvictionsTotal))
}
