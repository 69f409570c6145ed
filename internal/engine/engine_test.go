package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParser_Lowercases(t *testing.T) {
	p := Parser{}
	assert.Equal(t, "select * from users", p.Parse("SELECT * FROM Users"))
	assert.Equal(t, "select 1", p.Parse("select 1"))
}

func TestOptimizer_WrapsPlan(t *testing.T) {
	o := Optimizer{}
	assert.Equal(t, "OptimizedPlan(select 1)", o.Optimize("select 1"))
}

func TestEngine_Execute(t *testing.T) {
	e := NewEngine(WithLatency(0, 0))

	result, err := e.Execute(context.Background(), "OptimizedPlan(select 1)")
	assert.NoError(t, err)
	assert.Equal(t, "Result for OptimizedPlan(select 1)", result)
}

func TestEngine_ExecuteBlocks(t *testing.T) {
	e := NewEngine(WithLatency(20*time.Millisecond, 0))

	start := time.Now()
	_, err := e.Execute(context.Background(), "plan")
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestEngine_ExecuteCancelled(t *testing.T) {
	e := NewEngine(WithLatency(time.Minute, 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Execute(ctx, "plan")
	assert.ErrorIs(t, err, context.Canceled)
}
