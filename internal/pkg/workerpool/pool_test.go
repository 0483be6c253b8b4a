package workerpool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAll_ReturnsErrorsInTaskOrder(t *testing.T) {
	boom := errors.New("boom")
	errs := RunAll(context.Background(), 3, 0,
		func(context.Context) error { time.Sleep(20 * time.Millisecond); return boom },
		func(context.Context) error { return nil },
		func(context.Context) error { return boom },
	)

	require.Len(t, errs, 3)
	assert.ErrorIs(t, errs[0], boom)
	assert.NoError(t, errs[1])
	assert.ErrorIs(t, errs[2], boom)
}

func TestRunAll_NoTasks(t *testing.T) {
	assert.Empty(t, RunAll(context.Background(), 2, 0))
}

func TestRunAll_RunsConcurrently(t *testing.T) {
	var running, peak atomic.Int32
	task := func(context.Context) error {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(30 * time.Millisecond)
		running.Add(-1)
		return nil
	}

	RunAll(context.Background(), 2, 0, task, task)
	assert.Equal(t, int32(2), peak.Load())
}

func TestRunAll_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Int32
	errs := RunAll(ctx, 1, 0, func(context.Context) error {
		ran.Add(1)
		return nil
	})

	require.Len(t, errs, 1)
	if ran.Load() == 0 {
		assert.ErrorIs(t, errs[0], context.Canceled)
	}
}

func TestPool_RateLimit(t *testing.T) {
	p := New(4, 4)
	p.SetRateLimit(20)
	results := p.Run(context.Background())

	start := time.Now()
	for i := 0; i < 3; i++ {
		p.Submit(func(context.Context) error { return nil })
	}
	p.Close()

	seen := map[int]bool{}
	for r := range results {
		seen[r.Index] = true
	}
	assert.Len(t, seen, 3)
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
}

func TestPool_NilSafe(t *testing.T) {
	var p *Pool
	p.SetRateLimit(5)
	p.Submit(func(context.Context) error { return nil })
	p.Close()

	_, open := <-p.Run(context.Background())
	assert.False(t, open)
}
