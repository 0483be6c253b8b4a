package cache

import (
	"context"
	"testing"
	"time"

	"talent-match/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "match:task:task001:t50", EmployeesForTaskKey("task001", 50))
	assert.Equal(t, "match:employee:emp001:t70", TasksForEmployeeKey("emp001", 70))
}

func TestDisabledRedisDegrades(t *testing.T) {
	r := NewRedis(config.RedisConfig{TTL: time.Minute}, nil)
	ctx := context.Background()

	assert.Error(t, r.Ping(ctx))
	require.NoError(t, r.SetJSON(ctx, "k", map[string]int{"a": 1}))

	var out map[string]int
	hit, err := r.GetJSON(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	assert.NoError(t, r.InvalidateMatches(ctx))
	assert.NoError(t, r.Close())
}

func TestNilRedis(t *testing.T) {
	var r *Redis
	hit, err := r.GetJSON(context.Background(), "k", &struct{}{})
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, r.Close())
}
