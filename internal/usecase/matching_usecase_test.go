package usecase

import (
	"context"
	"testing"

	"talent-match/internal/domain/matching"
	"talent-match/internal/infrastructure/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatching(c MatchCache) *Matching {
	emps, tasks := testRepos()
	return NewMatchingUsecase(matching.NewEngine(nil), emps, tasks, c, Thresholds{}, nil)
}

func TestNormalizeThreshold(t *testing.T) {
	tests := []struct {
		in      int
		want    int
		wantErr bool
	}{
		{UseDefaultThreshold, 50, false},
		{0, 0, false},
		{100, 100, false},
		{101, 0, true},
		{-2, 0, true},
	}
	for _, tt := range tests {
		got, err := normalizeThreshold(tt.in, 50)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidInput, "threshold %d", tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestMatching_Score(t *testing.T) {
	u := newTestMatching(nil)
	ctx := context.Background()

	res, err := u.Score(ctx, "e1", "t1")
	require.NoError(t, err)
	assert.Equal(t, 100, res.HardSkillsScore)

	_, err = u.Score(ctx, "nope", "t1")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)

	_, err = u.Score(ctx, "e1", "nope")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestMatching_EmployeesForTaskIsSortedAndCached(t *testing.T) {
	c := newMemCache()
	u := newTestMatching(c)
	ctx := context.Background()

	first, err := u.EmployeesForTask(ctx, "t1", UseDefaultThreshold)
	require.NoError(t, err)
	require.NotEmpty(t, first)
	assert.Equal(t, "e1", first[0].Employee.ID)
	for i := 1; i < len(first); i++ {
		assert.GreaterOrEqual(t, first[i-1].Score, first[i].Score)
	}
	assert.Contains(t, c.keys(), cache.EmployeesForTaskKey("t1", matching.DefaultEmployeeThreshold))

	second, err := u.EmployeesForTask(ctx, "t1", UseDefaultThreshold)
	require.NoError(t, err)
	assert.Equal(t, 1, c.hits)
	assert.Equal(t, len(first), len(second))

	require.NoError(t, c.InvalidateMatches(ctx))
	assert.Empty(t, c.keys())
}

func TestMatching_ListingErrors(t *testing.T) {
	u := newTestMatching(nil)
	ctx := context.Background()

	_, err := u.EmployeesForTask(ctx, "t1", 101)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = u.EmployeesForTask(ctx, "missing", UseDefaultThreshold)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = u.TasksForEmployee(ctx, "missing", UseDefaultThreshold)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)

	_, err = u.TasksForEmployee(ctx, "e1", -7)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMatching_TasksForEmployee(t *testing.T) {
	u := newTestMatching(newMemCache())

	got, err := u.TasksForEmployee(context.Background(), "e1", 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "t1", got[0].Task.ID)
}
