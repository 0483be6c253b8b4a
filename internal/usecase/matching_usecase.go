package usecase

import (
	"context"

	"talent-match/internal/domain/matching"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/pkg/logger"
	"talent-match/internal/repository"
)

// UseDefaultThreshold selects the configured threshold for a listing.
const UseDefaultThreshold = -1

// MatchCache stores ranked listings. Implementations treat an unreachable
// backend as a miss.
type MatchCache interface {
	JSONCache
	InvalidateMatches(ctx context.Context) error
}

type MatchingUsecase interface {
	Score(ctx context.Context, employeeID, taskID string) (matching.Result, error)
	EmployeesForTask(ctx context.Context, taskID string, threshold int) ([]matching.EmployeeMatch, error)
	TasksForEmployee(ctx context.Context, employeeID string, threshold int) ([]matching.TaskMatch, error)
}

type Thresholds struct {
	Employee int
	Task     int
}

type Matching struct {
	engine     *matching.Engine
	employees  repository.EmployeeRepository
	tasks      repository.TaskRepository
	cache      MatchCache
	thresholds Thresholds
	logger     *logger.Logger
}

func NewMatchingUsecase(
	engine *matching.Engine,
	employees repository.EmployeeRepository,
	tasks repository.TaskRepository,
	c MatchCache,
	thresholds Thresholds,
	log *logger.Logger,
) *Matching {
	if engine == nil {
		engine = matching.NewEngine(nil)
	}
	if thresholds.Employee <= 0 {
		thresholds.Employee = matching.DefaultEmployeeThreshold
	}
	if thresholds.Task <= 0 {
		thresholds.Task = matching.DefaultTaskThreshold
	}
	return &Matching{
		engine:     engine,
		employees:  employees,
		tasks:      tasks,
		cache:      c,
		thresholds: thresholds,
		logger:     logger.OrNop(log),
	}
}

func (u *Matching) Score(ctx context.Context, employeeID, taskID string) (matching.Result, error) {
	emp, err := u.employees.FindByID(ctx, employeeID)
	if err != nil {
		return matching.Result{}, mapRepoError(err)
	}
	t, err := u.tasks.FindByID(ctx, taskID)
	if err != nil {
		return matching.Result{}, mapRepoError(err)
	}
	return u.engine.Calculate(emp, t), nil
}

func (u *Matching) EmployeesForTask(ctx context.Context, taskID string, threshold int) ([]matching.EmployeeMatch, error) {
	threshold, err := normalizeThreshold(threshold, u.thresholds.Employee)
	if err != nil {
		return nil, err
	}
	t, err := u.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	key := cache.EmployeesForTaskKey(taskID, threshold)
	var cached []matching.EmployeeMatch
	if u.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	pool, err := u.employees.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	out := u.engine.RankEmployees(pool, t, threshold)
	u.cacheSet(ctx, key, out)
	return out, nil
}

func (u *Matching) TasksForEmployee(ctx context.Context, employeeID string, threshold int) ([]matching.TaskMatch, error) {
	threshold, err := normalizeThreshold(threshold, u.thresholds.Task)
	if err != nil {
		return nil, err
	}
	emp, err := u.employees.FindByID(ctx, employeeID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	key := cache.TasksForEmployeeKey(employeeID, threshold)
	var cached []matching.TaskMatch
	if u.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	tasks, err := u.tasks.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	out := u.engine.RankTasks(emp, tasks, threshold)
	u.cacheSet(ctx, key, out)
	return out, nil
}

func (u *Matching) cacheGet(ctx context.Context, key string, out any) bool {
	if u.cache == nil {
		return false
	}
	hit, err := u.cache.GetJSON(ctx, key, out)
	if err != nil {
		u.logger.Warn("match cache read failed", "key", key, "error", err)
		return false
	}
	return hit
}

func (u *Matching) cacheSet(ctx context.Context, key string, value any) {
	if u.cache == nil {
		return
	}
	if err := u.cache.SetJSON(ctx, key, value); err != nil {
		u.logger.Warn("match cache write failed", "key", key, "error", err)
	}
}

func normalizeThreshold(v, def int) (int, error) {
	if v == UseDefaultThreshold {
		return def, nil
	}
	if v < 0 || v > 100 {
		return 0, ErrInvalidInput
	}
	return v, nil
}
