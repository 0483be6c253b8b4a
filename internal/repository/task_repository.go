package repository

import (
	"context"
	"errors"
	"strings"
	"sync"

	"talent-match/internal/domain/task"
)

var (
	ErrTaskNotFound = errors.New("task not found")
)

const defaultTaskSampleSize = 3

type TaskRepository interface {
	List(ctx context.Context) ([]task.Task, error)
	FindByID(ctx context.Context, id string) (task.Task, error)
	FindBySkills(ctx context.Context, skills []string) ([]task.Task, error)
}

type MemoryTaskRepository struct {
	mu    sync.RWMutex
	items []task.Task
	index map[string]int
}

func NewMemoryTaskRepository(items []task.Task) *MemoryTaskRepository {
	r := &MemoryTaskRepository{
		items: make([]task.Task, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for _, it := range items {
		if _, dup := r.index[it.ID]; dup {
			continue
		}
		r.index[it.ID] = len(r.items)
		r.items = append(r.items, it)
	}
	return r
}

func (r *MemoryTaskRepository) List(ctx context.Context) ([]task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]task.Task(nil), r.items...), nil
}

func (r *MemoryTaskRepository) FindByID(ctx context.Context, id string) (task.Task, error) {
	if err := ctx.Err(); err != nil {
		return task.Task{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return task.Task{}, ErrTaskNotFound
	}
	return r.items[i], nil
}

// FindBySkills returns tasks whose hard or soft requirement names overlap any
// of skills by case-insensitive substring in either direction. No skills
// returns every task; skills with no hit return the first three tasks.
func (r *MemoryTaskRepository) FindBySkills(ctx context.Context, skills []string) ([]task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	normalized := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			normalized = append(normalized, s)
		}
	}
	if len(normalized) == 0 {
		return append([]task.Task(nil), r.items...), nil
	}

	out := make([]task.Task, 0)
	for _, t := range r.items {
		if taskMentionsAny(t, normalized) {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		n := defaultTaskSampleSize
		if len(r.items) < n {
			n = len(r.items)
		}
		return append([]task.Task(nil), r.items[:n]...), nil
	}
	return out, nil
}

func taskMentionsAny(t task.Task, skills []string) bool {
	for _, req := range t.AllRequirements() {
		name := strings.ToLower(req.SkillName)
		for _, s := range skills {
			if strings.Contains(name, s) || strings.Contains(s, name) {
				return true
			}
		}
	}
	return false
}
