package repository

import (
	"context"
	"errors"
	"strings"
	"sync"

	"talent-match/internal/domain/employee"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
)

type EmployeeRepository interface {
	List(ctx context.Context) ([]employee.Employee, error)
	FindByID(ctx context.Context, id string) (employee.Employee, error)
	FindByIDs(ctx context.Context, ids []string) ([]employee.Employee, error)
	FindByProjectPhase(ctx context.Context, phase employee.ProjectPhase) ([]employee.Employee, error)
	FindByBusinessUnit(ctx context.Context, unitName string) ([]employee.Employee, error)
	WithEmployee(ctx context.Context, id string, fn func(emp *employee.Employee) error) (bool, error)
}

// MemoryEmployeeRepository keeps profiles in insertion order. Readers get
// deep copies; WithEmployee is the only mutation path.
type MemoryEmployeeRepository struct {
	mu    sync.RWMutex
	items []employee.Employee
	index map[string]int
}

func NewMemoryEmployeeRepository(items []employee.Employee) *MemoryEmployeeRepository {
	r := &MemoryEmployeeRepository{
		items: make([]employee.Employee, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for _, it := range items {
		if _, dup := r.index[it.ID]; dup {
			continue
		}
		r.index[it.ID] = len(r.items)
		r.items = append(r.items, it.Clone())
	}
	return r
}

func (r *MemoryEmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]employee.Employee, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it.Clone())
	}
	return out, nil
}

func (r *MemoryEmployeeRepository) FindByID(ctx context.Context, id string) (employee.Employee, error) {
	if err := ctx.Err(); err != nil {
		return employee.Employee{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return employee.Employee{}, ErrEmployeeNotFound
	}
	return r.items[i].Clone(), nil
}

// FindByIDs preserves the order of ids and fails on the first unknown one.
func (r *MemoryEmployeeRepository) FindByIDs(ctx context.Context, ids []string) ([]employee.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]employee.Employee, 0, len(ids))
	for _, id := range ids {
		i, ok := r.index[id]
		if !ok {
			return nil, ErrEmployeeNotFound
		}
		out = append(out, r.items[i].Clone())
	}
	return out, nil
}

func (r *MemoryEmployeeRepository) FindByProjectPhase(ctx context.Context, phase employee.ProjectPhase) ([]employee.Employee, error) {
	return r.filter(ctx, func(e employee.Employee) bool {
		return e.CurrentProjectPhase == phase
	})
}

func (r *MemoryEmployeeRepository) FindByBusinessUnit(ctx context.Context, unitName string) ([]employee.Employee, error) {
	unitName = strings.TrimSpace(unitName)
	return r.filter(ctx, func(e employee.Employee) bool {
		for _, bu := range e.BusinessUnitKnowledge {
			if strings.EqualFold(bu.BusinessUnitName, unitName) {
				return true
			}
		}
		return false
	})
}

func (r *MemoryEmployeeRepository) WithEmployee(ctx context.Context, id string, fn func(emp *employee.Employee) error) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return false, nil
	}
	return true, fn(&r.items[i])
}

func (r *MemoryEmployeeRepository) filter(ctx context.Context, keep func(employee.Employee) bool) ([]employee.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]employee.Employee, 0)
	for _, it := range r.items {
		if keep(it) {
			out = append(out, it.Clone())
		}
	}
	return out, nil
}
