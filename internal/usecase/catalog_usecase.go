package usecase

import (
	"context"
	"errors"
	"strings"

	"talent-match/internal/domain/assessment"
	"talent-match/internal/domain/employee"
	"talent-match/internal/domain/task"
	"talent-match/internal/repository"
)

// AssessmentHistory lists a subject's assessments in append order.
type AssessmentHistory interface {
	ForEmployee(employeeID string) []assessment.Assessment
}

type CatalogUsecase interface {
	ListEmployees(ctx context.Context) ([]employee.Employee, error)
	GetEmployee(ctx context.Context, id string) (employee.Employee, error)
	ListTasks(ctx context.Context) ([]task.Task, error)
	GetTask(ctx context.Context, id string) (task.Task, error)
	EmployeesByProjectPhase(ctx context.Context, phase string) ([]employee.Employee, error)
	EmployeesByBusinessUnit(ctx context.Context, unit string) ([]employee.Employee, error)
	EmployeeProfiles(ctx context.Context, ids []string) ([]employee.Employee, error)
	Assessments(ctx context.Context, employeeID string) ([]assessment.Assessment, error)
	Experiences(ctx context.Context, employeeID string) ([]employee.Experience, error)
}

type Catalog struct {
	employees repository.EmployeeRepository
	tasks     repository.TaskRepository
	history   AssessmentHistory
}

func NewCatalogUsecase(employees repository.EmployeeRepository, tasks repository.TaskRepository, history AssessmentHistory) *Catalog {
	return &Catalog{employees: employees, tasks: tasks, history: history}
}

func (u *Catalog) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	items, err := u.employees.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Catalog) GetEmployee(ctx context.Context, id string) (employee.Employee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return employee.Employee{}, ErrInvalidInput
	}
	e, err := u.employees.FindByID(ctx, id)
	if err != nil {
		return employee.Employee{}, mapRepoError(err)
	}
	return e, nil
}

func (u *Catalog) ListTasks(ctx context.Context) ([]task.Task, error) {
	items, err := u.tasks.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Catalog) GetTask(ctx context.Context, id string) (task.Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return task.Task{}, ErrInvalidInput
	}
	t, err := u.tasks.FindByID(ctx, id)
	if err != nil {
		return task.Task{}, mapRepoError(err)
	}
	return t, nil
}

func (u *Catalog) EmployeesByProjectPhase(ctx context.Context, phase string) ([]employee.Employee, error) {
	p := employee.ProjectPhase(strings.ToLower(strings.TrimSpace(phase)))
	if !p.Valid() {
		return nil, ErrInvalidInput
	}
	items, err := u.employees.FindByProjectPhase(ctx, p)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Catalog) EmployeesByBusinessUnit(ctx context.Context, unit string) ([]employee.Employee, error) {
	if strings.TrimSpace(unit) == "" {
		return nil, ErrInvalidInput
	}
	items, err := u.employees.FindByBusinessUnit(ctx, unit)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Catalog) EmployeeProfiles(ctx context.Context, ids []string) ([]employee.Employee, error) {
	if len(ids) == 0 {
		return nil, ErrInvalidInput
	}
	items, err := u.employees.FindByIDs(ctx, ids)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return items, nil
}

func (u *Catalog) Assessments(ctx context.Context, employeeID string) ([]assessment.Assessment, error) {
	if _, err := u.GetEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	if u.history == nil {
		return []assessment.Assessment{}, nil
	}
	return u.history.ForEmployee(employeeID), nil
}

// Experiences returns the employee's past project experience, never nil.
func (u *Catalog) Experiences(ctx context.Context, employeeID string) ([]employee.Experience, error) {
	e, err := u.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if e.PastExperience == nil {
		return []employee.Experience{}, nil
	}
	return e.PastExperience, nil
}

func mapRepoError(err error) error {
	switch {
	case errors.Is(err, repository.ErrEmployeeNotFound):
		return ErrEmployeeNotFound
	case errors.Is(err, repository.ErrTaskNotFound):
		return ErrTaskNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return ErrInternal
	}
}
