package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"talent-match/internal/database"
	"talent-match/internal/domain/assessment"
	"talent-match/internal/domain/employee"
	"talent-match/internal/domain/task"
)

var (
	ErrCatalogUnavailable = errors.New("catalog database unavailable")
)

// CatalogSource loads the full employee, task and assessment sets once at
// startup. The in-memory repositories serve every request afterwards.
type CatalogSource interface {
	LoadEmployees(ctx context.Context) ([]employee.Employee, error)
	LoadTasks(ctx context.Context) ([]task.Task, error)
	LoadAssessments(ctx context.Context) ([]assessment.Assessment, error)
}

type PostgresCatalogRepository struct {
	db database.DB
}

func NewPostgresCatalogRepository(db database.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

func (r *PostgresCatalogRepository) LoadEmployees(ctx context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0)
	err := r.scanJSON(ctx, `SELECT profile FROM employee_profiles ORDER BY id ASC`, func(b []byte) error {
		var e employee.Employee
		if err := json.Unmarshal(b, &e); err != nil {
			return err
		}
		if err := e.Validate(); err != nil {
			return fmt.Errorf("employee %s: %w", e.ID, err)
		}
		out = append(out, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCatalogRepository) LoadTasks(ctx context.Context) ([]task.Task, error) {
	out := make([]task.Task, 0)
	err := r.scanJSON(ctx, `SELECT profile FROM task_profiles ORDER BY id ASC`, func(b []byte) error {
		var t task.Task
		if err := json.Unmarshal(b, &t); err != nil {
			return err
		}
		if err := t.Validate(); err != nil {
			return fmt.Errorf("task %s: %w", t.ID, err)
		}
		out = append(out, t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCatalogRepository) LoadAssessments(ctx context.Context) ([]assessment.Assessment, error) {
	out := make([]assessment.Assessment, 0)
	err := r.scanJSON(ctx, `SELECT body FROM skill_assessments ORDER BY assessed_at ASC, id ASC`, func(b []byte) error {
		var a assessment.Assessment
		if err := json.Unmarshal(b, &a); err != nil {
			return err
		}
		if err := a.Validate(); err != nil {
			return fmt.Errorf("assessment %s: %w", a.ID, err)
		}
		out = append(out, a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCatalogRepository) UpsertEmployee(ctx context.Context, tx database.Tx, e employee.Employee) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	_, err = tx.Exec(
		ctx,
		`INSERT INTO employee_profiles (id, profile) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET profile = EXCLUDED.profile, updated_at = now()`,
		e.ID,
		b,
	)
	return err
}

func (r *PostgresCatalogRepository) UpsertTask(ctx context.Context, tx database.Tx, t task.Task) error {
	b, err := json.Marshal(t)
	if err != nil {
		return err
	}
	_, err = tx.Exec(
		ctx,
		`INSERT INTO task_profiles (id, profile) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET profile = EXCLUDED.profile, updated_at = now()`,
		t.ID,
		b,
	)
	return err
}

func (r *PostgresCatalogRepository) InsertAssessment(ctx context.Context, tx database.Tx, a assessment.Assessment) error {
	b, err := json.Marshal(a)
	if err != nil {
		return err
	}
	_, err = tx.Exec(
		ctx,
		`INSERT INTO skill_assessments (id, employee_id, assessed_at, body) VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING`,
		a.ID,
		a.EmployeeID,
		a.Date,
		b,
	)
	return err
}

func (r *PostgresCatalogRepository) scanJSON(ctx context.Context, query string, fn func([]byte) error) error {
	if r == nil || r.db == nil {
		return ErrCatalogUnavailable
	}
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var b []byte
		if err := rows.Scan(&b); err != nil {
			return err
		}
		if err := fn(b); err != nil {
			return err
		}
	}
	return rows.Err()
}

// StaticCatalog serves a fixed in-process data set.
type StaticCatalog struct {
	Employees   []employee.Employee
	Tasks       []task.Task
	Assessments []assessment.Assessment
}

func (s StaticCatalog) LoadEmployees(ctx context.Context) ([]employee.Employee, error) {
	return append([]employee.Employee(nil), s.Employees...), ctx.Err()
}

func (s StaticCatalog) LoadTasks(ctx context.Context) ([]task.Task, error) {
	return append([]task.Task(nil), s.Tasks...), ctx.Err()
}

func (s StaticCatalog) LoadAssessments(ctx context.Context) ([]assessment.Assessment, error) {
	return append([]assessment.Assessment(nil), s.Assessments...), ctx.Err()
}
