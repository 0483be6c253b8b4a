package seeder

import (
	"context"
	"fmt"

	"talent-match/internal/database"
	"talent-match/internal/repository"
	appseeder "talent-match/internal/seeder"
)

// CatalogSeeder upserts employee and task profiles and inserts missing
// assessments in a single transaction.
type CatalogSeeder struct {
	Catalog appseeder.Catalog
}

func (CatalogSeeder) Name() string { return "catalog" }

func (s CatalogSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "employee_profiles", "id", "profile", "updated_at"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "task_profiles", "id", "profile", "updated_at"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "skill_assessments", "id", "employee_id", "assessed_at", "body"); err != nil {
		return err
	}

	repo := repository.NewPostgresCatalogRepository(db)

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, e := range s.Catalog.Employees {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("employee %s: %w", e.ID, err)
		}
		if err := repo.UpsertEmployee(ctx, tx, e); err != nil {
			return err
		}
	}
	for _, t := range s.Catalog.Tasks {
		if err := repo.UpsertTask(ctx, tx, t); err != nil {
			return err
		}
	}
	for _, a := range s.Catalog.Assessments {
		if err := repo.InsertAssessment(ctx, tx, a); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
