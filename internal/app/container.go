package app

import (
	"context"
	"fmt"

	"talent-match/internal/config"
	"talent-match/internal/database"
	dbpostgres "talent-match/internal/database/postgres"
	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/validation"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/infrastructure/llm"
	"talent-match/internal/pkg/logger"
	"talent-match/internal/repository"
	"talent-match/internal/seeder"
	"talent-match/internal/usecase"
	"talent-match/internal/ws"

	"github.com/google/uuid"
)

// Container owns every long-lived dependency of the server.
type Container struct {
	Config config.Config
	Logger *logger.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	Employees *repository.MemoryEmployeeRepository
	Tasks     *repository.MemoryTaskRepository
	Ledger    *validation.Ledger

	Catalog        *usecase.Catalog
	Matching       *usecase.Matching
	Analysis       *usecase.Analysis
	Team           *usecase.Team
	Validation     *usecase.Validation
	Recommendation *usecase.Recommendation
}

func NewContainer(ctx context.Context, cfg config.Config, log *logger.Logger) (*Container, error) {
	log = logger.OrNop(log)
	c := &Container{Config: cfg, Logger: log}

	var source repository.CatalogSource
	if cfg.Database.Enabled() {
		connectCtx, cancel := context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
		defer cancel()

		db, err := dbpostgres.Connect(connectCtx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		c.DB = db
		source = repository.NewPostgresCatalogRepository(db)
		log.Info("catalog source", "source", "postgres", "host", cfg.Database.DBHost, "db", cfg.Database.DBName)
	} else {
		sample := seeder.SampleCatalog()
		source = repository.StaticCatalog{
			Employees:   sample.Employees,
			Tasks:       sample.Tasks,
			Assessments: sample.Assessments,
		}
		log.Info("catalog source", "source", "sample")
	}

	if err := c.loadCatalog(ctx, source); err != nil {
		_ = c.Close()
		return nil, err
	}

	c.Cache = cache.NewRedis(cfg.Redis, log)
	c.Hub = ws.NewHub(log)

	engine := matching.NewEngine(matching.MatcherByName(cfg.Matching.SkillMatcher))
	thresholds := usecase.Thresholds{
		Employee: cfg.Matching.EmployeeThreshold,
		Task:     cfg.Matching.TaskThreshold,
	}

	c.Catalog = usecase.NewCatalogUsecase(c.Employees, c.Tasks, c.Ledger)
	c.Matching = usecase.NewMatchingUsecase(engine, c.Employees, c.Tasks, c.Cache, thresholds, log)
	c.Analysis = usecase.NewAnalysisUsecase(c.Tasks)
	c.Team = usecase.NewTeamUsecase(c.Employees)
	c.Validation = usecase.NewValidationUsecase(c.Ledger, c.Cache, ws.NewNotifier(c.Hub, log), log)
	c.Recommendation = usecase.NewRecommendationUsecase(
		c.Employees,
		c.Tasks,
		c.Matching,
		llm.NewClient(cfg.LLM, log),
		c.Cache,
		usecase.RecommendationOptions{
			BusinessUnitRelevance: cfg.Matching.BusinessUnitRelevance,
			FallbackEmployees:     cfg.Matching.FallbackEmployeeCount,
			FallbackTasks:         cfg.Matching.FallbackTaskCount,
			GeneratorRPS:          cfg.LLM.RateLimit,
		},
		log,
	)

	return c, nil
}

func (c *Container) loadCatalog(ctx context.Context, source repository.CatalogSource) error {
	emps, err := source.LoadEmployees(ctx)
	if err != nil {
		return fmt.Errorf("load employees: %w", err)
	}
	tasks, err := source.LoadTasks(ctx)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	history, err := source.LoadAssessments(ctx)
	if err != nil {
		return fmt.Errorf("load assessments: %w", err)
	}

	for _, e := range emps {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("invalid employee %q: %w", e.ID, err)
		}
	}
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("invalid task %q: %w", t.ID, err)
		}
	}
	for _, a := range history {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("invalid assessment %q: %w", a.ID, err)
		}
	}

	c.Employees = repository.NewMemoryEmployeeRepository(emps)
	c.Tasks = repository.NewMemoryTaskRepository(tasks)
	c.Ledger = validation.NewLedger(c.Employees, history, validation.Options{
		Managers: c.Config.Matching.Managers,
		Window:   c.Config.Matching.ValidationWindow,
		NewID:    uuid.NewString,
	})

	c.Logger.Info("catalog loaded", "employees", len(emps), "tasks", len(tasks), "assessments", len(history))
	return nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
