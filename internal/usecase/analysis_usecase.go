package usecase

import (
	"context"

	"talent-match/internal/domain/analysis"
	"talent-match/internal/repository"
)

type AnalysisUsecase interface {
	AnalyzeTask(ctx context.Context, taskID string) (analysis.Analysis, error)
}

type Analysis struct {
	tasks repository.TaskRepository
}

func NewAnalysisUsecase(tasks repository.TaskRepository) *Analysis {
	return &Analysis{tasks: tasks}
}

func (u *Analysis) AnalyzeTask(ctx context.Context, taskID string) (analysis.Analysis, error) {
	t, err := u.tasks.FindByID(ctx, taskID)
	if err != nil {
		return analysis.Analysis{}, mapRepoError(err)
	}
	return analysis.Analyze(t), nil
}
