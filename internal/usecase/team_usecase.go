package usecase

import (
	"context"
	"strings"

	"talent-match/internal/domain/employee"
	"talent-match/internal/domain/task"
	"talent-match/internal/domain/team"
	"talent-match/internal/repository"
)

type AssembleTeamInput struct {
	EmployeeIDs []string
	Roles       []string
	ProjectType task.ProjectType
	Relevance   []task.BusinessUnitRelevance
}

type TeamUsecase interface {
	AssembleTeam(ctx context.Context, in AssembleTeamInput) (team.Result, error)
}

type Team struct {
	employees repository.EmployeeRepository
}

func NewTeamUsecase(employees repository.EmployeeRepository) *Team {
	return &Team{employees: employees}
}

// AssembleTeam draws candidates from the listed employees, or from the whole
// catalog when none are listed. No roles means the project-type defaults.
func (u *Team) AssembleTeam(ctx context.Context, in AssembleTeamInput) (team.Result, error) {
	for _, r := range in.Relevance {
		if r.RelevanceLevel < 1 || r.RelevanceLevel > 5 {
			return team.Result{}, ErrInvalidInput
		}
	}

	ids := make([]string, 0, len(in.EmployeeIDs))
	for _, id := range in.EmployeeIDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	var (
		pool []employee.Employee
		err  error
	)
	if len(ids) == 0 {
		pool, err = u.employees.List(ctx)
	} else {
		pool, err = u.employees.FindByIDs(ctx, ids)
	}
	if err != nil {
		return team.Result{}, mapRepoError(err)
	}

	roles := cleanRoles(in.Roles)
	if len(roles) == 0 {
		roles = team.DefaultRoles(in.ProjectType)
	}
	return team.Assemble(pool, roles, in.Relevance), nil
}

func cleanRoles(in []string) []string {
	out := make([]string, 0, len(in))
	for _, r := range in {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}
