package dto

import "talent-match/internal/domain/task"

type AssembleTeamRequest struct {
	EmployeeIDs           []string                     `json:"employee_ids"`
	Roles                 []string                     `json:"roles"`
	ProjectType           string                       `json:"project_type"`
	BusinessUnitRelevance []task.BusinessUnitRelevance `json:"business_unit_relevance"`
}

type TeamMemberResponse struct {
	EmployeeID string  `json:"employee_id"`
	Name       string  `json:"name"`
	Position   string  `json:"position"`
	Role       string  `json:"role"`
	Score      float64 `json:"score"`
}

type TeamResponse struct {
	Members       []TeamMemberResponse `json:"members"`
	UnfilledRoles []string             `json:"unfilled_roles"`
}
