package team

import (
	"strings"

	"talent-match/internal/domain/employee"
	"talent-match/internal/domain/task"
)

const (
	RoleTeamMember = "Team Member"

	minTeamSize = 3

	positionWeight   = 10
	experienceWeight = 5
	aspirationWeight = 3
	capacityFloor    = 50
)

type Assignment struct {
	EmployeeID string            `json:"employee_id"`
	Role       string            `json:"role"`
	Score      float64           `json:"score"`
	Employee   employee.Employee `json:"employee"`
}

type Result struct {
	Assignments   []Assignment `json:"assignments"`
	UnfilledRoles []string     `json:"unfilled_roles"`
}

// Members returns the assigned employees in assignment order.
func (r Result) Members() []employee.Employee {
	out := make([]employee.Employee, 0, len(r.Assignments))
	for _, a := range r.Assignments {
		out = append(out, a.Employee)
	}
	return out
}

// Roles maps employee ID to assigned role.
func (r Result) Roles() map[string]string {
	out := make(map[string]string, len(r.Assignments))
	for _, a := range r.Assignments {
		out[a.EmployeeID] = a.Role
	}
	return out
}

// DefaultRoles returns the roles used when a request names none.
func DefaultRoles(pt task.ProjectType) []string {
	switch pt {
	case task.ProjectPrototype:
		return []string{"developer", "designer", "business analyst"}
	case task.ProjectProduct:
		return []string{"product manager", "developer", "designer", "qa engineer"}
	default:
		return []string{"project manager", "developer", "business analyst"}
	}
}

// Assemble assigns the best unassigned candidate to each role in order.
// Assignment is greedy and never backtracks: an early role may take the
// candidate a later role would have preferred. Ties go to the earlier pool
// entry. Afterwards the team is backfilled in pool order with "Team Member"
// seats until it has min(3, len(pool)) members.
func Assemble(pool []employee.Employee, roles []string, relevance []task.BusinessUnitRelevance) Result {
	assigned := make(map[string]bool, len(pool))
	res := Result{
		Assignments:   make([]Assignment, 0, len(roles)),
		UnfilledRoles: make([]string, 0),
	}

	for _, role := range roles {
		bestIdx := -1
		bestScore := 0.0
		for i, emp := range pool {
			if assigned[emp.ID] {
				continue
			}
			s := RoleScore(emp, role, relevance)
			if s > bestScore {
				bestScore = s
				bestIdx = i
			}
		}
		if bestIdx < 0 {
			res.UnfilledRoles = append(res.UnfilledRoles, role)
			continue
		}
		emp := pool[bestIdx]
		assigned[emp.ID] = true
		res.Assignments = append(res.Assignments, Assignment{EmployeeID: emp.ID, Role: role, Score: bestScore, Employee: emp})
	}

	floor := minTeamSize
	if len(pool) < floor {
		floor = len(pool)
	}
	for _, emp := range pool {
		if len(res.Assignments) >= floor {
			break
		}
		if assigned[emp.ID] {
			continue
		}
		assigned[emp.ID] = true
		res.Assignments = append(res.Assignments, Assignment{EmployeeID: emp.ID, Role: RoleTeamMember, Employee: emp})
	}

	return res
}

// RoleScore is the heuristic fit of one employee for one role label.
func RoleScore(emp employee.Employee, role string, relevance []task.BusinessUnitRelevance) float64 {
	r := strings.ToLower(role)
	score := 0.0

	if strings.Contains(strings.ToLower(emp.Position), r) {
		score += positionWeight
	}
	for _, exp := range emp.PastExperience {
		if strings.Contains(strings.ToLower(exp.Role), r) {
			score += experienceWeight
		}
	}
	for _, a := range emp.CareerAspirations {
		if strings.Contains(strings.ToLower(a), r) {
			score += aspirationWeight
		}
	}
	for _, k := range emp.BusinessUnitKnowledge {
		for _, rel := range relevance {
			if k.BusinessUnitName == rel.BusinessUnitName {
				score += float64(k.KnowledgeLevel * rel.RelevanceLevel)
			}
		}
	}
	if emp.Capacity >= capacityFloor {
		score += float64(emp.Capacity) / 10
	}
	return score
}
