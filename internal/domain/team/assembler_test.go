package team

import (
	"testing"

	"talent-match/internal/domain/employee"
	"talent-match/internal/domain/task"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_SeniorDeveloperTakesDeveloper(t *testing.T) {
	pool := []employee.Employee{
		{ID: "a", Position: "Product Manager", Capacity: 20},
		{ID: "b", Position: "Senior Developer", Capacity: 20},
	}

	res := Assemble(pool, []string{"Developer"}, nil)

	require.NotEmpty(t, res.Assignments)
	assert.Equal(t, "b", res.Assignments[0].EmployeeID)
	assert.Equal(t, "Developer", res.Assignments[0].Role)
	assert.Equal(t, float64(positionWeight), res.Assignments[0].Score)
}

func TestAssemble_UnfilledRolesAndBackfill(t *testing.T) {
	pool := []employee.Employee{
		{ID: "a", Position: "Developer"},
		{ID: "b", Position: "Analyst"},
		{ID: "c", Position: "Designer"},
		{ID: "d", Position: "Tester"},
	}

	res := Assemble(pool, []string{"Developer", "Astronaut"}, nil)

	assert.Equal(t, []string{"Astronaut"}, res.UnfilledRoles)
	require.Len(t, res.Assignments, 3)
	assert.Equal(t, "Developer", res.Assignments[0].Role)
	assert.Equal(t, RoleTeamMember, res.Assignments[1].Role)
	assert.Equal(t, "b", res.Assignments[1].EmployeeID)
	assert.Equal(t, RoleTeamMember, res.Assignments[2].Role)
	assert.Equal(t, "c", res.Assignments[2].EmployeeID)
}

func TestAssemble_SmallPoolAndEmptyPool(t *testing.T) {
	res := Assemble([]employee.Employee{{ID: "a"}}, nil, nil)
	require.Len(t, res.Assignments, 1)
	assert.Equal(t, RoleTeamMember, res.Assignments[0].Role)

	empty := Assemble(nil, []string{"Developer"}, nil)
	assert.Empty(t, empty.Assignments)
	assert.Equal(t, []string{"Developer"}, empty.UnfilledRoles)
}

func TestAssemble_GreedyNeverBacktracks(t *testing.T) {
	pool := []employee.Employee{
		{ID: "lead", Position: "Lead Developer"},
		{ID: "dev", Position: "Developer"},
	}

	res := Assemble(pool, []string{"Developer", "Lead"}, nil)

	require.Len(t, res.Assignments, 2)
	assert.Equal(t, "lead", res.Assignments[0].EmployeeID)
	assert.Equal(t, "Developer", res.Assignments[0].Role)
	assert.Equal(t, []string{"Lead"}, res.UnfilledRoles)
	assert.Equal(t, "dev", res.Assignments[1].EmployeeID)
	assert.Equal(t, RoleTeamMember, res.Assignments[1].Role)
}

func TestAssemble_TiesGoToEarlierEntry(t *testing.T) {
	pool := []employee.Employee{
		{ID: "first", Position: "Developer"},
		{ID: "second", Position: "Developer"},
	}

	res := Assemble(pool, []string{"Developer"}, nil)
	assert.Equal(t, "first", res.Assignments[0].EmployeeID)
}

func TestRoleScore(t *testing.T) {
	emp := employee.Employee{
		Position:          "Senior Data Engineer",
		PastExperience:    []employee.Experience{{Role: "Data Engineer"}, {Role: "Analyst"}},
		CareerAspirations: []string{"Principal Data Engineer"},
		BusinessUnitKnowledge: []employee.BusinessUnitKnowledge{
			{BusinessUnitName: "Finance", KnowledgeLevel: 3},
		},
		Capacity: 60,
	}
	relevance := []task.BusinessUnitRelevance{{BusinessUnitName: "Finance", RelevanceLevel: 4}}

	got := RoleScore(emp, "data engineer", relevance)
	want := float64(positionWeight+experienceWeight+aspirationWeight) + 12 + 6
	assert.Equal(t, want, got)

	assert.Equal(t, 0.0, RoleScore(employee.Employee{Capacity: 49}, "developer", nil))
}

func TestResultHelpers(t *testing.T) {
	res := Result{Assignments: []Assignment{
		{EmployeeID: "a", Role: "Developer", Employee: employee.Employee{ID: "a"}},
		{EmployeeID: "b", Role: "Analyst", Employee: employee.Employee{ID: "b"}},
	}}

	members := res.Members()
	require.Len(t, members, 2)
	assert.Equal(t, "a", members[0].ID)
	assert.Equal(t, map[string]string{"a": "Developer", "b": "Analyst"}, res.Roles())
}

func TestDefaultRoles(t *testing.T) {
	assert.Equal(t, []string{"developer", "designer", "business analyst"}, DefaultRoles(task.ProjectPrototype))
	assert.Len(t, DefaultRoles(task.ProjectProduct), 4)
	assert.Equal(t, []string{"project manager", "developer", "business analyst"}, DefaultRoles(task.ProjectService))
}
