package usecase

import (
	"context"
	"testing"

	"talent-match/internal/domain/assessment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticHistory map[string][]assessment.Assessment

func (h staticHistory) ForEmployee(id string) []assessment.Assessment {
	return h[id]
}

func newTestCatalog(h AssessmentHistory) *Catalog {
	emps, tasks := testRepos()
	return NewCatalogUsecase(emps, tasks, h)
}

func TestCatalog_Lookups(t *testing.T) {
	u := newTestCatalog(nil)
	ctx := context.Background()

	emps, err := u.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, emps, 4)

	tasks, err := u.ListTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 3)

	e, err := u.GetEmployee(ctx, " e2 ")
	require.NoError(t, err)
	assert.Equal(t, "Ben", e.Name)

	_, err = u.GetEmployee(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = u.GetEmployee(ctx, "zz")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
	_, err = u.GetTask(ctx, "zz")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestCatalog_Filters(t *testing.T) {
	u := newTestCatalog(nil)
	ctx := context.Background()

	mature, err := u.EmployeesByProjectPhase(ctx, " Mature ")
	require.NoError(t, err)
	assert.Equal(t, []string{"e1"}, employeeIDs(mature))

	_, err = u.EmployeesByProjectPhase(ctx, "sunset")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = u.EmployeesByBusinessUnit(ctx, " ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	none, err := u.EmployeesByBusinessUnit(ctx, "Finance")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCatalog_EmployeeProfiles(t *testing.T) {
	u := newTestCatalog(nil)
	ctx := context.Background()

	got, err := u.EmployeeProfiles(ctx, []string{"e3", "e1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"e3", "e1"}, employeeIDs(got))

	_, err = u.EmployeeProfiles(ctx, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = u.EmployeeProfiles(ctx, []string{"e1", "zz"})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestCatalog_Assessments(t *testing.T) {
	ctx := context.Background()

	empty, err := newTestCatalog(nil).Assessments(ctx, "e1")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	u := newTestCatalog(staticHistory{"e1": {{ID: "a1", EmployeeID: "e1"}}})
	got, err := u.Assessments(ctx, "e1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a1", got[0].ID)

	_, err = u.Assessments(ctx, "zz")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestCatalog_Experiences(t *testing.T) {
	u := newTestCatalog(nil)
	ctx := context.Background()

	items, err := u.Experiences(ctx, "e1")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	_, err = u.Experiences(ctx, "zz")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}
