package validation

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"talent-match/internal/domain/assessment"
	"talent-match/internal/domain/employee"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu   sync.Mutex
	emps map[string]*employee.Employee
}

func newFakeStore(emps ...employee.Employee) *fakeStore {
	s := &fakeStore{emps: make(map[string]*employee.Employee)}
	for i := range emps {
		e := emps[i]
		s.emps[e.ID] = &e
	}
	return s
}

func (s *fakeStore) WithEmployee(_ context.Context, id string, fn func(emp *employee.Employee) error) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.emps[id]
	if !ok {
		return false, nil
	}
	return true, fn(e)
}

func (s *fakeStore) proficiency(id, skillID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.emps[id].FindSkill(skillID).Proficiency
}

var fixedNow = time.Date(2024, time.May, 10, 9, 0, 0, 0, time.UTC)

func newTestLedger(store EmployeeStore, history ...assessment.Assessment) *Ledger {
	n := 0
	return NewLedger(store, history, Options{
		Managers: []string{"mgr"},
		Window:   90 * 24 * time.Hour,
		Now:      func() time.Time { return fixedNow },
		NewID: func() string {
			n++
			return fmt.Sprintf("a%d", n)
		},
	})
}

func subject() employee.Employee {
	return employee.Employee{
		ID:   "emp001",
		Name: "Jane",
		HardSkills: []employee.Skill{
			{ID: "hs1", Name: "React", Category: employee.SkillCategoryHard, Proficiency: 3},
		},
	}
}

func TestLedger_Classify(t *testing.T) {
	l := newTestLedger(newFakeStore())

	assert.Equal(t, assessment.TypeSelf, l.Classify("emp001", "emp001"))
	assert.Equal(t, assessment.TypeManager, l.Classify("emp001", "mgr"))
	assert.Equal(t, assessment.TypePeer, l.Classify("emp001", "emp002"))
}

func TestLedger_ManagerUpdatesImmediately(t *testing.T) {
	store := newFakeStore(subject())
	l := newTestLedger(store)

	out, err := l.Record(context.Background(), Input{SubjectID: "emp001", SkillID: "hs1", AssessorID: "mgr", NewRating: 5, Comment: "great"})

	require.NoError(t, err)
	assert.True(t, out.Updated)
	assert.Equal(t, 5, out.Skill.Proficiency)
	assert.Equal(t, []string{"mgr"}, out.Skill.ValidatedBy)
	assert.Equal(t, fixedNow, out.Skill.LastValidated)
	assert.Equal(t, 5, store.proficiency("emp001", "hs1"))

	a := out.Assessment
	assert.Equal(t, "a1", a.ID)
	assert.Equal(t, assessment.TypeManager, a.Type)
	assert.Equal(t, 2, a.Quarter)
	assert.Equal(t, 2024, a.Year)
	require.Len(t, a.SkillsAssessed, 1)
	assert.Equal(t, 3, a.SkillsAssessed[0].PreviousRating)
	assert.Equal(t, 5, a.SkillsAssessed[0].NewRating)
}

func TestLedger_LonePeerLeavesProficiency(t *testing.T) {
	store := newFakeStore(subject())
	l := newTestLedger(store)

	out, err := l.Record(context.Background(), Input{SubjectID: "emp001", SkillID: "hs1", AssessorID: "emp002", NewRating: 4})

	require.NoError(t, err)
	assert.False(t, out.Updated)
	assert.Equal(t, 3, out.Skill.Proficiency)
	assert.Equal(t, 3, store.proficiency("emp001", "hs1"))
	assert.Equal(t, 1, l.Len())
}

func TestLedger_ConsensusOfTwo(t *testing.T) {
	store := newFakeStore(subject())
	l := newTestLedger(store)
	ctx := context.Background()

	_, err := l.Record(ctx, Input{SubjectID: "emp001", SkillID: "hs1", AssessorID: "emp002", NewRating: 4})
	require.NoError(t, err)
	out, err := l.Record(ctx, Input{SubjectID: "emp001", SkillID: "hs1", AssessorID: "emp003", NewRating: 4})
	require.NoError(t, err)

	assert.True(t, out.Updated)
	assert.Equal(t, 4, store.proficiency("emp001", "hs1"))
}

func TestLedger_DisagreementBlocksConsensus(t *testing.T) {
	store := newFakeStore(subject())
	l := newTestLedger(store)
	ctx := context.Background()

	_, err := l.Record(ctx, Input{SubjectID: "emp001", SkillID: "hs1", AssessorID: "emp002", NewRating: 2})
	require.NoError(t, err)
	_, err = l.Record(ctx, Input{SubjectID: "emp001", SkillID: "hs1", AssessorID: "emp003", NewRating: 4})
	require.NoError(t, err)
	out, err := l.Record(ctx, Input{SubjectID: "emp001", SkillID: "hs1", AssessorID: "emp004", NewRating: 4})
	require.NoError(t, err)

	assert.False(t, out.Updated)
	assert.Equal(t, 3, store.proficiency("emp001", "hs1"))
}

func TestLedger_WindowExcludesOldAssessments(t *testing.T) {
	old := assessment.Assessment{
		ID:             "old",
		Date:           fixedNow.Add(-91 * 24 * time.Hour),
		Type:           assessment.TypePeer,
		EmployeeID:     "emp001",
		AssessorID:     "emp009",
		SkillsAssessed: []assessment.SkillRating{{SkillID: "hs1", NewRating: 1}},
	}
	store := newFakeStore(subject())
	l := newTestLedger(store, old)
	ctx := context.Background()

	_, err := l.Record(ctx, Input{SubjectID: "emp001", SkillID: "hs1", AssessorID: "emp002", NewRating: 4})
	require.NoError(t, err)
	out, err := l.Record(ctx, Input{SubjectID: "emp001", SkillID: "hs1", AssessorID: "emp003", NewRating: 4})
	require.NoError(t, err)

	assert.True(t, out.Updated)
	assert.Len(t, l.ForEmployee("emp001"), 3)
	assert.Equal(t, "old", l.ForEmployee("emp001")[0].ID)
}

func TestLedger_RecordErrors(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want error
	}{
		{"rating too low", Input{SubjectID: "emp001", SkillID: "hs1", AssessorID: "mgr", NewRating: 0}, ErrInvalidRating},
		{"rating too high", Input{SubjectID: "emp001", SkillID: "hs1", AssessorID: "mgr", NewRating: 6}, ErrInvalidRating},
		{"missing assessor", Input{SubjectID: "emp001", SkillID: "hs1", NewRating: 3}, ErrMissingAssessor},
		{"unknown employee", Input{SubjectID: "nobody", SkillID: "hs1", AssessorID: "mgr", NewRating: 3}, ErrUnknownEmployee},
		{"unknown skill", Input{SubjectID: "emp001", SkillID: "zz", AssessorID: "mgr", NewRating: 3}, ErrUnknownSkill},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLedger(newFakeStore(subject()))
			_, err := l.Record(context.Background(), tt.in)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, 0, l.Len())
		})
	}
}

func TestQuarterOf(t *testing.T) {
	assert.Equal(t, 1, assessment.QuarterOf(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, assessment.QuarterOf(time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 3, assessment.QuarterOf(time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 4, assessment.QuarterOf(time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)))
}
