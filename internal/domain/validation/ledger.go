package validation

import (
	"context"
	"errors"
	"sync"
	"time"

	"talent-match/internal/domain/assessment"
	"talent-match/internal/domain/employee"

	"github.com/google/uuid"
)

const DefaultWindow = 90 * 24 * time.Hour

// Consensus requires at least this many agreeing assessments in the window.
const consensusQuorum = 2

var (
	ErrUnknownEmployee = errors.New("employee not found")
	ErrUnknownSkill    = errors.New("skill not found for employee")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrMissingAssessor = errors.New("assessor is required")
)

// EmployeeStore gives the ledger exclusive access to one profile while fn
// runs. found is false when no employee has the ID.
type EmployeeStore interface {
	WithEmployee(ctx context.Context, id string, fn func(emp *employee.Employee) error) (found bool, err error)
}

type Input struct {
	SubjectID  string
	SkillID    string
	AssessorID string
	NewRating  int
	Comment    string
}

type Outcome struct {
	Assessment assessment.Assessment
	Updated    bool
	Skill      employee.Skill
}

type Options struct {
	Managers []string
	Window   time.Duration
	Now      func() time.Time
	NewID    func() string
}

// Ledger is an append-only log of assessments. A subject's stored proficiency
// changes only on a manager assessment or when recent assessments agree.
type Ledger struct {
	mu      sync.Mutex
	store   EmployeeStore
	entries []assessment.Assessment

	managers map[string]struct{}
	window   time.Duration
	now      func() time.Time
	newID    func() string
}

func NewLedger(store EmployeeStore, history []assessment.Assessment, opts Options) *Ledger {
	managers := make(map[string]struct{}, len(opts.Managers))
	for _, m := range opts.Managers {
		managers[m] = struct{}{}
	}
	window := opts.Window
	if window <= 0 {
		window = DefaultWindow
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	return &Ledger{
		store:    store,
		entries:  append([]assessment.Assessment(nil), history...),
		managers: managers,
		window:   window,
		now:      now,
		newID:    newID,
	}
}

func (l *Ledger) Classify(subjectID, assessorID string) assessment.Type {
	if subjectID == assessorID {
		return assessment.TypeSelf
	}
	if _, ok := l.managers[assessorID]; ok {
		return assessment.TypeManager
	}
	return assessment.TypePeer
}

// Record appends an assessment and applies the consensus rule. Appends are
// serialized so the window read and the proficiency write happen together.
func (l *Ledger) Record(ctx context.Context, in Input) (Outcome, error) {
	if in.NewRating < 1 || in.NewRating > 5 {
		return Outcome{}, ErrInvalidRating
	}
	if in.AssessorID == "" {
		return Outcome{}, ErrMissingAssessor
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var out Outcome
	found, err := l.store.WithEmployee(ctx, in.SubjectID, func(emp *employee.Employee) error {
		skill := emp.FindSkill(in.SkillID)
		if skill == nil {
			return ErrUnknownSkill
		}

		now := l.now()
		typ := l.Classify(in.SubjectID, in.AssessorID)
		a := assessment.Assessment{
			ID:         l.newID(),
			Date:       now,
			Type:       typ,
			AssessorID: in.AssessorID,
			EmployeeID: in.SubjectID,
			Quarter:    assessment.QuarterOf(now),
			Year:       now.Year(),
			SkillsAssessed: []assessment.SkillRating{{
				SkillID:        in.SkillID,
				PreviousRating: skill.Proficiency,
				NewRating:      in.NewRating,
				Comments:       in.Comment,
			}},
			OverallComments: "Assessment for " + skill.Name,
		}
		l.entries = append(l.entries, a)

		out.Assessment = a
		if typ == assessment.TypeManager || l.consensus(in.SubjectID, in.SkillID, in.NewRating, now) {
			skill.Proficiency = in.NewRating
			skill.LastValidated = now
			if !contains(skill.ValidatedBy, in.AssessorID) {
				skill.ValidatedBy = append(skill.ValidatedBy, in.AssessorID)
			}
			out.Updated = true
		}
		out.Skill = *skill
		out.Skill.ValidatedBy = append([]string(nil), skill.ValidatedBy...)
		return nil
	})
	if err != nil {
		return Outcome{}, err
	}
	if !found {
		return Outcome{}, ErrUnknownEmployee
	}
	return out, nil
}

// consensus reports whether the trailing window holds at least two
// assessments of the skill and every one of them carries rating.
func (l *Ledger) consensus(subjectID, skillID string, rating int, now time.Time) bool {
	count := 0
	for _, a := range l.entries {
		if a.EmployeeID != subjectID {
			continue
		}
		r, ok := a.RatingFor(skillID)
		if !ok {
			continue
		}
		if now.Sub(a.Date) >= l.window {
			continue
		}
		if r.NewRating != rating {
			return false
		}
		count++
	}
	return count >= consensusQuorum
}

// ForEmployee returns the subject's assessments in append order.
func (l *Ledger) ForEmployee(employeeID string) []assessment.Assessment {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]assessment.Assessment, 0)
	for _, a := range l.entries {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out
}

func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func contains(list []string, v string) bool {
	for _, it := range list {
		if it == v {
			return true
		}
	}
	return false
}
