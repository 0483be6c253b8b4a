package assessment

import (
	"fmt"
	"time"
)

type Type string

const (
	TypeSelf    Type = "self"
	TypeManager Type = "manager"
	TypePeer    Type = "peer"
)

type SkillRating struct {
	SkillID        string `json:"skill_id"`
	PreviousRating int    `json:"previous_rating"`
	NewRating      int    `json:"new_rating"`
	Comments       string `json:"comments"`
}

// Assessment is immutable once appended to the ledger.
type Assessment struct {
	ID              string        `json:"id"`
	Date            time.Time     `json:"date"`
	Type            Type          `json:"type"`
	AssessorID      string        `json:"assessor_id"`
	EmployeeID      string        `json:"employee_id"`
	Quarter         int           `json:"quarter"`
	Year            int           `json:"year"`
	SkillsAssessed  []SkillRating `json:"skills_assessed"`
	OverallComments string        `json:"overall_comments,omitempty"`
}

// RatingFor returns the rating entry for skillID, if the assessment covers it.
func (a Assessment) RatingFor(skillID string) (SkillRating, bool) {
	for _, s := range a.SkillsAssessed {
		if s.SkillID == skillID {
			return s, true
		}
	}
	return SkillRating{}, false
}

func (t Type) Valid() bool {
	switch t {
	case TypeSelf, TypeManager, TypePeer:
		return true
	}
	return false
}

// Validate checks a historical assessment before it seeds the ledger.
// PreviousRating may be 0 when the skill had no recorded proficiency.
func (a Assessment) Validate() error {
	if a.ID == "" {
		return &FieldError{Field: "id", Reason: "empty"}
	}
	if a.EmployeeID == "" || a.AssessorID == "" {
		return &FieldError{Field: "employee_id", Reason: "subject and assessor are required"}
	}
	if !a.Type.Valid() {
		return &FieldError{Field: "type", Reason: fmt.Sprintf("%q is not self, manager or peer", a.Type)}
	}
	for _, r := range a.SkillsAssessed {
		if r.NewRating < 1 || r.NewRating > 5 {
			return &FieldError{Field: "new_rating", Reason: "skill " + r.SkillID + " out of range 1-5"}
		}
		if r.PreviousRating < 0 || r.PreviousRating > 5 {
			return &FieldError{Field: "previous_rating", Reason: "skill " + r.SkillID + " out of range 0-5"}
		}
	}
	return nil
}

type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return "invalid assessment " + e.Field + ": " + e.Reason
}

func QuarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}
