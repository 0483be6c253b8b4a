package assessment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAssessmentValidate(t *testing.T) {
	valid := func() Assessment {
		return Assessment{
			ID:         "assess001",
			Date:       time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC),
			Type:       TypeManager,
			AssessorID: "emp005",
			EmployeeID: "emp001",
			SkillsAssessed: []SkillRating{
				{SkillID: "skill001", PreviousRating: 4, NewRating: 5},
			},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Assessment)
		field  string
	}{
		{name: "valid", mutate: func(*Assessment) {}},
		{name: "no previous rating", mutate: func(a *Assessment) { a.SkillsAssessed[0].PreviousRating = 0 }},
		{name: "empty id", mutate: func(a *Assessment) { a.ID = "" }, field: "id"},
		{name: "missing assessor", mutate: func(a *Assessment) { a.AssessorID = "" }, field: "employee_id"},
		{name: "unknown type", mutate: func(a *Assessment) { a.Type = "director" }, field: "type"},
		{name: "rating zero", mutate: func(a *Assessment) { a.SkillsAssessed[0].NewRating = 0 }, field: "new_rating"},
		{name: "rating above range", mutate: func(a *Assessment) { a.SkillsAssessed[0].NewRating = 6 }, field: "new_rating"},
		{name: "previous above range", mutate: func(a *Assessment) { a.SkillsAssessed[0].PreviousRating = 7 }, field: "previous_rating"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid()
			tt.mutate(&a)
			err := a.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var fe *FieldError
			if assert.ErrorAs(t, err, &fe) {
				assert.Equal(t, tt.field, fe.Field)
			}
		})
	}
}

func TestQuarterOf(t *testing.T) {
	assert.Equal(t, 1, QuarterOf(time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 4, QuarterOf(time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC)))
}
