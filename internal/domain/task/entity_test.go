package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskValidate(t *testing.T) {
	valid := func() Task {
		return Task{
			ID:                 "task001",
			CapacityRequired:   80,
			RequiredHardSkills: []SkillRequirement{{SkillName: "React", MinimumProficiency: 3, Importance: 5}},
			RequiredSoftSkills: []SkillRequirement{{SkillName: "Teamwork", MinimumProficiency: 2}},
			BusinessUnitRelevance: []BusinessUnitRelevance{
				{BusinessUnitName: "Sales", RelevanceLevel: 4},
			},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Task)
		field  string
	}{
		{name: "valid", mutate: func(*Task) {}},
		{name: "unset importance", mutate: func(tk *Task) { tk.RequiredHardSkills[0].Importance = 0 }},
		{name: "empty id", mutate: func(tk *Task) { tk.ID = "" }, field: "id"},
		{name: "capacity above range", mutate: func(tk *Task) { tk.CapacityRequired = 250 }, field: "capacity_required"},
		{name: "negative capacity", mutate: func(tk *Task) { tk.CapacityRequired = -1 }, field: "capacity_required"},
		{name: "zero minimum", mutate: func(tk *Task) { tk.RequiredHardSkills[0].MinimumProficiency = 0 }, field: "minimum_proficiency"},
		{name: "minimum above range", mutate: func(tk *Task) { tk.RequiredSoftSkills[0].MinimumProficiency = 9 }, field: "minimum_proficiency"},
		{name: "negative importance", mutate: func(tk *Task) { tk.RequiredHardSkills[0].Importance = -3 }, field: "importance"},
		{name: "importance above range", mutate: func(tk *Task) { tk.RequiredHardSkills[0].Importance = 6 }, field: "importance"},
		{name: "relevance zero", mutate: func(tk *Task) { tk.BusinessUnitRelevance[0].RelevanceLevel = 0 }, field: "relevance_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := valid()
			tt.mutate(&tk)
			err := tk.Validate()
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
