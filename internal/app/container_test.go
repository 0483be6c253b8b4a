package app

import (
	"context"
	"testing"

	"talent-match/internal/config"
	"talent-match/internal/domain/assessment"
	"talent-match/internal/domain/task"
	"talent-match/internal/pkg/logger"
	"talent-match/internal/repository"
	"talent-match/internal/seeder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog_RejectsOutOfRangeData(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*repository.StaticCatalog)
		wantErr string
	}{
		{
			name: "task requirement minimum zero",
			mutate: func(c *repository.StaticCatalog) {
				c.Tasks[0].RequiredHardSkills[0].MinimumProficiency = 0
			},
			wantErr: "invalid task",
		},
		{
			name: "task negative importance",
			mutate: func(c *repository.StaticCatalog) {
				c.Tasks[0].RequiredHardSkills[0] = task.SkillRequirement{SkillName: "SQL", MinimumProficiency: 9, Importance: -3}
			},
			wantErr: "invalid task",
		},
		{
			name: "task capacity above range",
			mutate: func(c *repository.StaticCatalog) {
				c.Tasks[0].CapacityRequired = 250
			},
			wantErr: "invalid task",
		},
		{
			name: "assessment rating above range",
			mutate: func(c *repository.StaticCatalog) {
				c.Assessments[0].SkillsAssessed[0].NewRating = 8
			},
			wantErr: "invalid assessment",
		},
		{
			name: "assessment unknown type",
			mutate: func(c *repository.StaticCatalog) {
				c.Assessments[0].Type = assessment.Type("director")
			},
			wantErr: "invalid assessment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sample := seeder.SampleCatalog()
			src := repository.StaticCatalog{Employees: sample.Employees, Tasks: sample.Tasks, Assessments: sample.Assessments}
			tt.mutate(&src)

			c := &Container{Config: config.Config{Matching: config.DefaultMatching()}, Logger: logger.Nop()}
			err := c.loadCatalog(context.Background(), src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Nil(t, c.Tasks)
		})
	}
}

func TestLoadCatalog_SampleData(t *testing.T) {
	sample := seeder.SampleCatalog()
	c := &Container{Config: config.Config{Matching: config.DefaultMatching()}, Logger: logger.Nop()}

	require.NoError(t, c.loadCatalog(context.Background(), repository.StaticCatalog{
		Employees:   sample.Employees,
		Tasks:       sample.Tasks,
		Assessments: sample.Assessments,
	}))
	assert.Equal(t, 2, c.Ledger.Len())
}
