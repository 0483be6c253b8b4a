package task

import (
	"fmt"
	"time"
)

type SkillRequirement struct {
	SkillID            string `json:"skill_id"`
	SkillName          string `json:"skill_name"`
	MinimumProficiency int    `json:"minimum_proficiency"`
	Importance         int    `json:"importance"`
}

type ComplexityFactors struct {
	TechnicalDifficulty         float64 `json:"technical_difficulty"`
	StakeholderManagement       float64 `json:"stakeholder_management"`
	DecisionMaking              float64 `json:"decision_making"`
	ProblemSolving              float64 `json:"problem_solving"`
	CrossFunctionalCoordination float64 `json:"cross_functional_coordination"`
}

type Complexity struct {
	Overall float64           `json:"overall"`
	Factors ComplexityFactors `json:"factors"`
}

type VariabilityFactors struct {
	RequirementsStability  float64 `json:"requirements_stability"`
	ProcessDefinition      float64 `json:"process_definition"`
	ExternalDependencies   float64 `json:"external_dependencies"`
	TimelinePredictability float64 `json:"timeline_predictability"`
}

type Variability struct {
	Overall float64            `json:"overall"`
	Factors VariabilityFactors `json:"factors"`
}

type ProjectType string

const (
	ProjectPrototype ProjectType = "prototype"
	ProjectProduct   ProjectType = "product"
	ProjectService   ProjectType = "service"
	ProjectInternal  ProjectType = "internal"
	ProjectResearch  ProjectType = "research"
)

type ProjectContext struct {
	ProjectPhase       string      `json:"project_phase"`
	ProjectType        ProjectType `json:"project_type"`
	ProjectGoals       []string    `json:"project_goals"`
	TargetDeliveryDate *time.Time  `json:"target_delivery_date,omitempty"`
	Stakeholders       []string    `json:"stakeholders,omitempty"`
}

type BusinessUnitRelevance struct {
	BusinessUnitID    string `json:"business_unit_id"`
	BusinessUnitName  string `json:"business_unit_name"`
	RelevanceLevel    int    `json:"relevance_level"`
	KnowledgeRequired bool   `json:"knowledge_required"`
}

type Task struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Purpose     string   `json:"purpose"`
	Outcomes    []string `json:"outcomes"`

	RequiredHardSkills []SkillRequirement `json:"required_hard_skills"`
	RequiredSoftSkills []SkillRequirement `json:"required_soft_skills"`

	Complexity  Complexity  `json:"complexity"`
	Variability Variability `json:"variability"`

	EstimatedDuration int `json:"estimated_duration"`
	EstimatedEffort   int `json:"estimated_effort"`
	CapacityRequired  int `json:"capacity_required"`

	Dependencies         []string `json:"dependencies"`
	LocationRequirements []string `json:"location_requirements,omitempty"`
	LicenseRequirements  []string `json:"license_requirements,omitempty"`

	BusinessContext       string                  `json:"business_context,omitempty"`
	ProjectContext        *ProjectContext         `json:"project_context,omitempty"`
	BusinessUnitRelevance []BusinessUnitRelevance `json:"business_unit_relevance,omitempty"`
}

// AllRequirements returns hard requirements followed by soft requirements.
func (t Task) AllRequirements() []SkillRequirement {
	out := make([]SkillRequirement, 0, len(t.RequiredHardSkills)+len(t.RequiredSoftSkills))
	out = append(out, t.RequiredHardSkills...)
	out = append(out, t.RequiredSoftSkills...)
	return out
}

// Validate checks the range invariants of a task. An importance of 0 means
// the weight was left unset and scores as 1.
func (t Task) Validate() error {
	if t.ID == "" {
		return &FieldError{Field: "id", Reason: "empty"}
	}
	if t.CapacityRequired < 0 || t.CapacityRequired > 100 {
		return &FieldError{Field: "capacity_required", Reason: "out of range 0-100"}
	}
	for _, r := range t.AllRequirements() {
		if r.MinimumProficiency < 1 || r.MinimumProficiency > 5 {
			return &FieldError{Field: "minimum_proficiency", Reason: fmt.Sprintf("skill %s out of range 1-5", r.SkillName)}
		}
		if r.Importance < 0 || r.Importance > 5 {
			return &FieldError{Field: "importance", Reason: fmt.Sprintf("skill %s out of range 1-5", r.SkillName)}
		}
	}
	for _, bu := range t.BusinessUnitRelevance {
		if bu.RelevanceLevel < 1 || bu.RelevanceLevel > 5 {
			return &FieldError{Field: "relevance_level", Reason: bu.BusinessUnitName + " out of range 1-5"}
		}
	}
	return nil
}

type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}
