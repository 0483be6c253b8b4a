package employee

import "time"

type SkillCategory string

const (
	SkillCategoryHard SkillCategory = "hard"
	SkillCategorySoft SkillCategory = "soft"
)

type ProjectPhase string

const (
	PhaseInception   ProjectPhase = "inception"
	PhaseDevelopment ProjectPhase = "development"
	PhaseMature      ProjectPhase = "mature"
	PhaseMaintenance ProjectPhase = "maintenance"
	PhaseNone        ProjectPhase = "none"
)

func (p ProjectPhase) Valid() bool {
	switch p {
	case PhaseInception, PhaseDevelopment, PhaseMature, PhaseMaintenance, PhaseNone:
		return true
	}
	return false
}

// Skill is owned by an Employee. Proficiency changes only through the
// validation ledger.
type Skill struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Category      SkillCategory `json:"category"`
	Proficiency   int           `json:"proficiency"`
	ValidatedBy   []string      `json:"validated_by"`
	LastValidated time.Time     `json:"last_validated"`
	DerivedFrom   string        `json:"derived_from,omitempty"`
}

type License struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Issuer           string     `json:"issuer"`
	DateObtained     time.Time  `json:"date_obtained"`
	ExpiryDate       *time.Time `json:"expiry_date,omitempty"`
	ValidationStatus bool       `json:"validation_status"`
	Category         string     `json:"category"`
}

type Experience struct {
	ID             string   `json:"id"`
	ProjectName    string   `json:"project_name"`
	Role           string   `json:"role"`
	Department     string   `json:"department"`
	TeamSize       int      `json:"team_size"`
	Description    string   `json:"description"`
	SkillsUtilized []string `json:"skills_utilized"`
}

type BusinessUnitKnowledge struct {
	BusinessUnitID    string   `json:"business_unit_id"`
	BusinessUnitName  string   `json:"business_unit_name"`
	KnowledgeLevel    int      `json:"knowledge_level"`
	YearsOfExperience int      `json:"years_of_experience"`
	RelevantProjects  []string `json:"relevant_projects,omitempty"`
}

type Employee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Location   string `json:"location"`
	Capacity   int    `json:"capacity"`

	HardSkills         []Skill      `json:"hard_skills"`
	SoftSkills         []Skill      `json:"soft_skills"`
	Licenses           []License    `json:"licenses"`
	PastExperience     []Experience `json:"past_experience"`
	CareerAspirations  []string     `json:"career_aspirations"`
	Interests          []string     `json:"interests,omitempty"`
	DevelopmentGoals   []string     `json:"development_goals,omitempty"`
	PreferredWorkStyle []string     `json:"preferred_work_style,omitempty"`

	CurrentProjectPhase   ProjectPhase            `json:"current_project_phase,omitempty"`
	BusinessUnitKnowledge []BusinessUnitKnowledge `json:"business_unit_knowledge,omitempty"`
	AvailabilityDate      *time.Time              `json:"availability_date,omitempty"`
}

// FindSkill returns a pointer into the hard or soft skill slice so callers can
// mutate the owned skill in place.
func (e *Employee) FindSkill(skillID string) *Skill {
	if e == nil {
		return nil
	}
	for i := range e.HardSkills {
		if e.HardSkills[i].ID == skillID {
			return &e.HardSkills[i]
		}
	}
	for i := range e.SoftSkills {
		if e.SoftSkills[i].ID == skillID {
			return &e.SoftSkills[i]
		}
	}
	return nil
}

// Validate checks the range invariants of a profile.
func (e Employee) Validate() error {
	if e.ID == "" {
		return &FieldError{Field: "id", Reason: "empty"}
	}
	if e.Capacity < 0 || e.Capacity > 100 {
		return &FieldError{Field: "capacity", Reason: "out of range 0-100"}
	}
	for _, s := range append(append([]Skill{}, e.HardSkills...), e.SoftSkills...) {
		if s.Proficiency < 1 || s.Proficiency > 5 {
			return &FieldError{Field: "proficiency", Reason: "skill " + s.ID + " out of range 1-5"}
		}
	}
	for _, bu := range e.BusinessUnitKnowledge {
		if bu.KnowledgeLevel < 1 || bu.KnowledgeLevel > 5 {
			return &FieldError{Field: "knowledge_level", Reason: bu.BusinessUnitName + " out of range 1-5"}
		}
	}
	return nil
}

// Clone returns a deep copy so readers never alias repository-owned slices.
func (e Employee) Clone() Employee {
	out := e
	out.HardSkills = cloneSkills(e.HardSkills)
	out.SoftSkills = cloneSkills(e.SoftSkills)
	out.Licenses = append([]License(nil), e.Licenses...)
	out.PastExperience = append([]Experience(nil), e.PastExperience...)
	out.CareerAspirations = append([]string(nil), e.CareerAspirations...)
	out.Interests = append([]string(nil), e.Interests...)
	out.DevelopmentGoals = append([]string(nil), e.DevelopmentGoals...)
	out.PreferredWorkStyle = append([]string(nil), e.PreferredWorkStyle...)
	out.BusinessUnitKnowledge = append([]BusinessUnitKnowledge(nil), e.BusinessUnitKnowledge...)
	return out
}

func cloneSkills(in []Skill) []Skill {
	if in == nil {
		return nil
	}
	out := make([]Skill, len(in))
	for i, s := range in {
		s.ValidatedBy = append([]string(nil), s.ValidatedBy...)
		out[i] = s
	}
	return out
}

type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}
