package analysis

import (
	"math"
	"strings"

	"talent-match/internal/domain/task"
)

var complexityTiers = [5]string{"Very Low", "Low", "Moderate", "High", "Very High"}

var variabilityTiers = [5]string{"Very Predictable", "Predictable", "Moderate Variability", "Variable", "Highly Variable"}

const (
	TeamAdaptive    = "Adaptive team with diverse skills and senior leadership. Consider cross-functional composition with regular coordination."
	TeamSpecialized = "Specialized team with deep technical expertise. Consider including subject matter experts."
	TeamFlexible    = "Flexible team with strong problem-solving skills. Consider agile methodology with frequent checkpoints."
	TeamStandard    = "Standard team structure with clear roles and responsibilities. Consider established processes and workflows."

	SkillTechnicalTraining   = "Technical training programs may be beneficial for team members"
	SkillStakeholderTraining = "Stakeholder management and communication training recommended"

	RiskChangeManagement = "Establish clear requirements documentation and change management process"
	RiskContingency      = "Create contingency plans for external dependencies and establish regular coordination"
	RiskPrototype        = "Consider technical proof of concept or prototype before full implementation"
)

const highProficiency = 4

// Rule pairs a predicate with the recommendation it emits.
type Rule struct {
	Name      string
	Predicate func(task.Task) bool
	Emit      func(task.Task) string
}

func fixed(s string) func(task.Task) string {
	return func(task.Task) string { return s }
}

// teamStructureRules are evaluated in order; the first match wins. The
// combined branch is listed first so it takes precedence.
var teamStructureRules = []Rule{
	{
		Name:      "adaptive",
		Predicate: func(t task.Task) bool { return t.Complexity.Overall >= 4 && t.Variability.Overall >= 4 },
		Emit:      fixed(TeamAdaptive),
	},
	{
		Name:      "specialized",
		Predicate: func(t task.Task) bool { return t.Complexity.Overall >= 4 },
		Emit:      fixed(TeamSpecialized),
	},
	{
		Name:      "flexible",
		Predicate: func(t task.Task) bool { return t.Variability.Overall >= 4 },
		Emit:      fixed(TeamFlexible),
	},
	{
		Name:      "standard",
		Predicate: func(task.Task) bool { return true },
		Emit:      fixed(TeamStandard),
	},
}

// skillDevelopmentRules are all evaluated in order; every match emits.
var skillDevelopmentRules = []Rule{
	{
		Name:      "high_proficiency_skills",
		Predicate: func(t task.Task) bool { return len(highProficiencySkills(t)) > 0 },
		Emit: func(t task.Task) string {
			return "Consider skill development programs for " + strings.Join(highProficiencySkills(t), ", ")
		},
	},
	{
		Name:      "technical_difficulty",
		Predicate: func(t task.Task) bool { return t.Complexity.Factors.TechnicalDifficulty >= 4 },
		Emit:      fixed(SkillTechnicalTraining),
	},
	{
		Name:      "stakeholder_management",
		Predicate: func(t task.Task) bool { return t.Complexity.Factors.StakeholderManagement >= 4 },
		Emit:      fixed(SkillStakeholderTraining),
	},
}

var riskMitigationRules = []Rule{
	{
		Name:      "requirements_stability",
		Predicate: func(t task.Task) bool { return t.Variability.Factors.RequirementsStability <= 2 },
		Emit:      fixed(RiskChangeManagement),
	},
	{
		Name:      "external_dependencies",
		Predicate: func(t task.Task) bool { return t.Variability.Factors.ExternalDependencies >= 4 },
		Emit:      fixed(RiskContingency),
	},
	{
		Name:      "technical_difficulty",
		Predicate: func(t task.Task) bool { return t.Complexity.Factors.TechnicalDifficulty >= 4 },
		Emit:      fixed(RiskPrototype),
	},
}

type Recommendations struct {
	TeamStructure    string   `json:"team_structure"`
	SkillDevelopment []string `json:"skill_development"`
	RiskMitigation   []string `json:"risk_mitigation"`
}

type SkillRequirements struct {
	HardSkills          []task.SkillRequirement `json:"hard_skills"`
	SoftSkills          []task.SkillRequirement `json:"soft_skills"`
	TotalSkillsRequired int                     `json:"total_skills_required"`
}

type ResourceRequirements struct {
	EstimatedDuration    int      `json:"estimated_duration"`
	EstimatedEffort      int      `json:"estimated_effort"`
	CapacityRequired     int      `json:"capacity_required"`
	LocationRequirements []string `json:"location_requirements"`
	LicenseRequirements  []string `json:"license_requirements"`
}

type Analysis struct {
	TaskID               string               `json:"task_id"`
	Description          string               `json:"description"`
	Purpose              string               `json:"purpose"`
	Outcomes             []string             `json:"outcomes"`
	Complexity           task.Complexity      `json:"complexity"`
	ComplexityLevel      string               `json:"complexity_level"`
	Variability          task.Variability     `json:"variability"`
	VariabilityLevel     string               `json:"variability_level"`
	SkillRequirements    SkillRequirements    `json:"skill_requirements"`
	ResourceRequirements ResourceRequirements `json:"resource_requirements"`
	Dependencies         []string             `json:"dependencies"`
	Recommendations      Recommendations      `json:"recommendations"`
}

// Analyze is a pure function of the task.
func Analyze(t task.Task) Analysis {
	return Analysis{
		TaskID:           t.ID,
		Description:      t.Description,
		Purpose:          t.Purpose,
		Outcomes:         nonNil(t.Outcomes),
		Complexity:       t.Complexity,
		ComplexityLevel:  ComplexityTier(t.Complexity.Overall),
		Variability:      t.Variability,
		VariabilityLevel: VariabilityTier(t.Variability.Overall),
		SkillRequirements: SkillRequirements{
			HardSkills:          t.RequiredHardSkills,
			SoftSkills:          t.RequiredSoftSkills,
			TotalSkillsRequired: len(t.RequiredHardSkills) + len(t.RequiredSoftSkills),
		},
		ResourceRequirements: ResourceRequirements{
			EstimatedDuration:    t.EstimatedDuration,
			EstimatedEffort:      t.EstimatedEffort,
			CapacityRequired:     t.CapacityRequired,
			LocationRequirements: nonNil(t.LocationRequirements),
			LicenseRequirements:  nonNil(t.LicenseRequirements),
		},
		Dependencies:    nonNil(t.Dependencies),
		Recommendations: Recommend(t),
	}
}

func Recommend(t task.Task) Recommendations {
	return Recommendations{
		TeamStructure:    firstMatch(teamStructureRules, t),
		SkillDevelopment: allMatches(skillDevelopmentRules, t),
		RiskMitigation:   allMatches(riskMitigationRules, t),
	}
}

func ComplexityTier(v float64) string {
	return complexityTiers[tierIndex(v)]
}

func VariabilityTier(v float64) string {
	return variabilityTiers[tierIndex(v)]
}

func tierIndex(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	idx := math.Floor(v) - 1
	if idx < 0 {
		return 0
	}
	if idx > 4 {
		return 4
	}
	return int(idx)
}

func firstMatch(rules []Rule, t task.Task) string {
	for _, r := range rules {
		if r.Predicate(t) {
			return r.Emit(t)
		}
	}
	return ""
}

func allMatches(rules []Rule, t task.Task) []string {
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		if r.Predicate(t) {
			out = append(out, r.Emit(t))
		}
	}
	return out
}

func highProficiencySkills(t task.Task) []string {
	names := make([]string, 0)
	for _, r := range t.AllRequirements() {
		if r.MinimumProficiency >= highProficiency {
			names = append(names, r.SkillName)
		}
	}
	return names
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
