package matching

import (
	"math"

	"talent-match/internal/domain/employee"
	"talent-match/internal/domain/task"
)

type Weights struct {
	HardSkills float64
	SoftSkills float64
	Licenses   float64
	Location   float64
	Capacity   float64
}

// DefaultWeights sum to 1.0.
var DefaultWeights = Weights{
	HardSkills: 0.4,
	SoftSkills: 0.3,
	Licenses:   0.1,
	Location:   0.1,
	Capacity:   0.1,
}

type Result struct {
	Overall           int           `json:"overall"`
	HardSkillsScore   int           `json:"hard_skills_score"`
	SoftSkillsScore   int           `json:"soft_skills_score"`
	LicenseScore      int           `json:"license_score"`
	LocationScore     int           `json:"location_score"`
	CapacityScore     int           `json:"capacity_score"`
	HardSkillsDetails []SkillDetail `json:"hard_skills_details"`
	SoftSkillsDetails []SkillDetail `json:"soft_skills_details"`
}

type Engine struct {
	matcher NameMatcher
	weights Weights
}

func NewEngine(matcher NameMatcher) *Engine {
	if matcher == nil {
		matcher = SubstringMatcher{}
	}
	return &Engine{matcher: matcher, weights: DefaultWeights}
}

func (e *Engine) Matcher() NameMatcher {
	return e.matcher
}

// Calculate scores one employee against one task.
func (e *Engine) Calculate(emp employee.Employee, t task.Task) Result {
	hard := CalculateSkills(e.matcher, capabilities(emp.HardSkills), requirements(t.RequiredHardSkills))
	soft := CalculateSkills(e.matcher, capabilities(emp.SoftSkills), requirements(t.RequiredSoftSkills))

	res := Result{
		HardSkillsScore:   hard.Score,
		SoftSkillsScore:   soft.Score,
		LicenseScore:      LicenseScore(emp.Licenses, t.LicenseRequirements),
		LocationScore:     LocationScore(emp.Location, t.LocationRequirements),
		CapacityScore:     CapacityScore(emp.Capacity, t.CapacityRequired),
		HardSkillsDetails: hard.Details,
		SoftSkillsDetails: soft.Details,
	}
	res.Overall = Aggregate(e.weights, res.HardSkillsScore, res.SoftSkillsScore, res.LicenseScore, res.LocationScore, res.CapacityScore)
	return res
}

// Aggregate combines the five sub-scores into the overall fit score.
func Aggregate(w Weights, hard, soft, license, location, capacity int) int {
	total := float64(hard)*w.HardSkills +
		float64(soft)*w.SoftSkills +
		float64(license)*w.Licenses +
		float64(location)*w.Location +
		float64(capacity)*w.Capacity
	return clampInt(int(math.Round(total)), 0, 100)
}

func capabilities(skills []employee.Skill) []Capability {
	out := make([]Capability, 0, len(skills))
	for _, s := range skills {
		out = append(out, Capability{Name: s.Name, Proficiency: s.Proficiency})
	}
	return out
}

func requirements(reqs []task.SkillRequirement) []Requirement {
	out := make([]Requirement, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, Requirement{
			Name:               r.SkillName,
			MinimumProficiency: r.MinimumProficiency,
			Importance:         r.Importance,
		})
	}
	return out
}
