package matching

import (
	"math"
	"strings"

	"talent-match/internal/search"
)

// NameMatcher decides whether an employee capability satisfies a required
// skill name. Skill names come from several HR systems without shared IDs, so
// matching is by name.
type NameMatcher interface {
	Match(capability, required string) bool
}

// SubstringMatcher is the default policy: case-insensitive substring match in
// either direction. It is deliberately permissive and produces false positives
// such as "Java" matching "JavaScript".
type SubstringMatcher struct{}

func (SubstringMatcher) Match(capability, required string) bool {
	c := normalizeName(capability)
	r := normalizeName(required)
	if c == "" || r == "" {
		return false
	}
	return strings.Contains(c, r) || strings.Contains(r, c)
}

// ExactMatcher compares normalized names for equality.
type ExactMatcher struct{}

func (ExactMatcher) Match(capability, required string) bool {
	c := normalizeName(capability)
	return c != "" && c == normalizeName(required)
}

// SynonymMatcher accepts known aliases ("JS" for "JavaScript") and ignores
// punctuation, but never matches on a mere substring.
type SynonymMatcher struct{}

func (SynonymMatcher) Match(capability, required string) bool {
	return search.SameSkill(capability, required)
}

// MatcherByName resolves a configured matcher name. Unknown names fall back
// to the substring policy.
func MatcherByName(name string) NameMatcher {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "exact":
		return ExactMatcher{}
	case "synonym":
		return SynonymMatcher{}
	default:
		return SubstringMatcher{}
	}
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

type Capability struct {
	Name        string
	Proficiency int
}

type Requirement struct {
	Name               string
	MinimumProficiency int
	Importance         int
}

type SkillDetail struct {
	SkillName string `json:"skill_name"`
	Required  int    `json:"required"`
	Actual    int    `json:"actual"`
	Gap       int    `json:"gap"`
	Match     int    `json:"match"`
}

type SkillResult struct {
	Score   int
	Details []SkillDetail
}

// CalculateSkills scores caps against reqs on a 0-100 scale. Each requirement
// is weighted by its importance; a missing skill still counts toward the
// denominator. No requirements is a vacuous full match.
func CalculateSkills(m NameMatcher, caps []Capability, reqs []Requirement) SkillResult {
	if m == nil {
		m = SubstringMatcher{}
	}
	if len(reqs) == 0 {
		return SkillResult{Score: 100, Details: []SkillDetail{}}
	}

	var totalImportance float64
	var totalScore float64
	details := make([]SkillDetail, 0, len(reqs))

	for _, r := range reqs {
		importance := float64(r.Importance)
		if r.Importance <= 0 {
			importance = 1
		}
		totalImportance += importance

		c, ok := findCapability(m, caps, r.Name)
		if !ok {
			details = append(details, SkillDetail{
				SkillName: r.Name,
				Required:  r.MinimumProficiency,
				Gap:       r.MinimumProficiency,
			})
			continue
		}

		credit := importance
		match := 100
		if c.Proficiency < r.MinimumProficiency {
			ratio := float64(c.Proficiency) / float64(r.MinimumProficiency)
			credit = importance * ratio
			match = int(math.Round(ratio * 100))
		}
		totalScore += credit

		gap := r.MinimumProficiency - c.Proficiency
		if gap < 0 {
			gap = 0
		}
		details = append(details, SkillDetail{
			SkillName: r.Name,
			Required:  r.MinimumProficiency,
			Actual:    c.Proficiency,
			Gap:       gap,
			Match:     match,
		})
	}

	score := int(math.Round((totalScore / totalImportance) * 100))
	return SkillResult{Score: clampInt(score, 0, 100), Details: details}
}

// findCapability returns the first capability in list order that matches.
func findCapability(m NameMatcher, caps []Capability, required string) (Capability, bool) {
	for _, c := range caps {
		if m.Match(c.Name, required) {
			return c, true
		}
	}
	return Capability{}, false
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
