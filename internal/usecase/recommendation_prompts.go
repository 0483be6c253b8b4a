package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"talent-match/internal/domain/employee"
	"talent-match/internal/domain/task"
)

const extractionPromptTemplate = `Extract the key task requirements and project context from the following request:
%q

Return a JSON object with the following structure:
{
  "taskDescription": "extracted task description",
  "taskPurpose": "extracted purpose",
  "requiredHardSkills": ["skill1", "skill2"],
  "requiredSoftSkills": ["skill1", "skill2"],
  "location": "extracted location",
  "complexity": "low/medium/high",
  "variability": "low/medium/high",
  "projectContext": {
    "projectPhase": "inception/development/mature/maintenance",
    "projectType": "prototype/product/service/internal/research",
    "projectGoals": ["goal1", "goal2"],
    "targetDeliveryDate": "YYYY-MM-DD"
  },
  "teamComposition": {
    "roles": ["role1", "role2"]
  },
  "businessUnitRelevance": {
    "relevantUnits": ["Sales", "Marketing"],
    "knowledgeRequired": true
  }
}

Your response must contain ONLY the JSON object, with no text before or after it
and no markdown code fences.`

const reasoningPromptTemplate = `I need to match employees to the following project requirements:
%s

Here are the identified tasks:
%s

Here are the potential matching employees:
%s

Here is the recommended team:
%s

Explain why these employees match the project requirements. Cover their hard and
soft skills against the task requirements, relevant experience, business unit
knowledge, how the recommended team would work together, and availability and
location. Use markdown with ## headings and **bold** employee names. Speak
directly to the manager who made the request and highlight the two or three
strongest matches. Mention employees on mature projects who could be reallocated.`

const teamDynamicsPromptTemplate = `Analyze the team dynamics for the following team members:
%s

Describe communication styles, leadership dynamics, likely challenges and how to
address them, and team formation activities. Keep it concise and actionable.`

const businessUnitPromptTemplate = `Analyze the business unit knowledge for the following team members:
%s

In relation to these relevant business units:
%s

Describe how the team's business knowledge benefits the project, identify
knowledge gaps and suggest ways to close them. Keep it concise and actionable.`

func extractionPrompt(message string) string {
	return fmt.Sprintf(extractionPromptTemplate, message)
}

type promptTask struct {
	ID                 string                  `json:"id"`
	Description        string                  `json:"description"`
	Purpose            string                  `json:"purpose"`
	RequiredHardSkills []task.SkillRequirement `json:"requiredHardSkills"`
	RequiredSoftSkills []task.SkillRequirement `json:"requiredSoftSkills"`
	ProjectContext     *task.ProjectContext    `json:"projectContext,omitempty"`
}

type promptEmployee struct {
	ID                    string                           `json:"id"`
	Name                  string                           `json:"name"`
	HardSkills            []employee.Skill                 `json:"hardSkills"`
	SoftSkills            []employee.Skill                 `json:"softSkills"`
	PastExperience        []string                         `json:"pastExperience"`
	CareerAspirations     []string                         `json:"careerAspirations"`
	Capacity              int                              `json:"capacity"`
	Location              string                           `json:"location"`
	CurrentProjectPhase   employee.ProjectPhase            `json:"currentProjectPhase,omitempty"`
	BusinessUnitKnowledge []employee.BusinessUnitKnowledge `json:"businessUnitKnowledge,omitempty"`
}

type promptMember struct {
	Name                  string                           `json:"name"`
	Role                  string                           `json:"role"`
	Attributes            *formationAttributes             `json:"teamFormationAttributes,omitempty"`
	BusinessUnitKnowledge []employee.BusinessUnitKnowledge `json:"businessUnitKnowledge,omitempty"`
}

// formationAttributes is a coarse high/medium/low reading of the soft skills
// that shape how someone works in a team.
type formationAttributes struct {
	Collaboration  string `json:"collaboration"`
	Communication  string `json:"communication"`
	Leadership     string `json:"leadership"`
	Adaptability   string `json:"adaptability"`
	ProblemSolving string `json:"problemSolving"`
	WorkStyle      string `json:"workStyle"`
}

func teamFormationAttributes(e employee.Employee) formationAttributes {
	a := formationAttributes{
		Collaboration:  "medium",
		Communication:  "medium",
		Leadership:     "low",
		Adaptability:   "medium",
		ProblemSolving: "medium",
		WorkStyle:      "balanced",
	}
	for _, s := range e.SoftSkills {
		name := strings.ToLower(s.Name)
		level := attributeLevel(s.Proficiency)
		if strings.Contains(name, "collaborat") {
			a.Collaboration = level
		}
		if strings.Contains(name, "communicat") {
			a.Communication = level
		}
		if strings.Contains(name, "lead") || strings.Contains(name, "manage") {
			a.Leadership = level
		}
		if strings.Contains(name, "adapt") || strings.Contains(name, "flexib") {
			a.Adaptability = level
		}
		if strings.Contains(name, "problem") || strings.Contains(name, "solv") {
			a.ProblemSolving = level
		}
	}
	if len(e.PreferredWorkStyle) > 0 {
		a.WorkStyle = strings.Join(e.PreferredWorkStyle, ", ")
	}
	return a
}

func attributeLevel(proficiency int) string {
	switch {
	case proficiency >= 4:
		return "high"
	case proficiency >= 2:
		return "medium"
	default:
		return "low"
	}
}

func reasoningPrompt(req ExtractedRequirements, tasks []task.Task, emps []employee.Employee, rec *TeamRecommendation) string {
	pt := make([]promptTask, 0, len(tasks))
	for _, t := range tasks {
		pt = append(pt, promptTask{
			ID:                 t.ID,
			Description:        t.Description,
			Purpose:            t.Purpose,
			RequiredHardSkills: t.RequiredHardSkills,
			RequiredSoftSkills: t.RequiredSoftSkills,
			ProjectContext:     t.ProjectContext,
		})
	}
	pe := make([]promptEmployee, 0, len(emps))
	for _, e := range emps {
		exp := make([]string, 0, len(e.PastExperience))
		for _, x := range e.PastExperience {
			exp = append(exp, x.Description)
		}
		pe = append(pe, promptEmployee{
			ID:                    e.ID,
			Name:                  e.Name,
			HardSkills:            e.HardSkills,
			SoftSkills:            e.SoftSkills,
			PastExperience:        exp,
			CareerAspirations:     e.CareerAspirations,
			Capacity:              e.Capacity,
			Location:              e.Location,
			CurrentProjectPhase:   e.CurrentProjectPhase,
			BusinessUnitKnowledge: e.BusinessUnitKnowledge,
		})
	}
	return fmt.Sprintf(reasoningPromptTemplate, toJSON(req), toJSON(pt), toJSON(pe), toJSON(rec))
}

func teamDynamicsPrompt(members []employee.Employee, roles map[string]string) string {
	pm := make([]promptMember, 0, len(members))
	for _, e := range members {
		attrs := teamFormationAttributes(e)
		pm = append(pm, promptMember{
			Name:       e.Name,
			Role:       roles[e.ID],
			Attributes: &attrs,
		})
	}
	return fmt.Sprintf(teamDynamicsPromptTemplate, toJSON(pm))
}

func businessUnitPrompt(members []employee.Employee, roles map[string]string, relevance []task.BusinessUnitRelevance) string {
	pm := make([]promptMember, 0, len(members))
	for _, e := range members {
		pm = append(pm, promptMember{
			Name:                  e.Name,
			Role:                  roles[e.ID],
			BusinessUnitKnowledge: e.BusinessUnitKnowledge,
		})
	}
	return fmt.Sprintf(businessUnitPromptTemplate, toJSON(pm), toJSON(relevance))
}

func toJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "null"
	}
	return string(b)
}

func businessUnitID(name string) string {
	return "bu_" + strings.Join(strings.Fields(strings.ToLower(name)), "_")
}
