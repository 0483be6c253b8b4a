package dto

import (
	"talent-match/internal/domain/assessment"
	"talent-match/internal/domain/employee"
)

type RecordAssessmentRequest struct {
	SubjectID  string `json:"subject_id"`
	SkillID    string `json:"skill_id"`
	AssessorID string `json:"assessor_id"`
	NewRating  int    `json:"new_rating"`
	Comment    string `json:"comment"`
}

type RecordAssessmentResponse struct {
	Assessment assessment.Assessment `json:"assessment"`
	Updated    bool                  `json:"proficiency_updated"`
	Skill      employee.Skill        `json:"skill"`
}
