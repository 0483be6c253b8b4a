package dto

import "talent-match/internal/domain/matching"

type ScoreResponse struct {
	EmployeeID string `json:"employee_id"`
	TaskID     string `json:"task_id"`
	matching.Result
}
