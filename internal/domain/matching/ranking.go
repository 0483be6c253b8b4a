package matching

import (
	"sort"

	"talent-match/internal/domain/employee"
	"talent-match/internal/domain/task"
)

const (
	DefaultEmployeeThreshold = 50
	DefaultTaskThreshold     = 70

	fallbackEmployeeCount = 3
)

type EmployeeMatch struct {
	Employee employee.Employee `json:"employee"`
	Score    int               `json:"match_score"`
	Details  Result            `json:"match_details"`
}

type TaskMatch struct {
	Task    task.Task `json:"task"`
	Score   int       `json:"match_score"`
	Details Result    `json:"match_details"`
}

// RankEmployees keeps employees at or above threshold, best first. When none
// qualify it returns the top three regardless, so a non-empty pool always
// yields a non-empty result.
func (e *Engine) RankEmployees(employees []employee.Employee, t task.Task, threshold int) []EmployeeMatch {
	all := make([]EmployeeMatch, 0, len(employees))
	for _, emp := range employees {
		res := e.Calculate(emp, t)
		all = append(all, EmployeeMatch{Employee: emp, Score: res.Overall, Details: res})
	}

	out := make([]EmployeeMatch, 0, len(all))
	for _, m := range all {
		if m.Score >= threshold {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > 0 {
		return out
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Score > all[j].Score
	})
	if len(all) > fallbackEmployeeCount {
		all = all[:fallbackEmployeeCount]
	}
	return all
}

// RankTasks keeps tasks at or above threshold, best first. There is no
// fallback; the result may be empty.
func (e *Engine) RankTasks(emp employee.Employee, tasks []task.Task, threshold int) []TaskMatch {
	out := make([]TaskMatch, 0)
	for _, t := range tasks {
		res := e.Calculate(emp, t)
		if res.Overall < threshold {
			continue
		}
		out = append(out, TaskMatch{Task: t, Score: res.Overall, Details: res})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
