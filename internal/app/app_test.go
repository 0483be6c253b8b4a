package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"talent-match/internal/config"
	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/domain/employee"
	"talent-match/internal/domain/matching"
	"talent-match/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Config{
		App:      config.AppConfig{AppName: "talent-match-test", Environment: "test", HTTPPort: "0"},
		Matching: config.DefaultMatching(),
		LLM:      config.LLMConfig{BaseURL: "http://127.0.0.1:1/v1", Model: "test", Timeout: time.Second},
	}
	c, err := NewContainer(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return New(c)
}

func doRequest(t *testing.T, a *App, method, path string, body any) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.Fiber.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestHealth(t *testing.T) {
	a := newTestApp(t)
	status, env := doRequest(t, a, http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, status)

	var data map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, "disabled", data["cache"])
}

func TestEmployeeRoutes(t *testing.T) {
	a := newTestApp(t)

	status, env := doRequest(t, a, http.MethodGet, "/api/v1/employees", nil)
	require.Equal(t, http.StatusOK, status)
	var all []employee.Employee
	require.NoError(t, json.Unmarshal(env.Data, &all))
	assert.Len(t, all, 8)

	status, env = doRequest(t, a, http.MethodGet, "/api/v1/employees/emp999", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Employee not found", env.Message)

	status, env = doRequest(t, a, http.MethodGet, "/api/v1/employees/by-project-phase/mature", nil)
	require.Equal(t, http.StatusOK, status)
	var mature []employee.Employee
	require.NoError(t, json.Unmarshal(env.Data, &mature))
	ids := make([]string, 0, len(mature))
	for _, e := range mature {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"emp002", "emp005"}, ids)

	status, _ = doRequest(t, a, http.MethodGet, "/api/v1/employees/by-project-phase/sunset", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, env = doRequest(t, a, http.MethodGet, "/api/v1/employees/emp001/assessments", nil)
	require.Equal(t, http.StatusOK, status)
	var history []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &history))
	assert.Len(t, history, 2)

	status, env = doRequest(t, a, http.MethodGet, "/api/v1/employees/emp001/experiences", nil)
	require.Equal(t, http.StatusOK, status)
	var experiences []employee.Experience
	require.NoError(t, json.Unmarshal(env.Data, &experiences))
	require.Len(t, experiences, 2)
	assert.Equal(t, "Customer Portal Redesign", experiences[0].ProjectName)

	status, env = doRequest(t, a, http.MethodGet, "/api/v1/employees/emp999/experiences", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Employee not found", env.Message)

	status, env = doRequest(t, a, http.MethodPost, "/api/v1/employee-profiles", dto.EmployeeProfilesRequest{EmployeeIDs: []string{"emp003", "emp001"}})
	require.Equal(t, http.StatusOK, status)
	var profiles []employee.Employee
	require.NoError(t, json.Unmarshal(env.Data, &profiles))
	require.Len(t, profiles, 2)
	assert.Equal(t, "emp003", profiles[0].ID)
}

func TestMatchRoutes(t *testing.T) {
	a := newTestApp(t)

	status, env := doRequest(t, a, http.MethodGet, "/api/v1/tasks/task001/employees", nil)
	require.Equal(t, http.StatusOK, status)
	var matches []matching.EmployeeMatch
	require.NoError(t, json.Unmarshal(env.Data, &matches))
	require.NotEmpty(t, matches)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
	}

	for _, q := range []string{"abc", "150", "-3"} {
		status, _ = doRequest(t, a, http.MethodGet, "/api/v1/tasks/task001/employees?threshold="+q, nil)
		assert.Equal(t, http.StatusBadRequest, status, "threshold %s", q)
	}

	status, _ = doRequest(t, a, http.MethodGet, "/api/v1/tasks/task999/employees", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, env = doRequest(t, a, http.MethodGet, "/api/v1/employees/emp001/tasks/task001/score", nil)
	require.Equal(t, http.StatusOK, status)
	var score struct {
		EmployeeID string `json:"employee_id"`
		Overall    int    `json:"overall"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &score))
	assert.Equal(t, "emp001", score.EmployeeID)
	assert.Greater(t, score.Overall, 0)

	status, _ = doRequest(t, a, http.MethodGet, "/api/v1/tasks/task001/analysis", nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestTeamRoute(t *testing.T) {
	a := newTestApp(t)

	status, env := doRequest(t, a, http.MethodPost, "/api/v1/teams", dto.AssembleTeamRequest{
		EmployeeIDs: []string{"emp001", "emp003"},
		Roles:       []string{"Product Manager"},
	})
	require.Equal(t, http.StatusOK, status)
	var team dto.TeamResponse
	require.NoError(t, json.Unmarshal(env.Data, &team))
	require.Len(t, team.Members, 2)
	assert.Equal(t, "emp003", team.Members[0].EmployeeID)
	assert.Equal(t, "Product Manager", team.Members[0].Role)
	assert.Empty(t, team.UnfilledRoles)

	status, _ = doRequest(t, a, http.MethodPost, "/api/v1/teams", dto.AssembleTeamRequest{EmployeeIDs: []string{"emp404"}})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAssessmentRoute(t *testing.T) {
	a := newTestApp(t)

	status, env := doRequest(t, a, http.MethodPost, "/api/v1/assessments", dto.RecordAssessmentRequest{
		SubjectID: "emp001", SkillID: "skill001", AssessorID: "emp005", NewRating: 4, Comment: "solid",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Assessment recorded", env.Message)

	var out dto.RecordAssessmentResponse
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.True(t, out.Updated)
	assert.Equal(t, 4, out.Skill.Proficiency)

	status, _ = doRequest(t, a, http.MethodPost, "/api/v1/assessments", dto.RecordAssessmentRequest{
		SubjectID: "emp001", SkillID: "skill001", AssessorID: "emp005", NewRating: 9,
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doRequest(t, a, http.MethodPost, "/api/v1/assessments", dto.RecordAssessmentRequest{
		SubjectID: "emp001", SkillID: "skill999", AssessorID: "emp005", NewRating: 3,
	})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestChatRequiresMessage(t *testing.T) {
	a := newTestApp(t)

	for _, path := range []string{"/api/v1/chat", "/api/v1/team-recommendation"} {
		status, env := doRequest(t, a, http.MethodPost, path, dto.ChatRequest{Message: "  "})
		assert.Equal(t, http.StatusBadRequest, status, path)
		assert.Equal(t, "Message is required", env.Message)
	}
}

func TestListenAddr(t *testing.T) {
	addr, err := ListenAddr("8080")
	require.NoError(t, err)
	assert.Equal(t, ":8080", addr)

	addr, err = ListenAddr(":9090")
	require.NoError(t, err)
	assert.Equal(t, ":9090", addr)

	_, err = ListenAddr(" ")
	assert.Error(t, err)
}
