package handler

import (
	"strings"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/task"
	"talent-match/internal/domain/team"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type TeamHandler struct {
	uc usecase.TeamUsecase
}

func NewTeamHandler(uc usecase.TeamUsecase) *TeamHandler {
	return &TeamHandler{uc: uc}
}

func (h *TeamHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/teams", h.Assemble)
}

func (h *TeamHandler) Assemble(c fiber.Ctx) error {
	var req dto.AssembleTeamRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	res, err := h.uc.AssembleTeam(c.Context(), usecase.AssembleTeamInput{
		EmployeeIDs: req.EmployeeIDs,
		Roles:       req.Roles,
		ProjectType: task.ProjectType(strings.ToLower(strings.TrimSpace(req.ProjectType))),
		Relevance:   req.BusinessUnitRelevance,
	})
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toTeamResponse(res))
}

func toTeamResponse(res team.Result) dto.TeamResponse {
	out := dto.TeamResponse{
		Members:       make([]dto.TeamMemberResponse, 0, len(res.Assignments)),
		UnfilledRoles: res.UnfilledRoles,
	}
	for _, a := range res.Assignments {
		out.Members = append(out.Members, dto.TeamMemberResponse{
			EmployeeID: a.EmployeeID,
			Name:       a.Employee.Name,
			Position:   a.Employee.Position,
			Role:       a.Role,
			Score:      a.Score,
		})
	}
	if out.UnfilledRoles == nil {
		out.UnfilledRoles = []string{}
	}
	return out
}
