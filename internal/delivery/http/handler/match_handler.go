package handler

import (
	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/tasks/:id/employees", h.EmployeesForTask)
	r.Get("/employees/:id/tasks", h.TasksForEmployee)
	r.Get("/employees/:id/tasks/:task_id/score", h.Score)
}

func (h *MatchHandler) EmployeesForTask(c fiber.Ctx) error {
	threshold, err := parseThreshold(c)
	if err != nil {
		return err
	}

	items, err := h.uc.EmployeesForTask(c.Context(), c.Params("id"), threshold)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *MatchHandler) TasksForEmployee(c fiber.Ctx) error {
	threshold, err := parseThreshold(c)
	if err != nil {
		return err
	}

	items, err := h.uc.TasksForEmployee(c.Context(), c.Params("id"), threshold)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *MatchHandler) Score(c fiber.Ctx) error {
	employeeID := c.Params("id")
	taskID := c.Params("task_id")

	res, err := h.uc.Score(c.Context(), employeeID, taskID)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ScoreResponse{
		EmployeeID: employeeID,
		TaskID:     taskID,
		Result:     res,
	})
}
