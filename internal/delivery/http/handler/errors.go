package handler

import (
	"strconv"

	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// UsecaseErrors is the status table for the sentinels every usecase can
// return. Handlers pass those errors through unchanged.
var UsecaseErrors = []middleware.ErrorMapping{
	{Err: usecase.ErrEmployeeNotFound, Status: fiber.StatusNotFound, Message: "Employee not found"},
	{Err: usecase.ErrTaskNotFound, Status: fiber.StatusNotFound, Message: "Task not found"},
	{Err: usecase.ErrSkillNotFound, Status: fiber.StatusNotFound, Message: "Skill not found"},
	{Err: usecase.ErrInvalidInput, Status: fiber.StatusBadRequest, Message: "Bad request"},
}

// parseThreshold reads ?threshold=. Absent means the default.
func parseThreshold(c fiber.Ctx) (int, error) {
	s := c.Query("threshold")
	if s == "" {
		return usecase.UseDefaultThreshold, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Invalid threshold", nil, err)
	}
	return v, nil
}
