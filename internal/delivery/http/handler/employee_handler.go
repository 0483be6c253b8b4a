package handler

import (
	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type EmployeeHandler struct {
	uc usecase.CatalogUsecase
}

func NewEmployeeHandler(uc usecase.CatalogUsecase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

func (h *EmployeeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/employees")
	grp.Get("/", h.List)
	grp.Get("/by-project-phase/:phase", h.ByProjectPhase)
	grp.Get("/by-business-unit/:unit", h.ByBusinessUnit)
	grp.Get("/:id", h.Get)
	grp.Get("/:id/assessments", h.Assessments)
	grp.Get("/:id/experiences", h.Experiences)

	r.Post("/employee-profiles", h.Profiles)
}

func (h *EmployeeHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListEmployees(c.Context())
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *EmployeeHandler) Get(c fiber.Ctx) error {
	emp, err := h.uc.GetEmployee(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, emp)
}

func (h *EmployeeHandler) ByProjectPhase(c fiber.Ctx) error {
	items, err := h.uc.EmployeesByProjectPhase(c.Context(), c.Params("phase"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *EmployeeHandler) ByBusinessUnit(c fiber.Ctx) error {
	items, err := h.uc.EmployeesByBusinessUnit(c.Context(), c.Params("unit"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *EmployeeHandler) Assessments(c fiber.Ctx) error {
	items, err := h.uc.Assessments(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *EmployeeHandler) Experiences(c fiber.Ctx) error {
	items, err := h.uc.Experiences(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *EmployeeHandler) Profiles(c fiber.Ctx) error {
	var req dto.EmployeeProfilesRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	items, err := h.uc.EmployeeProfiles(c.Context(), req.EmployeeIDs)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}
