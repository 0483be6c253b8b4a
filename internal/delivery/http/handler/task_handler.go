package handler

import (
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type TaskHandler struct {
	catalog  usecase.CatalogUsecase
	analysis usecase.AnalysisUsecase
}

func NewTaskHandler(catalog usecase.CatalogUsecase, analysis usecase.AnalysisUsecase) *TaskHandler {
	return &TaskHandler{catalog: catalog, analysis: analysis}
}

func (h *TaskHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/tasks")
	grp.Get("/", h.List)
	grp.Get("/:id", h.Get)
	grp.Get("/:id/analysis", h.Analyze)
}

func (h *TaskHandler) List(c fiber.Ctx) error {
	items, err := h.catalog.ListTasks(c.Context())
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *TaskHandler) Get(c fiber.Ctx) error {
	t, err := h.catalog.GetTask(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, t)
}

func (h *TaskHandler) Analyze(c fiber.Ctx) error {
	out, err := h.analysis.AnalyzeTask(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
