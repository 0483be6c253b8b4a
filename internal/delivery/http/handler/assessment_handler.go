package handler

import (
	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AssessmentHandler struct {
	uc usecase.ValidationUsecase
}

func NewAssessmentHandler(uc usecase.ValidationUsecase) *AssessmentHandler {
	return &AssessmentHandler{uc: uc}
}

func (h *AssessmentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/assessments", h.Record)
}

func (h *AssessmentHandler) Record(c fiber.Ctx) error {
	var req dto.RecordAssessmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	out, err := h.uc.RecordAssessment(c.Context(), usecase.RecordAssessmentInput{
		SubjectID:  req.SubjectID,
		SkillID:    req.SkillID,
		AssessorID: req.AssessorID,
		NewRating:  req.NewRating,
		Comment:    req.Comment,
	})
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusCreated, "Assessment recorded", dto.RecordAssessmentResponse{
		Assessment: out.Assessment,
		Updated:    out.Updated,
		Skill:      out.Skill,
	})
}
