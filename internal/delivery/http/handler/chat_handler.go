package handler

import (
	"strings"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ChatHandler struct {
	uc usecase.RecommendationUsecase
}

func NewChatHandler(uc usecase.RecommendationUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

func (h *ChatHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/chat", h.Chat)
	r.Post("/team-recommendation", h.RecommendTeam)
}

func (h *ChatHandler) Chat(c fiber.Ctx) error {
	msg, err := bindMessage(c)
	if err != nil {
		return err
	}

	res, err := h.uc.ProcessRequest(c.Context(), msg)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ChatHandler) RecommendTeam(c fiber.Ctx) error {
	msg, err := bindMessage(c)
	if err != nil {
		return err
	}

	rec, err := h.uc.RecommendTeam(c.Context(), msg)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, rec)
}

func bindMessage(c fiber.Ctx) (string, error) {
	var req dto.ChatRequest
	if err := c.Bind().Body(&req); err != nil {
		return "", middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		return "", middleware.NewAppError(fiber.StatusBadRequest, "Message is required", nil, nil)
	}
	return msg, nil
}
