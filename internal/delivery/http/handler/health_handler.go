package handler

import (
	"context"
	"time"

	"talent-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	cache Pinger
}

type healthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache"`
}

func NewHealthHandler(cache Pinger) *HealthHandler {
	return &HealthHandler{cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

// Health reports ok even when the cache is down; the cache is optional.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	res := healthResponse{Status: "ok", Cache: "disabled"}
	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.Context(), time.Second)
		defer cancel()
		if err := h.cache.Ping(ctx); err == nil {
			res.Cache = "ok"
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
