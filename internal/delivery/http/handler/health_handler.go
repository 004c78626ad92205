package handler

import (
	"job-trends/internal/corpus"
	"job-trends/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	store *corpus.Store
}

func NewHealthHandler(store *corpus.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.HandleHealth)
}

func (h *HealthHandler) HandleHealth(c fiber.Ctx) error {
	data := fiber.Map{"jobs": 0}
	if h != nil && h.store != nil {
		data["jobs"] = h.store.Len()
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
