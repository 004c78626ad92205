package handler

import (
	"errors"

	"job-trends/internal/delivery/http/middleware"
	"job-trends/internal/pkg/response"
	"job-trends/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AnalyticsHandler struct {
	uc usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(uc usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

func (h *AnalyticsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/analytics", h.HandleGetAnalytics)
}

func (h *AnalyticsHandler) HandleGetAnalytics(c fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return mapAnalyticsUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, summary)
}

func mapAnalyticsUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrCorpusUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Analytics not available", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
