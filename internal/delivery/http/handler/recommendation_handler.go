package handler

import (
	"errors"
	"strings"

	"job-trends/internal/delivery/http/dto"
	"job-trends/internal/delivery/http/middleware"
	"job-trends/internal/pkg/response"
	"job-trends/internal/recommend"
	"job-trends/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/recommendations", h.HandleRecommend)
}

func (h *RecommendationHandler) HandleRecommend(c fiber.Ctx) error {
	var req dto.RecommendationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	skills := make([]string, 0, len(req.Skills))
	for _, s := range req.Skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}
	if len(skills) == 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Select at least one skill", nil, usecase.ErrEmptySkillSet)
	}
	if req.ExperienceYears < 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Experience years must not be negative", nil, nil)
	}

	report, err := h.uc.Recommend(c.Context(), recommend.Preferences{
		UserSkills:      skills,
		ExperienceYears: req.ExperienceYears,
		WorkType:        req.WorkType,
		Location:        req.Location,
		Goal:            req.Goal,
	})
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, report)
}

func mapRecommendationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrEmptySkillSet):
		return middleware.NewAppError(fiber.StatusBadRequest, "Select at least one skill", nil, err)
	case errors.Is(err, usecase.ErrCorpusUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Corpus not loaded", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
