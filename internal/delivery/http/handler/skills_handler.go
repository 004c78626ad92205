package handler

import (
	"job-trends/internal/delivery/http/dto"
	"job-trends/internal/delivery/http/middleware"
	"job-trends/internal/pkg/response"
	"job-trends/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillsHandler struct {
	uc usecase.SkillCatalogUsecase
}

func NewSkillsHandler(uc usecase.SkillCatalogUsecase) *SkillsHandler {
	return &SkillsHandler{uc: uc}
}

func (h *SkillsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/skills", h.HandleListSkills)
}

func (h *SkillsHandler) HandleListSkills(c fiber.Ctx) error {
	entries, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := make([]dto.SkillCategoryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.SkillCategoryResponse{Category: e.Category, Skills: e.Skills})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
