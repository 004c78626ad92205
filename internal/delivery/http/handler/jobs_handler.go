package handler

import (
	"errors"
	"strconv"

	"job-trends/internal/delivery/http/dto"
	"job-trends/internal/delivery/http/middleware"
	"job-trends/internal/pkg/response"
	"job-trends/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc usecase.JobListUsecase
}

func NewJobsHandler(uc usecase.JobListUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/jobs", h.HandleListJobs)
}

func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 20)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.List(c.Context(), usecase.JobListParams{
		Limit:    limit,
		Offset:   offset,
		WorkType: c.Query("work_type"),
		City:     c.Query("city"),
	})
	if err != nil {
		return mapJobListUsecaseError(err)
	}

	page := dto.JobListPage{
		Jobs:   make([]dto.JobListItem, 0, len(res.Jobs)),
		Total:  res.Total,
		Limit:  res.Limit,
		Offset: res.Offset,
	}
	for _, j := range res.Jobs {
		page.Jobs = append(page.Jobs, dto.JobListItem{
			JobID:             j.JobID,
			Title:             j.Title,
			CompanyName:       j.CompanyName,
			Location:          j.Location,
			City:              j.City,
			WorkType:          j.WorkType,
			ExperienceLevel:   j.ExperienceLevel,
			JobCategory:       j.JobCategory,
			Skills:            j.Skills,
			Certifications:    j.Certifications,
			RequiredExpYears:  j.RequiredExperienceYears,
			DaysSincePosted:   j.DaysSincePosted,
			ApplicationsCount: j.Applications,
			IsFullTime:        j.IsFullTime,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, page)
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}

func mapJobListUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrCorpusUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Corpus not loaded", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
