package handler

import (
	"errors"
	"strconv"
	"time"

	"crewmatch/internal/delivery/http/dto"
	"crewmatch/internal/delivery/http/middleware"
	"crewmatch/internal/pkg/response"
	"crewmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobsHandler struct {
	search usecase.JobSearchUsecase
	fit    usecase.JobFitUsecase
}

func NewJobsHandler(search usecase.JobSearchUsecase, fit usecase.JobFitUsecase) *JobsHandler {
	return &JobsHandler{search: search, fit: fit}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.HandleSearch)
	r.Get("/:job_id/fit", h.HandleFit)
}

func (h *JobsHandler) HandleSearch(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit, err := parseQueryIntStrict(c, "limit", 20)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	minScore, err := parseQueryIntStrict(c, "min_score", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.search.Search(c.Context(), userID, usecase.JobSearchParams{
		Limit:    limit,
		Offset:   offset,
		MinScore: minScore,
	})
	if err != nil {
		return mapSearchUsecaseError(err)
	}

	out := make([]dto.JobSearchItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.JobSearchItemResponse{
			JobID:          it.JobID,
			Title:          it.Title,
			Vessel:         it.Vessel,
			PrimaryRegion:  it.PrimaryRegion,
			ContractType:   it.ContractType,
			SalaryMin:      it.SalaryMin,
			SalaryMax:      it.SalaryMax,
			SalaryCurrency: it.SalaryCurrency,
			IsUrgent:       it.IsUrgent,
			PostedDate:     formatPostedAt(it.PostedAt),
			FitScore:       it.FitScore,
			MatchType:      it.MatchType,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *JobsHandler) HandleFit(c fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.fit.CalculateFit(c.Context(), userID, jobID)
	if err != nil {
		return mapSearchUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FitResponse{
		FitScore:        res.Score,
		MatchType:       res.MatchType,
		SoughtPositions: res.SoughtPositions,
	})
}

func userIDFromCtx(c fiber.Ctx) (uuid.UUID, bool) {
	v := c.Locals(middleware.CtxUserIDKey)
	id, ok := v.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func formatPostedAt(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func mapSearchUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
