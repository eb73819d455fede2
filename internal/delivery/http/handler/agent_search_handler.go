package handler

import (
	"errors"

	"crewmatch/internal/delivery/http/dto"
	"crewmatch/internal/delivery/http/middleware"
	"crewmatch/internal/pkg/response"
	"crewmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type agentSearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

type AgentSearchHandler struct {
	uc usecase.AgentSearchUsecase
}

func NewAgentSearchHandler(uc usecase.AgentSearchUsecase) *AgentSearchHandler {
	return &AgentSearchHandler{uc: uc}
}

func (h *AgentSearchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/search", h.HandleSearch)
}

func (h *AgentSearchHandler) HandleSearch(c fiber.Ctx) error {
	if _, ok := userIDFromCtx(c); !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req agentSearchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.Search(c.Context(), req.Query, req.Limit)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		case errors.Is(err, usecase.ErrAgentSearchUnavailable):
			return middleware.NewAppError(fiber.StatusServiceUnavailable, "Agent search unavailable", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	out := make([]dto.AgentSearchItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.AgentSearchItemResponse{
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
			FinalScore:     it.FinalScore,
			VectorScore:    it.VectorScore,
			Explanation:    it.Explanation,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
