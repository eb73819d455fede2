package handler

import (
	"context"
	"log"
	"strings"
	"time"

	"crewmatch/internal/config"
	"crewmatch/internal/delivery/http/middleware"
	"crewmatch/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type SyncCompletedRequest struct {
	SyncID      string `json:"sync_id"`
	Category    string `json:"category"`
	Source      string `json:"source"`
	CompletedAt string `json:"completed_at"`
}

type searchCacheInvalidator interface {
	InvalidateSearchCache(ctx context.Context) error
}

// SyncCompletedHandler receives the ATS importer's webhook after a listings
// sync finishes, drops all cached search pages and pushes a ws event.
type SyncCompletedHandler struct {
	cfg    config.Config
	cache  searchCacheInvalidator
	logger *log.Logger
}

func NewSyncCompletedHandler(cfg config.Config, cache searchCacheInvalidator, logger *log.Logger) *SyncCompletedHandler {
	return &SyncCompletedHandler{cfg: cfg, cache: cache, logger: logger}
}

func (h *SyncCompletedHandler) HandleSyncCompleted(c fiber.Ctx) error {
	tok := strings.TrimSpace(c.Get("X-Internal-Token"))
	if tok == "" || tok != h.cfg.InternalToken {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req SyncCompletedRequest
	if err := c.Bind().Body(&req); err != nil {
		if h.logger != nil {
			h.logger.Printf("Webhook error | error=%v", err)
		}
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	req.SyncID = strings.TrimSpace(req.SyncID)
	req.Category = strings.TrimSpace(req.Category)
	req.Source = strings.TrimSpace(req.Source)
	req.CompletedAt = strings.TrimSpace(req.CompletedAt)

	if req.SyncID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, nil)
	}

	if req.CompletedAt != "" {
		if _, err := time.Parse(time.RFC3339, req.CompletedAt); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
	}

	if h.logger != nil {
		h.logger.Printf("Sync completed | sync=%s category=%s source=%s", req.SyncID, req.Category, req.Source)
	}

	if h.cache != nil {
		if err := h.cache.InvalidateSearchCache(c.Context()); err != nil {
			if h.logger != nil {
				h.logger.Printf("Webhook error | error=%v", err)
			}
		}
	}

	if h.logger != nil {
		h.logger.Printf("Cache invalidated | scope=jobs:search")
	}

	ws.NotifyListingsUpdated(req.Category, req.Source)
	if h.logger != nil {
		h.logger.Printf("WS notify | type=listings_updated category=%s source=%s", req.Category, req.Source)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "cache_invalidated",
		"sync_id": req.SyncID,
	})
}
