package handler

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"talentmatch/internal/config"
	"talentmatch/internal/delivery/http/middleware"
	"talentmatch/internal/pkg/response"
	"talentmatch/internal/ws"
)

type ImportCompletedRequest struct {
	RunID       string `json:"run_id"`
	Source      string `json:"source"`
	Imported    int    `json:"imported"`
	CompletedAt string `json:"completed_at"`
}

type searchInvalidator interface {
	InvalidateFreelancerSearches(ctx context.Context) error
}

// ImportCompletedHandler is the webhook the importer calls after a run.
// It drops cached rankings and broadcasts freelancers_updated to
// websocket subscribers.
type ImportCompletedHandler struct {
	cfg    config.Config
	cache  searchInvalidator
	logger *log.Logger
}

func NewImportCompletedHandler(cfg config.Config, cache searchInvalidator, logger *log.Logger) *ImportCompletedHandler {
	return &ImportCompletedHandler{cfg: cfg, cache: cache, logger: logger}
}

func (h *ImportCompletedHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/imports/completed", h.HandleImportCompleted)
}

func (h *ImportCompletedHandler) HandleImportCompleted(c fiber.Ctx) error {
	tok := strings.TrimSpace(c.Get("X-Internal-Token"))
	if tok == "" || tok != h.cfg.App.InternalToken {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req ImportCompletedRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	req.RunID = strings.TrimSpace(req.RunID)
	req.Source = strings.TrimSpace(req.Source)
	if req.RunID == "" || req.Source == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, nil)
	}
	if req.CompletedAt != "" {
		if _, err := time.Parse(time.RFC3339, strings.TrimSpace(req.CompletedAt)); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
	}

	if h.logger != nil {
		h.logger.Printf("import completed | run=%s source=%s imported=%d", req.RunID, req.Source, req.Imported)
	}

	if h.cache != nil {
		if err := h.cache.InvalidateFreelancerSearches(c.Context()); err != nil && h.logger != nil {
			h.logger.Printf("import webhook | cache invalidation error=%v", err)
		}
	}

	ws.NotifyFreelancersUpdated(req.Source, req.Imported)

	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
