package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"talentmatch/internal/delivery/http/dto"
	"talentmatch/internal/delivery/http/middleware"
	"talentmatch/internal/domain/matching"
	"talentmatch/internal/pkg/response"
	"talentmatch/internal/usecase"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Get("/", h.List)
	grp.Get("/search", h.Search)
	grp.Get("/expand", h.Expand)
}

// List handles GET /skills?category=Mobile+Development.
func (h *SkillHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListSkills(c.Context(), c.Query("category"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := dto.SkillListResponse{
		Categories: h.uc.ListCategories(c.Context()),
		Skills:     make([]dto.SkillResponse, 0, len(items)),
	}
	for _, it := range items {
		out.Skills = append(out.Skills, toSkillResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

// Search handles GET /skills/search?q=kotln&limit=10.
func (h *SkillHandler) Search(c fiber.Ctx) error {
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
	}

	matches, err := h.uc.SearchSkills(c.Context(), c.Query("q"), limit)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := make([]dto.SkillSearchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, dto.SkillSearchResponse{SkillResponse: toSkillResponse(m.SkillItem), Score: m.Score})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

// Expand handles GET /skills/expand?skills=React+Development,Kotlin.
func (h *SkillHandler) Expand(c fiber.Ctx) error {
	names := matching.SplitSkills(c.Query("skills"))
	expanded := h.uc.ExpandSkills(c.Context(), names)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillExpandResponse{Skills: expanded})
}

func toSkillResponse(it usecase.SkillItem) dto.SkillResponse {
	return dto.SkillResponse{
		ID:            it.ID,
		Name:          it.Name,
		Category:      it.Category,
		RelatedSkills: it.RelatedSkills,
	}
}
