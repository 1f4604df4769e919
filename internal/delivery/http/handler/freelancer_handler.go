package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"talentmatch/internal/delivery/http/dto"
	"talentmatch/internal/delivery/http/middleware"
	"talentmatch/internal/domain/matching"
	"talentmatch/internal/pkg/response"
	"talentmatch/internal/usecase"
)

type FreelancerHandler struct {
	uc usecase.FreelancerListUsecase
}

func NewFreelancerHandler(uc usecase.FreelancerListUsecase) *FreelancerHandler {
	return &FreelancerHandler{uc: uc}
}

func (h *FreelancerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.List)
}

// List handles GET /freelancers?skills=a,b&min_match=40&page=1&limit=20.
func (h *FreelancerHandler) List(c fiber.Ctx) error {
	params := usecase.FreelancerListParams{
		Skills: matching.SplitSkills(c.Query("skills")),
	}

	var err error
	if params.MinMatch, err = queryInt(c, "min_match", 0); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid min_match", nil, err)
	}
	if params.Page, err = queryInt(c, "page", 0); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid page", nil, err)
	}
	if params.Limit, err = queryInt(c, "limit", 0); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
	}

	res, err := h.uc.ListFreelancers(c.Context(), params)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := dto.FreelancerListResponse{
		Freelancers: make([]dto.FreelancerResponse, 0, len(res.Items)),
		Pagination: dto.PaginationResponse{
			Page:       res.Pagination.Page,
			PerPage:    res.Pagination.PerPage,
			TotalItems: res.Pagination.TotalItems,
			TotalPages: res.Pagination.TotalPages,
		},
	}
	for _, it := range res.Items {
		out.Freelancers = append(out.Freelancers, dto.FreelancerResponse{
			ID:            it.ID,
			Name:          it.Name,
			Title:         it.Title,
			Location:      it.Location,
			Skills:        it.Skills,
			HourlyRate:    it.HourlyRate,
			Rating:        it.Rating,
			ReviewCount:   it.ReviewCount,
			Availability:  it.Availability,
			AvatarURL:     it.AvatarURL,
			MatchScore:    it.MatchScore,
			MatchedSkills: it.MatchedSkills,
			MatchType:     string(it.MatchType),
			IsMatch:       it.IsMatch,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func queryInt(c fiber.Ctx, key string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
