package usecase

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"talentmatch/internal/domain/freelancer"
	"talentmatch/internal/domain/matching"
	"talentmatch/internal/repository"
)

const (
	defaultPageSize = 20
	maxPageSize     = 50
)

type FreelancerListParams struct {
	Skills   []string
	MinMatch int
	Page     int
	Limit    int
}

type FreelancerListItem struct {
	ID            uuid.UUID          `json:"id"`
	Name          string             `json:"name"`
	Title         string             `json:"title"`
	Location      string             `json:"location"`
	Skills        []string           `json:"skills"`
	HourlyRate    float64            `json:"hourly_rate"`
	Rating        float64            `json:"rating"`
	ReviewCount   int                `json:"review_count"`
	Availability  string             `json:"availability"`
	AvatarURL     string             `json:"avatar_url"`
	MatchScore    int                `json:"match_score"`
	MatchedSkills []string           `json:"matched_skills"`
	MatchType     matching.MatchType `json:"match_type"`
	IsMatch       bool               `json:"is_match"`
}

type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

type FreelancerListResult struct {
	Items      []FreelancerListItem `json:"items"`
	Pagination Pagination           `json:"pagination"`
}

type FreelancerListUsecase interface {
	ListFreelancers(ctx context.Context, params FreelancerListParams) (FreelancerListResult, error)
}

// Matcher is the scoring dependency; *matching.Engine implements it.
type Matcher interface {
	MatchSkills(freelancerSkills, requiredSkills []string, minMatch int) matching.Result
}

type FreelancerList struct {
	freelancers repository.FreelancerRepository
	matcher     Matcher
	cache       SearchCache
	logger      *log.Logger
}

func NewFreelancerListUsecase(freelancers repository.FreelancerRepository, matcher Matcher, cache SearchCache, logger *log.Logger) *FreelancerList {
	return &FreelancerList{freelancers: freelancers, matcher: matcher, cache: cache, logger: logger}
}

// ListFreelancers scores every active profile against the requested
// skills, drops zero-score profiles, sorts by score descending (stable,
// so equal scores keep directory order) and returns one page.
//
// With no requested skills every profile is returned in directory order
// with the neutral score. MinMatch never filters; it only drives each
// item's is_match flag.
func (u *FreelancerList) ListFreelancers(ctx context.Context, params FreelancerListParams) (FreelancerListResult, error) {
	if params.Page < 0 || params.Limit < 0 {
		return FreelancerListResult{}, ErrInvalidInput
	}
	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = defaultPageSize
	}
	if params.Limit > maxPageSize {
		return FreelancerListResult{}, ErrInvalidInput
	}
	if params.MinMatch < 0 || params.MinMatch > 100 {
		return FreelancerListResult{}, ErrInvalidInput
	}
	params.Skills = matching.NormalizeSkills(params.Skills)

	cacheKey := FreelancersSearchCacheKey(params)
	if u.cache != nil {
		var cached FreelancerListResult
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("freelancers | cache hit key=%s", cacheKey)
			}
			return cached, nil
		}
	}

	all, err := u.freelancers.ListActive(ctx)
	if err != nil {
		return FreelancerListResult{}, ErrInternal
	}

	scored := make([]FreelancerListItem, 0, len(all))
	for i := range all {
		item, ok := u.scoreOne(&all[i], params.Skills, params.MinMatch)
		if !ok {
			continue
		}
		if len(params.Skills) > 0 && item.MatchScore == 0 {
			continue
		}
		scored = append(scored, item)
	}

	if len(params.Skills) > 0 {
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].MatchScore > scored[j].MatchScore
		})
	}

	total := int64(len(scored))
	totalPages := int((total + int64(params.Limit) - 1) / int64(params.Limit))

	start := (params.Page - 1) * params.Limit
	end := start + params.Limit
	if start > len(scored) {
		start = len(scored)
	}
	if end > len(scored) {
		end = len(scored)
	}

	result := FreelancerListResult{
		Items: scored[start:end],
		Pagination: Pagination{
			Page:       params.Page,
			PerPage:    params.Limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}

	if u.cache != nil {
		// Only one concurrent miss refills the cache entry; the rest
		// just return their computed result.
		locked, _ := u.cache.SetIfNotExists(ctx, FreelancersSearchLockKey(cacheKey), "1", 10*time.Second)
		if locked {
			if err := u.cache.SetJSON(ctx, cacheKey, result, 0); err != nil && u.logger != nil {
				u.logger.Printf("freelancers | cache set failed key=%s err=%v", cacheKey, err)
			}
			_ = u.cache.Delete(ctx, FreelancersSearchLockKey(cacheKey))
		}
	}

	return result, nil
}

// scoreOne isolates one profile's scoring. A panic on a malformed
// profile is logged and that profile is excluded; the rest of the batch
// is unaffected.
func (u *FreelancerList) scoreOne(f *freelancer.Freelancer, required []string, minMatch int) (item FreelancerListItem, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if u.logger != nil {
				u.logger.Printf("freelancers | scoring panic id=%s err=%v", f.ID, r)
			}
			item = FreelancerListItem{}
			ok = false
		}
	}()

	res := u.matcher.MatchSkills(f.Skills, required, minMatch)

	return FreelancerListItem{
		ID:            f.ID,
		Name:          f.Name,
		Title:         f.Title,
		Location:      f.Location,
		Skills:        f.Skills.Normalized(),
		HourlyRate:    f.HourlyRate,
		Rating:        f.Rating,
		ReviewCount:   f.ReviewCount,
		Availability:  f.Availability,
		AvatarURL:     f.AvatarURL,
		MatchScore:    res.MatchScore,
		MatchedSkills: res.MatchedSkills,
		MatchType:     res.MatchType,
		IsMatch:       res.IsMatch,
	}, true
}
