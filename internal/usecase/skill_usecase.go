package usecase

import (
	"context"
	"strings"

	"talentmatch/internal/domain/matching"
	"talentmatch/internal/search"
	"talentmatch/internal/taxonomy"
)

const maxSearchLimit = 50

type SkillItem struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	RelatedSkills []string `json:"related_skills"`
}

type SkillMatch struct {
	SkillItem
	Score float64 `json:"score"`
}

type SkillUsecase interface {
	ListSkills(ctx context.Context, category string) ([]SkillItem, error)
	ListCategories(ctx context.Context) []string
	SearchSkills(ctx context.Context, query string, limit int) ([]SkillMatch, error)
	ExpandSkills(ctx context.Context, names []string) []string
}

// Skill serves the static taxonomy. All data is in-process; the ctx
// parameters exist for interface symmetry with the other usecases.
type Skill struct {
	catalog *taxonomy.Catalog
	index   *search.Index
	engine  *matching.Engine
}

func NewSkillUsecase(catalog *taxonomy.Catalog, index *search.Index, engine *matching.Engine) *Skill {
	return &Skill{catalog: catalog, index: index, engine: engine}
}

func (u *Skill) ListSkills(_ context.Context, category string) ([]SkillItem, error) {
	category = strings.TrimSpace(category)

	skills := u.catalog.All()
	out := make([]SkillItem, 0, len(skills))
	for i := range skills {
		s := &skills[i]
		if category != "" && !strings.EqualFold(s.Category, category) {
			continue
		}
		out = append(out, toSkillItem(s))
	}
	return out, nil
}

func (u *Skill) ListCategories(_ context.Context) []string {
	return u.catalog.Categories()
}

func (u *Skill) SearchSkills(_ context.Context, query string, limit int) ([]SkillMatch, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrInvalidInput
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > maxSearchLimit {
		return nil, ErrInvalidInput
	}

	matches := u.index.Search(query, limit)
	out := make([]SkillMatch, 0, len(matches))
	for _, m := range matches {
		out = append(out, SkillMatch{SkillItem: toSkillItem(m.Skill), Score: m.Score})
	}
	return out, nil
}

func (u *Skill) ExpandSkills(_ context.Context, names []string) []string {
	return u.engine.Expand(names)
}

func toSkillItem(s *taxonomy.Skill) SkillItem {
	related := make([]string, len(s.RelatedSkills))
	copy(related, s.RelatedSkills)
	return SkillItem{
		ID:            s.ID,
		Name:          s.Name,
		Category:      s.Category,
		RelatedSkills: related,
	}
}
