package usecase

import (
	"context"
	"errors"
	"testing"

	"talentmatch/internal/domain/matching"
	"talentmatch/internal/search"
	"talentmatch/internal/taxonomy"
)

func newTestSkillUsecase(t *testing.T) *Skill {
	t.Helper()
	catalog, err := taxonomy.NewCatalog()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	idx := search.NewIndex(catalog)
	return NewSkillUsecase(catalog, idx, matching.NewEngine(catalog, idx))
}

func TestSkillUsecase_ListSkills(t *testing.T) {
	uc := newTestSkillUsecase(t)

	all, err := uc.ListSkills(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(all) == 0 {
		t.Fatal("expected skills")
	}

	mobile, err := uc.ListSkills(context.Background(), "mobile development")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(mobile) == 0 || len(mobile) >= len(all) {
		t.Fatalf("category filter broken: %d of %d", len(mobile), len(all))
	}
	for _, s := range mobile {
		if s.Category != taxonomy.CategoryMobileDevelopment {
			t.Fatalf("wrong category in filtered list: %+v", s)
		}
	}
}

func TestSkillUsecase_SearchSkills(t *testing.T) {
	uc := newTestSkillUsecase(t)

	matches, err := uc.SearchSkills(context.Background(), "kotln", 5)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches) == 0 || matches[0].Name != "Kotlin" {
		t.Fatalf("expected Kotlin first, got %+v", matches)
	}

	if _, err := uc.SearchSkills(context.Background(), "  ", 5); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.SearchSkills(context.Background(), "go", 500); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for oversized limit, got %v", err)
	}
}

func TestSkillUsecase_ExpandSkills(t *testing.T) {
	uc := newTestSkillUsecase(t)

	out := uc.ExpandSkills(context.Background(), []string{"React Development"})
	if len(out) == 0 || out[0] != "React Development" {
		t.Fatalf("unexpected expansion: %v", out)
	}
}
