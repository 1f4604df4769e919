package taxonomy

import (
	"strings"
	"testing"
)

func TestNewCatalog_BuildsAndValidates(t *testing.T) {
	c, err := NewCatalog()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(c.All()) == 0 {
		t.Fatalf("expected non-empty catalog")
	}
}

func TestSkillByName_CaseInsensitive(t *testing.T) {
	c, err := NewCatalog()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	s := c.SkillByName("react development")
	if s == nil {
		t.Fatalf("expected lookup hit")
	}
	if s.Name != "React Development" {
		t.Fatalf("unexpected name: %s", s.Name)
	}
	if s.Category != CategoryWebDevelopment {
		t.Fatalf("unexpected category: %s", s.Category)
	}

	if c.SkillByName("  KOTLIN  ") == nil {
		t.Fatalf("expected trimmed case-insensitive hit")
	}
	if c.SkillByName("no such skill") != nil {
		t.Fatalf("expected nil for unknown name")
	}
}

func TestSkillsInCategory_UnknownIsEmpty(t *testing.T) {
	c, err := NewCatalog()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	mobile := c.SkillsInCategory(CategoryMobileDevelopment)
	if len(mobile) == 0 {
		t.Fatalf("expected mobile skills")
	}
	found := false
	for _, n := range mobile {
		if n == "Swift" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected Swift in %v", mobile)
	}

	if got := c.SkillsInCategory("Underwater Basket Weaving"); len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}

func TestSuperCategoryOf(t *testing.T) {
	c, err := NewCatalog()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if got := c.SuperCategoryOf(CategoryWebDevelopment); got != "Developer" {
		t.Fatalf("expected Developer, got %q", got)
	}
	if got := c.SuperCategoryOf(CategoryAudioMusic); got != "Creative" {
		t.Fatalf("expected Creative, got %q", got)
	}
	if got := c.SuperCategoryOf("Nope"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestNewCatalog_RejectsUnknownCategory(t *testing.T) {
	bad := []Skill{
		{ID: 1, Name: "Thing", Category: "Ghost Category"},
	}
	_, err := newCatalog(bad, []string{"Cat"}, map[string][]string{"Group": {"Cat"}})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "unknown category") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewCatalog_RejectsDuplicateNames(t *testing.T) {
	bad := []Skill{
		{ID: 1, Name: "Thing", Category: "Cat"},
		{ID: 2, Name: "thing", Category: "Cat"},
	}
	if _, err := newCatalog(bad, []string{"Cat"}, map[string][]string{"Group": {"Cat"}}); err == nil {
		t.Fatalf("expected duplicate error")
	}
}

func TestEveryCategoryHasSuperCategory(t *testing.T) {
	c, err := NewCatalog()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, cat := range c.Categories() {
		if c.SuperCategoryOf(cat) == "" {
			t.Fatalf("category %q has no super-category", cat)
		}
	}
}
