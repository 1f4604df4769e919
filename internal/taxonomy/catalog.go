package taxonomy

import (
	"fmt"
	"sort"
	"strings"
)

// Catalog wraps the static skill table with lookup maps. Built once at
// startup and read-only afterwards, so it is safe for concurrent use.
type Catalog struct {
	skills     []Skill
	byName     map[string]*Skill
	byCategory map[string][]string
	superCats  map[string][]string
}

func NewCatalog() (*Catalog, error) {
	return newCatalog(Skills, Categories, SuperCategories)
}

func newCatalog(skills []Skill, categories []string, superCats map[string][]string) (*Catalog, error) {
	c := &Catalog{
		skills:     skills,
		byName:     make(map[string]*Skill, len(skills)),
		byCategory: make(map[string][]string, len(categories)),
		superCats:  superCats,
	}

	for _, cat := range categories {
		c.byCategory[cat] = nil
	}

	for i := range c.skills {
		s := &c.skills[i]
		key := strings.ToLower(strings.TrimSpace(s.Name))
		if key == "" {
			return nil, fmt.Errorf("taxonomy: skill id=%d has empty name", s.ID)
		}
		if _, ok := c.byName[key]; ok {
			return nil, fmt.Errorf("taxonomy: duplicate skill name %q", s.Name)
		}
		c.byName[key] = s
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	for i := range c.skills {
		s := &c.skills[i]
		c.byCategory[s.Category] = append(c.byCategory[s.Category], s.Name)
	}
	return c, nil
}

// validate checks that every skill category exists in the category table
// and is covered by a super-category. Runs once at construction so bad
// references fail the process instead of degrading at query time.
func (c *Catalog) validate() error {
	for i := range c.skills {
		s := &c.skills[i]
		if _, ok := c.byCategory[s.Category]; !ok {
			return fmt.Errorf("taxonomy: skill %q references unknown category %q", s.Name, s.Category)
		}
		if c.SuperCategoryOf(s.Category) == "" {
			return fmt.Errorf("taxonomy: category %q is not covered by any super-category", s.Category)
		}
	}
	return nil
}

// SkillByName resolves a name with an exact case-insensitive match only.
func (c *Catalog) SkillByName(name string) *Skill {
	if c == nil {
		return nil
	}
	return c.byName[strings.ToLower(strings.TrimSpace(name))]
}

// SkillsInCategory returns the skill names of a category; empty for an
// unknown category.
func (c *Catalog) SkillsInCategory(category string) []string {
	if c == nil {
		return nil
	}
	names := c.byCategory[category]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// SuperCategoryOf scans the super-category table and returns the first
// group containing the category, or "" when none does. Iteration over the
// map is made deterministic by sorting the group names.
func (c *Catalog) SuperCategoryOf(category string) string {
	if c == nil {
		return ""
	}
	groups := make([]string, 0, len(c.superCats))
	for g := range c.superCats {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	for _, g := range groups {
		for _, cat := range c.superCats[g] {
			if cat == category {
				return g
			}
		}
	}
	return ""
}

// All returns the catalog entries in declaration order.
func (c *Catalog) All() []Skill {
	if c == nil {
		return nil
	}
	out := make([]Skill, len(c.skills))
	copy(out, c.skills)
	return out
}

// Categories returns the known category names, sorted.
func (c *Catalog) Categories() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.byCategory))
	for cat := range c.byCategory {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

// DanglingRelated lists related-skill names that do not resolve to a
// catalog entry. Forward references are allowed, so this is diagnostic
// output for startup logging, not an error.
func (c *Catalog) DanglingRelated() []string {
	if c == nil {
		return nil
	}
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for i := range c.skills {
		for _, rel := range c.skills[i].RelatedSkills {
			key := strings.ToLower(strings.TrimSpace(rel))
			if key == "" {
				continue
			}
			if _, ok := c.byName[key]; ok {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, rel)
		}
	}
	sort.Strings(out)
	return out
}
