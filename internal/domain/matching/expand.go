package matching

import "strings"

const expandFuzzyLimit = 5

// Expand builds a deduplicated superset of names: the literal inputs, each
// skill's related skills (category siblings when the name is not a defined
// skill), plus the top fuzzy matches and their related skills. Unknown
// names degrade to just the literal input; Expand never fails.
//
// Deduplication is case-insensitive, first-seen casing wins.
func (e *Engine) Expand(names []string) []string {
	out := make([]string, 0, len(names)*4)
	seen := make(map[string]struct{}, len(names)*4)
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}

	for _, name := range NormalizeSkills(names) {
		add(name)

		if skill := e.catalog.SkillByName(name); skill != nil {
			for _, rel := range skill.RelatedSkills {
				add(rel)
			}
		} else {
			for _, sibling := range e.catalog.SkillsInCategory(name) {
				add(sibling)
			}
		}

		for _, m := range e.index.Search(name, expandFuzzyLimit) {
			add(m.Skill.Name)
			for _, rel := range m.Skill.RelatedSkills {
				add(rel)
			}
		}
	}

	return out
}
