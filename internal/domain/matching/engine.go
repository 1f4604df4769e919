package matching

import (
	"math"
	"strings"

	"talentmatch/internal/search"
	"talentmatch/internal/taxonomy"
)

type MatchType string

const (
	MatchExact        MatchType = "exact"
	MatchIntersecting MatchType = "intersecting"
	MatchRelated      MatchType = "related"
	MatchNone         MatchType = "none"
)

// Resolution thresholds against the fuzzy index. The freelancer side is
// stricter: a false positive there inflates apparent qualifications, while
// a loose required-side match only broadens the candidate pool.
const (
	freelancerSkillThreshold = 0.25
	requiredSkillThreshold   = 0.3
)

// Tier ceilings. An all-exact match scores 100, all-intersecting 90,
// all-related 80. An empty requirement list is a universal pass at 50 so
// unfiltered browsing still ranks freelancers above zero.
const (
	exactTierCeiling        = 100
	intersectingTierCeiling = 90
	relatedTierCeiling      = 80
	emptyRequirementScore   = 50
)

type Result struct {
	IsMatch       bool
	MatchScore    int
	MatchedSkills []string
	MatchType     MatchType
}

// Engine scores one skill set against another using the taxonomy and the
// fuzzy index. Both collaborators are immutable, so a single Engine is
// safe for concurrent use.
type Engine struct {
	catalog *taxonomy.Catalog
	index   *search.Index
}

func NewEngine(catalog *taxonomy.Catalog, index *search.Index) *Engine {
	return &Engine{catalog: catalog, index: index}
}

// resolve maps a free-text skill string to a taxonomy entry: exact
// case-insensitive match first, then the best fuzzy hit under threshold.
func (e *Engine) resolve(name string, threshold float64) *taxonomy.Skill {
	if s := e.catalog.SkillByName(name); s != nil {
		return s
	}
	if m, ok := e.index.Best(name); ok && m.Score < threshold {
		return m.Skill
	}
	return nil
}

// MatchSkills computes how well freelancerSkills satisfies requiredSkills.
//
// Classification runs per distinct (case-insensitive) freelancer skill and
// stops at the first bucket that applies: exact, intersecting (related-list
// overlap in either direction), related (shared category or
// super-category). The highest non-empty bucket picks the tier.
func (e *Engine) MatchSkills(freelancerSkills, requiredSkills []string, minMatch int) Result {
	fl := NormalizeSkills(freelancerSkills)
	req := NormalizeSkills(requiredSkills)

	if len(fl) == 0 {
		return Result{IsMatch: false, MatchScore: 0, MatchedSkills: []string{}, MatchType: MatchNone}
	}
	if len(req) == 0 {
		return Result{IsMatch: true, MatchScore: emptyRequirementScore, MatchedSkills: []string{}, MatchType: MatchNone}
	}

	reqNames := make(map[string]struct{}, len(req))
	reqCategories := make(map[string]struct{})
	reqSupers := make(map[string]struct{})
	reqRelated := make(map[string]struct{})

	for _, r := range req {
		reqNames[strings.ToLower(r)] = struct{}{}

		skill := e.resolve(r, requiredSkillThreshold)
		if skill == nil {
			continue
		}
		reqNames[strings.ToLower(skill.Name)] = struct{}{}
		reqCategories[skill.Category] = struct{}{}
		if sc := e.catalog.SuperCategoryOf(skill.Category); sc != "" {
			reqSupers[sc] = struct{}{}
		}
		for _, rel := range skill.RelatedSkills {
			reqRelated[strings.ToLower(rel)] = struct{}{}
		}
	}

	totalRequired := len(req)

	var exactCount, intersectingCount, relatedCount int
	matched := make([]string, 0, len(fl))
	seen := make(map[string]struct{}, len(fl))

	for _, s := range fl {
		ls := strings.ToLower(s)
		if _, dup := seen[ls]; dup {
			continue
		}
		seen[ls] = struct{}{}

		skill := e.resolve(s, freelancerSkillThreshold)

		if e.isExact(ls, skill, reqNames) {
			exactCount++
			matched = append(matched, s)
			continue
		}
		if e.isIntersecting(ls, skill, reqNames, reqRelated) {
			intersectingCount++
			matched = append(matched, s)
			continue
		}
		if e.isRelated(skill, reqCategories, reqSupers) {
			relatedCount++
			matched = append(matched, s)
			continue
		}
	}

	var score float64
	matchType := MatchNone
	switch {
	case exactCount > 0:
		score = tierScore(exactCount, totalRequired, exactTierCeiling)
		matchType = MatchExact
	case intersectingCount > 0:
		score = tierScore(intersectingCount, totalRequired, intersectingTierCeiling)
		matchType = MatchIntersecting
	case relatedCount > 0:
		score = tierScore(relatedCount, totalRequired, relatedTierCeiling)
		matchType = MatchRelated
	}

	// An empty matched list always means the zero result, even if a tier
	// counter and the list ever disagree.
	if len(matched) == 0 {
		return Result{IsMatch: false, MatchScore: 0, MatchedSkills: []string{}, MatchType: MatchNone}
	}

	final := int(math.Round(score))
	if final < 0 {
		final = 0
	}
	if final > 100 {
		final = 100
	}

	return Result{
		IsMatch:       final >= minMatch,
		MatchScore:    final,
		MatchedSkills: matched,
		MatchType:     matchType,
	}
}

func (e *Engine) isExact(ls string, skill *taxonomy.Skill, reqNames map[string]struct{}) bool {
	if _, ok := reqNames[ls]; ok {
		return true
	}
	if skill != nil {
		if _, ok := reqNames[strings.ToLower(skill.Name)]; ok {
			return true
		}
	}
	return false
}

func (e *Engine) isIntersecting(ls string, skill *taxonomy.Skill, reqNames, reqRelated map[string]struct{}) bool {
	if _, ok := reqRelated[ls]; ok {
		return true
	}
	if skill == nil {
		return false
	}
	for _, rel := range skill.RelatedSkills {
		lrel := strings.ToLower(rel)
		if _, ok := reqNames[lrel]; ok {
			return true
		}
		if _, ok := reqRelated[lrel]; ok {
			return true
		}
	}
	return false
}

func (e *Engine) isRelated(skill *taxonomy.Skill, reqCategories, reqSupers map[string]struct{}) bool {
	if skill == nil {
		return false
	}
	if _, ok := reqCategories[skill.Category]; ok {
		return true
	}
	if sc := e.catalog.SuperCategoryOf(skill.Category); sc != "" {
		if _, ok := reqSupers[sc]; ok {
			return true
		}
	}
	return false
}

func tierScore(count, total, ceiling int) float64 {
	ratio := float64(count) / float64(total)
	if ratio > 1 {
		ratio = 1
	}
	return ratio * float64(ceiling)
}
