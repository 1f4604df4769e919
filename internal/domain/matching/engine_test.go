package matching

import (
	"reflect"
	"testing"

	"talentmatch/internal/search"
	"talentmatch/internal/taxonomy"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	catalog, err := taxonomy.NewCatalog()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return NewEngine(catalog, search.NewIndex(catalog))
}

func TestMatchSkills_EmptyFreelancer(t *testing.T) {
	e := newTestEngine(t)

	res := e.MatchSkills(nil, []string{"React Development"}, 0)
	if res.IsMatch || res.MatchScore != 0 || res.MatchType != MatchNone {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(res.MatchedSkills) != 0 {
		t.Fatalf("expected empty matched skills, got %v", res.MatchedSkills)
	}

	res = e.MatchSkills([]string{"  ", ""}, []string{"React Development"}, 0)
	if res.IsMatch || res.MatchScore != 0 {
		t.Fatalf("blank-only skills should hard fail: %+v", res)
	}
}

func TestMatchSkills_EmptyRequired(t *testing.T) {
	e := newTestEngine(t)

	res := e.MatchSkills([]string{"React Development"}, nil, 0)
	if !res.IsMatch || res.MatchScore != 50 || res.MatchType != MatchNone {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(res.MatchedSkills) != 0 {
		t.Fatalf("expected empty matched skills, got %v", res.MatchedSkills)
	}
}

func TestMatchSkills_ExactFullMatch(t *testing.T) {
	e := newTestEngine(t)

	res := e.MatchSkills([]string{"React Development", "CSS"}, []string{"React Development"}, 0)
	if res.MatchType != MatchExact {
		t.Fatalf("expected exact, got %s", res.MatchType)
	}
	if res.MatchScore != 100 {
		t.Fatalf("expected 100, got %d", res.MatchScore)
	}
	if !containsString(res.MatchedSkills, "React Development") {
		t.Fatalf("expected React Development in %v", res.MatchedSkills)
	}
	if !res.IsMatch {
		t.Fatalf("expected isMatch")
	}
}

func TestMatchSkills_ExactViaStrictFuzzy(t *testing.T) {
	e := newTestEngine(t)

	// Typo on the freelancer side still resolves under the strict threshold.
	res := e.MatchSkills([]string{"Kotln"}, []string{"Kotlin"}, 0)
	if res.MatchType != MatchExact {
		t.Fatalf("expected exact, got %s (score=%d)", res.MatchType, res.MatchScore)
	}
	if res.MatchScore != 100 {
		t.Fatalf("expected 100, got %d", res.MatchScore)
	}
}

func TestMatchSkills_IntersectingViaRequiredRelatedSet(t *testing.T) {
	e := newTestEngine(t)

	// "Android Development" is in Kotlin's related list but is not Kotlin.
	res := e.MatchSkills([]string{"Android Development"}, []string{"Kotlin"}, 0)
	if res.MatchType != MatchIntersecting {
		t.Fatalf("expected intersecting, got %s", res.MatchType)
	}
	if res.MatchScore != 90 {
		t.Fatalf("expected 90, got %d", res.MatchScore)
	}
	if !containsString(res.MatchedSkills, "Android Development") {
		t.Fatalf("expected matched skill, got %v", res.MatchedSkills)
	}
}

func TestMatchSkills_RelatedViaCategory(t *testing.T) {
	e := newTestEngine(t)

	// Kotlin and Swift share the Mobile Development category but neither
	// lists the other as related.
	res := e.MatchSkills([]string{"Kotlin"}, []string{"Swift"}, 0)
	if res.MatchType != MatchRelated {
		t.Fatalf("expected related, got %s", res.MatchType)
	}
	if res.MatchScore != 80 {
		t.Fatalf("expected 80, got %d", res.MatchScore)
	}
}

func TestMatchSkills_RelatedViaSuperCategory(t *testing.T) {
	e := newTestEngine(t)

	// Python (Data & AI) vs Docker (DevOps & Cloud): different categories,
	// both under the Developer super-category.
	res := e.MatchSkills([]string{"Python"}, []string{"Docker"}, 0)
	if res.MatchType != MatchRelated {
		t.Fatalf("expected related, got %s (score=%d)", res.MatchType, res.MatchScore)
	}
	if res.MatchScore != 80 {
		t.Fatalf("expected 80, got %d", res.MatchScore)
	}
}

func TestMatchSkills_NoRelation(t *testing.T) {
	e := newTestEngine(t)

	res := e.MatchSkills([]string{"Voice Over"}, []string{"React Development"}, 0)
	if res.MatchType != MatchNone {
		t.Fatalf("expected none, got %s", res.MatchType)
	}
	if res.MatchScore != 0 || res.IsMatch {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestMatchSkills_TierPriority(t *testing.T) {
	e := newTestEngine(t)

	// One exact hit and one intersecting hit: the exact tier must win.
	res := e.MatchSkills(
		[]string{"React Development", "Java"},
		[]string{"React Development", "Kotlin"},
		0,
	)
	if res.MatchType != MatchExact {
		t.Fatalf("expected exact tier, got %s", res.MatchType)
	}
	if res.MatchScore != 50 {
		t.Fatalf("expected 50 (1 of 2 required), got %d", res.MatchScore)
	}
	if len(res.MatchedSkills) != 2 {
		t.Fatalf("expected both skills matched, got %v", res.MatchedSkills)
	}
}

func TestMatchSkills_ScoreClampedAt100(t *testing.T) {
	e := newTestEngine(t)

	// Two distinct freelancer strings resolving to the same required skill
	// push exactCount past totalRequired; the ratio is capped at 1.
	res := e.MatchSkills([]string{"React Development", "ReactJS"}, []string{"React Development"}, 0)
	if res.MatchScore != 100 {
		t.Fatalf("expected clamp at 100, got %d", res.MatchScore)
	}
	if res.MatchType != MatchExact {
		t.Fatalf("expected exact, got %s", res.MatchType)
	}
}

func TestMatchSkills_DuplicatesCountedOnce(t *testing.T) {
	e := newTestEngine(t)

	res := e.MatchSkills(
		[]string{"React Development", "react development"},
		[]string{"React Development", "CSS"},
		0,
	)
	if res.MatchScore != 50 {
		t.Fatalf("expected 50, got %d", res.MatchScore)
	}
	if len(res.MatchedSkills) != 1 {
		t.Fatalf("expected one matched entry, got %v", res.MatchedSkills)
	}
}

func TestMatchSkills_MinMatchOnlyAffectsFlag(t *testing.T) {
	e := newTestEngine(t)

	res := e.MatchSkills([]string{"Kotlin"}, []string{"Swift"}, 90)
	if res.MatchScore != 80 {
		t.Fatalf("expected 80, got %d", res.MatchScore)
	}
	if res.IsMatch {
		t.Fatalf("expected isMatch=false under minMatch=90")
	}

	res = e.MatchSkills([]string{"Kotlin"}, []string{"Swift"}, 80)
	if !res.IsMatch {
		t.Fatalf("expected isMatch=true at minMatch=80")
	}
}

func TestMatchSkills_Idempotent(t *testing.T) {
	e := newTestEngine(t)

	fl := []string{"React Development", "Kotlin", "Voice Over"}
	req := []string{"Swift", "React Development"}

	a := e.MatchSkills(fl, req, 40)
	b := e.MatchSkills(fl, req, 40)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical results: %+v vs %+v", a, b)
	}
}

func TestMatchSkills_MonotonicOnRelevantSuperset(t *testing.T) {
	e := newTestEngine(t)

	req := []string{"React Development", "Swift"}
	subset := e.MatchSkills([]string{"React Development"}, req, 0)
	superset := e.MatchSkills([]string{"React Development", "Swift"}, req, 0)
	if superset.MatchScore < subset.MatchScore {
		t.Fatalf("superset score %d < subset score %d", superset.MatchScore, subset.MatchScore)
	}
}

func TestMatchSkills_UnknownRequiredDegrades(t *testing.T) {
	e := newTestEngine(t)

	// A requirement that resolves to nothing still counts in the
	// denominator; the literal name can still be matched exactly.
	res := e.MatchSkills([]string{"Quantum Basket Weaving"}, []string{"Quantum Basket Weaving"}, 0)
	if res.MatchType != MatchExact {
		t.Fatalf("expected literal exact match, got %s", res.MatchType)
	}
	if res.MatchScore != 100 {
		t.Fatalf("expected 100, got %d", res.MatchScore)
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
