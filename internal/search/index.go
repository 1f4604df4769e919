package search

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/sahilm/fuzzy"

	"talentmatch/internal/taxonomy"
)

// Field weights. A query hitting a skill's own name must always beat the
// same hit on a category or on a related-skill alias.
const (
	weightName     = 1.0
	weightCategory = 0.5
	weightRelated  = 0.3
)

// subsequenceBonus is added to the raw strength when the query characters
// appear in order inside the field text.
const subsequenceBonus = 0.05

// Match is one fuzzy hit. Score is distance-like: in [0,1], lower is
// better, 0 is a perfect hit on the skill name.
type Match struct {
	Skill *taxonomy.Skill
	Score float64
}

type entry struct {
	norm     string
	skillIdx int
	weight   float64
}

// entrySource adapts the entry table to the sahilm/fuzzy Source interface.
type entrySource []entry

func (s entrySource) String(i int) string { return s[i].norm }
func (s entrySource) Len() int            { return len(s) }

// Index is a weighted text index over the taxonomy. Built once, read-only,
// safe for concurrent searches.
type Index struct {
	skills  []taxonomy.Skill
	entries entrySource
}

func NewIndex(catalog *taxonomy.Catalog) *Index {
	skills := catalog.All()
	entries := make(entrySource, 0, len(skills)*4)

	for i := range skills {
		s := &skills[i]
		if n := Normalize(s.Name); n != "" {
			entries = append(entries, entry{norm: n, skillIdx: i, weight: weightName})
		}
		if n := Normalize(s.Category); n != "" {
			entries = append(entries, entry{norm: n, skillIdx: i, weight: weightCategory})
		}
		for _, rel := range s.RelatedSkills {
			if n := Normalize(rel); n != "" {
				entries = append(entries, entry{norm: n, skillIdx: i, weight: weightRelated})
			}
		}
	}

	return &Index{skills: skills, entries: entries}
}

// Search returns the best matches for query, best first. A blank query
// returns an empty result. limit <= 0 means no limit.
func (x *Index) Search(query string, limit int) []Match {
	if x == nil {
		return nil
	}
	q := Normalize(query)
	if q == "" {
		return nil
	}

	subseq := make(map[int]struct{})
	for _, m := range fuzzy.FindFrom(q, x.entries) {
		subseq[m.Index] = struct{}{}
	}

	best := make(map[int]float64, len(x.skills))
	for i, e := range x.entries {
		strength := matchStrength(q, e.norm)
		if _, ok := subseq[i]; ok {
			strength += subsequenceBonus
			if strength > 1 {
				strength = 1
			}
		}
		if strength <= 0.05 {
			continue
		}
		dist := 1 - strength*(0.7+0.3*e.weight)
		if cur, ok := best[e.skillIdx]; !ok || dist < cur {
			best[e.skillIdx] = dist
		}
	}

	out := make([]Match, 0, len(best))
	for idx, dist := range best {
		out = append(out, Match{Skill: &x.skills[idx], Score: dist})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score < out[j].Score
		}
		return out[i].Skill.ID < out[j].Skill.ID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Best returns the single best match, or a zero Match when nothing scores.
func (x *Index) Best(query string) (Match, bool) {
	res := x.Search(query, 1)
	if len(res) == 0 {
		return Match{}, false
	}
	return res[0], true
}

// matchStrength scores q against t in [0,1], higher is better. Tiers:
// exact > prefix > word match > substring, with normalized edit distance
// as the floor so typos still surface.
func matchStrength(q, t string) float64 {
	if q == "" || t == "" {
		return 0
	}
	if q == t {
		return 1
	}

	best := 0.0
	if strings.HasPrefix(t, q) {
		best = 0.9
	}

	words := strings.Fields(t)
	for _, w := range words {
		switch {
		case w == q:
			best = maxf(best, 0.88)
		case strings.HasPrefix(w, q):
			best = maxf(best, 0.82)
		}
	}

	if strings.Contains(t, q) {
		ratio := float64(utf8.RuneCountInString(q)) / float64(utf8.RuneCountInString(t))
		best = maxf(best, 0.6+0.25*ratio)
	}

	best = maxf(best, editSimilarity(q, t)*0.95)
	for _, w := range words {
		best = maxf(best, editSimilarity(q, w)*0.85)
	}

	return best
}

func editSimilarity(a, b string) float64 {
	la := utf8.RuneCountInString(a)
	lb := utf8.RuneCountInString(b)
	n := la
	if lb > n {
		n = lb
	}
	if n == 0 {
		return 0
	}
	d := levenshtein.ComputeDistance(a, b)
	sim := 1 - float64(d)/float64(n)
	if sim < 0 {
		return 0
	}
	return sim
}

// Normalize lowercases, strips punctuation (keeping '+' and '#' so "C++"
// and "C#" survive) and collapses whitespace.
func Normalize(input string) string {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return ""
	}

	b := strings.Builder{}
	b.Grow(len(input))
	lastWasSpace := false

	for _, r := range input {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '+' || r == '#':
			b.WriteRune(r)
			lastWasSpace = false
		case unicode.IsSpace(r):
			if b.Len() == 0 || lastWasSpace {
				continue
			}
			b.WriteByte(' ')
			lastWasSpace = true
		default:
			// drop all other characters
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
