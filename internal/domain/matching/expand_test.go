package matching

import (
	"strings"
	"testing"
)

func TestExpand_IncludesRelatedSkills(t *testing.T) {
	e := newTestEngine(t)

	out := e.Expand([]string{"React Development"})
	if len(out) == 0 || out[0] != "React Development" {
		t.Fatalf("expected literal first, got %v", out)
	}
	for _, want := range []string{"ReactJS", "Next.js", "Redux"} {
		if !containsString(out, want) {
			t.Fatalf("expected %q in expansion %v", want, out)
		}
	}
}

func TestExpand_CategoryNameFallsBackToSiblings(t *testing.T) {
	e := newTestEngine(t)

	// "Mobile Development" is a category, not a skill; expansion pulls in
	// the category members.
	out := e.Expand([]string{"Mobile Development"})
	for _, want := range []string{"Swift", "Kotlin", "Flutter"} {
		if !containsString(out, want) {
			t.Fatalf("expected %q in expansion %v", want, out)
		}
	}
}

func TestExpand_DeduplicatesCaseInsensitively(t *testing.T) {
	e := newTestEngine(t)

	out := e.Expand([]string{"react development", "React Development"})
	seen := make(map[string]int)
	for _, s := range out {
		seen[strings.ToLower(s)]++
	}
	for k, n := range seen {
		if n > 1 {
			t.Fatalf("duplicate entry %q in %v", k, out)
		}
	}
	if out[0] != "react development" {
		t.Fatalf("first-seen casing should win, got %q", out[0])
	}
}

func TestExpand_UnknownNameKeepsLiteral(t *testing.T) {
	e := newTestEngine(t)

	out := e.Expand([]string{"Quantum Basket Weaving"})
	if len(out) == 0 || out[0] != "Quantum Basket Weaving" {
		t.Fatalf("expected literal preserved, got %v", out)
	}
}

func TestExpand_Empty(t *testing.T) {
	e := newTestEngine(t)

	if out := e.Expand(nil); len(out) != 0 {
		t.Fatalf("expected empty expansion, got %v", out)
	}
	if out := e.Expand([]string{" ", ""}); len(out) != 0 {
		t.Fatalf("expected empty expansion for blanks, got %v", out)
	}
}
