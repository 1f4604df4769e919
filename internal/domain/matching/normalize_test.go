package matching

import (
	"reflect"
	"testing"
)

func TestSplitSkills(t *testing.T) {
	got := SplitSkills(" React Development, CSS ,, Kotlin ")
	want := []string{"React Development", "CSS", "Kotlin"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if got := SplitSkills("   "); got != nil {
		t.Fatalf("expected nil for blank input, got %v", got)
	}
}

func TestNormalizeSkills(t *testing.T) {
	got := NormalizeSkills([]string{" Swift ", "", "  ", "Kotlin"})
	want := []string{"Swift", "Kotlin"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
