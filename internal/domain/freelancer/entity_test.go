package freelancer

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSkillList_UnmarshalArray(t *testing.T) {
	var s SkillList
	if err := json.Unmarshal([]byte(`["Go"," Kotlin ",""]`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := SkillList{"Go", "Kotlin"}
	if !reflect.DeepEqual(s, want) {
		t.Fatalf("got %v, want %v", s, want)
	}
}

func TestSkillList_UnmarshalCommaString(t *testing.T) {
	var s SkillList
	if err := json.Unmarshal([]byte(`"React Development, CSS,,Swift"`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := SkillList{"React Development", "CSS", "Swift"}
	if !reflect.DeepEqual(s, want) {
		t.Fatalf("got %v, want %v", s, want)
	}
}

func TestSkillList_DropsNonStrings(t *testing.T) {
	var s SkillList
	if err := json.Unmarshal([]byte(`["Go", 42, null, "Swift"]`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := SkillList{"Go", "Swift"}
	if !reflect.DeepEqual(s, want) {
		t.Fatalf("got %v, want %v", s, want)
	}
}

func TestSkillList_RejectsObjects(t *testing.T) {
	var s SkillList
	if err := json.Unmarshal([]byte(`{"skills":"Go"}`), &s); err == nil {
		t.Fatal("expected an error for object input")
	}
}
