package catalog

import (
	"reflect"
	"testing"
)

func sampleClasses() []Class {
	return []Class{
		{Title: "Power Yoga", Level: "Beginner", Category: "Strength"},
		{Title: "HIIT Blast", Level: "Advanced", Category: "Cardio"},
		{Title: "Morning Yoga Flow", Level: "Intermediate", Category: "Flexibility"},
	}
}

// TestFilterDefaults verifies that the default state shows every class.
func TestFilterDefaults(t *testing.T) {
	got := Filter(sampleClasses(), DefaultFilterState())
	if want := []int{0, 1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("Filter() = %v, want %v", got, want)
	}
}

// TestFilterByCategory verifies exact category matching with no search text.
func TestFilterByCategory(t *testing.T) {
	classes := []Class{
		{Title: "Power Yoga", Level: "Beginner", Category: "Strength"},
		{Title: "HIIT Blast", Level: "Advanced", Category: "Cardio"},
	}
	state := FilterState{Search: "", Level: All, Category: "Cardio"}
	got := Filter(classes, state)
	if want := []int{1}; !reflect.DeepEqual(got, want) {
		t.Errorf("Filter() = %v, want %v", got, want)
	}
}

// TestFilterBySearch verifies case-insensitive substring search over titles.
func TestFilterBySearch(t *testing.T) {
	classes := []Class{
		{Title: "Power Yoga", Level: "Beginner", Category: "Strength"},
		{Title: "HIIT Blast", Level: "Advanced", Category: "Cardio"},
	}
	state := FilterState{Search: "yoga", Level: All, Category: All}
	got := Filter(classes, state)
	if want := []int{0}; !reflect.DeepEqual(got, want) {
		t.Errorf("Filter() = %v, want %v", got, want)
	}
}

// TestFilterNoMatches verifies the empty visibility set that drives the
// empty-state placeholder.
func TestFilterNoMatches(t *testing.T) {
	state := FilterState{Search: "zzz", Level: All, Category: All}
	got := Filter(sampleClasses(), state)
	if len(got) != 0 {
		t.Errorf("Filter() = %v, want empty", got)
	}
}

// TestSearchCaseAndTrim verifies that the search term is lowercased and
// trimmed before matching, so "YOGA" and "Yoga " both hit "Morning Yoga Flow".
func TestSearchCaseAndTrim(t *testing.T) {
	c := Class{Title: "Morning Yoga Flow", Level: "Intermediate", Category: "Flexibility"}
	for _, term := range []string{"YOGA", "yoga", "Yoga ", "  yOgA  "} {
		s := FilterState{Search: term, Level: All, Category: All}
		if !Matches(c, s) {
			t.Errorf("Matches(%q) = false, want true", term)
		}
	}
}

// TestLevelCaseSensitive documents that selector values are compared exactly:
// a "beginner" filter does not match a class with level "Beginner". This is
// observed behavior and must not be silently normalized.
func TestLevelCaseSensitive(t *testing.T) {
	c := Class{Title: "Power Yoga", Level: "Beginner", Category: "Strength"}
	s := FilterState{Level: "beginner", Category: All}
	if Matches(c, s) {
		t.Error("Matches() = true for case-mismatched level, want false")
	}
	s.Level = "Beginner"
	if !Matches(c, s) {
		t.Error("Matches() = false for exact level, want true")
	}
}

// TestPredicatesConjunctive verifies that all three predicates must hold.
func TestPredicatesConjunctive(t *testing.T) {
	c := Class{Title: "Power Yoga", Level: "Beginner", Category: "Strength"}
	cases := []struct {
		name  string
		state FilterState
		want  bool
	}{
		{"all pass", FilterState{Search: "power", Level: "Beginner", Category: "Strength"}, true},
		{"search fails", FilterState{Search: "hiit", Level: "Beginner", Category: "Strength"}, false},
		{"level fails", FilterState{Search: "power", Level: "Advanced", Category: "Strength"}, false},
		{"category fails", FilterState{Search: "power", Level: "Beginner", Category: "Cardio"}, false},
		{"all wildcards", FilterState{Level: All, Category: All}, true},
	}
	for _, tc := range cases {
		if got := Matches(c, tc.state); got != tc.want {
			t.Errorf("%s: Matches() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

// TestMissingAttributes verifies that a class with empty level/category is
// only matched when the corresponding selector is All. Malformed records
// become unmatchable by any non-All filter rather than erroring.
func TestMissingAttributes(t *testing.T) {
	c := Class{Title: "Mystery Session"}
	if !Matches(c, DefaultFilterState()) {
		t.Error("Matches() = false with All selectors, want true")
	}
	if Matches(c, FilterState{Level: "Beginner", Category: All}) {
		t.Error("Matches() = true for missing level against explicit filter, want false")
	}
	if Matches(c, FilterState{Level: All, Category: "Cardio"}) {
		t.Error("Matches() = true for missing category against explicit filter, want false")
	}
}

// TestFilterIdempotent verifies that repeated invocations with identical
// inputs produce identical visibility sets.
func TestFilterIdempotent(t *testing.T) {
	classes := sampleClasses()
	state := FilterState{Search: "yoga", Level: All, Category: All}
	first := Filter(classes, state)
	second := Filter(classes, state)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Filter() not idempotent: %v then %v", first, second)
	}
}

// TestStateFromValues verifies adapter-boundary defaulting: absent selector
// widgets behave as All, absent search as the empty term.
func TestStateFromValues(t *testing.T) {
	s := StateFromValues("", "", "")
	if s.Level != All || s.Category != All || s.Search != "" {
		t.Errorf("StateFromValues() = %+v, want All/All/empty", s)
	}
	s = StateFromValues("hiit", "Advanced", "Cardio")
	if s.Level != "Advanced" || s.Category != "Cardio" || s.Search != "hiit" {
		t.Errorf("StateFromValues() = %+v", s)
	}
}

// TestSelect verifies mapping a visibility set back to class values.
func TestSelect(t *testing.T) {
	classes := sampleClasses()
	got := Select(classes, []int{1, 2})
	if len(got) != 2 || got[0].Title != "HIIT Blast" || got[1].Title != "Morning Yoga Flow" {
		t.Errorf("Select() = %v", got)
	}
	// Out-of-range indices are dropped, not panicked on.
	got = Select(classes, []int{-1, 99, 0})
	if len(got) != 1 || got[0].Title != "Power Yoga" {
		t.Errorf("Select() with bad indices = %v", got)
	}
}
