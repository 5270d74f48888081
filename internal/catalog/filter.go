package catalog

import "strings"

// All is the sentinel selector value meaning no restriction.
const All = "all"

// FilterState is the tuple of current filter inputs. The search term is
// matched case-insensitively against class titles; level and category are
// exact, case-sensitive matches unless set to All.
type FilterState struct {
	Search   string `json:"search"`
	Level    string `json:"level"`
	Category string `json:"category"`
}

// DefaultFilterState is the state in effect on first load: no search text,
// both selectors on All.
func DefaultFilterState() FilterState {
	return FilterState{Level: All, Category: All}
}

// StateFromValues builds a FilterState from raw input widget values.
// Absent selectors default to All, mirroring a page without those widgets.
func StateFromValues(search, level, category string) FilterState {
	if level == "" {
		level = All
	}
	if category == "" {
		category = All
	}
	return FilterState{Search: search, Level: level, Category: category}
}

// Normalized returns a copy with the search term lowercased and trimmed.
// Level and Category are left untouched: selector values compare exactly,
// including case.
func (s FilterState) Normalized() FilterState {
	s.Search = strings.ToLower(strings.TrimSpace(s.Search))
	return s
}

// Matches reports whether a class passes all three filter predicates.
func Matches(c Class, s FilterState) bool {
	return matchesNormalized(c, s.Normalized())
}

func matchesNormalized(c Class, s FilterState) bool {
	if s.Search != "" && !strings.Contains(strings.ToLower(c.Title), s.Search) {
		return false
	}
	if s.Level != All && s.Level != c.Level {
		return false
	}
	if s.Category != All && s.Category != c.Category {
		return false
	}
	return true
}

// Filter computes the visibility set: indices of classes matching the state,
// in ascending order. The set is recomputed in full on every call; an empty
// result means the board should show its empty-state placeholder.
func Filter(classes []Class, s FilterState) []int {
	norm := s.Normalized()
	visible := make([]int, 0, len(classes))
	for i, c := range classes {
		if matchesNormalized(c, norm) {
			visible = append(visible, i)
		}
	}
	return visible
}

// Select returns the classes named by a visibility set.
func Select(classes []Class, visible []int) []Class {
	out := make([]Class, 0, len(visible))
	for _, i := range visible {
		if i >= 0 && i < len(classes) {
			out = append(out, classes[i])
		}
	}
	return out
}
