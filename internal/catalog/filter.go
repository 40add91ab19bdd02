package catalog

import "strings"

// AllCategories is the category filter value that disables category
// filtering. It is always the first option returned by Categories.
const AllCategories = "all"

// FilterState is the listing screen's filter input.
type FilterState struct {
	Search   string
	Category string
}

// NewFilterState returns the initial filter: no search, all categories.
func NewFilterState() FilterState {
	return FilterState{Category: AllCategories}
}

// Filter returns the records of index matching both the search and the
// category predicate, in their original order. It always works from the
// full index and never mutates it.
func Filter(index Index, state FilterState) Index {
	query := strings.ToLower(state.Search)
	out := make(Index, 0, len(index))
	for _, s := range index {
		if !matchesSearch(s, query) {
			continue
		}
		if state.Category != AllCategories && s.Category != state.Category {
			continue
		}
		out = append(out, s)
	}
	return out
}

func matchesSearch(s SkillSummary, lowerQuery string) bool {
	if lowerQuery == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(s.Description), lowerQuery)
}

// Categories returns AllCategories followed by every distinct non-empty
// category of index in first-seen order.
func Categories(index Index) []string {
	out := []string{AllCategories}
	seen := make(map[string]bool)
	for _, s := range index {
		if s.Category == "" || seen[s.Category] {
			continue
		}
		seen[s.Category] = true
		out = append(out, s.Category)
	}
	return out
}
