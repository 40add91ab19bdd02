package catalog

import (
	"encoding/json"
	"fmt"
)

// SkillSummary is one entry of the static skill index.
type SkillSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
	Source      string `json:"source,omitempty"`
	Path        string `json:"path"`
}

// DisplayCategory returns the category for display. Records without a
// category show as "Uncategorized"; filtering still uses the raw value.
func (s SkillSummary) DisplayCategory() string {
	if s.Category == "" {
		return "Uncategorized"
	}
	return s.Category
}

// Index is the ordered list of skills in one snapshot of skills.json.
type Index []SkillSummary

// DecodeIndex parses a skills.json payload. The payload must be a JSON
// array; a literal null decodes to an empty index.
func DecodeIndex(data []byte) (Index, error) {
	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parsing skill index: %w", err)
	}
	return idx, nil
}

// Lookup returns the record with exactly the given ID.
func (idx Index) Lookup(id string) (SkillSummary, bool) {
	for _, s := range idx {
		if s.ID == id {
			return s, true
		}
	}
	return SkillSummary{}, false
}

// Neighbor returns the ID of the record offset positions away from id,
// clamped to the ends of the index. ok is false when id is absent.
func (idx Index) Neighbor(id string, offset int) (string, bool) {
	for i, s := range idx {
		if s.ID != id {
			continue
		}
		j := i + offset
		if j < 0 {
			j = 0
		}
		if j >= len(idx) {
			j = len(idx) - 1
		}
		return idx[j].ID, true
	}
	return "", false
}
