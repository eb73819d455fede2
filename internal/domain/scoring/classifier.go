package scoring

import "strings"

// ClassifyCategory resolves a position string to a department category.
// The substring test runs in both directions so abbreviations ("mate" vs
// "chief officer" style overlaps) still classify. Returns "" when no
// category matches.
func ClassifyCategory(position string) string {
	norm := Normalize(position)
	if norm == "" {
		return ""
	}

	for _, entry := range Taxonomy {
		for _, kw := range entry.Keywords {
			if strings.Contains(norm, kw) || strings.Contains(kw, norm) {
				return entry.Category
			}
		}
	}
	return ""
}
