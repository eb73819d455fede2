package scoring

import (
	"strings"
	"unicode"
)

// FormatPositionName turns snake_case/slug position values into Title Case
// display names. Entries that already look like display text pass through
// untouched, so "Chief Stew" and "chief stew" stay distinct entries.
func FormatPositionName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if !strings.ContainsAny(s, "_-") {
		return s
	}

	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")

	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// SoughtPositions builds the ordered, deduplicated set of display-formatted
// positions a candidate is actively seeking: primary position first, then
// explicitly sought secondary positions, then historically held ones.
// Deduplication is by exact formatted string; matching later goes through
// Normalize, so differently-cased duplicates survive here on purpose.
func SoughtPositions(c Candidate) []string {
	out := make([]string, 0, 1+len(c.SecondaryPositions)+len(c.PositionsHeld))
	seen := make(map[string]struct{}, cap(out))

	add := func(raw string) {
		name := FormatPositionName(raw)
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	add(c.PrimaryPosition)
	for _, p := range c.SecondaryPositions {
		add(p)
	}
	for _, p := range c.PositionsHeld {
		add(p)
	}
	return out
}
