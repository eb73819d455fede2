package scoring

import "strings"

// Word-level rewrites applied during normalization. Every value is its own
// fixed point, which keeps Normalize idempotent.
var synonyms = map[string]string{
	"stewardess":   "stew",
	"stewardesses": "stew",
	"steward":      "stew",
	"stews":        "stew",
	"1st":          "first",
	"2nd":          "second",
	"3rd":          "third",
	"eng":          "engineer",
}

// Normalize canonicalizes a free-text position or job-title string for
// comparison: lowercase, trimmed, internal whitespace collapsed, known
// synonyms rewritten word by word.
func Normalize(position string) string {
	position = strings.ToLower(strings.TrimSpace(position))
	if position == "" {
		return ""
	}

	words := strings.Fields(position)
	for i, w := range words {
		if rep, ok := synonyms[w]; ok {
			words[i] = rep
		}
	}
	return strings.Join(words, " ")
}
