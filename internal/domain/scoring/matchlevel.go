package scoring

import "strings"

// RoleWords identify the role behind a title regardless of seniority.
// Ordered; each word is tested as a substring of individual title words, so
// "stew" also hits "stewardess" before normalization collapses it.
var RoleWords = []string{
	"stew",
	"chef",
	"cook",
	"engineer",
	"deckhand",
	"officer",
	"captain",
	"bosun",
	"purser",
	"nanny",
	"nurse",
}

// SeniorityWords rank a role. Ordered; the first word found on a side is
// that side's seniority.
var SeniorityWords = []string{
	"chief",
	"head",
	"lead",
	"senior",
	"first",
	"second",
	"third",
	"junior",
	"trainee",
}

// ResolveMatchLevel classifies how well a job title fits a candidate's
// sought positions.
//
// Sought positions are tested in order; the first one that produces a
// verdict wins. A verdict is either direct containment of one normalized
// string in the other (exact), or a shared role word: equal seniority on
// both sides, or no detectable seniority on either, is exact, while a
// differing seniority ("Chief Engineer" interest against a "Third
// Engineer" vacancy) is related. When no sought position decides, the
// candidate's department category acts as a coarse fallback net and any
// category keyword in the title yields related.
func ResolveMatchLevel(jobTitle string, sought []string, category string) MatchLevel {
	normTitle := Normalize(jobTitle)
	if normTitle == "" {
		return MatchNone
	}
	titleWords := strings.Fields(normTitle)

	for _, pos := range sought {
		normPos := Normalize(pos)
		if normPos == "" {
			continue
		}

		if strings.Contains(normTitle, normPos) || strings.Contains(normPos, normTitle) {
			return MatchExact
		}

		posWords := strings.Fields(normPos)
		role := sharedKeyword(RoleWords, posWords, titleWords)
		if role == "" {
			continue
		}

		if firstKeyword(SeniorityWords, posWords) == firstKeyword(SeniorityWords, titleWords) {
			return MatchExact
		}
		return MatchRelated
	}

	if category != "" {
		for _, kw := range CategoryKeywordsFor(category) {
			if strings.Contains(normTitle, kw) {
				return MatchRelated
			}
		}
	}

	return MatchNone
}

func sharedKeyword(keywords, a, b []string) string {
	for _, kw := range keywords {
		if wordContains(a, kw) && wordContains(b, kw) {
			return kw
		}
	}
	return ""
}

func firstKeyword(keywords, words []string) string {
	for _, kw := range keywords {
		if wordContains(words, kw) {
			return kw
		}
	}
	return ""
}

func wordContains(words []string, needle string) bool {
	for _, w := range words {
		if strings.Contains(w, needle) {
			return true
		}
	}
	return false
}
