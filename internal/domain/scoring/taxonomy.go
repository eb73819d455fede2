package scoring

// CategoryKeywords maps a department category to the role keywords that
// identify it.
type CategoryKeywords struct {
	Category string
	Keywords []string
}

// Taxonomy is the ordered department table. Order is a precedence rule:
// when a position matches keywords from more than one department the
// earlier entry wins, so ambiguous short words resolve the same way for
// every caller. Do not reorder without re-checking existing matches.
var Taxonomy = []CategoryKeywords{
	{
		Category: "interior",
		Keywords: []string{"chief stew", "stew", "purser", "housekeeper", "laundry", "interior"},
	},
	{
		Category: "deck",
		Keywords: []string{"captain", "first officer", "second officer", "third officer", "officer", "bosun", "deckhand", "mate", "deck"},
	},
	{
		Category: "engineering",
		Keywords: []string{"chief engineer", "second engineer", "third engineer", "engineer", "eto", "electrician"},
	},
	{
		Category: "galley",
		Keywords: []string{"head chef", "sous chef", "chef", "cook", "galley"},
	},
	{
		Category: "specialty",
		Keywords: []string{"nanny", "nurse", "masseuse", "dive instructor", "fitness instructor", "hairdresser"},
	},
}

// CategoryKeywordsFor returns the keyword list for a category key, or nil
// when the key is not part of the taxonomy.
func CategoryKeywordsFor(category string) []string {
	for _, entry := range Taxonomy {
		if entry.Category == category {
			return entry.Keywords
		}
	}
	return nil
}
