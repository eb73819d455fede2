package scoring

import "testing"

func TestResolveMatchLevelContainment(t *testing.T) {
	cases := []struct {
		title  string
		sought []string
		want   MatchLevel
	}{
		{"Chief Stew", []string{"Chief Stewardess"}, MatchExact},
		{"Chief Stewardess - 50m M/Y", []string{"Chief Stew"}, MatchExact},
		{"Stew", []string{"Chief Stewardess"}, MatchExact},
	}

	for _, c := range cases {
		got := ResolveMatchLevel(c.title, c.sought, "")
		if got != c.want {
			t.Fatalf("ResolveMatchLevel(%q, %v) = %q, want %q", c.title, c.sought, got, c.want)
		}
	}
}

func TestResolveMatchLevelRoleWords(t *testing.T) {
	// Same role word, same seniority on both sides.
	if got := ResolveMatchLevel("2nd Stewardess", []string{"Second Stew"}, ""); got != MatchExact {
		t.Fatalf("expected exact for matching seniority, got %q", got)
	}

	// Same role word, no detectable seniority on either side.
	if got := ResolveMatchLevel("Yacht Chef", []string{"Private Chef"}, ""); got != MatchExact {
		t.Fatalf("expected exact for absent seniority, got %q", got)
	}
}

func TestResolveMatchLevelSeniorityTieBreak(t *testing.T) {
	if got := ResolveMatchLevel("Second Engineer", []string{"Chief Engineer"}, ""); got != MatchRelated {
		t.Fatalf("expected related for differing seniority, got %q", got)
	}

	if got := ResolveMatchLevel("Third Stewardess", []string{"Chief Stewardess"}, ""); got != MatchRelated {
		t.Fatalf("expected related, got %q", got)
	}
}

func TestResolveMatchLevelSoughtOrderWins(t *testing.T) {
	// First sought position to produce a verdict decides, even when a
	// later one would score higher.
	sought := []string{"Chief Engineer", "Second Engineer"}
	if got := ResolveMatchLevel("Second Engineer", sought, ""); got != MatchRelated {
		t.Fatalf("expected first sought position's verdict, got %q", got)
	}
}

func TestResolveMatchLevelCategoryFallback(t *testing.T) {
	if got := ResolveMatchLevel("Bosun", []string{"Chief Stewardess"}, "deck"); got != MatchRelated {
		t.Fatalf("expected related via category fallback, got %q", got)
	}

	// Unknown category key falls through to none.
	if got := ResolveMatchLevel("Bosun", nil, "bridge"); got != MatchNone {
		t.Fatalf("expected none for unknown category, got %q", got)
	}
}

func TestResolveMatchLevelNone(t *testing.T) {
	if got := ResolveMatchLevel("Deckhand", []string{"Chief Stewardess"}, ""); got != MatchNone {
		t.Fatalf("expected none, got %q", got)
	}

	if got := ResolveMatchLevel("", []string{"Chief Stewardess"}, "interior"); got != MatchNone {
		t.Fatalf("expected none for empty title, got %q", got)
	}

	if got := ResolveMatchLevel("Deckhand", nil, ""); got != MatchNone {
		t.Fatalf("expected none for empty sought set, got %q", got)
	}
}
