package scoring

import (
	"reflect"
	"testing"
)

func TestFormatPositionName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"chief_stewardess", "Chief Stewardess"},
		{"second-engineer", "Second Engineer"},
		{"sous_chef", "Sous Chef"},
		{"Chief Stew", "Chief Stew"},
		{"chief stew", "chief stew"},
	}

	for _, c := range cases {
		got := FormatPositionName(c.in)
		if got != c.want {
			t.Fatalf("FormatPositionName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSoughtPositionsOrderAndDedupe(t *testing.T) {
	c := Candidate{
		PrimaryPosition:    "Chief Stewardess",
		SecondaryPositions: []string{"Purser", "Chief Stewardess", "sole_stewardess"},
		PositionsHeld:      []string{"Second Stewardess", "Purser", ""},
	}

	got := SoughtPositions(c)
	want := []string{"Chief Stewardess", "Purser", "Sole Stewardess", "Second Stewardess"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SoughtPositions = %v, want %v", got, want)
	}
}

func TestSoughtPositionsCaseVariantsStayDistinct(t *testing.T) {
	c := Candidate{
		PrimaryPosition:    "Chief Stew",
		SecondaryPositions: []string{"chief stew"},
	}

	got := SoughtPositions(c)
	if len(got) != 2 {
		t.Fatalf("expected differently-cased entries to stay distinct, got %v", got)
	}
}

func TestSoughtPositionsEmptyCandidate(t *testing.T) {
	if got := SoughtPositions(Candidate{}); len(got) != 0 {
		t.Fatalf("expected empty set, got %v", got)
	}
}
