package scoring

import "testing"

func TestRankUrgentFirst(t *testing.T) {
	items := []RankedItem{
		{OriginalIndex: 0, IsUrgent: false, Score: 90},
		{OriginalIndex: 1, IsUrgent: true, Score: 10},
	}

	out := Rank(items)
	if out[0].OriginalIndex != 1 {
		t.Fatalf("expected urgent item first, got index %d", out[0].OriginalIndex)
	}
}

func TestRankScoreDescendingWithinTier(t *testing.T) {
	items := []RankedItem{
		{OriginalIndex: 0, Score: 35},
		{OriginalIndex: 1, Score: 100},
		{OriginalIndex: 2, Score: 50},
	}

	out := Rank(items)
	wantOrder := []int{1, 2, 0}
	for i, want := range wantOrder {
		if out[i].OriginalIndex != want {
			t.Fatalf("position %d: got index %d, want %d", i, out[i].OriginalIndex, want)
		}
	}
}

func TestRankStableTies(t *testing.T) {
	items := []RankedItem{
		{OriginalIndex: 0, Score: 50},
		{OriginalIndex: 1, Score: 50},
		{OriginalIndex: 2, IsUrgent: true, Score: 20},
		{OriginalIndex: 3, IsUrgent: true, Score: 20},
	}

	out := Rank(items)
	wantOrder := []int{2, 3, 0, 1}
	for i, want := range wantOrder {
		if out[i].OriginalIndex != want {
			t.Fatalf("position %d: got index %d, want %d", i, out[i].OriginalIndex, want)
		}
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	items := []RankedItem{
		{OriginalIndex: 0, Score: 10},
		{OriginalIndex: 1, Score: 90},
	}

	_ = Rank(items)
	if items[0].OriginalIndex != 0 {
		t.Fatalf("input slice was reordered")
	}
}
