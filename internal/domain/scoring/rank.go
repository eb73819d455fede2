package scoring

import "sort"

// RankedItem carries the ordering signals for one job in a fetched batch.
// OriginalIndex lets the caller reorder its own rows after ranking.
type RankedItem struct {
	OriginalIndex int
	IsUrgent      bool
	Score         int
}

// Rank orders a batch: urgent listings first regardless of score, then
// score descending. The sort is stable, so ties keep their fetch order.
func Rank(items []RankedItem) []RankedItem {
	out := make([]RankedItem, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsUrgent != out[j].IsUrgent {
			return out[i].IsUrgent
		}
		return out[i].Score > out[j].Score
	})
	return out
}
