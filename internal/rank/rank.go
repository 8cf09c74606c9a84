// Package rank produces ordered top-N views over scored entries.
package rank

import "sort"

// Entry is one scored row of a leaderboard.
type Entry struct {
	ID    string
	Score int64
}

// Top returns the n highest-scoring entries in descending score order. Ties
// break on ascending id so the ordering is deterministic. If n exceeds the
// number of entries, all entries are returned.
func Top(entries []Entry, n int) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].ID < sorted[j].ID
	})

	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
