package boggle

import (
	"sort"
	"strings"
)

// Result is one word found on a board and its points.
type Result struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// ScoreOf returns the points for a word of this length. It does not check
// that word is in any dictionary.
func ScoreOf(word string) int {
	switch n := len(word); {
	case n < 3:
		return 0
	case n <= 4:
		return 1
	case n == 5:
		return 2
	case n == 6:
		return 3
	case n == 7:
		return 5
	default:
		return 11
	}
}

// TotalScore sums the points of results.
func TotalScore(results []Result) int {
	total := 0
	for _, r := range results {
		total += r.Score
	}
	return total
}

// Missed returns the results whose word the player did not find, keeping
// the order of results. found is compared case-insensitively.
func Missed(results []Result, found []string) []Result {
	seen := make(map[string]struct{}, len(found))
	for _, w := range found {
		seen[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	missed := []Result{}
	for _, r := range results {
		if _, ok := seen[r.Word]; !ok {
			missed = append(missed, r)
		}
	}
	return missed
}

// sortResults orders by score desc, then length desc, then word asc.
func sortResults(results []Result) {
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if len(a.Word) != len(b.Word) {
			return len(a.Word) > len(b.Word)
		}
		return a.Word < b.Word
	})
}
