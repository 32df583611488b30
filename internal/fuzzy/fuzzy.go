// Package fuzzy ranks candidate strings (typically file-system paths)
// against a short query using contiguous-streak subsequence matching.
//
// Score is pure and deterministic, which lets SQLite treat it as a
// deterministic scalar function and rank an entire result set with a
// single ORDER BY.
package fuzzy

// Sentinel ranks. Lower is better; every computed rank falls strictly
// between the two.
const (
	RankExact   = -10_000 // query and candidate are identical
	RankNoMatch = 10_000  // query is not a subsequence of candidate
)

// Bonus weights for assembling a streak's rank. Tuning these reorders
// results; it never affects match/no-match.
const (
	streakWeight   = 50.0
	lengthWeight   = 200.0
	positionWeight = 100.0
	leafBonus      = 100.0
)

// Score ranks candidate against query. Lower is better: sort ascending.
//
// An empty query ranks every candidate by its length, an exact match
// returns RankExact, and a query that cannot be matched as an in-order
// subsequence returns RankNoMatch. Everything else is the negated value
// of the best contiguous run found by the streak search.
func Score(query, candidate string) int64 {
	if query == "" {
		return int64(len([]rune(candidate)))
	}
	if query == candidate {
		return RankExact
	}

	slots := align(query, candidate)
	prune(slots, len([]rune(query)))
	if empty(slots) {
		return RankNoMatch
	}

	return -bestStreak(slots, leaf(candidate))
}

// empty reports whether pruning removed every alignment slot.
func empty(slots []positions) bool {
	for _, s := range slots {
		if s != nil {
			return false
		}
	}
	return true
}

// leaf reports whether candidate is a bare name: after stripping one
// trailing separator, it contains no '/' at all.
func leaf(candidate string) bool {
	if n := len(candidate); n > 0 && candidate[n-1] == '/' {
		candidate = candidate[:n-1]
	}
	for i := 0; i < len(candidate); i++ {
		if candidate[i] == '/' {
			return false
		}
	}
	return true
}

// rank converts a finished streak into its (positive) rank value.
// start and length are in candidate positions, total is the candidate's
// rune length.
func rank(start, length, total int, leaf bool) int64 {
	lengthBonus := float64(length) / float64(total) * lengthWeight
	positionBonus := float64(start+length) / float64(total) * positionWeight

	score := float64(length)*streakWeight + lengthBonus + positionBonus
	if leaf {
		score += leafBonus
	}
	return int64(score)
}
