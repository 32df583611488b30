package fuzzy

import "unicode"

// positions is the ascending list of query positions that share one
// character value. A nil positions means "no query character matches
// here". Built once per call and treated as immutable: the pruner drops
// whole slots but never edits a list.
type positions []int

// index maps every distinct query rune to the positions it occupies.
func index(query string) map[rune]positions {
	idx := make(map[rune]positions)
	for i, r := range []rune(query) {
		idx[r] = append(idx[r], i)
	}
	return idx
}

// align produces one slot per candidate rune. A candidate rune matches
// the query rune with the same value, or — failing that — its lower-case
// fold. The fold is one-directional: an upper-case candidate rune can
// satisfy a lower-case query rune, never the reverse.
func align(query, candidate string) []positions {
	idx := index(query)

	runes := []rune(candidate)
	slots := make([]positions, len(runes))
	for i, r := range runes {
		if p, ok := idx[r]; ok {
			slots[i] = p
			continue
		}
		if p, ok := idx[unicode.ToLower(r)]; ok {
			slots[i] = p
		}
	}
	return slots
}
