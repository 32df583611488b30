package fuzzy

// branch is one in-progress alignment during streak search: the query
// position it has reached and how many candidate runes it covers.
// A repeated query character anchors several branches from the same
// starting slot, each following its own query-position sequence.
type branch struct {
	at  int // query position reached
	len int // candidate runes covered so far
}

// bestStreak finds the highest-ranking contiguous run across all
// surviving slots. Every slot position starts an independent branch;
// a branch survives to the next candidate rune only when that rune's
// slot contains the query position one past the branch's own. The run
// is ranked as soon as no branch can continue. Ties keep the earliest
// start.
//
// Worst case is quadratic in candidate length (all-repeated-character
// inputs); path-like candidates make it effectively linear.
func bestStreak(slots []positions, leaf bool) int64 {
	var best int64

	for i, slot := range slots {
		if slot == nil {
			continue
		}

		branches := make([]branch, len(slot))
		for k, qp := range slot {
			branches[k] = branch{at: qp, len: 1}
		}

		// Longest run reached from start i. Runs of a single rune
		// carry no streak value, so the baseline is zero, not one.
		longest := 0

		for j := i + 1; j < len(slots) && len(branches) > 0; j++ {
			next := slots[j]
			if next == nil {
				break
			}
			alive := branches[:0]
			for _, b := range branches {
				if next.contains(b.at + 1) {
					b.at++
					b.len++
					if b.len > longest {
						longest = b.len
					}
					alive = append(alive, b)
				}
			}
			branches = alive
		}

		if longest > 0 {
			if r := rank(i, longest, len(slots), leaf); r > best {
				best = r
			}
		}
	}

	return best
}

func (p positions) contains(qp int) bool {
	for _, pos := range p {
		if pos == qp {
			return true
		}
	}
	return false
}
