package fuzzy

// prune removes alignment slots that cannot take part in any single
// left-to-right assignment of the whole query across the candidate.
// Two linear passes: the forward pass walks query positions 0..n-1 and
// drops slots that could only serve a query position the pass has not
// reached yet; the backward pass is the mirror image from the high end.
// Slots that survive both passes are consistent with at least one valid
// global assignment.
func prune(slots []positions, queryLen int) {
	forward(slots, queryLen)
	backward(slots, queryLen)
}

func forward(slots []positions, queryLen int) {
	start := 0
	for qi := 0; qi < queryLen; qi++ {
		for ti := start; ti < len(slots); ti++ {
			if slots[ti] == nil {
				continue
			}
			switch classifyBefore(slots[ti], qi) {
			case orderLess:
				// May still serve an earlier query position.
			case orderEqual:
				start = ti + 1
			case orderGreater:
				// Only serves later query positions than the pass
				// has reached; ordering is violated.
				slots[ti] = nil
			}
			if start == ti+1 {
				break
			}
		}
	}
}

func backward(slots []positions, queryLen int) {
	end := len(slots)
	for qi := queryLen - 1; qi >= 0; qi-- {
		for ti := end - 1; ti >= 0; ti-- {
			if slots[ti] == nil {
				continue
			}
			switch classifyAfter(slots[ti], qi) {
			case orderGreater:
				// May still serve a later query position.
			case orderEqual:
				end = ti
			case orderLess:
				// Lags behind what a right-to-left assignment needs.
				slots[ti] = nil
			}
			if end == ti {
				break
			}
		}
	}
}

type ordering int

const (
	orderLess ordering = iota - 1
	orderEqual
	orderGreater
)

// classifyBefore places a slot relative to forward-pass position qi:
// orderEqual if the slot contains qi, orderLess if it holds any earlier
// position, orderGreater if every position comes after qi. Containment
// wins over "holds an earlier position".
func classifyBefore(p positions, qi int) ordering {
	ord := orderGreater
	for _, pos := range p {
		if pos == qi {
			return orderEqual
		}
		if pos < qi {
			ord = orderLess
		}
	}
	return ord
}

// classifyAfter is the backward-pass mirror: orderEqual if the slot
// contains qi, orderGreater if it holds any later position, orderLess
// if every position comes before qi.
func classifyAfter(p positions, qi int) ordering {
	for _, pos := range p {
		if pos == qi {
			return orderEqual
		}
		if pos > qi {
			return orderGreater
		}
	}
	return orderLess
}
