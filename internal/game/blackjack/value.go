package blackjack

// CardValue is the base point value before any ace adjustment: numerals
// score face value, faces score 10, an ace scores 11.
func CardValue(c Card) int {
	switch {
	case c.Rank == Ace:
		return 11
	case c.Rank >= Jack:
		return 10
	default:
		return int(c.Rank)
	}
}

// HandValue sums base values, then counts aces down from 11 to 1 while the
// total is over 21. Each ace contributes at most one 10-point reduction.
func HandValue(cards []Card) int {
	total := 0
	aces := 0
	for _, c := range cards {
		total += CardValue(c)
		if c.Rank == Ace {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}
