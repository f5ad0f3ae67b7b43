package poker

import "fmt"

// HandRank is the result of evaluating a set of cards.
// Two ranks compare lexicographically: hand category first, then each kicker in order.
// The kicker list is truncated to the cards needed to disambiguate the category.
type HandRank struct {
	Hand    Hand  `json:"hand"`
	Kickers []int `json:"kickers"`
}

// Compare returns a negative number if r is a weaker hand than other,
// a positive number if r is stronger, and 0 if the hands tie
func (r HandRank) Compare(other HandRank) int {
	if r.Hand != other.Hand {
		return int(r.Hand) - int(other.Hand)
	}

	n := len(r.Kickers)
	if len(other.Kickers) < n {
		n = len(other.Kickers)
	}

	for i := 0; i < n; i++ {
		if r.Kickers[i] != other.Kickers[i] {
			return r.Kickers[i] - other.Kickers[i]
		}
	}

	return len(r.Kickers) - len(other.Kickers)
}

// Beats returns true if r is a strictly stronger hand than other
func (r HandRank) Beats(other HandRank) bool {
	return r.Compare(other) > 0
}

// Ties returns true if the two hands have the same strength
func (r HandRank) Ties(other HandRank) bool {
	return r.Compare(other) == 0
}

func (r HandRank) String() string {
	return fmt.Sprintf("%s %v", r.Hand, r.Kickers)
}
