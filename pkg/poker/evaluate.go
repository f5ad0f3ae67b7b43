package poker

import (
	"sort"

	"texasholdem-server/pkg/deck"
)

type sortByRank []*deck.Card

func (s sortByRank) Len() int {
	return len(s)
}

func (s sortByRank) Less(i, j int) bool {
	return s[i].Rank < s[j].Rank
}

func (s sortByRank) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// Evaluate determines the best five-card hand the supplied cards can make.
// It accepts five to seven cards and is insensitive to their order.
// Fewer than five cards yields the Invalid hand.
func Evaluate(cards []*deck.Card) HandRank {
	if len(cards) < 5 {
		return HandRank{Hand: Invalid}
	}

	sorted := make([]*deck.Card, len(cards))
	copy(sorted, cards)
	sort.Sort(sort.Reverse(sortByRank(sorted)))

	flushCards := findFlush(sorted)

	// rank groups, strongest first
	var quads, trips, pairs, singles []int
	ranks := make([]int, 0, len(sorted))

	count := 0
	prevRank := 0
	for i, card := range sorted {
		if card.Rank != prevRank {
			ranks = append(ranks, card.Rank)
			prevRank = card.Rank
			count = 0
		}

		count++
		isLastOfRank := i+1 == len(sorted) || sorted[i+1].Rank != card.Rank
		if isLastOfRank {
			switch count {
			case 4:
				quads = append(quads, card.Rank)
			case 3:
				trips = append(trips, card.Rank)
			case 2:
				pairs = append(pairs, card.Rank)
			default:
				singles = append(singles, card.Rank)
			}
		}
	}

	if flushCards != nil {
		if run := straightRanks(flushCards); run != nil {
			return HandRank{Hand: StraightFlush, Kickers: run}
		}
	}

	if len(quads) > 0 {
		return HandRank{Hand: FourOfAKind, Kickers: []int{quads[0], highestExcept(ranks, quads[0])}}
	}

	if len(trips) > 0 {
		// a second set of trips counts as the pair
		over := append(append([]int{}, trips[1:]...), pairs...)
		sort.Sort(sort.Reverse(sort.IntSlice(over)))
		if len(over) > 0 {
			return HandRank{Hand: FullHouse, Kickers: []int{trips[0], over[0]}}
		}
	}

	if flushCards != nil {
		return HandRank{Hand: Flush, Kickers: topRanks(flushCards, 5)}
	}

	if run := straightRanks(sorted); run != nil {
		return HandRank{Hand: Straight, Kickers: run}
	}

	if len(trips) > 0 {
		return HandRank{Hand: ThreeOfAKind, Kickers: append([]int{trips[0]}, except(ranks, trips[0:1], 2)...)}
	}

	if len(pairs) >= 2 {
		kickers := []int{pairs[0], pairs[1], except(ranks, pairs[0:2], 1)[0]}
		return HandRank{Hand: TwoPair, Kickers: kickers}
	}

	if len(pairs) == 1 {
		return HandRank{Hand: OnePair, Kickers: append([]int{pairs[0]}, except(ranks, pairs[0:1], 3)...)}
	}

	return HandRank{Hand: HighCard, Kickers: ranks[0:5]}
}

// findFlush returns the cards of the flush suit in descending rank order,
// or nil if no suit has five or more cards
func findFlush(sorted []*deck.Card) []*deck.Card {
	bySuit := make(map[deck.Suit][]*deck.Card)
	for _, card := range sorted {
		bySuit[card.Suit] = append(bySuit[card.Suit], card)
	}

	for _, suit := range deck.Suits {
		if len(bySuit[suit]) >= 5 {
			return bySuit[suit]
		}
	}

	return nil
}

// straightRanks scans the descending unique ranks for a run of five consecutive
// values and returns the run, or nil. The wheel (A-2-3-4-5) is reported as a
// five-high straight with the ace demoted.
func straightRanks(sorted []*deck.Card) []int {
	unique := make([]int, 0, len(sorted))
	prev := 0
	for _, card := range sorted {
		if card.Rank != prev {
			unique = append(unique, card.Rank)
			prev = card.Rank
		}
	}

	for i := 0; i+4 < len(unique); i++ {
		if unique[i]-unique[i+4] == 4 {
			return unique[i : i+5]
		}
	}

	// the wheel
	if contains(unique, deck.Ace) && contains(unique, 5) && contains(unique, 4) &&
		contains(unique, 3) && contains(unique, 2) {
		return []int{5, 4, 3, 2, deck.LowAce}
	}

	return nil
}

func contains(ranks []int, rank int) bool {
	for _, r := range ranks {
		if r == rank {
			return true
		}
	}

	return false
}

// topRanks returns the ranks of the first n cards
func topRanks(cards []*deck.Card, n int) []int {
	ranks := make([]int, n)
	for i := 0; i < n; i++ {
		ranks[i] = cards[i].Rank
	}

	return ranks
}

// highestExcept returns the highest rank not equal to skip
func highestExcept(ranks []int, skip int) int {
	for _, r := range ranks {
		if r != skip {
			return r
		}
	}

	return 0
}

// except returns up to n ranks, strongest first, excluding the skipped ranks
func except(ranks []int, skip []int, n int) []int {
	out := make([]int, 0, n)
	for _, r := range ranks {
		if contains(skip, r) {
			continue
		}

		out = append(out, r)
		if len(out) == n {
			break
		}
	}

	return out
}
