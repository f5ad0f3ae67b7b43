package poker

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"texasholdem-server/pkg/deck"
)

func TestEvaluate_categories(t *testing.T) {
	runTest := func(t *testing.T, cards string, hand Hand, kickers ...int) {
		t.Helper()

		rank := Evaluate(deck.CardsFromString(cards))
		assert.Equal(t, hand, rank.Hand, "expected %s for %s", hand, cards)
		if len(kickers) > 0 {
			assert.Equal(t, kickers, rank.Kickers)
		}
	}

	runTest(t, "14s,13s,12s,11s,10s,3d,4c", StraightFlush, 14, 13, 12, 11, 10)
	runTest(t, "9h,8h,7h,6h,5h,14s,14d", StraightFlush, 9, 8, 7, 6, 5)
	runTest(t, "14c,14d,14s,14h,13h,12d,11c", FourOfAKind, 14, 13)
	runTest(t, "13c,13d,13s,12h,12d,11c,2s", FullHouse, 13, 12)
	runTest(t, "13h,12h,7h,5h,2h,14d,14c", Flush, 13, 12, 7, 5, 2)
	runTest(t, "10c,9d,8s,7h,6c,14d,2s", Straight, 10, 9, 8, 7, 6)
	runTest(t, "12c,12d,12s,13h,11d,7c,5s", ThreeOfAKind, 12, 13, 11)
	runTest(t, "13c,13d,11s,11h,14d,7c,5s", TwoPair, 13, 11, 14)
	runTest(t, "14c,14d,13s,11h,7d,5c,3s", OnePair, 14, 13, 11, 7)
	runTest(t, "14d,13s,11h,7d,5c,3s,2h", HighCard, 14, 13, 11, 7, 5)
}

func TestEvaluate_wheel(t *testing.T) {
	a := assert.New(t)

	rank := Evaluate(deck.CardsFromString("14s,2d,3c,4h,5s,13d,9c"))
	a.Equal(Straight, rank.Hand)
	a.Equal([]int{5, 4, 3, 2, 1}, rank.Kickers)

	// a six-high straight beats the wheel
	sixHigh := Evaluate(deck.CardsFromString("6s,5d,4c,3h,2s,13d,9c"))
	a.True(sixHigh.Beats(rank))

	// steel wheel
	rank = Evaluate(deck.CardsFromString("14s,2s,3s,4s,5s,13d,9c"))
	a.Equal(StraightFlush, rank.Hand)
	a.Equal([]int{5, 4, 3, 2, 1}, rank.Kickers)
}

func TestEvaluate_fullHouseFromTwoTrips(t *testing.T) {
	rank := Evaluate(deck.CardsFromString("13c,13d,13s,11h,11d,11c,2s"))
	assert.Equal(t, FullHouse, rank.Hand)
	assert.Equal(t, []int{13, 11}, rank.Kickers)
}

func TestEvaluate_quadKickerFromTrips(t *testing.T) {
	// the best kicker to quad twos is the ace, counted once
	rank := Evaluate(deck.CardsFromString("2c,2d,2s,2h,14d,14c,14s"))
	assert.Equal(t, FourOfAKind, rank.Hand)
	assert.Equal(t, []int{2, 14}, rank.Kickers)
}

func TestEvaluate_twoPairFromThreePairs(t *testing.T) {
	rank := Evaluate(deck.CardsFromString("13c,13d,11s,11h,9d,9c,2s"))
	assert.Equal(t, TwoPair, rank.Hand)
	assert.Equal(t, []int{13, 11, 9}, rank.Kickers)
}

func TestEvaluate_tooFewCards(t *testing.T) {
	rank := Evaluate(deck.CardsFromString("14s,13s,12s,11s"))
	assert.Equal(t, Invalid, rank.Hand)
	assert.Empty(t, rank.Kickers)
}

func TestEvaluate_orderInvariance(t *testing.T) {
	a := assert.New(t)
	rng := rand.New(rand.NewSource(1)) // nolint:gosec

	cards := deck.CardsFromString("14s,14h,13d,13c,9s,5h,2d")
	expected := Evaluate(cards)

	for i := 0; i < 25; i++ {
		shuffled := make([]*deck.Card, len(cards))
		copy(shuffled, cards)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		a.Equal(0, expected.Compare(Evaluate(shuffled)))
	}
}

func TestEvaluate_quadAcesBeatKingsFull(t *testing.T) {
	a := assert.New(t)

	// board AAAKK
	board := "14s,14h,14d,13s,13h"
	quadAces := Evaluate(deck.CardsFromString(board + ",14c,12d"))
	kingsFull := Evaluate(deck.CardsFromString(board + ",13d,13c"))

	a.Equal(FourOfAKind, quadAces.Hand)
	a.Equal(FourOfAKind, kingsFull.Hand)

	// the pocket kings also make quads on this board; drop to KK vs A2 for the
	// full-house matchup
	kingsFull = Evaluate(deck.CardsFromString("14s,14h,14d,13s,12h,13d,13c"))
	a.Equal(FullHouse, kingsFull.Hand)
	a.True(quadAces.Beats(kingsFull))
}

func TestEvaluate_kickerBreaksTie(t *testing.T) {
	a := assert.New(t)

	// both players hold a pair of aces; the king kicker wins
	board := "14s,9h,7d,5s,2h"
	kingKicker := Evaluate(deck.CardsFromString(board + ",14c,13d"))
	queenKicker := Evaluate(deck.CardsFromString(board + ",14d,12c"))

	a.Equal(OnePair, kingKicker.Hand)
	a.Equal(OnePair, queenKicker.Hand)
	a.True(kingKicker.Beats(queenKicker))
	a.False(queenKicker.Beats(kingKicker))
}

func TestEvaluate_higherCategoryAlwaysWins(t *testing.T) {
	a := assert.New(t)

	hands := []HandRank{
		Evaluate(deck.CardsFromString("14d,13s,11h,7d,5c")),     // high card
		Evaluate(deck.CardsFromString("2c,2d,13s,11h,7d")),      // one pair
		Evaluate(deck.CardsFromString("2c,2d,3s,3h,7d")),        // two pair
		Evaluate(deck.CardsFromString("2c,2d,2s,4h,7d")),        // trips
		Evaluate(deck.CardsFromString("2c,3d,4s,5h,6d")),        // straight
		Evaluate(deck.CardsFromString("2h,5h,7h,9h,11h")),       // flush
		Evaluate(deck.CardsFromString("2c,2d,2s,3h,3d")),        // full house
		Evaluate(deck.CardsFromString("2c,2d,2s,2h,3d")),        // quads
		Evaluate(deck.CardsFromString("2s,3s,4s,5s,6s")),        // straight flush
	}

	for i := 1; i < len(hands); i++ {
		a.True(hands[i].Beats(hands[i-1]), "%s should beat %s", hands[i], hands[i-1])
	}

	// the weakest quads beat the strongest full house
	a.True(Evaluate(deck.CardsFromString("2c,2d,2s,2h,3d")).
		Beats(Evaluate(deck.CardsFromString("14c,14d,14s,13h,13d"))))
}
