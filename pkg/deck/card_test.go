package deck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("2H", (&Card{Rank: 2, Suit: Hearts}).String())
	a.Equal("TC", (&Card{Rank: 10, Suit: Clubs}).String())
	a.Equal("JC", (&Card{Rank: Jack, Suit: Clubs}).String())
	a.Equal("QD", (&Card{Rank: Queen, Suit: Diamonds}).String())
	a.Equal("KS", (&Card{Rank: King, Suit: Spades}).String())
	a.Equal("AS", (&Card{Rank: Ace, Suit: Spades}).String())
}

func TestCard_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(CardsFromString("14s,10h,2c"))
	assert.NoError(t, err)
	assert.Equal(t, `["AS","TH","2C"]`, string(b))
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	card := CardFromString("14s")
	a.Equal(Ace, card.Rank)
	a.Equal(Spades, card.Suit)

	card = CardFromString("2d")
	a.Equal(2, card.Rank)
	a.Equal(Diamonds, card.Suit)

	// letter ranks, as the wire codes use
	a.Equal(10, CardFromString("TD").Rank)
	a.Equal(Jack, CardFromString("jh").Rank)
	a.Equal(Queen, CardFromString("QC").Rank)
	a.Equal(King, CardFromString("ks").Rank)
	a.Equal(Ace, CardFromString("AS").Rank)

	a.Nil(CardFromString(""))
	a.Panics(func() {
		CardFromString("15s")
	})
	a.Panics(func() {
		CardFromString("14x")
	})
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)

	a.True(CardFromString("14s").Equal(CardFromString("14s")))
	a.False(CardFromString("14s").Equal(CardFromString("14h")))
	a.False(CardFromString("14s").Equal(CardFromString("13s")))
}

func TestCardsToString(t *testing.T) {
	a := assert.New(t)

	cards := CardsFromString("2c,10d,11h,14s")
	a.Equal("2C,TD,JH,AS", CardsToString(cards))

	// the emitted wire codes parse back to the same cards
	parsed := CardsFromString(CardsToString(cards))
	a.Equal(len(cards), len(parsed))
	for i := range cards {
		a.True(cards[i].Equal(parsed[i]))
	}
}
