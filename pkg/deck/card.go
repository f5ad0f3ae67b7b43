package deck

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Suits are the four suits in a standard deck
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Card is an individual playing card.
// Cards are ordered by rank only; suit never breaks a tie.
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
const (
	Jack    = 11
	Queen   = 12
	King    = 13
	Ace     = 14
	HighAce = Ace
	LowAce  = 1
)

// String returns the two-character wire code for the card, i.e., "AS" or "TH"
func (c *Card) String() string {
	var rank string
	switch c.Rank {
	case 10:
		rank = "T"
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "C"
	case Diamonds:
		suit = "D"
	case Hearts:
		suit = "H"
	case Spades:
		suit = "S"
	default:
		panic("unknown suit")
	}

	return rank + suit
}

// MarshalJSON encodes the card as its wire code
func (c *Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4]|[tjqka])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank is 2–14 or one
// of T/J/Q/K/A and suit is in [cdhs], so wire codes parse back too.
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	var rank int
	switch strings.ToLower(match[1]) {
	case "t":
		rank = 10
	case "j":
		rank = Jack
	case "q":
		rank = Queen
	case "k":
		rank = King
	case "a":
		rank = Ace
	default:
		val, err := strconv.Atoi(match[1])
		if err != nil {
			panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
		}

		rank = val
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return &Card{
		Rank: rank,
		Suit: suit,
	}
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardsToString will convert a slice of cards to a string in the format of 2C,3H,4S,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.String()
	}

	return strings.Join(c, ",")
}
