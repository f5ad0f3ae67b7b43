package table

import (
	"texasholdem-server/pkg/deck"
)

// Player is the per-seat state owned by a table.
// A player's identity is its stable seat index.
type Player struct {
	ID      int
	Name    string
	IsHuman bool

	chips      int
	hand       deck.Hand
	currentBet int
	folded     bool
	allIn      bool
	lastAction *LastAction
}

func newPlayer(id int, name string, chips int, isHuman bool) *Player {
	return &Player{
		ID:      id,
		Name:    name,
		IsHuman: isHuman,
		chips:   chips,
		hand:    make(deck.Hand, 0, 2),
	}
}

// Chips returns the player's current stack
func (p *Player) Chips() int {
	return p.chips
}

// bet commits up to amount chips to the current round and returns the amount
// actually committed. Committing the whole stack puts the player all-in.
func (p *Player) bet(amount int) int {
	if amount < 0 {
		amount = 0
	}

	actual := amount
	if p.chips < actual {
		actual = p.chips
	}

	p.chips -= actual
	p.currentBet += actual

	if p.chips == 0 {
		p.allIn = true
	}

	return actual
}

func (p *Player) fold() {
	p.folded = true
	p.lastAction = &LastAction{Action: Fold}
}

// canAct reports whether the seat may still be asked for a decision this hand
func (p *Player) canAct() bool {
	return !p.folded && !p.allIn
}

// resetForRound clears the per-betting-round state at a stage transition
func (p *Player) resetForRound() {
	p.currentBet = 0
	p.lastAction = nil
}

// resetForHand clears all per-hand state before a new deal
func (p *Player) resetForHand() {
	p.hand = p.hand[:0]
	p.currentBet = 0
	p.folded = false
	p.allIn = false
	p.lastAction = nil
}

// PlayerState is the serializable view of a seat.
// Hand is empty when the seat holds no cards, and face-down
// placeholders when the viewer may not see the hole cards.
type PlayerState struct {
	ID         int         `json:"id"`
	Name       string      `json:"name"`
	Chips      int         `json:"chips"`
	Hand       []string    `json:"hand"`
	CurrentBet int         `json:"currentBet"`
	Folded     bool        `json:"isFolded"`
	AllIn      bool        `json:"isAllIn"`
	IsHuman    bool        `json:"isHuman"`
	LastAction *LastAction `json:"lastAction"`
}

const faceDownCard = "BACK"

func (p *Player) playerState(revealHand bool) *PlayerState {
	hand := make([]string, 0, len(p.hand))
	for _, card := range p.hand {
		if revealHand {
			hand = append(hand, card.String())
		} else {
			hand = append(hand, faceDownCard)
		}
	}

	return &PlayerState{
		ID:         p.ID,
		Name:       p.Name,
		Chips:      p.chips,
		Hand:       hand,
		CurrentBet: p.currentBet,
		Folded:     p.folded,
		AllIn:      p.allIn,
		IsHuman:    p.IsHuman,
		LastAction: p.lastAction,
	}
}
