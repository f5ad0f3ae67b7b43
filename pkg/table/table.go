package table

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"texasholdem-server/pkg/deck"
	"texasholdem-server/pkg/poker"
)

// blinds are fixed for every hand
const (
	SmallBlind = 10
	BigBlind   = 20
)

// ErrNotYourTurn is returned when a player acts out of turn
var ErrNotYourTurn = errors.New("not this player's turn")

// ErrNotEnoughPlayers is returned when fewer than two seats can still post chips
var ErrNotEnoughPlayers = errors.New("at least two players must have chips")

// Seat describes a player to be seated at a new table.
// Seat order is turn order.
type Seat struct {
	Name    string `json:"name"`
	Chips   int    `json:"chips"`
	IsHuman bool   `json:"isHuman"`
}

// Table owns all state for a single game: the deck, the seated players, the
// community cards, and the betting-round state machine. Every exported method
// acquires the table lock; the state-machine internals assume it is held.
type Table struct {
	mu  sync.Mutex
	log logrus.FieldLogger

	id        string
	players   []*Player
	deck      *deck.Deck
	community deck.Hand

	pot          int
	dealerPos    int
	stage        Stage
	activePlayer int
	betToCall    int
	winners      []int
}

// New returns a table with the provided players seated.
// No cards are dealt until StartNewHand is called.
func New(logger logrus.FieldLogger, seats []Seat) (*Table, error) {
	if len(seats) < 2 {
		return nil, errors.New("there must be at least two seats")
	}

	id := uuid.New().String()

	players := make([]*Player, len(seats))
	for i, seat := range seats {
		players[i] = newPlayer(i, seat.Name, seat.Chips, seat.IsHuman)
	}

	return &Table{
		log:          logger.WithField("table", id),
		id:           id,
		players:      players,
		deck:         deck.New(),
		community:    make(deck.Hand, 0, 5),
		dealerPos:    0,
		stage:        StageHandOver,
		activePlayer: -1,
	}, nil
}

// ID returns the table's identifier, stable across hands
func (t *Table) ID() string {
	return t.id
}

// StartNewHand shuffles a fresh deck, advances the dealer button, deals two
// cards to every seat that can still play, and posts the blinds. A blind is a
// capped bet: a short stack simply goes all-in for less.
func (t *Table) StartNewHand() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	canPlay := 0
	for _, p := range t.players {
		if p.chips > 0 {
			canPlay++
		}
	}

	if canPlay < 2 {
		return ErrNotEnoughPlayers
	}

	t.deck = deck.New()
	t.deck.Shuffle(0)
	t.community = t.community[:0]
	t.pot = 0
	t.winners = nil
	t.stage = StagePreFlop

	t.dealerPos = (t.dealerPos + 1) % len(t.players)

	for _, p := range t.players {
		p.resetForHand()

		if p.chips == 0 {
			// a bankrupt seat sits the hand out
			p.folded = true
			continue
		}

		cards, err := t.deck.Deal(2)
		if err != nil {
			return err
		}

		p.hand = append(p.hand, cards...)
	}

	t.postBlind(t.smallBlindPos(), SmallBlind)
	t.postBlind(t.bigBlindPos(), BigBlind)
	t.betToCall = BigBlind

	t.log.WithFields(logrus.Fields{
		"dealer": t.dealerPos,
		"pot":    t.pot,
	}).Debug("new hand dealt")

	// hand the action to the first seat after the big blind that can act
	t.activePlayer = t.bigBlindPos()
	return t.rotateTurn()
}

func (t *Table) smallBlindPos() int {
	return (t.dealerPos + 1) % len(t.players)
}

func (t *Table) bigBlindPos() int {
	return (t.dealerPos + 2) % len(t.players)
}

// postBlind is a capped bet; it never fails, even for a short stack
func (t *Table) postBlind(pos, amount int) {
	p := t.players[pos]
	if p.chips == 0 {
		return
	}

	t.pot += p.bet(amount)
	p.lastAction = &LastAction{Action: Blind, Amount: amount}
}

// ProcessAction applies a single player action and rotates the turn.
// Validation happens before any state changes, so a rejected action
// leaves the table untouched.
func (t *Table) ProcessAction(playerID int, action Action, amount int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	// activePlayer is -1 between hands, so the id must match a real seat
	// on the clock before it is ever used as an index
	if t.activePlayer < 0 || playerID != t.activePlayer {
		return ErrNotYourTurn
	}

	if !action.IsValid() {
		return fmt.Errorf("%s is not a valid action", string(action))
	}

	p := t.players[playerID]

	switch action {
	case Fold:
		p.fold()

	case Check, Call:
		callAmt := t.betToCall - p.currentBet
		if callAmt > 0 {
			added := p.bet(callAmt)
			t.pot += added
			p.lastAction = &LastAction{Action: Call, Amount: added}
		} else {
			p.lastAction = &LastAction{Action: Check}
		}

	case Bet, Raise:
		// amount is the player's intended total for the round, not a delta
		added := p.bet(amount - p.currentBet)
		t.pot += added

		if p.currentBet > t.betToCall {
			t.betToCall = p.currentBet
			p.lastAction = &LastAction{Action: Raise, Amount: p.currentBet}
		} else {
			// a short all-in is an accepted call, never rejected
			p.lastAction = &LastAction{Action: AllIn, Amount: p.currentBet}
		}
	}

	t.log.WithFields(logrus.Fields{
		"player": playerID,
		"action": p.lastAction.String(),
		"pot":    t.pot,
	}).Debug("action applied")

	return t.rotateTurn()
}

// rotateTurn finds the next seat that owes a decision, or closes the betting
// round. A seat owes a decision if it can act and either trails the current
// bet or has not acted this round. Pre-flop, the big blind keeps its option
// to check or raise even once every caller has matched the blind.
func (t *Table) rotateTurn() error {
	live := 0
	survivor := -1
	for i, p := range t.players {
		if !p.folded {
			live++
			survivor = i
		}
	}

	if live == 1 {
		t.endHandEarly(survivor)
		return nil
	}

	n := len(t.players)
	for i := 1; i <= n; i++ {
		idx := (t.activePlayer + i) % n
		p := t.players[idx]
		if !p.canAct() {
			continue
		}

		if p.currentBet < t.betToCall || p.lastAction == nil {
			t.activePlayer = idx
			return nil
		}
	}

	// everyone who can act has matched the bet; check the big-blind option
	if t.stage == StagePreFlop && t.betToCall == BigBlind {
		bb := t.players[t.bigBlindPos()]
		if bb.canAct() && bb.lastAction != nil && bb.lastAction.Action == Blind {
			t.activePlayer = t.bigBlindPos()
			return nil
		}
	}

	return t.advanceStage()
}

// advanceStage closes the betting round and deals the next street. When no
// seat can act (everyone remaining is all-in) it keeps dealing until the
// hand resolves, all within the caller's lock.
func (t *Table) advanceStage() error {
	for {
		for _, p := range t.players {
			p.resetForRound()
		}
		t.betToCall = 0

		switch t.stage {
		case StagePreFlop:
			t.stage = StageFlop
			if err := t.dealCommunity(3); err != nil {
				return err
			}
		case StageFlop:
			t.stage = StageTurn
			if err := t.dealCommunity(1); err != nil {
				return err
			}
		case StageTurn:
			t.stage = StageRiver
			if err := t.dealCommunity(1); err != nil {
				return err
			}
		case StageRiver:
			t.resolveShowdown()
			return nil
		default:
			return fmt.Errorf("cannot advance from stage %s", t.stage)
		}

		for i := 1; i <= len(t.players); i++ {
			idx := (t.dealerPos + i) % len(t.players)
			if t.players[idx].canAct() {
				t.activePlayer = idx
				return nil
			}
		}

		// nobody can act; run out the board
	}
}

func (t *Table) dealCommunity(count int) error {
	cards, err := t.deck.Deal(count)
	if err != nil {
		return err
	}

	t.community = append(t.community, cards...)
	return nil
}

// resolveShowdown evaluates every live hand over the seven available cards
// and splits the pot among the best. An indivisible remainder stays in the
// pot and is discarded at the next hand reset.
func (t *Table) resolveShowdown() {
	t.stage = StageShowdown
	t.activePlayer = -1

	var best poker.HandRank
	var winners []int

	for i, p := range t.players {
		if p.folded {
			continue
		}

		rank := poker.Evaluate(append(p.hand.Clone(), t.community...))
		t.log.WithFields(logrus.Fields{
			"player": i,
			"hand":   rank.String(),
		}).Debug("showdown")

		if len(winners) == 0 || rank.Beats(best) {
			best = rank
			winners = []int{i}
		} else if rank.Ties(best) {
			winners = append(winners, i)
		}
	}

	t.winners = winners

	if len(winners) > 0 {
		share := t.pot / len(winners)
		for _, w := range winners {
			t.players[w].chips += share
			t.pot -= share
		}
	}

	t.stage = StageHandOver
}

// endHandEarly awards the pot to the last live seat without a showdown
func (t *Table) endHandEarly(winner int) {
	t.players[winner].chips += t.pot
	t.pot = 0
	t.betToCall = 0
	t.winners = []int{winner}
	t.stage = StageHandOver
	t.activePlayer = -1

	t.log.WithField("player", winner).Debug("hand won by fold-out")
}

// BotToAct returns the active seat if it is automated and a decision is
// pending. The second return is false once a human is up or the hand is over.
func (t *Table) BotToAct() (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.activePlayer < 0 {
		return -1, false
	}

	if t.players[t.activePlayer].IsHuman {
		return -1, false
	}

	return t.activePlayer, true
}
