package bot

import (
	"texasholdem-server/pkg/table"
)

// Decision is what a decider wants to do with its turn
type Decision struct {
	Action table.Action `json:"action"`
	Amount int          `json:"amount"`
}

// Decider chooses an action for an automated seat. A decider sees the same
// snapshot a human client would; the engine validates whatever comes back,
// so implementations are never trusted to be well-behaved.
type Decider interface {
	Decide(state *table.State, playerID int) (Decision, error)
}

// RuleBased plays simple, tight poker: check when checking is free, call
// when the price is small next to the stack, fold otherwise. It also serves
// as the safe fallback when another decider misbehaves.
type RuleBased struct{}

// Decide implements Decider
func (RuleBased) Decide(state *table.State, playerID int) (Decision, error) {
	p := state.PlayerByID(playerID)
	if p == nil {
		return Decision{Action: table.Fold}, nil
	}

	toCall := state.BetToCall - p.CurrentBet
	if toCall <= 0 {
		return Decision{Action: table.Check}, nil
	}

	if toCall < p.Chips/10 {
		return Decision{Action: table.Call}, nil
	}

	return Decision{Action: table.Fold}, nil
}

// safeDefault checks when it is free and folds otherwise
func safeDefault(state *table.State, playerID int) Decision {
	if p := state.PlayerByID(playerID); p != nil && state.BetToCall-p.CurrentBet <= 0 {
		return Decision{Action: table.Check}
	}

	return Decision{Action: table.Fold}
}
