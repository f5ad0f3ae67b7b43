package table

import (
	"encoding/json"
	"fmt"
)

// Action represents an action a player can take
type Action string

// action constants
const (
	Fold  Action = "fold"
	Check Action = "check"
	Call  Action = "call"
	Bet   Action = "bet"
	Raise Action = "raise"

	// Blind and AllIn only ever appear as the label of a committed action.
	// ActionFromString never accepts them.
	Blind Action = "blind"
	AllIn Action = "all-in"
)

var allowedActions = map[Action]bool{
	Fold:  true,
	Check: true,
	Call:  true,
	Bet:   true,
	Raise: true,
}

// ActionFromString returns an action for the given string
func ActionFromString(s string) (Action, error) {
	if _, ok := allowedActions[Action(s)]; ok {
		return Action(s), nil
	}

	return "", fmt.Errorf("unknown action for identifier: %s", s)
}

// IsValid returns true if the action may be submitted by a player
func (a Action) IsValid() bool {
	_, ok := allowedActions[a]
	return ok
}

func (a Action) String() string {
	switch a {
	case Fold:
		return "Fold"
	case Check:
		return "Check"
	case Call:
		return "Call"
	case Bet:
		return "Bet"
	case Raise:
		return "Raise"
	case Blind:
		return "Blind"
	case AllIn:
		return "All In"
	}

	panic("unknown action")
}

// LastAction records the most recent action a player took this betting round
type LastAction struct {
	Action Action
	Amount int
}

func (la *LastAction) String() string {
	switch la.Action {
	case Raise:
		return fmt.Sprintf("Raise $%d", la.Amount)
	case Call:
		return fmt.Sprintf("Call $%d", la.Amount)
	default:
		return la.Action.String()
	}
}

// MarshalJSON encodes the last action into JSON
func (la *LastAction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Action Action `json:"action"`
		Amount int    `json:"amount,omitempty"`
		Text   string `json:"text"`
	}{
		Action: la.Action,
		Amount: la.Amount,
		Text:   la.String(),
	})
}
