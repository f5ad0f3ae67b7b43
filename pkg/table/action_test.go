package table

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionFromString(t *testing.T) {
	a := assert.New(t)

	for _, s := range []string{"fold", "check", "call", "bet", "raise"} {
		action, err := ActionFromString(s)
		a.NoError(err)
		a.Equal(Action(s), action)
		a.True(action.IsValid())
	}

	_, err := ActionFromString("blind")
	a.EqualError(err, "unknown action for identifier: blind")

	_, err = ActionFromString("all-in")
	a.Error(err)

	_, err = ActionFromString("shove")
	a.Error(err)
}

func TestAction_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("Fold", Fold.String())
	a.Equal("Check", Check.String())
	a.Equal("Call", Call.String())
	a.Equal("Bet", Bet.String())
	a.Equal("Raise", Raise.String())
	a.Equal("Blind", Blind.String())
	a.Equal("All In", AllIn.String())

	a.Panics(func() {
		_ = Action("shove").String()
	})
}

func TestLastAction(t *testing.T) {
	a := assert.New(t)

	la := &LastAction{Action: Raise, Amount: 60}
	a.Equal("Raise $60", la.String())

	la = &LastAction{Action: Call, Amount: 20}
	a.Equal("Call $20", la.String())

	la = &LastAction{Action: AllIn, Amount: 15}
	a.Equal("All In", la.String())

	b, err := json.Marshal(&LastAction{Action: Check})
	a.NoError(err)
	a.JSONEq(`{"action":"check","text":"Check"}`, string(b))
}

func TestStage_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("pre-flop", StagePreFlop.String())
	a.Equal("flop", StageFlop.String())
	a.Equal("turn", StageTurn.String())
	a.Equal("river", StageRiver.String())
	a.Equal("showdown", StageShowdown.String())
	a.Equal("hand-over", StageHandOver.String())
	a.Equal("", Stage(100).String())

	b, err := json.Marshal(StageFlop)
	a.NoError(err)
	a.JSONEq(`{"id":1,"name":"flop"}`, string(b))
}
