package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_State(t *testing.T) {
	a := assert.New(t)
	tbl := testTable(t, 4)
	tbl.players[0].chips = 0

	a.NoError(tbl.StartNewHand())

	state := tbl.State(1)
	a.Equal(tbl.ID(), state.TableID)
	a.Equal(30, state.Pot)
	a.Equal(20, state.BetToCall)
	a.Equal(1, state.DealerPos)
	a.Equal(2, state.SmallBlindPos)
	a.Equal(3, state.BigBlindPos)
	a.Equal(StagePreFlop, state.Stage)
	a.Empty(state.CommunityCards)
	a.Empty(state.Winners)

	// the viewer sees its own cards, everyone else is face down
	me := state.PlayerByID(1)
	a.Equal(2, len(me.Hand))
	a.NotEqual(faceDownCard, me.Hand[0])

	other := state.PlayerByID(2)
	a.Equal([]string{faceDownCard, faceDownCard}, other.Hand)

	// a seat that was dealt out has no cards at all
	a.Empty(state.PlayerByID(0).Hand)

	a.Nil(state.PlayerByID(99))
}

func TestTable_State_revealsAtShowdown(t *testing.T) {
	a := assert.New(t)
	tbl := testTable(t, 4)
	a.NoError(tbl.StartNewHand())

	tbl.stage = StageShowdown
	state := tbl.State(-1)
	for _, p := range state.Players {
		a.NotEqual(faceDownCard, p.Hand[0])
	}

	tbl.stage = StageHandOver
	state = tbl.State(-1)
	for _, p := range state.Players {
		a.NotEqual(faceDownCard, p.Hand[0])
	}
}
