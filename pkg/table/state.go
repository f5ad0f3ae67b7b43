package table

// State is a read-only snapshot of a table, scoped to a viewing player.
// Hole cards are revealed only to their owner until the showdown.
type State struct {
	TableID        string         `json:"tableId"`
	Pot            int            `json:"pot"`
	CommunityCards []string       `json:"communityCards"`
	ActivePlayerID int            `json:"activePlayerId"`
	DealerPos      int            `json:"dealerPos"`
	SmallBlindPos  int            `json:"smallBlindPos"`
	BigBlindPos    int            `json:"bigBlindPos"`
	Stage          Stage          `json:"stage"`
	BetToCall      int            `json:"betToCall"`
	Winners        []int          `json:"winners"`
	Players        []*PlayerState `json:"players"`
}

// State returns a snapshot of the table as seen by forPlayer
func (t *Table) State(forPlayer int) *State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state(forPlayer)
}

func (t *Table) state(forPlayer int) *State {
	community := make([]string, len(t.community))
	for i, card := range t.community {
		community[i] = card.String()
	}

	revealAll := t.stage == StageShowdown || t.stage == StageHandOver

	players := make([]*PlayerState, len(t.players))
	for i, p := range t.players {
		players[i] = p.playerState(revealAll || p.ID == forPlayer)
	}

	winners := make([]int, len(t.winners))
	copy(winners, t.winners)

	return &State{
		TableID:        t.id,
		Pot:            t.pot,
		CommunityCards: community,
		ActivePlayerID: t.activePlayer,
		DealerPos:      t.dealerPos,
		SmallBlindPos:  t.smallBlindPos(),
		BigBlindPos:    t.bigBlindPos(),
		Stage:          t.stage,
		BetToCall:      t.betToCall,
		Winners:        winners,
		Players:        players,
	}
}

// PlayerByID returns the seat's player state in the State, or nil
func (s *State) PlayerByID(id int) *PlayerState {
	for _, p := range s.Players {
		if p.ID == id {
			return p
		}
	}

	return nil
}
