package table

import "encoding/json"

// Stage represents where a hand is in its lifecycle
type Stage int

// constants for Stage, in the order a hand moves through them
const (
	StagePreFlop Stage = iota
	StageFlop
	StageTurn
	StageRiver
	StageShowdown
	StageHandOver
)

func (s Stage) String() string {
	switch s {
	case StagePreFlop:
		return "pre-flop"
	case StageFlop:
		return "flop"
	case StageTurn:
		return "turn"
	case StageRiver:
		return "river"
	case StageShowdown:
		return "showdown"
	case StageHandOver:
		return "hand-over"
	}

	return ""
}

// MarshalJSON encodes JSON
func (s Stage) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(s),
		Name: s.String(),
	})
}
