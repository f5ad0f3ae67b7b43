package poker

import (
	"testing"

	"texasholdem-server/pkg/deck"
	"texasholdem-server/pkg/snapshot"
)

// locks down the JSON the evaluator puts on the wire
func TestEvaluate_snapshots(t *testing.T) {
	boards := []string{
		"14s,13s,12s,11s,10s,2c,3d",
		"2c,2d,2h,2s,9c,9d,5h",
		"14c,14d,14h,13s,13c,2d,3h",
		"14h,12h,9h,6h,3h,2c,2d",
		"9c,8d,7h,6s,5c,2c,2d",
		"14c,2d,3h,4s,5c,9d,10h",
		"8c,8d,8h,13s,6c,4d,2h",
		"14c,14d,9h,9s,4c,3d,2h",
		"11c,11d,9h,7s,5c,3d,2h",
		"14c,12d,10h,8s,6c,4d,2h",
	}

	results := make([]HandRank, len(boards))
	for i, b := range boards {
		results[i] = Evaluate(deck.CardsFromString(b))
	}

	snapshot.ValidateSnapshot(t, results, 0)
}
