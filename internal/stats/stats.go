// Package stats adapts the Postgres store to the per-game stats contract.
package stats

import (
	"context"

	"crew-casino/internal/game"
	"crew-casino/internal/store"
)

type Recorder struct {
	Store *store.Store
}

func New(s *store.Store) *Recorder {
	return &Recorder{Store: s}
}

func (r *Recorder) Record(ctx context.Context, playerID, gameName string, bet int64, outcome game.Outcome) error {
	var o store.Outcome
	switch outcome {
	case game.OutcomeWin:
		o = store.OutcomeWin
	case game.OutcomePush:
		o = store.OutcomePush
	default:
		o = store.OutcomeLoss
	}
	return r.Store.RecordOutcome(ctx, playerID, gameName, bet, o)
}
