// Package game holds the contracts shared by all casino mini-games: the
// ledger and stats collaborators a game settles against, and the outcome
// of a resolved round.
package game

import (
	"context"
	"errors"
)

// ErrInsufficientFunds is returned by Ledger.Withdraw when the bet exceeds
// the player's balance. No mutation has happened when it is returned.
var ErrInsufficientFunds = errors.New("insufficient_funds")

type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomePush Outcome = "push"
)

// Ledger is the external balance service. Both calls block until the ledger
// has confirmed the mutation; games must not advance state on an error.
type Ledger interface {
	Withdraw(ctx context.Context, playerID, ref string, amount int64) (int64, error)
	Deposit(ctx context.Context, playerID, ref string, amount int64) (int64, error)
}

// StatsRecorder persists one cumulative stats bump per resolved round.
type StatsRecorder interface {
	Record(ctx context.Context, playerID, gameName string, bet int64, outcome Outcome) error
}

// SettlementError reports a payout or stats write that failed after the
// round had already been decided. The round is over; the failure needs
// reconciliation, not a replay.
type SettlementError struct {
	Game string
	Ref  string
	Err  error
}

func (e *SettlementError) Error() string {
	return e.Game + " settlement failed for " + e.Ref + ": " + e.Err.Error()
}

func (e *SettlementError) Unwrap() error { return e.Err }
