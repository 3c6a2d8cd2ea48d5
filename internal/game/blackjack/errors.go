package blackjack

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBet        = errors.New("invalid_bet")
	ErrGameAlreadyActive = errors.New("game_already_active")
	ErrNoActiveGame      = errors.New("no_active_game")
	ErrNotOwner          = errors.New("not_owner")
)

// SettlementError reports that the hand resolved (and was removed) but the
// final ledger credit or stats write failed. The resolution is still
// attached so the caller can show the outcome while flagging that the
// payout needs manual reconciliation.
type SettlementError struct {
	Resolution *ResolutionView
	Err        error
}

func (e *SettlementError) Error() string {
	return fmt.Sprintf("settlement failed after resolution: %v", e.Err)
}

func (e *SettlementError) Unwrap() error {
	return e.Err
}
