// Package ledger adapts the Postgres store to the balance contract the
// games settle against.
package ledger

import (
	"context"
	"errors"

	"crew-casino/internal/game"
	"crew-casino/internal/store"
)

type Ledger struct {
	Store *store.Store
}

func New(s *store.Store) *Ledger {
	return &Ledger{Store: s}
}

func (l *Ledger) Balance(ctx context.Context, playerID string) (int64, error) {
	return l.Store.GetBalance(ctx, playerID)
}

func (l *Ledger) Withdraw(ctx context.Context, playerID, ref string, amount int64) (int64, error) {
	bal, err := l.Store.Debit(ctx, playerID, amount, "bet_debit", "game", ref)
	if errors.Is(err, store.ErrInsufficientFunds) {
		return 0, game.ErrInsufficientFunds
	}
	return bal, err
}

func (l *Ledger) Deposit(ctx context.Context, playerID, ref string, amount int64) (int64, error) {
	return l.Store.Credit(ctx, playerID, amount, "payout_credit", "game", ref)
}

// Topup credits a player outside any game, for admin grants.
func (l *Ledger) Topup(ctx context.Context, playerID string, amount int64) (int64, error) {
	return l.Store.Credit(ctx, playerID, amount, "topup_credit", "admin", "")
}
