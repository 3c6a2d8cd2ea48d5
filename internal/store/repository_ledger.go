package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

var errNonPositiveAmount = errors.New("amount must be positive")

func (s *Store) GetBalance(ctx context.Context, playerID string) (int64, error) {
	row := s.Pool.QueryRow(ctx,
		`SELECT balance_cc FROM accounts WHERE player_id = $1`, playerID)
	var bal int64
	if err := row.Scan(&bal); err != nil {
		return 0, mapNotFound(err)
	}
	return bal, nil
}

// Debit withdraws amount from the player's account and journals the entry.
// The balance row is locked for the duration of the transaction, so no
// mutation happens when funds are insufficient.
func (s *Store) Debit(ctx context.Context, playerID string, amount int64, entryType, refType, refID string) (int64, error) {
	if amount <= 0 {
		return 0, errNonPositiveAmount
	}
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var bal int64
	row := tx.QueryRow(ctx,
		`SELECT balance_cc FROM accounts WHERE player_id = $1 FOR UPDATE`, playerID)
	if err := row.Scan(&bal); err != nil {
		return 0, mapNotFound(err)
	}
	if bal < amount {
		return 0, ErrInsufficientFunds
	}
	newBal := bal - amount
	if _, err := tx.Exec(ctx,
		`UPDATE accounts SET balance_cc = $1, updated_at = now() WHERE player_id = $2`,
		newBal, playerID); err != nil {
		return 0, err
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO ledger_entries (id, player_id, type, amount_cc, ref_type, ref_id)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		NewID(), playerID, entryType, -amount, refType, refID); err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return newBal, nil
}

func (s *Store) Credit(ctx context.Context, playerID string, amount int64, entryType, refType, refID string) (int64, error) {
	if amount <= 0 {
		return 0, errNonPositiveAmount
	}
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var bal int64
	row := tx.QueryRow(ctx,
		`SELECT balance_cc FROM accounts WHERE player_id = $1 FOR UPDATE`, playerID)
	if err := row.Scan(&bal); err != nil {
		return 0, mapNotFound(err)
	}
	newBal := bal + amount
	if _, err := tx.Exec(ctx,
		`UPDATE accounts SET balance_cc = $1, updated_at = now() WHERE player_id = $2`,
		newBal, playerID); err != nil {
		return 0, err
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO ledger_entries (id, player_id, type, amount_cc, ref_type, ref_id)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		NewID(), playerID, entryType, amount, refType, refID); err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return newBal, nil
}

type LedgerFilter struct {
	PlayerID string
	RefID    string
}

func (s *Store) ListLedgerEntries(ctx context.Context, f LedgerFilter, limit, offset int) ([]LedgerEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.Pool.Query(ctx,
		`SELECT id, player_id, type, amount_cc, ref_type, ref_id, created_at
		 FROM ledger_entries
		 WHERE ($1 = '' OR player_id = $1) AND ($2 = '' OR ref_id = $2)
		 ORDER BY created_at DESC
		 LIMIT $3 OFFSET $4`,
		f.PlayerID, f.RefID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []LedgerEntry
	for rows.Next() {
		var e LedgerEntry
		if err := rows.Scan(&e.ID, &e.PlayerID, &e.Type, &e.AmountCC, &e.RefType, &e.RefID, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
