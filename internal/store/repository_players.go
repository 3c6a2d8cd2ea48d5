package store

import (
	"context"
)

func (s *Store) CreatePlayer(ctx context.Context, name, apiKey string) (string, error) {
	id := NewID()
	_, err := s.Pool.Exec(ctx,
		`INSERT INTO players (id, name, api_key_hash) VALUES ($1, $2, $3)`,
		id, name, HashAPIKey(apiKey))
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetPlayer(ctx context.Context, id string) (*Player, error) {
	row := s.Pool.QueryRow(ctx,
		`SELECT id, name, api_key_hash, created_at FROM players WHERE id = $1`, id)
	var p Player
	if err := row.Scan(&p.ID, &p.Name, &p.APIKeyHash, &p.CreatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return &p, nil
}

func (s *Store) GetPlayerByAPIKey(ctx context.Context, apiKey string) (*Player, error) {
	row := s.Pool.QueryRow(ctx,
		`SELECT id, name, api_key_hash, created_at FROM players WHERE api_key_hash = $1`,
		HashAPIKey(apiKey))
	var p Player
	if err := row.Scan(&p.ID, &p.Name, &p.APIKeyHash, &p.CreatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return &p, nil
}

func (s *Store) GetPlayerByName(ctx context.Context, name string) (*Player, error) {
	row := s.Pool.QueryRow(ctx,
		`SELECT id, name, api_key_hash, created_at FROM players WHERE name = $1`, name)
	var p Player
	if err := row.Scan(&p.ID, &p.Name, &p.APIKeyHash, &p.CreatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return &p, nil
}

func (s *Store) ListPlayers(ctx context.Context, limit, offset int) ([]Player, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.Pool.Query(ctx,
		`SELECT id, name, api_key_hash, created_at FROM players ORDER BY created_at LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Player
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.ID, &p.Name, &p.APIKeyHash, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) EnsureAccount(ctx context.Context, playerID string, initial int64) error {
	_, err := s.Pool.Exec(ctx,
		`INSERT INTO accounts (player_id, balance_cc) VALUES ($1, $2)
		 ON CONFLICT (player_id) DO NOTHING`,
		playerID, initial)
	return err
}
