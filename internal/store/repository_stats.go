package store

import (
	"context"
)

// Outcome is the terminal result of one resolved game.
type Outcome int

const (
	OutcomeLoss Outcome = iota
	OutcomeWin
	OutcomePush
)

// RecordOutcome bumps a player's cumulative stats for one game: total bet
// always, wins or losses only on the matching outcome. A push touches
// neither counter.
func (s *Store) RecordOutcome(ctx context.Context, playerID, game string, bet int64, outcome Outcome) error {
	winInc := int64(0)
	lossInc := int64(0)
	switch outcome {
	case OutcomeWin:
		winInc = 1
	case OutcomeLoss:
		lossInc = 1
	}
	_, err := s.Pool.Exec(ctx,
		`INSERT INTO game_stats (player_id, game, wins, losses, total_bet_cc)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (player_id, game) DO UPDATE SET
		   wins = game_stats.wins + EXCLUDED.wins,
		   losses = game_stats.losses + EXCLUDED.losses,
		   total_bet_cc = game_stats.total_bet_cc + EXCLUDED.total_bet_cc`,
		playerID, game, winInc, lossInc, bet)
	return err
}

func (s *Store) GetGameStats(ctx context.Context, playerID string) ([]GameStats, error) {
	rows, err := s.Pool.Query(ctx,
		`SELECT player_id, game, wins, losses, total_bet_cc
		 FROM game_stats WHERE player_id = $1 ORDER BY game`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []GameStats
	for rows.Next() {
		var gs GameStats
		if err := rows.Scan(&gs.PlayerID, &gs.Game, &gs.Wins, &gs.Losses, &gs.TotalBetCC); err != nil {
			return nil, err
		}
		out = append(out, gs)
	}
	return out, rows.Err()
}

// Leaderboard ranks players by total bet across all games. Players who
// never placed a bet are excluded.
func (s *Store) Leaderboard(ctx context.Context, limit int) ([]LeaderboardRow, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.Pool.Query(ctx,
		`SELECT p.id, p.name,
		        COALESCE(SUM(gs.total_bet_cc), 0) AS total_bet,
		        COALESCE(SUM(gs.wins), 0) AS wins,
		        COALESCE(SUM(gs.losses), 0) AS losses
		 FROM players p
		 JOIN game_stats gs ON gs.player_id = p.id
		 GROUP BY p.id, p.name
		 HAVING COALESCE(SUM(gs.total_bet_cc), 0) > 0
		 ORDER BY total_bet DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []LeaderboardRow
	for rows.Next() {
		var r LeaderboardRow
		if err := rows.Scan(&r.PlayerID, &r.Name, &r.TotalBetCC, &r.Wins, &r.Losses); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
