package store

import "time"

type Player struct {
	ID         string
	Name       string
	APIKeyHash string
	CreatedAt  time.Time
}

type Account struct {
	PlayerID  string
	BalanceCC int64
	UpdatedAt time.Time
}

type LedgerEntry struct {
	ID        string
	PlayerID  string
	Type      string
	AmountCC  int64
	RefType   string
	RefID     string
	CreatedAt time.Time
}

// GameStats is one player's cumulative record for one game.
type GameStats struct {
	PlayerID   string
	Game       string
	Wins       int64
	Losses     int64
	TotalBetCC int64
}

// LeaderboardRow aggregates a player's stats across all games.
type LeaderboardRow struct {
	PlayerID   string      `json:"player_id"`
	Name       string      `json:"name"`
	TotalBetCC int64       `json:"total_bet_cc"`
	Wins       int64       `json:"wins"`
	Losses     int64       `json:"losses"`
	PerGame    []GameStats `json:"-"`
}
