package casino

import "time"

type RegisterResponse struct {
	PlayerID  string `json:"player_id"`
	Name      string `json:"name"`
	APIKey    string `json:"api_key"`
	BalanceCC int64  `json:"balance_cc"`
}

type MeResponse struct {
	PlayerID  string    `json:"player_id"`
	Name      string    `json:"name"`
	BalanceCC int64     `json:"balance_cc"`
	CreatedAt time.Time `json:"created_at"`
}

type BalanceResponse struct {
	PlayerID  string `json:"player_id"`
	BalanceCC int64  `json:"balance_cc"`
}

type GameStatsItem struct {
	Game       string `json:"game"`
	Wins       int64  `json:"wins"`
	Losses     int64  `json:"losses"`
	TotalBetCC int64  `json:"total_bet_cc"`
}

type StatsResponse struct {
	PlayerID string          `json:"player_id"`
	Name     string          `json:"name"`
	Games    []GameStatsItem `json:"games"`
}

type LeaderboardResponse struct {
	Items []LeaderboardItem `json:"items"`
}

type LeaderboardItem struct {
	Rank       int             `json:"rank"`
	PlayerID   string          `json:"player_id"`
	Name       string          `json:"name"`
	TotalBetCC int64           `json:"total_bet_cc"`
	Wins       int64           `json:"wins"`
	Losses     int64           `json:"losses"`
	Games      []GameStatsItem `json:"games"`
}

type PlayerItem struct {
	PlayerID  string    `json:"player_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type PlayersResponse struct {
	Items  []PlayerItem `json:"items"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

type TopupResponse struct {
	PlayerID     string `json:"player_id"`
	AddedCC      int64  `json:"added_cc"`
	NewBalanceCC int64  `json:"new_balance_cc"`
}

type LedgerEntryItem struct {
	ID        string    `json:"id"`
	PlayerID  string    `json:"player_id"`
	Type      string    `json:"type"`
	AmountCC  int64     `json:"amount_cc"`
	RefType   string    `json:"ref_type"`
	RefID     string    `json:"ref_id"`
	CreatedAt time.Time `json:"created_at"`
}

type LedgerResponse struct {
	Items  []LedgerEntryItem `json:"items"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}
