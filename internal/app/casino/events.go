package casino

import (
	"time"

	"crew-casino/internal/game"
)

// ResultEvent is emitted once per resolved round and fans out to the
// configured publishers (webhook push, websocket spectators).
type ResultEvent struct {
	Game       string       `json:"game"`
	PlayerID   string       `json:"player_id"`
	PlayerName string       `json:"player_name,omitempty"`
	Outcome    game.Outcome `json:"outcome"`
	BetCC      int64        `json:"bet_cc"`
	PayoutCC   int64        `json:"payout_cc"`
	Detail     any          `json:"detail,omitempty"`
	At         time.Time    `json:"at"`
}

// Publisher receives resolved-round events. Implementations must not block:
// a slow spectator channel cannot be allowed to stall game settlement.
type Publisher interface {
	Publish(ev ResultEvent)
}
