package blackjack

import "time"

// Hand is the live state of one in-progress game. It exists only in memory
// between bet placement and resolution.
type Hand struct {
	ID       string
	PlayerID string
	Bet      int64

	Deck   *Deck
	Player []Card
	Dealer []Card

	// Balance right after the bet was withdrawn; resolution reports the
	// final balance without an extra ledger read on a loss.
	BalanceAfterBet int64

	CreatedAt time.Time
}
