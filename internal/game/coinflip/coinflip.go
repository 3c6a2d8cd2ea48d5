// Package coinflip is a single-round even-money wager: pick a side, flip,
// win double the bet or lose it.
package coinflip

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"crew-casino/internal/game"

	"github.com/google/uuid"
)

const GameName = "coinflip"

type Side string

const (
	SideHeads Side = "heads"
	SideTails Side = "tails"
)

var (
	ErrInvalidSide = errors.New("invalid_side")
	ErrInvalidBet  = errors.New("invalid_bet")
)

// ParseSide normalizes user input into a Side.
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case SideHeads:
		return SideHeads, nil
	case SideTails:
		return SideTails, nil
	default:
		return "", ErrInvalidSide
	}
}

// Result is the outcome of one flip.
type Result struct {
	FlipID       string       `json:"flip_id"`
	PlayerID     string       `json:"player_id"`
	Side         Side         `json:"side"`
	Landed       Side         `json:"landed"`
	BetCC        int64        `json:"bet_cc"`
	Outcome      game.Outcome `json:"outcome"`
	PayoutCC     int64        `json:"payout_cc"`
	NewBalanceCC int64        `json:"new_balance_cc"`
}

type Game struct {
	ledger game.Ledger
	stats  game.StatsRecorder

	rndMu sync.Mutex
	rnd   *rand.Rand
}

func New(ledger game.Ledger, stats game.StatsRecorder) *Game {
	return &Game{
		ledger: ledger,
		stats:  stats,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *Game) flip() Side {
	g.rndMu.Lock()
	defer g.rndMu.Unlock()
	if g.rnd.Intn(2) == 0 {
		return SideHeads
	}
	return SideTails
}

// Play withdraws the bet, flips, and pays 2x on a win. Validation happens
// before the ledger is touched; a settlement failure after the withdrawal
// is reported the same way as for blackjack, with the result attached.
func (g *Game) Play(ctx context.Context, playerID string, side Side, bet int64) (*Result, error) {
	if side != SideHeads && side != SideTails {
		return nil, ErrInvalidSide
	}
	if bet <= 0 {
		return nil, ErrInvalidBet
	}

	flipID := uuid.NewString()
	balance, err := g.ledger.Withdraw(ctx, playerID, flipID, bet)
	if err != nil {
		return nil, err
	}

	landed := g.flip()
	res := &Result{
		FlipID:       flipID,
		PlayerID:     playerID,
		Side:         side,
		Landed:       landed,
		BetCC:        bet,
		Outcome:      game.OutcomeLoss,
		NewBalanceCC: balance,
	}
	if landed == side {
		res.Outcome = game.OutcomeWin
		res.PayoutCC = 2 * bet
		balance, err = g.ledger.Deposit(ctx, playerID, flipID, res.PayoutCC)
		if err != nil {
			return nil, &game.SettlementError{Game: GameName, Ref: flipID, Err: err}
		}
		res.NewBalanceCC = balance
	}
	if err := g.stats.Record(ctx, playerID, GameName, bet, res.Outcome); err != nil {
		return nil, &game.SettlementError{Game: GameName, Ref: flipID, Err: err}
	}
	return res, nil
}
