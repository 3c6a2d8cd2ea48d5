package blackjack

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"crew-casino/internal/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const GameName = "blackjack"

const dealerStandsAt = 17

// Table runs one independent blackjack hand per player. Hands for
// different players never contend; actions for the same player are
// serialized by a per-seat lock held across the ledger calls, so a racing
// hit/stand/bet pair cannot double-draw or double-withdraw.
type Table struct {
	ledger game.Ledger
	stats  game.StatsRecorder

	rndMu sync.Mutex
	rnd   *rand.Rand

	mu    sync.Mutex
	seats map[string]*seat
}

// seat is the per-player slot. The seat outlives its hand; the hand is
// inserted at bet placement and removed the instant resolution starts.
type seat struct {
	mu   sync.Mutex
	hand *Hand
}

func NewTable(ledger game.Ledger, stats game.StatsRecorder) *Table {
	return &Table{
		ledger: ledger,
		stats:  stats,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		seats:  map[string]*seat{},
	}
}

func (t *Table) seatFor(playerID string) *seat {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.seats[playerID]
	if !ok {
		s = &seat{}
		t.seats[playerID] = s
	}
	return s
}

func (t *Table) shuffled() *Deck {
	t.rndMu.Lock()
	defer t.rndMu.Unlock()
	d := NewDeck()
	d.Shuffle(t.rnd)
	return d
}

// PlaceBet withdraws the bet and deals a fresh hand. The hand is created
// only after the ledger has confirmed the withdrawal, so a failed or
// cancelled withdrawal leaves no hand behind.
func (t *Table) PlaceBet(ctx context.Context, playerID string, bet int64) (*HandView, error) {
	if bet <= 0 {
		return nil, ErrInvalidBet
	}
	s := t.seatFor(playerID)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hand != nil {
		return nil, ErrGameAlreadyActive
	}

	handID := uuid.NewString()
	balance, err := t.ledger.Withdraw(ctx, playerID, handID, bet)
	if err != nil {
		return nil, err
	}

	deck := t.shuffled()
	h := &Hand{
		ID:              handID,
		PlayerID:        playerID,
		Bet:             bet,
		Deck:            deck,
		Player:          []Card{deck.Deal(), deck.Deal()},
		Dealer:          []Card{deck.Deal(), deck.Deal()},
		BalanceAfterBet: balance,
		CreatedAt:       time.Now(),
	}
	s.hand = h

	v := newHandView(h, false)
	return &v, nil
}

// Hit draws one card for the player. Going over 21 resolves the hand as a
// bust; landing exactly on 21 auto-stands, since no further hit can
// improve the hand.
func (t *Table) Hit(ctx context.Context, playerID, actorID string) (*Update, error) {
	s := t.seatFor(playerID)
	s.mu.Lock()
	defer s.mu.Unlock()
	h := s.hand
	if h == nil {
		return nil, ErrNoActiveGame
	}
	if actorID != playerID {
		return nil, ErrNotOwner
	}

	h.Player = append(h.Player, h.Deck.Deal())
	switch v := HandValue(h.Player); {
	case v > 21:
		res, err := t.resolve(ctx, s, true)
		if err != nil {
			return nil, err
		}
		return &Update{Resolution: res}, nil
	case v == 21:
		res, err := t.resolve(ctx, s, false)
		if err != nil {
			return nil, err
		}
		return &Update{Resolution: res}, nil
	default:
		view := newHandView(h, false)
		return &Update{Hand: &view}, nil
	}
}

// Stand ends the player's turn and lets the dealer draw.
func (t *Table) Stand(ctx context.Context, playerID, actorID string) (*ResolutionView, error) {
	s := t.seatFor(playerID)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hand == nil {
		return nil, ErrNoActiveGame
	}
	if actorID != playerID {
		return nil, ErrNotOwner
	}
	return t.resolve(ctx, s, false)
}

// resolve settles the hand. The hand is removed from the seat before any
// external call, so it can only resolve once; if the payout or stats write
// then fails, the failure is surfaced as a *SettlementError with the
// resolution attached rather than leaving the hand stuck.
func (t *Table) resolve(ctx context.Context, s *seat, busted bool) (*ResolutionView, error) {
	h := s.hand
	s.hand = nil

	if !busted {
		for HandValue(h.Dealer) < dealerStandsAt && h.Deck.Len() > 0 {
			h.Dealer = append(h.Dealer, h.Deck.Deal())
		}
	}

	pv := HandValue(h.Player)
	dv := HandValue(h.Dealer)

	var outcome game.Outcome
	var payout int64
	switch {
	case busted || (pv < dv && dv <= 21):
		outcome = game.OutcomeLoss
	case pv > dv || dv > 21:
		outcome = game.OutcomeWin
		payout = 2 * h.Bet
	default:
		outcome = game.OutcomePush
		payout = h.Bet
	}

	balance := h.BalanceAfterBet
	var settleErr error
	if payout > 0 {
		balance, settleErr = t.ledger.Deposit(ctx, h.PlayerID, h.ID, payout)
		if settleErr != nil {
			balance = h.BalanceAfterBet
		}
	}
	if settleErr == nil {
		settleErr = t.stats.Record(ctx, h.PlayerID, GameName, h.Bet, outcome)
	}

	res := &ResolutionView{
		HandView:     newHandView(h, true),
		Outcome:      outcome,
		Busted:       busted,
		PayoutCC:     payout,
		NewBalanceCC: balance,
	}
	if settleErr != nil {
		log.Error().Err(settleErr).
			Str("hand_id", h.ID).
			Str("player_id", h.PlayerID).
			Str("outcome", string(outcome)).
			Int64("payout_cc", payout).
			Msg("blackjack settlement failed, manual reconciliation needed")
		return nil, &SettlementError{Resolution: res, Err: settleErr}
	}
	return res, nil
}

// ActiveHands reports how many hands are currently live, for metrics.
func (t *Table) ActiveHands() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, s := range t.seats {
		s.mu.Lock()
		if s.hand != nil {
			n++
		}
		s.mu.Unlock()
	}
	return n
}
