package blackjack

import (
	"context"
	"sync"

	"crew-casino/internal/game"
)

type ledgerCall struct {
	PlayerID string
	Ref      string
	Amount   int64
}

type fakeLedger struct {
	mu          sync.Mutex
	balances    map[string]int64
	withdrawals []ledgerCall
	deposits    []ledgerCall
	depositErr  error
}

func newFakeLedger(balances map[string]int64) *fakeLedger {
	if balances == nil {
		balances = map[string]int64{}
	}
	return &fakeLedger{balances: balances}
}

func (l *fakeLedger) Withdraw(_ context.Context, playerID, ref string, amount int64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.balances[playerID] < amount {
		return 0, game.ErrInsufficientFunds
	}
	l.balances[playerID] -= amount
	l.withdrawals = append(l.withdrawals, ledgerCall{PlayerID: playerID, Ref: ref, Amount: amount})
	return l.balances[playerID], nil
}

func (l *fakeLedger) Deposit(_ context.Context, playerID, ref string, amount int64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.depositErr != nil {
		return 0, l.depositErr
	}
	l.balances[playerID] += amount
	l.deposits = append(l.deposits, ledgerCall{PlayerID: playerID, Ref: ref, Amount: amount})
	return l.balances[playerID], nil
}

func (l *fakeLedger) balance(playerID string) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[playerID]
}

type statRecord struct {
	PlayerID string
	Game     string
	Bet      int64
	Outcome  game.Outcome
}

type fakeStats struct {
	mu      sync.Mutex
	records []statRecord
	err     error
}

func (s *fakeStats) Record(_ context.Context, playerID, gameName string, bet int64, outcome game.Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, statRecord{PlayerID: playerID, Game: gameName, Bet: bet, Outcome: outcome})
	return nil
}

// rigHand installs a crafted hand so outcome tests are deterministic. The
// deck is consumed from the end, so the last card listed is dealt first.
func rigHand(t *Table, playerID string, bet, balanceAfter int64, player, dealer, deck []Card) {
	s := t.seatFor(playerID)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hand = &Hand{
		ID:              "rigged-" + playerID,
		PlayerID:        playerID,
		Bet:             bet,
		Deck:            &Deck{cards: deck},
		Player:          player,
		Dealer:          dealer,
		BalanceAfterBet: balanceAfter,
	}
}

func card(r Rank, s Suit) Card {
	return Card{Rank: r, Suit: s}
}
