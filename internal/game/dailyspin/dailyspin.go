// Package dailyspin grants a once-a-day CrewCoin reward that the player can
// bank as-is or double on a higher/lower dice roll.
package dailyspin

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"crew-casino/internal/game"

	"github.com/google/uuid"
)

const GameName = "dailyspin"

// Step deadlines mirror the chat-prompt timeouts the game grew up with:
// the claim offer waits 30s for accept/risk, the dice wait 20s for a guess.
const (
	chooseWithin = 30 * time.Second
	guessWithin  = 20 * time.Second
)

type Guess string

const (
	GuessHigher Guess = "higher"
	GuessLower  Guess = "lower"
)

// ParseGuess normalizes user input into a Guess.
func ParseGuess(s string) (Guess, error) {
	switch Guess(s) {
	case GuessHigher:
		return GuessHigher, nil
	case GuessLower:
		return GuessLower, nil
	default:
		return "", ErrInvalidGuess
	}
}

// Offer is a claimed reward awaiting the accept/risk decision.
type Offer struct {
	SpinID    string    `json:"spin_id"`
	PlayerID  string    `json:"player_id"`
	AmountCC  int64     `json:"amount_cc"`
	ExpiresAt time.Time `json:"expires_at"`
}

// FirstRoll is the state after choosing to risk: one die shown, guess pending.
type FirstRoll struct {
	SpinID    string    `json:"spin_id"`
	PlayerID  string    `json:"player_id"`
	AmountCC  int64     `json:"amount_cc"`
	Roll      int       `json:"roll"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Result is a finished spin.
type Result struct {
	SpinID       string       `json:"spin_id"`
	PlayerID     string       `json:"player_id"`
	AmountCC     int64        `json:"amount_cc"`
	Accepted     bool         `json:"accepted"`
	FirstRoll    int          `json:"first_roll,omitempty"`
	SecondRoll   int          `json:"second_roll,omitempty"`
	Guess        Guess        `json:"guess,omitempty"`
	Outcome      game.Outcome `json:"outcome"`
	PayoutCC     int64        `json:"payout_cc"`
	NewBalanceCC int64        `json:"new_balance_cc"`
}

type spinPhase int

const (
	phaseChoice spinPhase = iota
	phaseGuess
)

type pendingSpin struct {
	id        string
	amount    int64
	phase     spinPhase
	firstRoll int
	expiresAt time.Time
}

// slot is the per-player state: the last claim time (the cooldown) and the
// in-flight spin, if any. The slot lock is held across ledger calls so a
// racing accept/risk pair cannot double-settle one offer.
type slot struct {
	mu        sync.Mutex
	claimedAt time.Time
	pending   *pendingSpin
}

// Game hands out and settles daily spins. Cooldowns live in memory; a
// restart forgives them, which is acceptable for a once-a-day perk.
type Game struct {
	ledger game.Ledger
	stats  game.StatsRecorder

	minReward int64
	maxReward int64
	cooldown  time.Duration

	now func() time.Time

	rndMu sync.Mutex
	rnd   *rand.Rand

	mu    sync.Mutex
	slots map[string]*slot
}

func New(ledger game.Ledger, stats game.StatsRecorder, minReward, maxReward int64, cooldown time.Duration) *Game {
	return &Game{
		ledger:    ledger,
		stats:     stats,
		minReward: minReward,
		maxReward: maxReward,
		cooldown:  cooldown,
		now:       time.Now,
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
		slots:     map[string]*slot{},
	}
}

func (g *Game) slotFor(playerID string) *slot {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.slots[playerID]
	if !ok {
		s = &slot{}
		g.slots[playerID] = s
	}
	return s
}

func (g *Game) rollReward() int64 {
	g.rndMu.Lock()
	defer g.rndMu.Unlock()
	return g.minReward + g.rnd.Int63n(g.maxReward-g.minReward+1)
}

func (g *Game) rollDie() int {
	g.rndMu.Lock()
	defer g.rndMu.Unlock()
	return 1 + g.rnd.Intn(6)
}

// Claim starts a spin. The cooldown is consumed here, not at settlement:
// walking away from the offer forfeits it, same as letting a chat prompt
// time out.
func (g *Game) Claim(ctx context.Context, playerID string) (*Offer, error) {
	_ = ctx
	s := g.slotFor(playerID)
	s.mu.Lock()
	defer s.mu.Unlock()

	now := g.now()
	if s.pending != nil && now.Before(s.pending.expiresAt) {
		return nil, ErrSpinPending
	}
	if !s.claimedAt.IsZero() {
		if next := s.claimedAt.Add(g.cooldown); now.Before(next) {
			return nil, &CooldownError{NextClaimAt: next}
		}
	}

	p := &pendingSpin{
		id:        uuid.NewString(),
		amount:    g.rollReward(),
		phase:     phaseChoice,
		expiresAt: now.Add(chooseWithin),
	}
	s.claimedAt = now
	s.pending = p
	return &Offer{SpinID: p.id, PlayerID: playerID, AmountCC: p.amount, ExpiresAt: p.expiresAt}, nil
}

// Accept banks the offered reward.
func (g *Game) Accept(ctx context.Context, playerID string) (*Result, error) {
	s := g.slotFor(playerID)
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := g.takePending(s, phaseChoice)
	if err != nil {
		return nil, err
	}
	balance, err := g.ledger.Deposit(ctx, playerID, p.id, p.amount)
	if err != nil {
		return nil, &game.SettlementError{Game: GameName, Ref: p.id, Err: err}
	}
	return &Result{
		SpinID:       p.id,
		PlayerID:     playerID,
		AmountCC:     p.amount,
		Accepted:     true,
		Outcome:      game.OutcomeWin,
		PayoutCC:     p.amount,
		NewBalanceCC: balance,
	}, nil
}

// Risk rolls the first die and opens the higher/lower guess.
func (g *Game) Risk(ctx context.Context, playerID string) (*FirstRoll, error) {
	_ = ctx
	s := g.slotFor(playerID)
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := g.takePending(s, phaseChoice)
	if err != nil {
		return nil, err
	}
	p.phase = phaseGuess
	p.firstRoll = g.rollDie()
	p.expiresAt = g.now().Add(guessWithin)
	s.pending = p
	return &FirstRoll{
		SpinID:    p.id,
		PlayerID:  playerID,
		AmountCC:  p.amount,
		Roll:      p.firstRoll,
		ExpiresAt: p.expiresAt,
	}, nil
}

// Guess rolls the second die and settles the gamble. A correct guess pays
// double the offered reward, a tie pays nothing and costs nothing, a wrong
// guess forfeits the reward.
func (g *Game) Guess(ctx context.Context, playerID string, guess Guess) (*Result, error) {
	if guess != GuessHigher && guess != GuessLower {
		return nil, ErrInvalidGuess
	}
	s := g.slotFor(playerID)
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := g.takePending(s, phaseGuess)
	if err != nil {
		return nil, err
	}

	second := g.rollDie()
	res := &Result{
		SpinID:     p.id,
		PlayerID:   playerID,
		AmountCC:   p.amount,
		FirstRoll:  p.firstRoll,
		SecondRoll: second,
		Guess:      guess,
	}
	switch {
	case second == p.firstRoll:
		res.Outcome = game.OutcomePush
	case (guess == GuessHigher) == (second > p.firstRoll):
		res.Outcome = game.OutcomeWin
		res.PayoutCC = 2 * p.amount
	default:
		res.Outcome = game.OutcomeLoss
	}

	if res.PayoutCC > 0 {
		balance, err := g.ledger.Deposit(ctx, playerID, p.id, res.PayoutCC)
		if err != nil {
			return nil, &game.SettlementError{Game: GameName, Ref: p.id, Err: err}
		}
		res.NewBalanceCC = balance
	}
	if err := g.stats.Record(ctx, playerID, GameName, p.amount, res.Outcome); err != nil {
		return nil, &game.SettlementError{Game: GameName, Ref: p.id, Err: err}
	}
	return res, nil
}

// takePending pops the pending spin if it is live and in the wanted phase.
// Callers hold the slot lock.
func (g *Game) takePending(s *slot, want spinPhase) (*pendingSpin, error) {
	p := s.pending
	if p == nil {
		return nil, ErrNoPendingSpin
	}
	if g.now().After(p.expiresAt) {
		s.pending = nil
		return nil, ErrSpinExpired
	}
	if p.phase != want {
		if want == phaseChoice {
			return nil, ErrNoPendingSpin
		}
		return nil, ErrNoPendingGuess
	}
	s.pending = nil
	return p, nil
}

// CooldownError reports a claim attempted before the cooldown has lapsed.
type CooldownError struct {
	NextClaimAt time.Time
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("daily spin on cooldown until %s", e.NextClaimAt.Format(time.RFC3339))
}

func (e *CooldownError) Unwrap() error { return ErrCooldownActive }
