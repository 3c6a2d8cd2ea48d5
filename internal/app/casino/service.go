// Package casino is the application layer: it wires the game state machines
// to the store-backed queries, owns request validation, and fans resolved
// rounds out to the spectator publishers.
package casino

import (
	"context"
	"errors"
	"strings"
	"time"

	"crew-casino/internal/game/blackjack"
	"crew-casino/internal/game/coinflip"
	"crew-casino/internal/game/dailyspin"
	"crew-casino/internal/store"
)

const (
	leaderboardDefaultRows = 10
	leaderboardMaxRows     = 50
)

// Store is the slice of the persistence layer the service reads and
// administers through. *store.Store satisfies it; tests use an in-memory
// fake.
type Store interface {
	CreatePlayer(ctx context.Context, name, apiKey string) (string, error)
	GetPlayer(ctx context.Context, id string) (*store.Player, error)
	GetPlayerByAPIKey(ctx context.Context, apiKey string) (*store.Player, error)
	GetPlayerByName(ctx context.Context, name string) (*store.Player, error)
	EnsureAccount(ctx context.Context, playerID string, initial int64) error
	GetBalance(ctx context.Context, playerID string) (int64, error)
	ListPlayers(ctx context.Context, limit, offset int) ([]store.Player, error)
	GetGameStats(ctx context.Context, playerID string) ([]store.GameStats, error)
	Leaderboard(ctx context.Context, limit int) ([]store.LeaderboardRow, error)
	ListLedgerEntries(ctx context.Context, f store.LedgerFilter, limit, offset int) ([]store.LedgerEntry, error)
	Credit(ctx context.Context, playerID string, amount int64, entryType, refType, refID string) (int64, error)
}

type Service struct {
	store     Store
	blackjack *blackjack.Table
	coinflip  *coinflip.Game
	dailyspin *dailyspin.Game

	initialBalanceCC int64
	pubs             []Publisher
}

func NewService(st Store, bj *blackjack.Table, cf *coinflip.Game, ds *dailyspin.Game, initialBalanceCC int64, pubs ...Publisher) *Service {
	return &Service{
		store:            st,
		blackjack:        bj,
		coinflip:         cf,
		dailyspin:        ds,
		initialBalanceCC: initialBalanceCC,
		pubs:             pubs,
	}
}

// ResolveAPIKey maps a raw API key to the acting player, for the auth
// middleware and the MCP tools.
func (s *Service) ResolveAPIKey(ctx context.Context, apiKey string) (*store.Player, error) {
	if apiKey == "" {
		return nil, ErrPlayerNotFound
	}
	p, err := s.store.GetPlayerByAPIKey(ctx, apiKey)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrPlayerNotFound
	}
	return p, err
}

// Register creates a player with a fresh API key and a seeded account.
func (s *Service) Register(ctx context.Context, name string) (*RegisterResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidRequest
	}
	if _, err := s.store.GetPlayerByName(ctx, name); err == nil {
		return nil, ErrNameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	apiKey := "cc_" + store.NewID()
	id, err := s.store.CreatePlayer(ctx, name, apiKey)
	if err != nil {
		return nil, err
	}
	if err := s.store.EnsureAccount(ctx, id, s.initialBalanceCC); err != nil {
		return nil, err
	}
	return &RegisterResponse{
		PlayerID:  id,
		Name:      name,
		APIKey:    apiKey,
		BalanceCC: s.initialBalanceCC,
	}, nil
}

func (s *Service) Me(ctx context.Context, p *store.Player) (*MeResponse, error) {
	if p == nil {
		return nil, ErrInvalidRequest
	}
	balance, err := s.store.GetBalance(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return &MeResponse{
		PlayerID:  p.ID,
		Name:      p.Name,
		BalanceCC: balance,
		CreatedAt: p.CreatedAt,
	}, nil
}

func (s *Service) Balance(ctx context.Context, playerID string) (*BalanceResponse, error) {
	balance, err := s.store.GetBalance(ctx, playerID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &BalanceResponse{PlayerID: playerID, BalanceCC: balance}, nil
}

func (s *Service) Stats(ctx context.Context, playerID string) (*StatsResponse, error) {
	p, err := s.store.GetPlayer(ctx, playerID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, err
	}
	rows, err := s.store.GetGameStats(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return &StatsResponse{PlayerID: p.ID, Name: p.Name, Games: statsItems(rows)}, nil
}

// Leaderboard ranks players by total bet across all games, with a per-game
// breakdown for each ranked player.
func (s *Service) Leaderboard(ctx context.Context, limit int) (*LeaderboardResponse, error) {
	if limit <= 0 {
		limit = leaderboardDefaultRows
	}
	if limit > leaderboardMaxRows {
		limit = leaderboardMaxRows
	}
	rows, err := s.store.Leaderboard(ctx, limit)
	if err != nil {
		return nil, err
	}
	items := make([]LeaderboardItem, 0, len(rows))
	for i, r := range rows {
		perGame, err := s.store.GetGameStats(ctx, r.PlayerID)
		if err != nil {
			return nil, err
		}
		items = append(items, LeaderboardItem{
			Rank:       i + 1,
			PlayerID:   r.PlayerID,
			Name:       r.Name,
			TotalBetCC: r.TotalBetCC,
			Wins:       r.Wins,
			Losses:     r.Losses,
			Games:      statsItems(perGame),
		})
	}
	return &LeaderboardResponse{Items: items}, nil
}

// Players is the admin roster listing.
func (s *Service) Players(ctx context.Context, limit, offset int) (*PlayersResponse, error) {
	players, err := s.store.ListPlayers(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]PlayerItem, 0, len(players))
	for _, p := range players {
		items = append(items, PlayerItem{PlayerID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt})
	}
	return &PlayersResponse{Items: items, Limit: limit, Offset: offset}, nil
}

// Topup is the admin grant: credit a player outside any game.
func (s *Service) Topup(ctx context.Context, playerID string, amount int64) (*TopupResponse, error) {
	if amount <= 0 {
		return nil, ErrInvalidRequest
	}
	if _, err := s.store.GetPlayer(ctx, playerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	balance, err := s.store.Credit(ctx, playerID, amount, "topup_credit", "admin", "")
	if err != nil {
		return nil, err
	}
	return &TopupResponse{PlayerID: playerID, AddedCC: amount, NewBalanceCC: balance}, nil
}

func (s *Service) LedgerEntries(ctx context.Context, playerID, refID string, limit, offset int) (*LedgerResponse, error) {
	entries, err := s.store.ListLedgerEntries(ctx, store.LedgerFilter{PlayerID: playerID, RefID: refID}, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]LedgerEntryItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, LedgerEntryItem{
			ID:        e.ID,
			PlayerID:  e.PlayerID,
			Type:      e.Type,
			AmountCC:  e.AmountCC,
			RefType:   e.RefType,
			RefID:     e.RefID,
			CreatedAt: e.CreatedAt,
		})
	}
	return &LedgerResponse{Items: items, Limit: limit, Offset: offset}, nil
}

func (s *Service) BlackjackBet(ctx context.Context, playerID string, bet int64) (*blackjack.HandView, error) {
	return s.blackjack.PlaceBet(ctx, playerID, bet)
}

func (s *Service) BlackjackHit(ctx context.Context, playerID, actorID string) (*blackjack.Update, error) {
	up, err := s.blackjack.Hit(ctx, playerID, actorID)
	if err != nil {
		return nil, err
	}
	if up.Resolution != nil {
		s.publishBlackjack(ctx, up.Resolution)
	}
	return up, nil
}

func (s *Service) BlackjackStand(ctx context.Context, playerID, actorID string) (*blackjack.ResolutionView, error) {
	res, err := s.blackjack.Stand(ctx, playerID, actorID)
	if err != nil {
		return nil, err
	}
	s.publishBlackjack(ctx, res)
	return res, nil
}

func (s *Service) CoinflipPlay(ctx context.Context, playerID, side string, bet int64) (*coinflip.Result, error) {
	parsed, err := coinflip.ParseSide(side)
	if err != nil {
		return nil, err
	}
	res, err := s.coinflip.Play(ctx, playerID, parsed, bet)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, ResultEvent{
		Game:     coinflip.GameName,
		PlayerID: res.PlayerID,
		Outcome:  res.Outcome,
		BetCC:    res.BetCC,
		PayoutCC: res.PayoutCC,
		Detail:   res,
	})
	return res, nil
}

func (s *Service) DailySpinClaim(ctx context.Context, playerID string) (*dailyspin.Offer, error) {
	return s.dailyspin.Claim(ctx, playerID)
}

func (s *Service) DailySpinAccept(ctx context.Context, playerID string) (*dailyspin.Result, error) {
	res, err := s.dailyspin.Accept(ctx, playerID)
	if err != nil {
		return nil, err
	}
	s.publishSpin(ctx, res)
	return res, nil
}

func (s *Service) DailySpinRisk(ctx context.Context, playerID string) (*dailyspin.FirstRoll, error) {
	return s.dailyspin.Risk(ctx, playerID)
}

func (s *Service) DailySpinGuess(ctx context.Context, playerID, guess string) (*dailyspin.Result, error) {
	parsed, err := dailyspin.ParseGuess(guess)
	if err != nil {
		return nil, err
	}
	res, err := s.dailyspin.Guess(ctx, playerID, parsed)
	if err != nil {
		return nil, err
	}
	s.publishSpin(ctx, res)
	return res, nil
}

func (s *Service) publishBlackjack(ctx context.Context, res *blackjack.ResolutionView) {
	s.publish(ctx, ResultEvent{
		Game:     blackjack.GameName,
		PlayerID: res.PlayerID,
		Outcome:  res.Outcome,
		BetCC:    res.BetCC,
		PayoutCC: res.PayoutCC,
		Detail:   res,
	})
}

func (s *Service) publishSpin(ctx context.Context, res *dailyspin.Result) {
	s.publish(ctx, ResultEvent{
		Game:     dailyspin.GameName,
		PlayerID: res.PlayerID,
		Outcome:  res.Outcome,
		BetCC:    res.AmountCC,
		PayoutCC: res.PayoutCC,
		Detail:   res,
	})
}

func statsItems(rows []store.GameStats) []GameStatsItem {
	items := make([]GameStatsItem, 0, len(rows))
	for _, gs := range rows {
		items = append(items, GameStatsItem{
			Game:       gs.Game,
			Wins:       gs.Wins,
			Losses:     gs.Losses,
			TotalBetCC: gs.TotalBetCC,
		})
	}
	return items
}

// publish decorates the event and fans it out. The name lookup is best
// effort: a missed lookup degrades the notification, never the game.
func (s *Service) publish(ctx context.Context, ev ResultEvent) {
	if len(s.pubs) == 0 {
		return
	}
	if p, err := s.store.GetPlayer(ctx, ev.PlayerID); err == nil {
		ev.PlayerName = p.Name
	}
	ev.At = time.Now().UTC()
	for _, pub := range s.pubs {
		pub.Publish(ev)
	}
}
