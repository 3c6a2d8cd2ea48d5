package mcpserver

import (
	"context"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"crew-casino/internal/app/casino"
	"crew-casino/internal/game"
	"crew-casino/internal/game/blackjack"
	"crew-casino/internal/game/coinflip"
	"crew-casino/internal/game/dailyspin"
	"crew-casino/internal/store"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"
)

// memStore mirrors the pg store in memory so the MCP surface can be tested
// end to end without a database.
type memStore struct {
	mu       sync.Mutex
	players  map[string]*store.Player
	byKey    map[string]string
	byName   map[string]string
	balances map[string]int64
	stats    map[string]map[string]*store.GameStats
	nextID   int
}

func newMemStore() *memStore {
	return &memStore{
		players:  map[string]*store.Player{},
		byKey:    map[string]string{},
		byName:   map[string]string{},
		balances: map[string]int64{},
		stats:    map[string]map[string]*store.GameStats{},
	}
}

func (m *memStore) CreatePlayer(_ context.Context, name, apiKey string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	id := "p" + strconv.Itoa(m.nextID)
	m.players[id] = &store.Player{ID: id, Name: name, CreatedAt: time.Now()}
	m.byKey[apiKey] = id
	m.byName[name] = id
	return id, nil
}

func (m *memStore) GetPlayer(_ context.Context, id string) (*store.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.players[id]; ok {
		return p, nil
	}
	return nil, store.ErrNotFound
}

func (m *memStore) GetPlayerByAPIKey(_ context.Context, apiKey string) (*store.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.byKey[apiKey]; ok {
		return m.players[id], nil
	}
	return nil, store.ErrNotFound
}

func (m *memStore) GetPlayerByName(_ context.Context, name string) (*store.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.byName[name]; ok {
		return m.players[id], nil
	}
	return nil, store.ErrNotFound
}

func (m *memStore) EnsureAccount(_ context.Context, playerID string, initial int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.balances[playerID]; !ok {
		m.balances[playerID] = initial
	}
	return nil
}

func (m *memStore) GetBalance(_ context.Context, playerID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bal, ok := m.balances[playerID]
	if !ok {
		return 0, store.ErrNotFound
	}
	return bal, nil
}

func (m *memStore) ListPlayers(_ context.Context, limit, _ int) ([]store.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]store.Player, 0, len(m.players))
	for _, p := range m.players {
		out = append(out, *p)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) GetGameStats(_ context.Context, playerID string) ([]store.GameStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.GameStats
	for _, gs := range m.stats[playerID] {
		out = append(out, *gs)
	}
	return out, nil
}

func (m *memStore) Leaderboard(_ context.Context, limit int) ([]store.LeaderboardRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.LeaderboardRow
	for id, games := range m.stats {
		row := store.LeaderboardRow{PlayerID: id, Name: m.players[id].Name}
		for _, gs := range games {
			row.TotalBetCC += gs.TotalBetCC
			row.Wins += gs.Wins
			row.Losses += gs.Losses
		}
		if row.TotalBetCC > 0 {
			out = append(out, row)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) ListLedgerEntries(_ context.Context, _ store.LedgerFilter, _, _ int) ([]store.LedgerEntry, error) {
	return nil, nil
}

func (m *memStore) Credit(_ context.Context, playerID string, amount int64, _, _, _ string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[playerID] += amount
	return m.balances[playerID], nil
}

func (m *memStore) Withdraw(_ context.Context, playerID, _ string, amount int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.balances[playerID] < amount {
		return 0, game.ErrInsufficientFunds
	}
	m.balances[playerID] -= amount
	return m.balances[playerID], nil
}

func (m *memStore) Deposit(_ context.Context, playerID, _ string, amount int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[playerID] += amount
	return m.balances[playerID], nil
}

func (m *memStore) Record(_ context.Context, playerID, gameName string, bet int64, outcome game.Outcome) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	games := m.stats[playerID]
	if games == nil {
		games = map[string]*store.GameStats{}
		m.stats[playerID] = games
	}
	gs := games[gameName]
	if gs == nil {
		gs = &store.GameStats{PlayerID: playerID, Game: gameName}
		games[gameName] = gs
	}
	gs.TotalBetCC += bet
	switch outcome {
	case game.OutcomeWin:
		gs.Wins++
	case game.OutcomeLoss:
		gs.Losses++
	}
	return nil
}

func newTestServer(t *testing.T) (*client.Client, *casino.Service, func()) {
	t.Helper()
	ms := newMemStore()
	svc := casino.NewService(ms,
		blackjack.NewTable(ms, ms),
		coinflip.New(ms, ms),
		dailyspin.New(ms, ms, 100, 1000, 24*time.Hour),
		500)
	srv := New(svc)
	httpSrv := httptest.NewServer(srv.Handler())

	mcpClient, closeClient := newMCPClient(t, httpSrv.URL+"/mcp")
	return mcpClient, svc, func() {
		closeClient()
		httpSrv.Close()
	}
}

func TestMCPServerToolsAndFlows(t *testing.T) {
	mcpClient, svc, cleanup := newTestServer(t)
	defer cleanup()
	ctx := context.Background()

	tools := mustListTools(t, mcpClient)
	assertToolNames(t, tools,
		"get_balance",
		"get_stats",
		"get_leaderboard",
		"blackjack_bet",
		"blackjack_hit",
		"blackjack_stand",
		"coinflip_play",
		"dailyspin_claim",
		"dailyspin_accept",
		"dailyspin_risk",
		"dailyspin_guess",
	)

	reg, err := svc.Register(ctx, "mcp-bot")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	balance := mustCallTool(t, mcpClient, "get_balance", map[string]any{"api_key": reg.APIKey})
	if balance.IsError {
		t.Fatalf("get_balance: %v", balance.StructuredContent)
	}

	bet := mustCallTool(t, mcpClient, "blackjack_bet", map[string]any{"api_key": reg.APIKey, "bet_cc": 100})
	if bet.IsError {
		t.Fatalf("blackjack_bet: %v", bet.StructuredContent)
	}
	stand := mustCallTool(t, mcpClient, "blackjack_stand", map[string]any{"api_key": reg.APIKey})
	if stand.IsError {
		t.Fatalf("blackjack_stand: %v", stand.StructuredContent)
	}

	flip := mustCallTool(t, mcpClient, "coinflip_play", map[string]any{"api_key": reg.APIKey, "side": "heads", "bet_cc": 10})
	if flip.IsError {
		t.Fatalf("coinflip_play: %v", flip.StructuredContent)
	}

	stats := mustCallTool(t, mcpClient, "get_stats", map[string]any{"api_key": reg.APIKey})
	if stats.IsError {
		t.Fatalf("get_stats: %v", stats.StructuredContent)
	}
	lb := mustCallTool(t, mcpClient, "get_leaderboard", map[string]any{})
	if lb.IsError {
		t.Fatalf("get_leaderboard: %v", lb.StructuredContent)
	}
}

func TestMCPServerToolErrors(t *testing.T) {
	mcpClient, svc, cleanup := newTestServer(t)
	defer cleanup()

	missing := mustCallTool(t, mcpClient, "get_balance", map[string]any{})
	assertToolErrorCode(t, missing, "invalid_request")

	bogus := mustCallTool(t, mcpClient, "get_balance", map[string]any{"api_key": "cc_bogus"})
	assertToolErrorCode(t, bogus, "unauthorized")

	reg, err := svc.Register(context.Background(), "mcp-errors")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	badBet := mustCallTool(t, mcpClient, "blackjack_bet", map[string]any{"api_key": reg.APIKey, "bet_cc": 0})
	assertToolErrorCode(t, badBet, "invalid_bet")

	noHand := mustCallTool(t, mcpClient, "blackjack_hit", map[string]any{"api_key": reg.APIKey})
	assertToolErrorCode(t, noHand, "no_active_game")

	broke := mustCallTool(t, mcpClient, "coinflip_play", map[string]any{"api_key": reg.APIKey, "side": "heads", "bet_cc": 100000})
	assertToolErrorCode(t, broke, "insufficient_funds")
}

func newMCPClient(t *testing.T, endpoint string) (*client.Client, func()) {
	t.Helper()
	ctx := context.Background()
	trans, err := transport.NewStreamableHTTP(endpoint)
	if err != nil {
		t.Fatalf("new transport: %v", err)
	}
	if err := trans.Start(ctx); err != nil {
		t.Fatalf("transport start: %v", err)
	}
	c := client.NewClient(trans)
	_, err = c.Initialize(ctx, mcp.InitializeRequest{Params: mcp.InitializeParams{ProtocolVersion: mcp.LATEST_PROTOCOL_VERSION}})
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return c, func() { _ = trans.Close() }
}

func mustListTools(t *testing.T, c *client.Client) []mcp.Tool {
	t.Helper()
	res, err := c.ListTools(context.Background(), mcp.ListToolsRequest{})
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}
	return res.Tools
}

func assertToolNames(t *testing.T, tools []mcp.Tool, expected ...string) {
	t.Helper()
	got := make([]string, 0, len(tools))
	for _, tool := range tools {
		got = append(got, tool.Name)
	}
	sort.Strings(got)
	sort.Strings(expected)
	if len(got) != len(expected) {
		t.Fatalf("tool count mismatch got=%v expected=%v", got, expected)
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Fatalf("tool list mismatch got=%v expected=%v", got, expected)
		}
	}
}

func mustCallTool(t *testing.T, c *client.Client, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	res, err := c.CallTool(context.Background(), mcp.CallToolRequest{Params: mcp.CallToolParams{Name: name, Arguments: args}})
	if err != nil {
		t.Fatalf("call tool %s: %v", name, err)
	}
	return res
}

func assertToolErrorCode(t *testing.T, res *mcp.CallToolResult, code string) {
	t.Helper()
	if !res.IsError {
		t.Fatalf("expected error result, got: %v", res.StructuredContent)
	}
	payload, ok := res.StructuredContent.(map[string]any)
	if !ok {
		t.Fatalf("structured content = %T", res.StructuredContent)
	}
	errObj, ok := payload["error"].(map[string]any)
	if !ok || errObj["code"] != code {
		t.Fatalf("error payload = %v, want code %q", payload, code)
	}
}
