package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"crew-casino/internal/app/casino"
	"crew-casino/internal/game"
)

func dialSpectator(t *testing.T, h *Hub, gameFilter string) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(h.HandleWS))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	if err := conn.WriteJSON(SpectateMessage{Type: "spectate", Game: gameFilter}); err != nil {
		t.Fatalf("spectate: %v", err)
	}
	var res SpectateResult
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&res); err != nil {
		t.Fatalf("spectate result: %v", err)
	}
	if res.Type != "spectate_result" || !res.Ok {
		t.Fatalf("spectate result = %+v", res)
	}
	return conn
}

func TestHubBroadcastsResults(t *testing.T) {
	h := NewHub()
	conn := dialSpectator(t, h, "")

	waitForSpectators(t, h, 1)
	h.Publish(casino.ResultEvent{Game: "coinflip", PlayerID: "p1", Outcome: game.OutcomeWin, BetCC: 10, PayoutCC: 20})

	var msg ResultMessage
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read result: %v", err)
	}
	if msg.Type != "game_result" || msg.Event.Game != "coinflip" || msg.Event.PayoutCC != 20 {
		t.Fatalf("message = %+v", msg)
	}
}

func TestHubFiltersByGame(t *testing.T) {
	h := NewHub()
	conn := dialSpectator(t, h, "blackjack")

	waitForSpectators(t, h, 1)
	h.Publish(casino.ResultEvent{Game: "coinflip", PlayerID: "p1", Outcome: game.OutcomeLoss})
	h.Publish(casino.ResultEvent{Game: "blackjack", PlayerID: "p1", Outcome: game.OutcomeWin})

	var msg ResultMessage
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read result: %v", err)
	}
	if msg.Event.Game != "blackjack" {
		t.Fatalf("first delivered game = %q, want the filtered one", msg.Event.Game)
	}
}

func TestResultMessageShape(t *testing.T) {
	raw, err := json.Marshal(ResultMessage{
		Type:            "game_result",
		ProtocolVersion: protocolVersion,
		Event:           casino.ResultEvent{Game: "blackjack", Outcome: game.OutcomePush},
	})
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["protocol_version"] != protocolVersion {
		t.Fatalf("payload = %s", raw)
	}
}

func waitForSpectators(t *testing.T, h *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for h.Spectators() < n {
		if time.Now().After(deadline) {
			t.Fatalf("spectators = %d, want %d", h.Spectators(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}
