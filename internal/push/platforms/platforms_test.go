package platforms

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDiscordAdapterPostsEmbed(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &captured)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := NewDiscordAdapter(NewHTTPClient(time.Second))
	msg := Message{
		Title:       "Blackjack · alice",
		Content:     "alice won",
		Description: "Player 20 vs dealer 18",
		Color:       0x57F287,
		Footer:      "crew-casino result push",
		Fields:      []Field{{Name: "Bet", Value: "100cc", Inline: true}},
	}
	if err := a.Send(context.Background(), srv.URL, "", msg); err != nil {
		t.Fatalf("send: %v", err)
	}

	embeds, ok := captured["embeds"].([]any)
	if !ok || len(embeds) != 1 {
		t.Fatalf("payload = %v", captured)
	}
	embed := embeds[0].(map[string]any)
	if embed["title"] != "Blackjack · alice" || embed["description"] != "Player 20 vs dealer 18" {
		t.Fatalf("embed = %v", embed)
	}
	if captured["content"] != "alice won" {
		t.Fatalf("content = %v", captured["content"])
	}
}

func TestFeishuAdapterSignsAndBuildsCard(t *testing.T) {
	var captured map[string]any
	var signature string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signature = r.Header.Get("X-Lark-Signature")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &captured)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := NewFeishuAdapter(NewHTTPClient(time.Second))
	msg := Message{Title: "Coin Flip · bob", Content: "bob lost", Fields: []Field{{Name: "Coin", Value: "tails"}}}
	if err := a.Send(context.Background(), srv.URL, "sekrit", msg); err != nil {
		t.Fatalf("send: %v", err)
	}
	if signature != "sekrit" {
		t.Fatalf("signature = %q", signature)
	}
	if captured["msg_type"] != "interactive" {
		t.Fatalf("payload = %v", captured)
	}
}

func TestHTTPClientRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewHTTPClient(time.Second)
	if err := c.PostJSON(context.Background(), srv.URL, nil, map[string]string{"k": "v"}); err == nil {
		t.Fatal("expected error on 502")
	}
}
