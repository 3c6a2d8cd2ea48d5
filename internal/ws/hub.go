// Package ws streams resolved rounds to websocket spectators.
package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"crew-casino/internal/app/casino"
)

type client struct {
	conn *websocket.Conn
	send chan []byte
	game string
}

// Hub fans resolved rounds out to connected spectators. It implements
// casino.Publisher; a spectator whose send buffer is full misses the event
// rather than stalling the broadcast.
type Hub struct {
	upgrader websocket.Upgrader

	mu         sync.Mutex
	spectators map[*client]bool
}

func NewHub() *Hub {
	return &Hub{
		upgrader:   websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		spectators: map[*client]bool{},
	}
}

func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	c := &client{conn: conn, send: make(chan []byte, 16)}

	go h.writeLoop(c)
	h.readLoop(c)
}

func (h *Hub) readLoop(c *client) {
	defer func() {
		h.unregister(c)
		_ = c.conn.Close()
	}()

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var spec SpectateMessage
		if err := json.Unmarshal(msg, &spec); err != nil {
			continue
		}
		if spec.Type != "spectate" {
			continue
		}
		h.mu.Lock()
		c.game = spec.Game
		h.spectators[c] = true
		h.mu.Unlock()
		h.sendJSON(c, SpectateResult{
			Type:            "spectate_result",
			ProtocolVersion: protocolVersion,
			Ok:              true,
			Game:            spec.Game,
		})
	}
}

func (h *Hub) writeLoop(c *client) {
	for msg := range c.send {
		_ = c.conn.WriteMessage(websocket.TextMessage, msg)
	}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	delete(h.spectators, c)
	h.mu.Unlock()
	close(c.send)
}

// Publish broadcasts one resolved round to every subscribed spectator whose
// filter matches.
func (h *Hub) Publish(ev casino.ResultEvent) {
	raw, err := json.Marshal(ResultMessage{
		Type:            "game_result",
		ProtocolVersion: protocolVersion,
		Event:           ev,
	})
	if err != nil {
		log.Error().Err(err).Str("game", ev.Game).Msg("encode result broadcast")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.spectators {
		if c.game != "" && c.game != ev.Game {
			continue
		}
		select {
		case c.send <- raw:
		default:
		}
	}
}

// Spectators reports the current subscriber count, for metrics.
func (h *Hub) Spectators() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.spectators)
}

func (h *Hub) sendJSON(c *client, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	select {
	case c.send <- raw:
	default:
	}
}
