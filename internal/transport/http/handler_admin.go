package httptransport

import (
	"context"
	"encoding/json"
	"net/http"

	"crew-casino/internal/app/casino"
)

// Pinger is the liveness slice of the store for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type AdminHandlers struct {
	svc    *casino.Service
	pinger Pinger
}

func NewAdminHandlers(svc *casino.Service, pinger Pinger) *AdminHandlers {
	return &AdminHandlers{svc: svc, pinger: pinger}
}

func (h *AdminHandlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.pinger.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "db": "down"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "db": "up"})
	}
}

func (h *AdminHandlers) Players() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := ParsePagination(r)
		resp, err := h.svc.Players(r.Context(), limit, offset)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *AdminHandlers) Ledger() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := ParsePagination(r)
		playerID := r.URL.Query().Get("player_id")
		refID := r.URL.Query().Get("ref_id")
		resp, err := h.svc.LedgerEntries(r.Context(), playerID, refID, limit, offset)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *AdminHandlers) Topup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			PlayerID string `json:"player_id"`
			AmountCC int64  `json:"amount_cc"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		if body.PlayerID == "" || body.AmountCC <= 0 {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		resp, err := h.svc.Topup(r.Context(), body.PlayerID, body.AmountCC)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		metricTopupTotal.Add(1)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
