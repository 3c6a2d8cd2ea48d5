package httptransport

import (
	"encoding/json"
	"net/http"

	"crew-casino/internal/app/casino"
	"crew-casino/internal/store"
)

type CasinoHandlers struct {
	svc *casino.Service
}

func NewCasinoHandlers(svc *casino.Service) *CasinoHandlers {
	return &CasinoHandlers{svc: svc}
}

func (h *CasinoHandlers) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metricRegisterTotal.Add(1)
		var body struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			metricRegisterErrors.Add(1)
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		resp, err := h.svc.Register(r.Context(), body.Name)
		if err != nil {
			metricRegisterErrors.Add(1)
			writeDomainError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *CasinoHandlers) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := mustPlayer(w, r)
		if p == nil {
			return
		}
		resp, err := h.svc.Me(r.Context(), p)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *CasinoHandlers) BlackjackBet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := mustPlayer(w, r)
		if p == nil {
			return
		}
		metricRoundSubmitTotal.Add(1)
		var body struct {
			BetCC int64 `json:"bet_cc"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			metricRoundSubmitErrors.Add(1)
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		view, err := h.svc.BlackjackBet(r.Context(), p.ID, body.BetCC)
		if err != nil {
			metricRoundSubmitErrors.Add(1)
			writeDomainError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(view)
	}
}

func (h *CasinoHandlers) BlackjackHit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := mustPlayer(w, r)
		if p == nil {
			return
		}
		up, err := h.svc.BlackjackHit(r.Context(), p.ID, p.ID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(up)
	}
}

func (h *CasinoHandlers) BlackjackStand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := mustPlayer(w, r)
		if p == nil {
			return
		}
		res, err := h.svc.BlackjackStand(r.Context(), p.ID, p.ID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(res)
	}
}

func (h *CasinoHandlers) Coinflip() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := mustPlayer(w, r)
		if p == nil {
			return
		}
		metricRoundSubmitTotal.Add(1)
		var body struct {
			Side  string `json:"side"`
			BetCC int64  `json:"bet_cc"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			metricRoundSubmitErrors.Add(1)
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		res, err := h.svc.CoinflipPlay(r.Context(), p.ID, body.Side, body.BetCC)
		if err != nil {
			metricRoundSubmitErrors.Add(1)
			writeDomainError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(res)
	}
}

func (h *CasinoHandlers) DailySpinClaim() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := mustPlayer(w, r)
		if p == nil {
			return
		}
		offer, err := h.svc.DailySpinClaim(r.Context(), p.ID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(offer)
	}
}

func (h *CasinoHandlers) DailySpinAccept() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := mustPlayer(w, r)
		if p == nil {
			return
		}
		res, err := h.svc.DailySpinAccept(r.Context(), p.ID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(res)
	}
}

func (h *CasinoHandlers) DailySpinRisk() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := mustPlayer(w, r)
		if p == nil {
			return
		}
		roll, err := h.svc.DailySpinRisk(r.Context(), p.ID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(roll)
	}
}

func (h *CasinoHandlers) DailySpinGuess() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := mustPlayer(w, r)
		if p == nil {
			return
		}
		var body struct {
			Guess string `json:"guess"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		res, err := h.svc.DailySpinGuess(r.Context(), p.ID, body.Guess)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(res)
	}
}

// mustPlayer reads the authenticated player off the context. The auth
// middleware guarantees it on every route that reaches here.
func mustPlayer(w http.ResponseWriter, r *http.Request) *store.Player {
	p, ok := PlayerFromContext(r.Context())
	if !ok {
		WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
		return nil
	}
	return p
}
