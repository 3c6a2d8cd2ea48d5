package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crew-casino/internal/app/casino"
	"crew-casino/internal/game"
	"crew-casino/internal/game/blackjack"
	"crew-casino/internal/game/coinflip"
	"crew-casino/internal/game/dailyspin"
	"crew-casino/internal/store"

	"github.com/stretchr/testify/require"
)

func TestDomainStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid request", casino.ErrInvalidRequest, http.StatusBadRequest, "invalid_request"},
		{"name taken", casino.ErrNameTaken, http.StatusConflict, "name_taken"},
		{"insufficient funds", game.ErrInsufficientFunds, http.StatusPaymentRequired, "insufficient_funds"},
		{"invalid blackjack bet", blackjack.ErrInvalidBet, http.StatusBadRequest, "invalid_bet"},
		{"invalid coinflip bet", coinflip.ErrInvalidBet, http.StatusBadRequest, "invalid_bet"},
		{"game already active", blackjack.ErrGameAlreadyActive, http.StatusConflict, "game_already_active"},
		{"no active game", blackjack.ErrNoActiveGame, http.StatusNotFound, "no_active_game"},
		{"not owner", blackjack.ErrNotOwner, http.StatusForbidden, "not_owner"},
		{"invalid side", coinflip.ErrInvalidSide, http.StatusBadRequest, "invalid_side"},
		{"spin pending", dailyspin.ErrSpinPending, http.StatusConflict, "spin_pending"},
		{"no pending spin", dailyspin.ErrNoPendingSpin, http.StatusNotFound, "no_pending_spin"},
		{"no pending guess", dailyspin.ErrNoPendingGuess, http.StatusNotFound, "no_pending_guess"},
		{"spin expired", dailyspin.ErrSpinExpired, http.StatusGone, "spin_expired"},
		{"invalid guess", dailyspin.ErrInvalidGuess, http.StatusBadRequest, "invalid_guess"},
		{"player not found", casino.ErrPlayerNotFound, http.StatusNotFound, "not_found"},
		{"store not found", store.ErrNotFound, http.StatusNotFound, "not_found"},
		{"wrapped sentinel", errors.Join(errors.New("ctx"), blackjack.ErrNoActiveGame), http.StatusNotFound, "no_active_game"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := domainStatus(tt.err)
			require.Equal(t, tt.status, status)
			require.Equal(t, tt.code, code)
		})
	}
}

func TestWriteDomainErrorCooldown(t *testing.T) {
	next := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	rec := httptest.NewRecorder()
	writeDomainError(rec, &dailyspin.CooldownError{NextClaimAt: next})

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "cooldown_active", body["error"])
	require.Equal(t, "2025-06-02T12:00:00Z", body["next_claim_at"])
}

func TestWriteDomainErrorBlackjackSettlement(t *testing.T) {
	res := &blackjack.ResolutionView{
		HandView: blackjack.HandView{HandID: "h1", PlayerID: "p1", BetCC: 100},
		Outcome:  game.OutcomeWin,
		PayoutCC: 200,
	}
	rec := httptest.NewRecorder()
	writeDomainError(rec, &blackjack.SettlementError{Resolution: res, Err: errors.New("deposit failed")})

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Resolution      *blackjack.ResolutionView `json:"resolution"`
		SettlementError string                    `json:"settlement_error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "deposit failed", body.SettlementError)
	require.NotNil(t, body.Resolution)
	require.Equal(t, "h1", body.Resolution.HandID)
}

func TestWriteDomainErrorGenericSettlement(t *testing.T) {
	rec := httptest.NewRecorder()
	writeDomainError(rec, &game.SettlementError{Game: "coinflip", Ref: "f1", Err: errors.New("db down")})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "settlement_failed", body["error"])
}
