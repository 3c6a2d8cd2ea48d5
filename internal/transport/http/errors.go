package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	"crew-casino/internal/app/casino"
	"crew-casino/internal/game"
	"crew-casino/internal/game/blackjack"
	"crew-casino/internal/game/coinflip"
	"crew-casino/internal/game/dailyspin"
	"crew-casino/internal/store"
)

// writeDomainError maps service and game errors onto HTTP statuses. A
// blackjack settlement failure is not an error status: the round is
// decided, so the resolution goes back with the failure attached.
func writeDomainError(w http.ResponseWriter, err error) {
	var bjSettle *blackjack.SettlementError
	if errors.As(err, &bjSettle) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"resolution":       bjSettle.Resolution,
			"settlement_error": bjSettle.Err.Error(),
		})
		return
	}
	var cooldown *dailyspin.CooldownError
	if errors.As(err, &cooldown) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error":         "cooldown_active",
			"next_claim_at": cooldown.NextClaimAt,
		})
		return
	}
	var genSettle *game.SettlementError
	if errors.As(err, &genSettle) {
		WriteHTTPError(w, http.StatusInternalServerError, "settlement_failed")
		return
	}
	status, code := domainStatus(err)
	WriteHTTPError(w, status, code)
}

func domainStatus(err error) (int, string) {
	switch {
	case errors.Is(err, casino.ErrInvalidRequest):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, casino.ErrNameTaken):
		return http.StatusConflict, "name_taken"
	case errors.Is(err, game.ErrInsufficientFunds):
		return http.StatusPaymentRequired, "insufficient_funds"
	case errors.Is(err, blackjack.ErrInvalidBet), errors.Is(err, coinflip.ErrInvalidBet):
		return http.StatusBadRequest, "invalid_bet"
	case errors.Is(err, blackjack.ErrGameAlreadyActive):
		return http.StatusConflict, "game_already_active"
	case errors.Is(err, blackjack.ErrNoActiveGame):
		return http.StatusNotFound, "no_active_game"
	case errors.Is(err, blackjack.ErrNotOwner):
		return http.StatusForbidden, "not_owner"
	case errors.Is(err, coinflip.ErrInvalidSide):
		return http.StatusBadRequest, "invalid_side"
	case errors.Is(err, dailyspin.ErrSpinPending):
		return http.StatusConflict, "spin_pending"
	case errors.Is(err, dailyspin.ErrNoPendingSpin):
		return http.StatusNotFound, "no_pending_spin"
	case errors.Is(err, dailyspin.ErrNoPendingGuess):
		return http.StatusNotFound, "no_pending_guess"
	case errors.Is(err, dailyspin.ErrSpinExpired):
		return http.StatusGone, "spin_expired"
	case errors.Is(err, dailyspin.ErrInvalidGuess):
		return http.StatusBadRequest, "invalid_guess"
	case errors.Is(err, casino.ErrPlayerNotFound), errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "not_found"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
