package mcpserver

import (
	"errors"
	"fmt"

	"crew-casino/internal/app/casino"
	"crew-casino/internal/game"
	"crew-casino/internal/game/blackjack"
	"crew-casino/internal/game/coinflip"
	"crew-casino/internal/game/dailyspin"
	"crew-casino/internal/store"

	"github.com/mark3labs/mcp-go/mcp"
)

func toolResult(data any) *mcp.CallToolResult {
	return mcp.NewToolResultStructuredOnly(data)
}

func toolError(code, message string) *mcp.CallToolResult {
	result := mcp.NewToolResultStructured(
		map[string]any{
			"error": map[string]any{
				"code":    code,
				"message": message,
			},
		},
		fmt.Sprintf("%s: %s", code, message),
	)
	result.IsError = true
	return result
}

func mapDomainError(err error) *mcp.CallToolResult {
	var cooldown *dailyspin.CooldownError
	switch {
	case err == nil:
		return toolError("internal_error", "unknown error")
	case errors.Is(err, casino.ErrInvalidRequest):
		return toolError("invalid_request", err.Error())
	case errors.Is(err, casino.ErrNameTaken):
		return toolError("name_taken", err.Error())
	case errors.Is(err, game.ErrInsufficientFunds):
		return toolError("insufficient_funds", err.Error())
	case errors.Is(err, blackjack.ErrInvalidBet), errors.Is(err, coinflip.ErrInvalidBet):
		return toolError("invalid_bet", err.Error())
	case errors.Is(err, blackjack.ErrGameAlreadyActive):
		return toolError("game_already_active", err.Error())
	case errors.Is(err, blackjack.ErrNoActiveGame):
		return toolError("no_active_game", err.Error())
	case errors.Is(err, blackjack.ErrNotOwner):
		return toolError("not_owner", err.Error())
	case errors.Is(err, coinflip.ErrInvalidSide):
		return toolError("invalid_side", err.Error())
	case errors.As(err, &cooldown):
		return toolError("cooldown_active", cooldown.Error())
	case errors.Is(err, dailyspin.ErrSpinPending):
		return toolError("spin_pending", err.Error())
	case errors.Is(err, dailyspin.ErrNoPendingSpin):
		return toolError("no_pending_spin", err.Error())
	case errors.Is(err, dailyspin.ErrNoPendingGuess):
		return toolError("no_pending_guess", err.Error())
	case errors.Is(err, dailyspin.ErrSpinExpired):
		return toolError("spin_expired", err.Error())
	case errors.Is(err, dailyspin.ErrInvalidGuess):
		return toolError("invalid_guess", err.Error())
	case errors.Is(err, casino.ErrPlayerNotFound), errors.Is(err, store.ErrNotFound):
		return toolError("not_found", err.Error())
	default:
		return toolError("internal_error", err.Error())
	}
}
