package mcpserver

import (
	"context"
	"errors"

	"crew-casino/internal/game"
	"crew-casino/internal/game/blackjack"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerGameTools() {
	s.mcpServer.AddTool(
		mcp.NewTool(
			"blackjack_bet",
			mcp.WithDescription("Start a blackjack hand by betting CrewCoin"),
			mcp.WithString("api_key", mcp.Required(), mcp.Description("Player API key")),
			mcp.WithNumber("bet_cc", mcp.Required(), mcp.Description("Bet amount in CrewCoin")),
		),
		s.handleBlackjackBet,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"blackjack_hit",
			mcp.WithDescription("Draw one more card in the active blackjack hand"),
			mcp.WithString("api_key", mcp.Required(), mcp.Description("Player API key")),
		),
		s.handleBlackjackHit,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"blackjack_stand",
			mcp.WithDescription("Stand and let the dealer play out the hand"),
			mcp.WithString("api_key", mcp.Required(), mcp.Description("Player API key")),
		),
		s.handleBlackjackStand,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"coinflip_play",
			mcp.WithDescription("Flip a coin for double or nothing"),
			mcp.WithString("api_key", mcp.Required(), mcp.Description("Player API key")),
			mcp.WithString("side", mcp.Required(), mcp.Description("heads or tails")),
			mcp.WithNumber("bet_cc", mcp.Required(), mcp.Description("Bet amount in CrewCoin")),
		),
		s.handleCoinflipPlay,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"dailyspin_claim",
			mcp.WithDescription("Claim the once-a-day CrewCoin reward offer"),
			mcp.WithString("api_key", mcp.Required(), mcp.Description("Player API key")),
		),
		s.handleDailySpinClaim,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"dailyspin_accept",
			mcp.WithDescription("Bank the offered daily reward"),
			mcp.WithString("api_key", mcp.Required(), mcp.Description("Player API key")),
		),
		s.handleDailySpinAccept,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"dailyspin_risk",
			mcp.WithDescription("Risk the daily reward on a higher/lower dice roll"),
			mcp.WithString("api_key", mcp.Required(), mcp.Description("Player API key")),
		),
		s.handleDailySpinRisk,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"dailyspin_guess",
			mcp.WithDescription("Guess whether the second die lands higher or lower"),
			mcp.WithString("api_key", mcp.Required(), mcp.Description("Player API key")),
			mcp.WithString("guess", mcp.Required(), mcp.Description("higher or lower")),
		),
		s.handleDailySpinGuess,
	)
}

func (s *Server) handleBlackjackBet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, errResp := s.authPlayer(ctx, request.GetString("api_key", ""))
	if errResp != nil {
		return errResp, nil
	}
	bet := int64(request.GetInt("bet_cc", 0))
	view, err := s.svc.BlackjackBet(ctx, p.ID, bet)
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(view), nil
}

func (s *Server) handleBlackjackHit(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, errResp := s.authPlayer(ctx, request.GetString("api_key", ""))
	if errResp != nil {
		return errResp, nil
	}
	up, err := s.svc.BlackjackHit(ctx, p.ID, p.ID)
	if err != nil {
		return settlementOrDomainError(err), nil
	}
	return toolResult(up), nil
}

func (s *Server) handleBlackjackStand(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, errResp := s.authPlayer(ctx, request.GetString("api_key", ""))
	if errResp != nil {
		return errResp, nil
	}
	res, err := s.svc.BlackjackStand(ctx, p.ID, p.ID)
	if err != nil {
		return settlementOrDomainError(err), nil
	}
	return toolResult(res), nil
}

func (s *Server) handleCoinflipPlay(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, errResp := s.authPlayer(ctx, request.GetString("api_key", ""))
	if errResp != nil {
		return errResp, nil
	}
	side := request.GetString("side", "")
	bet := int64(request.GetInt("bet_cc", 0))
	res, err := s.svc.CoinflipPlay(ctx, p.ID, side, bet)
	if err != nil {
		return settlementOrDomainError(err), nil
	}
	return toolResult(res), nil
}

func (s *Server) handleDailySpinClaim(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, errResp := s.authPlayer(ctx, request.GetString("api_key", ""))
	if errResp != nil {
		return errResp, nil
	}
	offer, err := s.svc.DailySpinClaim(ctx, p.ID)
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(offer), nil
}

func (s *Server) handleDailySpinAccept(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, errResp := s.authPlayer(ctx, request.GetString("api_key", ""))
	if errResp != nil {
		return errResp, nil
	}
	res, err := s.svc.DailySpinAccept(ctx, p.ID)
	if err != nil {
		return settlementOrDomainError(err), nil
	}
	return toolResult(res), nil
}

func (s *Server) handleDailySpinRisk(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, errResp := s.authPlayer(ctx, request.GetString("api_key", ""))
	if errResp != nil {
		return errResp, nil
	}
	roll, err := s.svc.DailySpinRisk(ctx, p.ID)
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(roll), nil
}

func (s *Server) handleDailySpinGuess(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, errResp := s.authPlayer(ctx, request.GetString("api_key", ""))
	if errResp != nil {
		return errResp, nil
	}
	guess := request.GetString("guess", "")
	res, err := s.svc.DailySpinGuess(ctx, p.ID, guess)
	if err != nil {
		return settlementOrDomainError(err), nil
	}
	return toolResult(res), nil
}

// settlementOrDomainError keeps a decided-but-unpaid round visible to the
// caller: the resolution is returned alongside the settlement failure
// instead of being swallowed by a bare error.
func settlementOrDomainError(err error) *mcp.CallToolResult {
	var bjErr *blackjack.SettlementError
	if errors.As(err, &bjErr) {
		return toolResult(map[string]any{
			"resolution":       bjErr.Resolution,
			"settlement_error": bjErr.Err.Error(),
		})
	}
	var genErr *game.SettlementError
	if errors.As(err, &genErr) {
		return toolError("settlement_failed", genErr.Error())
	}
	return mapDomainError(err)
}
