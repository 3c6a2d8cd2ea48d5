package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

const maxLeaderboardLimit = 50

func (s *Server) registerPublicTools() {
	s.mcpServer.AddTool(
		mcp.NewTool(
			"get_balance",
			mcp.WithDescription("Get the calling player's CrewCoin balance"),
			mcp.WithString("api_key", mcp.Required(), mcp.Description("Player API key")),
		),
		s.handleGetBalance,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"get_stats",
			mcp.WithDescription("Get the calling player's per-game win/loss/bet stats"),
			mcp.WithString("api_key", mcp.Required(), mcp.Description("Player API key")),
		),
		s.handleGetStats,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"get_leaderboard",
			mcp.WithDescription("Top players by total bet across all games"),
			mcp.WithNumber("limit", mcp.Description("Rows, default 10, max 50")),
		),
		s.handleGetLeaderboard,
	)
}

func (s *Server) handleGetBalance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, errResp := s.authPlayer(ctx, request.GetString("api_key", ""))
	if errResp != nil {
		return errResp, nil
	}
	resp, err := s.svc.Balance(ctx, p.ID)
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(resp), nil
}

func (s *Server) handleGetStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, errResp := s.authPlayer(ctx, request.GetString("api_key", ""))
	if errResp != nil {
		return errResp, nil
	}
	resp, err := s.svc.Stats(ctx, p.ID)
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(resp), nil
}

func (s *Server) handleGetLeaderboard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 0)
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}
	resp, err := s.svc.Leaderboard(ctx, limit)
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(resp), nil
}
