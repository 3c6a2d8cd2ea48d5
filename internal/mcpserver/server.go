// Package mcpserver exposes the casino over MCP so agent clients can play
// through tool calls.
package mcpserver

import (
	"context"
	"net/http"
	"strings"

	"crew-casino/internal/app/casino"
	"crew-casino/internal/store"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type Server struct {
	svc *casino.Service

	mcpServer  *server.MCPServer
	httpServer *server.StreamableHTTPServer
}

func New(svc *casino.Service) *Server {
	mcpSrv := server.NewMCPServer(
		"crew-casino",
		"0.1.0",
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s := &Server{
		svc:        svc,
		mcpServer:  mcpSrv,
		httpServer: server.NewStreamableHTTPServer(mcpSrv, server.WithStateLess(true), server.WithDisableStreaming(true)),
	}
	s.registerPublicTools()
	s.registerGameTools()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.httpServer
}

// authPlayer resolves the acting player from the api_key tool argument.
func (s *Server) authPlayer(ctx context.Context, apiKey string) (*store.Player, *mcp.CallToolResult) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, toolError("invalid_request", "api_key is required")
	}
	p, err := s.svc.ResolveAPIKey(ctx, apiKey)
	if err != nil {
		return nil, toolError("unauthorized", "invalid api_key")
	}
	return p, nil
}
