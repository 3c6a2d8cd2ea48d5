// Package httptransport wires the casino service, the spectator hub and
// the MCP endpoint onto one chi router.
package httptransport

import (
	"expvar"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"crew-casino/internal/app/casino"
	"crew-casino/internal/config"
	"crew-casino/internal/mcpserver"
	"crew-casino/internal/ws"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

func NewRouter(svc *casino.Service, pinger Pinger, cfg config.ServerConfig, hub *ws.Hub, mcpSrv *mcpserver.Server) *chi.Mux {
	casinoHandlers := NewCasinoHandlers(svc)
	publicHandlers := NewPublicHandlers(svc)
	adminHandlers := NewAdminHandlers(svc, pinger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(APILogMiddleware()).Get("/healthz", adminHandlers.Health())

	r.With(APILogMiddleware()).MethodFunc(http.MethodOptions, "/mcp", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Allow", "POST, GET, DELETE, OPTIONS")
		w.WriteHeader(http.StatusNoContent)
	})
	r.With(APILogMiddleware()).Method(http.MethodPost, "/mcp", mcpSrv.Handler())
	r.With(APILogMiddleware()).Method(http.MethodGet, "/mcp", mcpSrv.Handler())
	r.With(APILogMiddleware()).Method(http.MethodDelete, "/mcp", mcpSrv.Handler())

	r.Get("/ws", hub.HandleWS)

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())

		r.Post("/players/register", casinoHandlers.Register())
		r.Get("/public/leaderboard", publicHandlers.Leaderboard())
		r.Get("/public/players/{player_id}/balance", publicHandlers.PlayerBalance())
		r.Get("/public/players/{player_id}/stats", publicHandlers.PlayerStats())

		r.Group(func(r chi.Router) {
			r.Use(PlayerAuthMiddleware(svc))
			r.Get("/me", casinoHandlers.Me())
			r.Post("/blackjack/bet", casinoHandlers.BlackjackBet())
			r.Post("/blackjack/hit", casinoHandlers.BlackjackHit())
			r.Post("/blackjack/stand", casinoHandlers.BlackjackStand())
			r.Post("/coinflip", casinoHandlers.Coinflip())
			r.Post("/dailyspin/claim", casinoHandlers.DailySpinClaim())
			r.Post("/dailyspin/accept", casinoHandlers.DailySpinAccept())
			r.Post("/dailyspin/risk", casinoHandlers.DailySpinRisk())
			r.Post("/dailyspin/guess", casinoHandlers.DailySpinGuess())
		})

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.AdminAPIKey))
			r.Get("/admin/players", adminHandlers.Players())
			r.Get("/admin/ledger", adminHandlers.Ledger())
			r.Post("/admin/topup", adminHandlers.Topup())
			r.Get("/admin/debug/vars", expvar.Handler().ServeHTTP)
		})
	})

	return r
}

func LogRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 32)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}
