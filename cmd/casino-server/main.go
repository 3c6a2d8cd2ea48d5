package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"crew-casino/internal/app/casino"
	"crew-casino/internal/config"
	"crew-casino/internal/game/blackjack"
	"crew-casino/internal/game/coinflip"
	"crew-casino/internal/game/dailyspin"
	"crew-casino/internal/ledger"
	"crew-casino/internal/logging"
	"crew-casino/internal/mcpserver"
	"crew-casino/internal/push"
	"crew-casino/internal/stats"
	"crew-casino/internal/store"
	httptransport "crew-casino/internal/transport/http"
	"crew-casino/internal/ws"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	appCfg, err := config.LoadApp()
	if err != nil {
		panic(err)
	}
	logging.Init(appCfg.Log)
	cfg := appCfg.Server

	st, err := store.New(cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("store init failed")
	}
	defer st.Close()
	if err := st.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("db ping failed")
	}

	seedPlayer(st, cfg)

	led := ledger.New(st)
	rec := stats.New(st)
	bj := blackjack.NewTable(led, rec)
	cf := coinflip.New(led, rec)
	ds := dailyspin.New(led, rec,
		cfg.DailySpinMinCC, cfg.DailySpinMaxCC,
		time.Duration(cfg.DailySpinCooldownMins)*time.Minute)

	hub := ws.NewHub()

	pushCfg, err := push.ConfigFromServer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("result push config failed")
	}
	pushMgr := push.NewManager(pushCfg)

	svc := casino.NewService(st, bj, cf, ds, cfg.InitialBalanceCC, hub, pushMgr)
	mcpSrv := mcpserver.New(svc)

	router := httptransport.NewRouter(svc, st, cfg, hub, mcpSrv)
	httptransport.LogRoutes(router)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return pushMgr.Start(ctx)
	})
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("http listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
	log.Info().Msg("server stopped")
}

// seedPlayer pre-creates a known player from env so a bot can play without
// going through registration first.
func seedPlayer(st *store.Store, cfg config.ServerConfig) {
	if cfg.SeedPlayerName == "" || cfg.SeedPlayerKey == "" {
		return
	}
	ctx := context.Background()
	if p, err := st.GetPlayerByAPIKey(ctx, cfg.SeedPlayerKey); err == nil && p != nil {
		return
	}
	id, err := st.CreatePlayer(ctx, cfg.SeedPlayerName, cfg.SeedPlayerKey)
	if err != nil {
		log.Error().Err(err).Msg("seed player error")
		return
	}
	if err := st.EnsureAccount(ctx, id, cfg.InitialBalanceCC); err != nil {
		log.Error().Err(err).Msg("seed account error")
	}
}
