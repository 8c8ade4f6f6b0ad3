package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"StockSeer/internal/api"
	"StockSeer/internal/collector"
	"StockSeer/internal/config"
	"StockSeer/internal/metrics"
	"StockSeer/internal/predictor"
	"StockSeer/internal/scheduler"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, relying on actual environment variables")
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	// Logger
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if cfg.Log.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	zerolog.SetGlobalLevel(level)
	log.Info().Msg("StockSeer starting...")

	m := metrics.New()

	// Live fetcher only when an API key is configured; otherwise the
	// engine runs fully synthetic, which is a supported mode.
	var live collector.Fetcher
	if cfg.DataSource.APIKey != "" {
		live = collector.NewAlphaVantageFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.FetchTimeout())
		log.Info().Str("source", live.Name()).Msg("live data source configured")
	} else {
		log.Info().Msg("no API key configured, running in synthetic mode")
	}

	cache := collector.NewSeriesCache(cfg.Cache.Capacity, cfg.CacheTTL())
	generator := collector.NewGenerator(rand.NewSource(time.Now().UnixNano()))
	provider := collector.NewProvider(live, generator, cache, m)
	service := predictor.NewService(provider, m, rand.NewSource(time.Now().UnixNano()))

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Cache maintenance
	sched := scheduler.New(ctx, cache, provider)
	if err := sched.Register(cfg.Cache.SweepCron, cfg.Warmup.Cron, cfg.Warmup.Symbols); err != nil {
		log.Fatal().Err(err).Msg("register cron tasks")
	}
	sched.Start()
	defer sched.Stop()

	// HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      api.NewServer(service, m).Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server")
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP shutdown")
	}
	log.Info().Msg("StockSeer stopped")
}
