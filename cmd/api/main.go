package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"blackhole/internal/blackhole"
	"blackhole/internal/config"
	"blackhole/internal/httpx"
	"blackhole/internal/platform/logger"
	"blackhole/internal/store"
)

func main() {
	config.LoadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logger.Setup(cfg.LogLevel, cfg.IsDev())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := store.Open(ctx, cfg.SafeDatabaseURL(), cfg.DBTimeout)
	if err != nil {
		log.Fatal().Err(err).Str("database", config.RedactDSN(cfg.DatabaseURL)).Msg("open database")
	}
	defer database.Close()
	log.Info().Str("driver", database.Driver()).Msg("database connection OK")

	if err := database.Migrate(ctx, "up", store.EmbeddedMigrations(database.Driver())); err != nil {
		log.Fatal().Err(err).Msg("apply migrations")
	}
	seedCatalog(ctx, database)

	limiter := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer limiter.Close()

	handler, err := newRouter(cfg, database, newPageClient(cfg, limiter), limiter)
	if err != nil {
		log.Fatal().Err(err).Msg("build router")
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("addr", cfg.Addr).Str("env", cfg.Env).Str("api_url", cfg.APIURL).Msg("starting server")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server error")
	}
	log.Info().Msg("server stopped")
}

// seedCatalog adds the starter entries to an empty catalog. A failure is
// logged and the server keeps starting.
func seedCatalog(ctx context.Context, database *store.DB) {
	svc := blackhole.NewService(database.BlackHoles())
	n, err := svc.Seed(ctx, blackhole.DefaultSeeds(), true)
	if err != nil {
		log.Warn().Err(err).Msg("seed catalog")
		return
	}
	if n > 0 {
		log.Info().Int("count", n).Msg("seeded catalog")
	}
}
