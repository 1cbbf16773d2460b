package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"prospector-api/internal/config"
	"prospector-api/internal/logger"
	"prospector-api/internal/metrics"
	"prospector-api/internal/provider"
	"prospector-api/internal/repository"
	"prospector-api/internal/router"
	"prospector-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// @title           Seekan Prospector API
// @version         0.1.0
// @description     Search-and-retrieve API for prospect sets of mocked business leads.
// @BasePath        /api
func main() {
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger.Init(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	providers := provider.NewRegistry()
	leadProvider, err := providers.Get(cfg.LeadProvider)
	if err != nil {
		log.Fatal().Err(err).
			Str("provider", cfg.LeadProvider).
			Strs("available", providers.Names()).
			Msg("cannot select lead provider")
	}

	// Initialize layers
	store := repository.NewMemoryStore()
	metrics.RegisterStoredSets(prometheus.DefaultRegisterer, store.Count)

	prospectService := service.NewProspectService(store, leadProvider)
	engine := router.New(cfg, prospectService)

	server := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      engine,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().
			Str("addr", cfg.ServerAddress).
			Str("api_prefix", cfg.APIPrefix).
			Str("provider", leadProvider.Name()).
			Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	log.Info().Msg("server stopped")
}
