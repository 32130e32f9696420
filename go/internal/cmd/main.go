package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/pickbattle/go/internal/logging"
	_ "github.com/mcdev12/pickbattle/go/internal/sports/nba"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}
	logging.Console(os.Stderr)

	config, err := loadConfig(getEnv("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if _, err := setupSportsPlugins(config); err != nil {
		log.Fatal().Err(err).Msg("failed to set up sport plugins")
	}

	database, err := setupDatabase()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up database")
	}
	defer database.Close()

	services, err := setupServices(database, config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up services")
	}
	if services.Redis != nil {
		defer services.Redis.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if services.Scheduler != nil {
		services.Scheduler.Start()
	}

	server := setupServer(services)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("battle API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if services.Scheduler != nil {
		if err := services.Scheduler.Stop(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("scheduler did not stop cleanly")
		}
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
