package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/pickbattle/go/internal/battle/matchmaking"
	"github.com/mcdev12/pickbattle/go/internal/battle/repository"
	"github.com/mcdev12/pickbattle/go/internal/battle/resolver"
	"github.com/mcdev12/pickbattle/go/internal/battle/scheduler"
	"github.com/mcdev12/pickbattle/go/internal/battle/service"
	"github.com/mcdev12/pickbattle/go/internal/battle/tracker"
	"github.com/mcdev12/pickbattle/go/internal/boxscore"
)

type Services struct {
	Battles   *service.Service
	Scheduler *scheduler.Scheduler
	Redis     *redis.Client
}

func setupServices(database *sql.DB, config *Config) (*Services, error) {
	// Database layer → Repository layer → Engine layer → Service layer
	clock := clockwork.NewRealClock()
	repo := repository.NewRepository(database)

	provider, err := boxscore.NewProvider(config.Stats.Source, os.Getenv("SPORTS_API_KEY"))
	if err != nil {
		return nil, fmt.Errorf("failed to build stats provider: %w", err)
	}

	var redisClient *redis.Client
	if url := os.Getenv("REDIS_URL"); url != "" {
		opts, err := redis.ParseURL(url)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		redisClient = redis.NewClient(opts)
		provider = boxscore.NewCachedProvider(provider, redisClient, config.Stats.CacheTTL)
		log.Info().Str("addr", opts.Addr).Dur("ttl", config.Stats.CacheTTL).Msg("box score cache enabled")
	}
	log.Info().Str("source", string(provider.Source())).Msg("stats provider ready")

	res := resolver.New(repo, clock)
	tr := tracker.New(repo, res, provider, clock, tracker.Config{
		Workers:      config.Tracker.Workers,
		FetchTimeout: config.Tracker.FetchTimeout,
		Timing:       tracker.PluginTiming,
	})
	mm := matchmaking.New(repo, clock)

	services := &Services{
		Battles: service.NewService(mm, tr, res, repo, config.Sports.EnabledPlugins[0]),
		Redis:   redisClient,
	}

	if config.Scheduler.Enabled {
		schedCfg := config.Scheduler.Config
		schedCfg.Sports = config.Sports.EnabledPlugins
		services.Scheduler, err = scheduler.New(mm, tr, schedCfg)
		if err != nil {
			return nil, err
		}
	}

	return services, nil
}
