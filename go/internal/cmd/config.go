package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/mcdev12/pickbattle/go/clients"
	"github.com/mcdev12/pickbattle/go/internal/battle/scheduler"
	"github.com/mcdev12/pickbattle/go/internal/battle/tracker"
	"github.com/mcdev12/pickbattle/go/internal/sports/base"
	"github.com/mcdev12/pickbattle/go/internal/sports/nba"
)

type Config struct {
	Sports struct {
		EnabledPlugins []string                          `yaml:"enabled_plugins"`
		Plugins        map[string]map[string]interface{} `yaml:"plugins"`
	} `yaml:"sports"`

	Scheduler struct {
		Enabled          bool `yaml:"enabled"`
		scheduler.Config `yaml:",inline"`
	} `yaml:"scheduler"`

	Tracker struct {
		Workers      int           `yaml:"workers"`
		FetchTimeout time.Duration `yaml:"fetch_timeout"`
	} `yaml:"tracker"`

	Stats struct {
		Source   clients.ExternalSource `yaml:"source"`
		CacheTTL time.Duration          `yaml:"cache_ttl"`
	} `yaml:"stats"`
}

func defaultConfig() *Config {
	var c Config
	c.Sports.EnabledPlugins = []string{nba.Key}
	c.Scheduler.Enabled = true
	c.Scheduler.Config = scheduler.DefaultConfig()
	c.Tracker.Workers = tracker.DefaultWorkers
	c.Tracker.FetchTimeout = tracker.DefaultFetchTimeout
	c.Stats.CacheTTL = 20 * time.Second
	return &c
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// loadConfig overlays the YAML file at path on the defaults. A missing
// file leaves the defaults in place.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("path", path).Msg("config file not found, using defaults")
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(config.Sports.EnabledPlugins) == 0 {
		return nil, errors.New("config: no sport plugins enabled")
	}
	if config.Stats.Source != "" && !clients.ValidateExternalSource(config.Stats.Source) {
		return nil, fmt.Errorf("config: unknown stats source %q", config.Stats.Source)
	}

	return config, nil
}

func setupSportsPlugins(config *Config) (map[string]base.SportPlugin, error) {
	plugins := make(map[string]base.SportPlugin)
	for _, key := range config.Sports.EnabledPlugins {
		if err := base.InitializePlugin(key, config.Sports.Plugins[key]); err != nil {
			return nil, fmt.Errorf("failed to initialize plugin %s (registered: %v): %w", key, base.RegisteredKeys(), err)
		}

		plg, err := base.GetPlugin(key)
		if err != nil {
			return nil, fmt.Errorf("failed to get plugin %s: %w", key, err)
		}

		timing := plg.Timing()
		log.Info().
			Str("plugin", key).
			Str("name", plg.DisplayName()).
			Dur("period", timing.PeriodLength).
			Dur("buffer", timing.Buffer).
			Msg("loaded sport plugin")
		plugins[key] = plg
	}
	return plugins, nil
}
