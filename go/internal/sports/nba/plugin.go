package nba

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mcdev12/pickbattle/go/internal/sports/base"
)

// Key is the sport key games and battles carry for the NBA.
const Key = "basketball_nba"

// Default timing: a 12 minute quarter runs about 18 minutes of real time.
const (
	DefaultPeriodMinutes = 18
	DefaultBufferMinutes = 5
	RegulationQuarters   = 4
)

// NBAPlugin implements the SportPlugin interface for the NBA.
type NBAPlugin struct {
	config Config
}

// Config holds NBA-specific configuration.
type Config struct {
	PeriodMinutes int `yaml:"period_minutes"`
	BufferMinutes int `yaml:"buffer_minutes"`
}

// init registers the NBA plugin with the base registry.
func init() {
	if err := base.RegisterPlugin(Key, New()); err != nil {
		panic(fmt.Sprintf("Failed to register NBA plugin: %v", err))
	}
}

// New returns a plugin with default timing.
func New() *NBAPlugin {
	return &NBAPlugin{config: Config{
		PeriodMinutes: DefaultPeriodMinutes,
		BufferMinutes: DefaultBufferMinutes,
	}}
}

// Init overlays settings from the service config on the defaults.
func (p *NBAPlugin) Init(settings map[string]interface{}) error {
	if len(settings) == 0 {
		return nil
	}
	raw, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("nba: marshal settings: %w", err)
	}
	cfg := p.config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("nba: decode settings: %w", err)
	}
	if cfg.PeriodMinutes <= 0 || cfg.BufferMinutes < 0 {
		return fmt.Errorf("nba: invalid timing %d/%d", cfg.PeriodMinutes, cfg.BufferMinutes)
	}
	p.config = cfg
	return nil
}

func (p *NBAPlugin) Key() string { return Key }

func (p *NBAPlugin) DisplayName() string { return "NBA" }

func (p *NBAPlugin) Timing() base.PeriodTiming {
	return base.PeriodTiming{
		PeriodLength:      time.Duration(p.config.PeriodMinutes) * time.Minute,
		Buffer:            time.Duration(p.config.BufferMinutes) * time.Minute,
		RegulationPeriods: RegulationQuarters,
	}
}
