// Package scheduler drives matchmaking and the quarter tracker on cron specs.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/pickbattle/go/internal/battle/matchmaking"
	"github.com/mcdev12/pickbattle/go/internal/battle/tracker"
)

const (
	DefaultMatchmakingSpec = "*/15 * * * *"
	DefaultTrackerSpec     = "@every 1m"
	DefaultJobTimeout      = 5 * time.Minute
)

type Matchmaker interface {
	Run(ctx context.Context, sport string) (*matchmaking.RunResult, error)
}

type QuarterTracker interface {
	Tick(ctx context.Context) (*tracker.TickResult, error)
}

type Config struct {
	MatchmakingSpec string        `yaml:"matchmaking"`
	TrackerSpec     string        `yaml:"tracker"`
	JobTimeout      time.Duration `yaml:"job_timeout"`
	// Sports matched on every matchmaking run
	Sports []string `yaml:"-"`
}

func DefaultConfig() Config {
	return Config{
		MatchmakingSpec: DefaultMatchmakingSpec,
		TrackerSpec:     DefaultTrackerSpec,
		JobTimeout:      DefaultJobTimeout,
	}
}

// Scheduler owns the cron runner. A job that is still running when its
// next slot fires is skipped.
type Scheduler struct {
	cron       *cron.Cron
	matchmaker Matchmaker
	tracker    QuarterTracker
	cfg        Config

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	entries map[string]cron.EntryID
}

func New(mm Matchmaker, tr QuarterTracker, cfg Config) (*Scheduler, error) {
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = DefaultJobTimeout
	}
	if cfg.MatchmakingSpec == "" && cfg.TrackerSpec == "" {
		return nil, errors.New("scheduler: no job specs configured")
	}

	logger := log.With().Str("component", "scheduler").Logger()
	cronLogger := cron.PrintfLogger(&logger)

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(
				cron.Recover(cronLogger),
				cron.SkipIfStillRunning(cronLogger),
			),
		),
		matchmaker: mm,
		tracker:    tr,
		cfg:        cfg,
		ctx:        ctx,
		cancel:     cancel,
		entries:    make(map[string]cron.EntryID),
	}

	if cfg.MatchmakingSpec != "" {
		for _, sport := range cfg.Sports {
			sport := sport
			if err := s.add("matchmaking:"+sport, cfg.MatchmakingSpec, func() { s.RunMatchmaking(sport) }); err != nil {
				cancel()
				return nil, err
			}
		}
	}
	if cfg.TrackerSpec != "" {
		if err := s.add("tracker", cfg.TrackerSpec, s.RunTracker); err != nil {
			cancel()
			return nil, err
		}
	}

	return s, nil
}

func (s *Scheduler) add(name, spec string, job func()) error {
	id, err := s.cron.AddFunc(spec, job)
	if err != nil {
		return fmt.Errorf("scheduler: invalid spec %q for %s: %w", spec, name, err)
	}
	s.mu.Lock()
	s.entries[name] = id
	s.mu.Unlock()
	log.Info().Str("job", name).Str("spec", spec).Msg("scheduled job")
	return nil
}

// Jobs returns the registered job names with their next run time.
func (s *Scheduler) Jobs() map[string]time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]time.Time, len(s.entries))
	for name, id := range s.entries {
		out[name] = s.cron.Entry(id).Next
	}
	return out
}

func (s *Scheduler) Start() {
	s.cron.Start()
	log.Info().Int("jobs", len(s.cron.Entries())).Msg("scheduler started")
}

// Stop halts new runs and waits for running jobs, up to ctx's deadline.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	defer s.cancel()
	select {
	case <-done.Done():
		log.Info().Msg("scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunMatchmaking runs one matchmaking pass for sport.
func (s *Scheduler) RunMatchmaking(sport string) {
	ctx, cancel := context.WithTimeout(s.ctx, s.cfg.JobTimeout)
	defer cancel()

	start := time.Now()
	result, err := s.matchmaker.Run(ctx, sport)
	if err != nil {
		log.Error().Err(err).Str("sport", sport).Msg("scheduled matchmaking failed")
		return
	}
	log.Info().
		Str("sport", sport).
		Int("games", result.GamesScanned).
		Int("created", result.Created).
		Int("errors", result.Errors).
		Dur("took", time.Since(start)).
		Msg("scheduled matchmaking finished")
}

// RunTracker runs one tracker tick.
func (s *Scheduler) RunTracker() {
	ctx, cancel := context.WithTimeout(s.ctx, s.cfg.JobTimeout)
	defer cancel()

	start := time.Now()
	result, err := s.tracker.Tick(ctx)
	if err != nil {
		log.Error().Err(err).Msg("scheduled tracker tick failed")
		return
	}
	log.Info().
		Int("battles", result.BattlesChecked).
		Int("resolved", result.QuartersResolved).
		Int("skipped", result.Skipped).
		Int("errors", result.Errors).
		Dur("took", time.Since(start)).
		Msg("scheduled tracker tick finished")
}
