// Package tracker estimates when quarters of live battles have ended,
// captures their stats and hands them to the resolver.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/pickbattle/go/internal/battle"
	"github.com/mcdev12/pickbattle/go/internal/battle/engine"
	"github.com/mcdev12/pickbattle/go/internal/boxscore"
	"github.com/mcdev12/pickbattle/go/internal/models"
	"github.com/mcdev12/pickbattle/go/internal/sports/base"
)

const (
	DefaultWorkers      = 4
	DefaultFetchTimeout = 10 * time.Second
)

// BattleRepository defines what the tracker reads.
type BattleRepository interface {
	// ListActiveBattles also reports how many rows it could not decode.
	ListActiveBattles(ctx context.Context) ([]models.BattleMatchup, int, error)
	GetGame(ctx context.Context, id uuid.UUID) (*models.Game, error)
}

// QuarterResolver stores a snapshot and applies its damage.
type QuarterResolver interface {
	ResolveWithSnapshot(ctx context.Context, battleID uuid.UUID, stats models.QuarterStats) (*engine.Outcome, error)
}

// TimingFunc returns the period timing for a sport key.
type TimingFunc func(sport string) (base.PeriodTiming, error)

// PluginTiming looks timing up in the sport plugin registry.
func PluginTiming(sport string) (base.PeriodTiming, error) {
	plugin, err := base.GetPlugin(sport)
	if err != nil {
		return base.PeriodTiming{}, err
	}
	return plugin.Timing(), nil
}

type Config struct {
	Workers      int
	FetchTimeout time.Duration
	Timing       TimingFunc
}

// TickResult counts what one tick did.
type TickResult struct {
	BattlesChecked   int `json:"battles_checked"`
	QuartersResolved int `json:"quarters_resolved"`
	Skipped          int `json:"skipped"`
	Errors           int `json:"errors"`
}

type Tracker struct {
	repo     BattleRepository
	resolver QuarterResolver
	provider boxscore.Provider
	clock    clockwork.Clock

	workers      int
	fetchTimeout time.Duration
	timing       TimingFunc
}

func New(repo BattleRepository, resolver QuarterResolver, provider boxscore.Provider, clock clockwork.Clock, cfg Config) *Tracker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = DefaultFetchTimeout
	}
	if cfg.Timing == nil {
		cfg.Timing = PluginTiming
	}
	return &Tracker{
		repo:         repo,
		resolver:     resolver,
		provider:     provider,
		clock:        clock,
		workers:      cfg.Workers,
		fetchTimeout: cfg.FetchTimeout,
		timing:       cfg.Timing,
	}
}

// DueQuarters returns the regulation quarters of b that can be captured at
// now, in order. A quarter is only due once the one before it is complete
// or is itself due in this pass.
func DueQuarters(b *models.BattleMatchup, timing base.PeriodTiming, now time.Time) []int {
	last := timing.RegulationPeriods
	if last <= 0 || last > models.RegulationQuarters {
		last = models.RegulationQuarters
	}

	var due []int
	for n := 1; n <= last; n++ {
		if b.QuarterComplete(n) {
			continue
		}
		if n > 1 && !b.QuarterComplete(n-1) && (len(due) == 0 || due[len(due)-1] != n-1) {
			break
		}
		if !timing.Due(b.GameStartTime, n, now) {
			break
		}
		due = append(due, n)
	}
	return due
}

// Tick checks every active battle once.
func (t *Tracker) Tick(ctx context.Context) (*TickResult, error) {
	battles, bad, err := t.repo.ListActiveBattles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active battles: %w", err)
	}

	result := &TickResult{BattlesChecked: len(battles) + bad, Errors: bad}
	if len(battles) == 0 {
		return result, nil
	}

	fetcher := newTickFetcher(t.provider, t.fetchTimeout)
	workCh := make(chan *models.BattleMatchup)

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	workers := t.workers
	if workers > len(battles) {
		workers = len(battles)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for b := range workCh {
				resolved, err := t.processBattle(ctx, b, fetcher)

				mu.Lock()
				result.QuartersResolved += resolved
				switch {
				case err == nil:
				case isSkip(err):
					result.Skipped++
				default:
					result.Errors++
				}
				mu.Unlock()

				if err != nil {
					ev := log.Warn()
					if !isSkip(err) {
						ev = log.Error()
					}
					ev.Err(err).
						Str("battle_id", b.ID.String()).
						Int("worker_id", workerID).
						Msg("battle quarter capture did not complete")
				}
			}
		}(i)
	}

	for i := range battles {
		select {
		case workCh <- &battles[i]:
		case <-ctx.Done():
		}
		if ctx.Err() != nil {
			break
		}
	}
	close(workCh)
	wg.Wait()

	log.Info().
		Int("battles", result.BattlesChecked).
		Int("resolved", result.QuartersResolved).
		Int("skipped", result.Skipped).
		Int("errors", result.Errors).
		Msg("quarter tracker tick finished")

	return result, ctx.Err()
}

// processBattle captures every due quarter of one battle, stopping at the
// first failure.
func (t *Tracker) processBattle(ctx context.Context, b *models.BattleMatchup, fetcher *tickFetcher) (int, error) {
	timing, err := t.timing(b.Sport)
	if err != nil {
		return 0, err
	}

	now := t.clock.Now()
	due := DueQuarters(b, timing, now)
	if len(due) == 0 {
		return 0, nil
	}

	game, err := t.repo.GetGame(ctx, b.GameID)
	if err != nil {
		return 0, err
	}

	box, err := fetcher.fetch(ctx, t.provider.GameID(*game))
	if err != nil {
		return 0, err
	}

	resolved := 0
	for _, n := range due {
		stats, err := BuildSnapshot(box, b, n, now.UTC())
		if err != nil {
			return resolved, err
		}

		out, err := t.resolver.ResolveWithSnapshot(ctx, b.ID, stats)
		if err != nil {
			return resolved, err
		}
		resolved++

		b.Quarters[n-1].Stats = &stats
		b.Quarters[n-1].Complete = true
		b.CurrentQuarter = n
		if out.Status == models.BattleStatusGameOver {
			break
		}
	}
	return resolved, nil
}

// isSkip reports failures a later tick is expected to clear on its own.
func isSkip(err error) bool {
	return battle.IsSkippable(err) ||
		errors.Is(err, battle.ErrNotFound) ||
		errors.Is(err, boxscore.ErrPeriodMissing)
}
