// Package resolver applies a quarter's damage to a battle and writes the
// result back under an optimistic guard.
package resolver

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/pickbattle/go/internal/battle"
	"github.com/mcdev12/pickbattle/go/internal/battle/engine"
	"github.com/mcdev12/pickbattle/go/internal/battle/events"
	"github.com/mcdev12/pickbattle/go/internal/models"
)

// BattleRepository defines what the resolver needs from persistence
type BattleRepository interface {
	GetBattle(ctx context.Context, id uuid.UUID) (*models.BattleMatchup, error)
	SaveQuarterSnapshot(ctx context.Context, battleID uuid.UUID, stats models.QuarterStats, at time.Time) (bool, error)
	ApplyQuarterResult(ctx context.Context, battleID uuid.UUID, out engine.Outcome, at time.Time, evts []events.Envelope) (bool, error)
}

// Resolver turns stored quarter snapshots into HP changes.
type Resolver struct {
	repo  BattleRepository
	clock clockwork.Clock
}

func New(repo BattleRepository, clock clockwork.Clock) *Resolver {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Resolver{repo: repo, clock: clock}
}

// ResolveQuarter resolves quarter n from the snapshot already stored on
// the battle.
func (r *Resolver) ResolveQuarter(ctx context.Context, battleID uuid.UUID, quarter int) (*engine.Outcome, error) {
	if !engine.ValidQuarter(quarter) {
		return nil, fmt.Errorf("quarter %d: %w", quarter, battle.ErrInvalidQuarter)
	}

	b, err := r.repo.GetBattle(ctx, battleID)
	if err != nil {
		return nil, err
	}
	if err := checkQuarter(b, quarter); err != nil {
		return nil, err
	}

	stats := b.Snapshot(quarter)
	if stats == nil {
		return nil, fmt.Errorf("battle %s quarter %d: %w", battleID, quarter, battle.ErrMissingStats)
	}
	return r.apply(ctx, b, *stats)
}

// ResolveWithSnapshot stores stats as the snapshot for stats.Quarter and
// resolves it. The snapshot write carries the same ordering guard as the
// result write.
func (r *Resolver) ResolveWithSnapshot(ctx context.Context, battleID uuid.UUID, stats models.QuarterStats) (*engine.Outcome, error) {
	if !engine.ValidQuarter(stats.Quarter) {
		return nil, fmt.Errorf("quarter %d: %w", stats.Quarter, battle.ErrInvalidQuarter)
	}

	b, err := r.repo.GetBattle(ctx, battleID)
	if err != nil {
		return nil, err
	}
	if err := checkQuarter(b, stats.Quarter); err != nil {
		return nil, err
	}

	if stats.CapturedAt.IsZero() {
		stats.CapturedAt = r.clock.Now().UTC()
	}
	saved, err := r.repo.SaveQuarterSnapshot(ctx, battleID, stats, r.clock.Now().UTC())
	if err != nil {
		return nil, err
	}
	if !saved {
		return nil, fmt.Errorf("battle %s quarter %d snapshot: %w", battleID, stats.Quarter, battle.ErrQuarterResolved)
	}
	return r.apply(ctx, b, stats)
}

func (r *Resolver) apply(ctx context.Context, b *models.BattleMatchup, stats models.QuarterStats) (*engine.Outcome, error) {
	out, err := engine.Resolve(engine.CombatState{
		LeftHP:     b.LeftHP,
		RightHP:    b.RightHP,
		LeftScore:  b.LeftScore,
		RightScore: b.RightScore,
	}, stats)
	if err != nil {
		return nil, err
	}

	now := r.clock.Now().UTC()
	evts, err := outcomeEvents(b.ID, out, now)
	if err != nil {
		return nil, err
	}

	applied, err := r.repo.ApplyQuarterResult(ctx, b.ID, out, now, evts)
	if err != nil {
		return nil, err
	}
	if !applied {
		log.Info().
			Str("battle_id", b.ID.String()).
			Int("quarter", out.Quarter).
			Msg("quarter result lost the write race, skipping")
		return nil, fmt.Errorf("battle %s quarter %d: %w", b.ID, out.Quarter, battle.ErrQuarterResolved)
	}

	ev := log.Info().
		Str("battle_id", b.ID.String()).
		Int("quarter", out.Quarter).
		Float64("damage_total", out.Damage.Total).
		Int("left_hp", out.LeftHP).
		Int("right_hp", out.RightHP).
		Str("status", string(out.Status))
	if out.Winner != nil {
		ev = ev.Str("winner", string(*out.Winner)).Bool("knockout", out.Knockout)
	}
	ev.Msg("quarter resolved")

	return &out, nil
}

// checkQuarter enforces strict quarter ordering on a loaded battle.
func checkQuarter(b *models.BattleMatchup, quarter int) error {
	switch {
	case b.IsOver():
		return fmt.Errorf("battle %s: %w", b.ID, battle.ErrBattleOver)
	case quarter <= b.CurrentQuarter || b.QuarterComplete(quarter):
		return fmt.Errorf("battle %s quarter %d: %w", b.ID, quarter, battle.ErrQuarterResolved)
	case quarter != b.CurrentQuarter+1:
		return fmt.Errorf("battle %s quarter %d after %d: %w", b.ID, quarter, b.CurrentQuarter, battle.ErrQuarterOutOfOrder)
	}
	return nil
}

func outcomeEvents(battleID uuid.UUID, out engine.Outcome, at time.Time) ([]events.Envelope, error) {
	resolved, err := events.New(events.EventTypeQuarterResolved, events.QuarterResolvedPayload{
		BattleID:    battleID.String(),
		Quarter:     out.Quarter,
		DamageTotal: out.Damage.Total,
		LeftDamage:  out.Damage.LeftDamage,
		RightDamage: out.Damage.RightDamage,
		LeftHP:      out.LeftHP,
		RightHP:     out.RightHP,
		LeftScore:   out.LeftScore,
		RightScore:  out.RightScore,
		Status:      string(out.Status),
		ResolvedAt:  at,
	})
	if err != nil {
		return nil, err
	}
	evts := []events.Envelope{resolved}

	if out.Status != models.BattleStatusGameOver || out.Winner == nil {
		return evts, nil
	}

	var finalBlow *string
	if out.FinalBlowSide != nil {
		s := string(*out.FinalBlowSide)
		finalBlow = &s
	}
	finished, err := events.New(events.EventTypeBattleFinished, events.BattleFinishedPayload{
		BattleID:      battleID.String(),
		Winner:        string(*out.Winner),
		FinalBlowSide: finalBlow,
		Knockout:      out.Knockout,
		Quarter:       out.Quarter,
		LeftHP:        out.LeftHP,
		RightHP:       out.RightHP,
		FinishedAt:    at,
	})
	if err != nil {
		return nil, err
	}
	return append(evts, finished), nil
}
