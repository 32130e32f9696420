package resolver

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/pickbattle/go/internal/battle"
	"github.com/mcdev12/pickbattle/go/internal/battle/engine"
	"github.com/mcdev12/pickbattle/go/internal/battle/events"
	"github.com/mcdev12/pickbattle/go/internal/models"
)

// memRepo mirrors the conditional writes of the Postgres repository.
type memRepo struct {
	mu       sync.Mutex
	battles  map[uuid.UUID]*models.BattleMatchup
	events   []events.Envelope
	applyErr error
	// beforeApply runs inside ApplyQuarterResult ahead of the guard.
	beforeApply func(b *models.BattleMatchup)
}

func newMemRepo(bs ...*models.BattleMatchup) *memRepo {
	r := &memRepo{battles: make(map[uuid.UUID]*models.BattleMatchup)}
	for _, b := range bs {
		r.battles[b.ID] = b
	}
	return r
}

func (r *memRepo) GetBattle(_ context.Context, id uuid.UUID) (*models.BattleMatchup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.battles[id]
	if !ok {
		return nil, battle.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *memRepo) SaveQuarterSnapshot(_ context.Context, id uuid.UUID, stats models.QuarterStats, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := r.battles[id]
	if b == nil || b.CurrentQuarter != stats.Quarter-1 || b.IsOver() {
		return false, nil
	}
	if stats.Quarter <= models.RegulationQuarters {
		s := stats
		b.Quarters[stats.Quarter-1].Stats = &s
	} else {
		if b.Overtime == nil {
			b.Overtime = make(map[int]models.QuarterStats)
		}
		b.Overtime[stats.Quarter] = stats
	}
	b.UpdatedAt = at
	return true, nil
}

func (r *memRepo) ApplyQuarterResult(_ context.Context, id uuid.UUID, out engine.Outcome, at time.Time, evts []events.Envelope) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.applyErr != nil {
		return false, r.applyErr
	}
	b := r.battles[id]
	if r.beforeApply != nil {
		r.beforeApply(b)
	}
	if b == nil || b.CurrentQuarter != out.Quarter-1 || b.IsOver() || b.QuarterComplete(out.Quarter) {
		return false, nil
	}
	b.LeftHP, b.RightHP = out.LeftHP, out.RightHP
	b.LeftScore, b.RightScore = out.LeftScore, out.RightScore
	b.Status = out.Status
	b.Winner = out.Winner
	b.FinalBlowSide = out.FinalBlowSide
	b.CurrentQuarter = out.Quarter
	if out.Quarter <= models.RegulationQuarters {
		b.Quarters[out.Quarter-1].Complete = true
		end := at
		b.Quarters[out.Quarter-1].EndTime = &end
	}
	b.UpdatedAt = at
	r.events = append(r.events, evts...)
	return true, nil
}

func newBattle() *models.BattleMatchup {
	return &models.BattleMatchup{
		ID:            uuid.New(),
		GameID:        uuid.New(),
		Sport:         "basketball_nba",
		LeftCapperID:  uuid.New(),
		RightCapperID: uuid.New(),
		LeftTeam:      "LAL",
		RightTeam:     "BOS",
		LeftHP:        models.StartingHP,
		RightHP:       models.StartingHP,
		Status:        models.BattleStatusScheduled,
	}
}

func snapshot(n, leftPts, rightPts int) models.QuarterStats {
	return models.QuarterStats{
		Quarter:      n,
		LeftScore:    leftPts,
		RightScore:   rightPts,
		LeftPlayers:  []models.PlayerLine{{Name: "home", Points: leftPts}},
		RightPlayers: []models.PlayerLine{{Name: "away", Points: rightPts}},
	}
}

func newTestResolver(repo *memRepo) (*Resolver, *clockwork.FakeClock) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 1, 10, 2, 0, 0, 0, time.UTC))
	return New(repo, clock), clock
}

func TestResolveWithSnapshotAppliesDamage(t *testing.T) {
	b := newBattle()
	repo := newMemRepo(b)
	r, clock := newTestResolver(repo)

	out, err := r.ResolveWithSnapshot(context.Background(), b.ID, snapshot(1, 40, 20))
	require.NoError(t, err)

	// 20 point edge: 20 * 0.1 * 0.40 = 0.8, rounds to 1.
	assert.Equal(t, 1, out.Damage.RightDamage)
	assert.Equal(t, 0, out.Damage.LeftDamage)

	stored := repo.battles[b.ID]
	assert.Equal(t, 100, stored.LeftHP)
	assert.Equal(t, 99, stored.RightHP)
	assert.Equal(t, 40, stored.LeftScore)
	assert.Equal(t, 20, stored.RightScore)
	assert.Equal(t, 1, stored.CurrentQuarter)
	assert.True(t, stored.Quarters[0].Complete)
	require.NotNil(t, stored.Quarters[0].Stats)
	assert.Equal(t, clock.Now().UTC(), stored.Quarters[0].Stats.CapturedAt)
	assert.Equal(t, models.BattleStatusQ2InProgress, stored.Status)
	assert.Nil(t, stored.Winner)

	require.Len(t, repo.events, 1)
	assert.Equal(t, events.EventTypeQuarterResolved, repo.events[0].Type)
}

func TestResolveQuarterUsesStoredSnapshot(t *testing.T) {
	b := newBattle()
	s := snapshot(1, 20, 25)
	b.Quarters[0].Stats = &s
	repo := newMemRepo(b)
	r, _ := newTestResolver(repo)

	out, err := r.ResolveQuarter(context.Background(), b.ID, 1)
	require.NoError(t, err)
	// 5 * 0.1 * 0.40 = 0.2, rounds to 0.
	assert.Equal(t, 0, out.Damage.LeftDamage)
	assert.Equal(t, 100, repo.battles[b.ID].LeftHP)
	assert.Equal(t, 1, repo.battles[b.ID].CurrentQuarter)
}

func TestResolveQuarterMissingSnapshot(t *testing.T) {
	b := newBattle()
	repo := newMemRepo(b)
	r, _ := newTestResolver(repo)

	_, err := r.ResolveQuarter(context.Background(), b.ID, 1)
	assert.ErrorIs(t, err, battle.ErrMissingStats)
	assert.Equal(t, 0, repo.battles[b.ID].CurrentQuarter)
}

func TestResolveRejectsInvalidQuarter(t *testing.T) {
	b := newBattle()
	r, _ := newTestResolver(newMemRepo(b))

	for _, q := range []int{0, -1, 9} {
		_, err := r.ResolveQuarter(context.Background(), b.ID, q)
		assert.ErrorIs(t, err, battle.ErrInvalidQuarter, "quarter %d", q)
	}
}

func TestResolveUnknownBattle(t *testing.T) {
	r, _ := newTestResolver(newMemRepo())

	_, err := r.ResolveWithSnapshot(context.Background(), uuid.New(), snapshot(1, 10, 10))
	assert.ErrorIs(t, err, battle.ErrNotFound)
}

func TestResolveOrdering(t *testing.T) {
	ctx := context.Background()
	b := newBattle()
	repo := newMemRepo(b)
	r, _ := newTestResolver(repo)

	_, err := r.ResolveWithSnapshot(ctx, b.ID, snapshot(2, 30, 10))
	assert.ErrorIs(t, err, battle.ErrQuarterOutOfOrder)
	assert.Nil(t, repo.battles[b.ID].Quarters[1].Stats)

	_, err = r.ResolveWithSnapshot(ctx, b.ID, snapshot(1, 30, 10))
	require.NoError(t, err)

	_, err = r.ResolveWithSnapshot(ctx, b.ID, snapshot(1, 30, 10))
	assert.ErrorIs(t, err, battle.ErrQuarterResolved)
	assert.True(t, battle.IsSkippable(err))

	_, err = r.ResolveWithSnapshot(ctx, b.ID, snapshot(3, 30, 10))
	assert.ErrorIs(t, err, battle.ErrQuarterOutOfOrder)
	assert.Len(t, repo.events, 1)
}

func TestResolveLosesWriteRace(t *testing.T) {
	b := newBattle()
	repo := newMemRepo(b)
	repo.beforeApply = func(stored *models.BattleMatchup) {
		stored.CurrentQuarter = 1
		stored.Quarters[0].Complete = true
	}
	r, _ := newTestResolver(repo)

	_, err := r.ResolveWithSnapshot(context.Background(), b.ID, snapshot(1, 80, 0))
	assert.ErrorIs(t, err, battle.ErrQuarterResolved)
	assert.Equal(t, 100, repo.battles[b.ID].RightHP)
	assert.Empty(t, repo.events)
}

func TestResolvePersistenceFailure(t *testing.T) {
	b := newBattle()
	repo := newMemRepo(b)
	repo.applyErr = errors.New("connection reset")
	r, _ := newTestResolver(repo)

	_, err := r.ResolveWithSnapshot(context.Background(), b.ID, snapshot(1, 80, 0))
	require.Error(t, err)
	assert.False(t, battle.IsSkippable(err))
	assert.Equal(t, 0, repo.battles[b.ID].CurrentQuarter)
}

func TestResolveKnockoutFinishesBattle(t *testing.T) {
	b := newBattle()
	b.RightHP = 3
	repo := newMemRepo(b)
	r, _ := newTestResolver(repo)

	// 100 point edge: 100 * 0.1 * 0.40 = 4.
	out, err := r.ResolveWithSnapshot(context.Background(), b.ID, snapshot(1, 100, 0))
	require.NoError(t, err)
	assert.True(t, out.Knockout)

	stored := repo.battles[b.ID]
	assert.Equal(t, 0, stored.RightHP)
	assert.Equal(t, models.BattleStatusGameOver, stored.Status)
	require.NotNil(t, stored.Winner)
	assert.Equal(t, models.WinnerLeft, *stored.Winner)
	require.NotNil(t, stored.FinalBlowSide)
	assert.Equal(t, models.SideRight, *stored.FinalBlowSide)

	require.Len(t, repo.events, 2)
	assert.Equal(t, events.EventTypeBattleFinished, repo.events[1].Type)

	_, err = r.ResolveWithSnapshot(context.Background(), b.ID, snapshot(2, 10, 0))
	assert.ErrorIs(t, err, battle.ErrBattleOver)
}

func TestResolveHPNeverIncreases(t *testing.T) {
	ctx := context.Background()
	b := newBattle()
	repo := newMemRepo(b)
	r, _ := newTestResolver(repo)

	quarters := []models.QuarterStats{
		snapshot(1, 60, 20),
		snapshot(2, 10, 45),
		snapshot(3, 33, 33),
		snapshot(4, 0, 70),
	}
	left, right := b.LeftHP, b.RightHP
	for _, q := range quarters {
		_, err := r.ResolveWithSnapshot(ctx, b.ID, q)
		require.NoError(t, err)
		stored := repo.battles[b.ID]
		assert.LessOrEqual(t, stored.LeftHP, left)
		assert.LessOrEqual(t, stored.RightHP, right)
		assert.GreaterOrEqual(t, stored.LeftHP, 0)
		assert.GreaterOrEqual(t, stored.RightHP, 0)
		left, right = stored.LeftHP, stored.RightHP
	}

	stored := repo.battles[b.ID]
	assert.Equal(t, models.BattleStatusGameOver, stored.Status)
	require.NotNil(t, stored.Winner)
	assert.Nil(t, stored.FinalBlowSide)
}

func TestResolveOvertimeSnapshot(t *testing.T) {
	b := newBattle()
	b.CurrentQuarter = 4
	b.Status = models.BattleStatusOT1InProgress
	for i := range b.Quarters {
		b.Quarters[i].Complete = true
	}
	repo := newMemRepo(b)
	r, _ := newTestResolver(repo)

	_, err := r.ResolveWithSnapshot(context.Background(), b.ID, snapshot(5, 12, 10))
	require.NoError(t, err)

	stored := repo.battles[b.ID]
	assert.Equal(t, 5, stored.CurrentQuarter)
	assert.Equal(t, models.BattleStatusOT2InProgress, stored.Status)
	assert.NotNil(t, stored.Snapshot(5))
}
