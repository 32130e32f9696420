package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mcdev12/pickbattle/go/internal/battle"
	"github.com/mcdev12/pickbattle/go/internal/battle/db"
	"github.com/mcdev12/pickbattle/go/internal/battle/engine"
	"github.com/mcdev12/pickbattle/go/internal/battle/events"
	"github.com/mcdev12/pickbattle/go/internal/models"
	"github.com/mcdev12/pickbattle/go/internal/sqlutil"
)

// Repository implements battle data access on Postgres.
type Repository struct {
	sqlDB   *sql.DB
	queries *db.Queries
}

func NewRepository(sqlDB *sql.DB) *Repository {
	return &Repository{
		sqlDB:   sqlDB,
		queries: db.New(sqlDB),
	}
}

func (r *Repository) inTx(ctx context.Context, fn func(q *db.Queries) error) error {
	return sqlutil.Run(ctx, r.sqlDB, func(tx *sql.Tx) *db.Queries {
		return r.queries.WithTx(tx)
	}, fn)
}

// GetGame retrieves a game by ID
func (r *Repository) GetGame(ctx context.Context, id uuid.UUID) (*models.Game, error) {
	row, err := r.queries.GetGame(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("game %s: %w", id, battle.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return dbGameToModel(row), nil
}

// ListUpcomingGames returns scheduled games of a sport starting after the
// given instant.
func (r *Repository) ListUpcomingGames(ctx context.Context, sport string, after time.Time) ([]models.Game, error) {
	rows, err := r.queries.ListUpcomingGames(ctx, db.ListUpcomingGamesParams{
		Sport:     sport,
		StartTime: after,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming games: %w", err)
	}

	games := make([]models.Game, len(rows))
	for i, row := range rows {
		games[i] = *dbGameToModel(row)
	}
	return games, nil
}

// ListPendingSpreadPicks returns the pending spread picks on a game.
func (r *Repository) ListPendingSpreadPicks(ctx context.Context, gameID uuid.UUID) ([]models.Pick, error) {
	rows, err := r.queries.ListPendingSpreadPicks(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending picks: %w", err)
	}

	picks := make([]models.Pick, len(rows))
	for i, row := range rows {
		picks[i] = dbPickToModel(row)
	}
	return picks, nil
}

// BattleExists reports whether the two cappers already battle on the game,
// in either seat order.
func (r *Repository) BattleExists(ctx context.Context, gameID, capperA, capperB uuid.UUID) (bool, error) {
	exists, err := r.queries.BattleExistsForPair(ctx, db.BattleExistsForPairParams{
		GameID:  gameID,
		CapperA: capperA,
		CapperB: capperB,
	})
	if err != nil {
		return false, fmt.Errorf("failed to check battle pair: %w", err)
	}
	return exists, nil
}

// CreateBattle inserts a battle and its outbox events in one transaction.
// It returns false without writing events when the pair already exists.
func (r *Repository) CreateBattle(ctx context.Context, b *models.BattleMatchup, evts []events.Envelope) (bool, error) {
	created := false
	err := r.inTx(ctx, func(q *db.Queries) error {
		n, err := q.CreateBattle(ctx, db.CreateBattleParams{
			ID:            b.ID,
			GameID:        b.GameID,
			Sport:         b.Sport,
			LeftCapperID:  b.LeftCapperID,
			RightCapperID: b.RightCapperID,
			LeftTeam:      b.LeftTeam,
			RightTeam:     b.RightTeam,
			LeftPickID:    b.LeftPickID,
			RightPickID:   b.RightPickID,
			Spread:        b.Spread,
			GameStartTime: b.GameStartTime,
			LeftHp:        int32(b.LeftHP),
			RightHp:       int32(b.RightHP),
			Status:        string(b.Status),
			CreatedAt:     b.CreatedAt,
		})
		if err != nil {
			return fmt.Errorf("failed to insert battle: %w", err)
		}
		if n == 0 {
			return nil
		}
		created = true
		return insertEvents(ctx, q, b.ID, evts)
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

// GetBattle retrieves a battle by ID
func (r *Repository) GetBattle(ctx context.Context, id uuid.UUID) (*models.BattleMatchup, error) {
	row, err := r.queries.GetBattle(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("battle %s: %w", id, battle.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get battle: %w", err)
	}
	return dbBattleToModel(row)
}

// ListActiveBattles returns every battle that is not over, plus the number
// of rows that could not be decoded. Those rows are logged and left out.
func (r *Repository) ListActiveBattles(ctx context.Context) ([]models.BattleMatchup, int, error) {
	rows, err := r.queries.ListActiveBattles(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list active battles: %w", err)
	}
	battles, bad := decodeBattles(rows)
	return battles, bad, nil
}

// SaveQuarterSnapshot stores a quarter's stats if that quarter is next in
// line. It returns false when the battle moved on or ended.
func (r *Repository) SaveQuarterSnapshot(ctx context.Context, battleID uuid.UUID, stats models.QuarterStats, at time.Time) (bool, error) {
	raw, err := marshalStats(stats)
	if err != nil {
		return false, err
	}
	n, err := r.queries.SaveQuarterSnapshot(ctx, db.SaveQuarterSnapshotParams{
		Quarter:   int32(stats.Quarter),
		Stats:     raw,
		UpdatedAt: at,
		ID:        battleID,
	})
	if err != nil {
		return false, fmt.Errorf("failed to save quarter snapshot: %w", err)
	}
	return n > 0, nil
}

// ApplyQuarterResult writes a resolved quarter and its events atomically.
// The update only lands while the quarter is still unresolved; it returns
// false when another writer got there first.
func (r *Repository) ApplyQuarterResult(ctx context.Context, battleID uuid.UUID, out engine.Outcome, at time.Time, evts []events.Envelope) (bool, error) {
	applied := false
	err := r.inTx(ctx, func(q *db.Queries) error {
		n, err := q.ApplyQuarterResult(ctx, db.ApplyQuarterResultParams{
			LeftHp:        int32(out.LeftHP),
			RightHp:       int32(out.RightHP),
			LeftScore:     int32(out.LeftScore),
			RightScore:    int32(out.RightScore),
			Status:        string(out.Status),
			Winner:        sqlutil.ToSqlString((*string)(out.Winner)),
			FinalBlowSide: sqlutil.ToSqlString((*string)(out.FinalBlowSide)),
			Quarter:       int32(out.Quarter),
			ResolvedAt:    at,
			ID:            battleID,
		})
		if err != nil {
			return fmt.Errorf("failed to apply quarter result: %w", err)
		}
		if n == 0 {
			return nil
		}
		applied = true
		return insertEvents(ctx, q, battleID, evts)
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}

func insertEvents(ctx context.Context, q *db.Queries, battleID uuid.UUID, evts []events.Envelope) error {
	for _, e := range evts {
		if err := q.InsertOutboxEvent(ctx, db.InsertOutboxEventParams{
			ID:        uuid.New(),
			BattleID:  battleID,
			EventType: e.Type,
			Payload:   e.Payload,
		}); err != nil {
			return fmt.Errorf("failed to insert %s outbox event: %w", e.Type, err)
		}
	}
	return nil
}
