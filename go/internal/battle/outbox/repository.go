package outbox

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mcdev12/pickbattle/go/internal/battle/db"
)

// ErrAlreadySent is returned when a notified row was already relayed.
var ErrAlreadySent = errors.New("outbox event already sent")

// Repository implements EventStore on the sqlc queries.
type Repository struct {
	queries db.Querier
}

func NewRepository(sqlDB *sql.DB) *Repository {
	return &Repository{queries: db.New(sqlDB)}
}

func (r *Repository) FetchOutboxByID(ctx context.Context, id uuid.UUID) (*OutboxEvent, error) {
	row, err := r.queries.FetchOutboxByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("outbox event %s: %w", id, ErrAlreadySent)
		}
		return nil, fmt.Errorf("failed to fetch outbox event: %w", err)
	}
	return &OutboxEvent{
		ID:        row.ID,
		BattleID:  row.BattleID,
		EventType: row.EventType,
		Payload:   row.Payload,
		CreatedAt: row.CreatedAt,
	}, nil
}

func (r *Repository) FetchUnsentOutbox(ctx context.Context, limit int32) ([]OutboxEvent, error) {
	rows, err := r.queries.FetchUnsentOutbox(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unsent outbox events: %w", err)
	}
	out := make([]OutboxEvent, len(rows))
	for i, row := range rows {
		out[i] = OutboxEvent{
			ID:        row.ID,
			BattleID:  row.BattleID,
			EventType: row.EventType,
			Payload:   row.Payload,
			CreatedAt: row.CreatedAt,
		}
	}
	return out, nil
}

func (r *Repository) MarkOutboxSent(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.MarkOutboxSent(ctx, id); err != nil {
		return fmt.Errorf("failed to mark outbox event %s sent: %w", id, err)
	}
	return nil
}
