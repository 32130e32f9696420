// Package outbox relays battle events from the transactional outbox table
// to NATS JetStream.
package outbox

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OutboxEvent is one unsent row of battle_outbox.
type OutboxEvent struct {
	ID        uuid.UUID       `json:"id"`
	BattleID  uuid.UUID       `json:"battle_id"`
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// Publisher is an interface that defines our publisher.
type Publisher interface {
	Publish(ctx context.Context, event OutboxEvent) error
}

// EventStore is the slice of the outbox table the relay reads and marks.
type EventStore interface {
	FetchOutboxByID(ctx context.Context, id uuid.UUID) (*OutboxEvent, error)
	FetchUnsentOutbox(ctx context.Context, limit int32) ([]OutboxEvent, error)
	MarkOutboxSent(ctx context.Context, id uuid.UUID) error
}
