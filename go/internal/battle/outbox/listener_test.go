package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/pickbattle/go/internal/battle/events"
)

type memStore struct {
	rows map[uuid.UUID]OutboxEvent
	sent map[uuid.UUID]bool
}

func newMemStore(evts ...OutboxEvent) *memStore {
	s := &memStore{rows: make(map[uuid.UUID]OutboxEvent), sent: make(map[uuid.UUID]bool)}
	for _, e := range evts {
		s.rows[e.ID] = e
	}
	return s
}

func (s *memStore) FetchOutboxByID(_ context.Context, id uuid.UUID) (*OutboxEvent, error) {
	e, ok := s.rows[id]
	if !ok || s.sent[id] {
		return nil, ErrAlreadySent
	}
	return &e, nil
}

func (s *memStore) FetchUnsentOutbox(_ context.Context, limit int32) ([]OutboxEvent, error) {
	var out []OutboxEvent
	for id, e := range s.rows {
		if !s.sent[id] && int32(len(out)) < limit {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *memStore) MarkOutboxSent(_ context.Context, id uuid.UUID) error {
	s.sent[id] = true
	return nil
}

type flakyPublisher struct {
	failures  int
	published []OutboxEvent
}

func (p *flakyPublisher) Publish(_ context.Context, e OutboxEvent) error {
	if p.failures > 0 {
		p.failures--
		return errors.New("nats: no responders")
	}
	p.published = append(p.published, e)
	return nil
}

func testConfig() ListenerConfig {
	cfg := DefaultListenerConfig()
	cfg.RetryDelay = time.Millisecond
	cfg.MaxRetries = 2
	return cfg
}

func outboxEvent(eventType string) OutboxEvent {
	return OutboxEvent{
		ID:        uuid.New(),
		BattleID:  uuid.New(),
		EventType: eventType,
		Payload:   json.RawMessage(`{"quarter":1}`),
	}
}

func TestHandleNotificationPublishesAndMarks(t *testing.T) {
	e := outboxEvent(events.EventTypeQuarterResolved)
	store := newMemStore(e)
	pub := &flakyPublisher{failures: 1}
	relay := NewRelay(store, pub, testConfig())

	require.NoError(t, relay.HandleNotification(context.Background(), e.ID.String()))
	require.Len(t, pub.published, 1)
	assert.Equal(t, e.ID, pub.published[0].ID)
	assert.True(t, store.sent[e.ID])

	// A second notification for the same row is a no-op.
	require.NoError(t, relay.HandleNotification(context.Background(), e.ID.String()))
	assert.Len(t, pub.published, 1)
}

func TestHandleNotificationBadPayload(t *testing.T) {
	relay := NewRelay(newMemStore(), &flakyPublisher{}, testConfig())
	assert.Error(t, relay.HandleNotification(context.Background(), "not-a-uuid"))
}

func TestPublishGivesUp(t *testing.T) {
	e := outboxEvent(events.EventTypeBattleCreated)
	store := newMemStore(e)
	relay := NewRelay(store, &flakyPublisher{failures: 10}, testConfig())

	err := relay.HandleNotification(context.Background(), e.ID.String())
	assert.Error(t, err)
	assert.False(t, store.sent[e.ID])
}

func TestProcessUnsent(t *testing.T) {
	store := newMemStore(
		outboxEvent(events.EventTypeBattleCreated),
		outboxEvent(events.EventTypeQuarterResolved),
		outboxEvent(events.EventTypeBattleFinished),
	)
	pub := &flakyPublisher{}
	relay := NewRelay(store, pub, testConfig())

	n, err := relay.ProcessUnsent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Len(t, store.sent, 3)

	n, err = relay.ProcessUnsent(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestNewMessageEnvelope(t *testing.T) {
	e := outboxEvent(events.EventTypeBattleFinished)
	at := time.Date(2026, 1, 10, 3, 0, 0, 0, time.UTC)

	msg, err := NewMessage(DefaultSubjectPrefix, e, at)
	require.NoError(t, err)
	assert.Equal(t, "battle.events.BattleFinished", msg.Subject)
	assert.Equal(t, e.BattleID.String(), msg.Header.Get("Battle-ID"))
	assert.Equal(t, e.ID.String(), msg.Header.Get("Event-ID"))

	var env events.Message
	require.NoError(t, json.Unmarshal(msg.Data, &env))
	assert.Equal(t, e.ID.String(), env.EventID)
	assert.Equal(t, e.BattleID.String(), env.BattleID)
	assert.Equal(t, events.EventTypeBattleFinished, env.EventType)
	assert.True(t, at.Equal(env.Timestamp))
	assert.JSONEq(t, `{"quarter":1}`, string(env.Payload))
}

func TestStreamConfig(t *testing.T) {
	sc := DefaultJetStreamConfig().StreamConfig()
	assert.Equal(t, "BATTLE_EVENTS", sc.Name)
	assert.Equal(t, []string{"battle.events.>"}, sc.Subjects)
}
