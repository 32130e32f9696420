package gateway

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mcdev12/pickbattle/go/internal/battle/events"
)

// BattleEvent is what WebSocket clients receive.
type BattleEvent struct {
	ID        string          `json:"id"`
	BattleID  string          `json:"battle_id"`
	Type      EventType       `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

type EventType string

const (
	EventTypeBattleCreated   EventType = events.EventTypeBattleCreated
	EventTypeQuarterResolved EventType = events.EventTypeQuarterResolved
	EventTypeBattleFinished  EventType = events.EventTypeBattleFinished
	// EventTypeBattleState is sent once on connect with the stored battle.
	EventTypeBattleState EventType = "BattleState"
)

// DecodeMessage turns a JetStream message body into a client event.
func DecodeMessage(data []byte) (*BattleEvent, error) {
	var msg events.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("unmarshal event envelope: %w", err)
	}

	var t EventType
	switch msg.EventType {
	case events.EventTypeBattleCreated:
		t = EventTypeBattleCreated
	case events.EventTypeQuarterResolved:
		t = EventTypeQuarterResolved
	case events.EventTypeBattleFinished:
		t = EventTypeBattleFinished
	default:
		return nil, fmt.Errorf("unknown event type: %s", msg.EventType)
	}

	return &BattleEvent{
		ID:        msg.EventID,
		BattleID:  msg.BattleID,
		Type:      t,
		Timestamp: msg.Timestamp,
		Data:      msg.Payload,
	}, nil
}

// ParseEventPayload parses event data into the matching payload struct.
func ParseEventPayload(event *BattleEvent) (interface{}, error) {
	switch event.Type {
	case EventTypeBattleCreated:
		var payload events.BattleCreatedPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			return nil, err
		}
		return payload, nil

	case EventTypeQuarterResolved:
		var payload events.QuarterResolvedPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			return nil, err
		}
		return payload, nil

	case EventTypeBattleFinished:
		var payload events.BattleFinishedPayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			return nil, err
		}
		return payload, nil

	default:
		return nil, nil
	}
}
