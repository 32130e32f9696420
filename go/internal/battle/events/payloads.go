package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event types written to the battle outbox and published on
// battle.events.<type>.
const (
	EventTypeBattleCreated   = "BattleCreated"
	EventTypeQuarterResolved = "QuarterResolved"
	EventTypeBattleFinished  = "BattleFinished"
)

// Envelope is an event ready for the outbox table.
type Envelope struct {
	Type    string
	Payload json.RawMessage
}

// New marshals a payload into an Envelope.
func New(eventType string, payload interface{}) (Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return Envelope{Type: eventType, Payload: raw}, nil
}

// BattleCreatedPayload is the payload for a BattleCreated event
type BattleCreatedPayload struct {
	BattleID      string    `json:"battle_id"`
	GameID        string    `json:"game_id"`
	LeftCapperID  string    `json:"left_capper_id"`
	RightCapperID string    `json:"right_capper_id"`
	LeftTeam      string    `json:"left_team"`
	RightTeam     string    `json:"right_team"`
	Spread        *string   `json:"spread,omitempty"`
	GameStartTime time.Time `json:"game_start_time"`
	CreatedAt     time.Time `json:"created_at"`
}

// QuarterResolvedPayload is the payload for a QuarterResolved event
type QuarterResolvedPayload struct {
	BattleID    string    `json:"battle_id"`
	Quarter     int       `json:"quarter"`
	DamageTotal float64   `json:"damage_total"`
	LeftDamage  int       `json:"left_damage"`
	RightDamage int       `json:"right_damage"`
	LeftHP      int       `json:"left_hp"`
	RightHP     int       `json:"right_hp"`
	LeftScore   int       `json:"left_score"`
	RightScore  int       `json:"right_score"`
	Status      string    `json:"status"`
	ResolvedAt  time.Time `json:"resolved_at"`
}

// BattleFinishedPayload is the payload for a BattleFinished event
type BattleFinishedPayload struct {
	BattleID      string    `json:"battle_id"`
	Winner        string    `json:"winner"`
	FinalBlowSide *string   `json:"final_blow_side,omitempty"`
	Knockout      bool      `json:"knockout"`
	Quarter       int       `json:"quarter"`
	LeftHP        int       `json:"left_hp"`
	RightHP       int       `json:"right_hp"`
	FinishedAt    time.Time `json:"finished_at"`
}

// Message is the envelope published to JetStream for every outbox row.
type Message struct {
	EventID   string          `json:"eventId"`
	EventType string          `json:"eventType"`
	BattleID  string          `json:"battleId"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// Subject returns the JetStream subject for an event type.
func Subject(prefix, eventType string) string {
	return fmt.Sprintf("%s.%s", prefix, eventType)
}
