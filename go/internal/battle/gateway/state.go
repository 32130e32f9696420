package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mcdev12/pickbattle/go/internal/models"
)

// StateProvider loads a battle for the initial frame of a subscription.
type StateProvider interface {
	GetBattle(ctx context.Context, id uuid.UUID) (*models.BattleMatchup, error)
}

// BattleState is the client view of a stored battle.
type BattleState struct {
	BattleID       string              `json:"battle_id"`
	Status         models.BattleStatus `json:"status"`
	CurrentQuarter int                 `json:"current_quarter"`
	LeftTeam       string              `json:"left_team"`
	RightTeam      string              `json:"right_team"`
	LeftHP         int                 `json:"left_hp"`
	RightHP        int                 `json:"right_hp"`
	LeftScore      int                 `json:"left_score"`
	RightScore     int                 `json:"right_score"`
	Winner         *models.Winner      `json:"winner,omitempty"`
	FinalBlowSide  *models.Side        `json:"final_blow_side,omitempty"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

func NewBattleState(b *models.BattleMatchup) BattleState {
	return BattleState{
		BattleID:       b.ID.String(),
		Status:         b.Status,
		CurrentQuarter: b.CurrentQuarter,
		LeftTeam:       b.LeftTeam,
		RightTeam:      b.RightTeam,
		LeftHP:         b.LeftHP,
		RightHP:        b.RightHP,
		LeftScore:      b.LeftScore,
		RightScore:     b.RightScore,
		Winner:         b.Winner,
		FinalBlowSide:  b.FinalBlowSide,
		UpdatedAt:      b.UpdatedAt,
	}
}

func stateEvent(b *models.BattleMatchup, at time.Time) (*BattleEvent, error) {
	data, err := json.Marshal(NewBattleState(b))
	if err != nil {
		return nil, fmt.Errorf("marshal battle state: %w", err)
	}
	return &BattleEvent{
		ID:        uuid.New().String(),
		BattleID:  b.ID.String(),
		Type:      EventTypeBattleState,
		Timestamp: at,
		Data:      data,
	}, nil
}
