package service

import (
	"github.com/mcdev12/pickbattle/go/internal/battle/engine"
	"github.com/mcdev12/pickbattle/go/internal/battle/matchmaking"
	"github.com/mcdev12/pickbattle/go/internal/battle/tracker"
	"github.com/mcdev12/pickbattle/go/internal/models"
)

type RunMatchmakingRequest struct {
	Sport string `json:"sport"`
}

type RunMatchmakingResponse struct {
	Result matchmaking.RunResult `json:"result"`
}

type RunQuarterTrackerRequest struct{}

type RunQuarterTrackerResponse struct {
	Result tracker.TickResult `json:"result"`
}

// ResolveQuarterRequest resolves a quarter from its stored snapshot, or
// from Stats when the operator supplies one.
type ResolveQuarterRequest struct {
	BattleID string               `json:"battle_id"`
	Quarter  int                  `json:"quarter"`
	Stats    *models.QuarterStats `json:"stats,omitempty"`
}

type ResolveQuarterResponse struct {
	Outcome QuarterOutcome `json:"outcome"`
}

type GetBattleRequest struct {
	BattleID string `json:"battle_id"`
}

type GetBattleResponse struct {
	Battle *models.BattleMatchup `json:"battle"`
}

// QuarterOutcome is the wire form of a resolved quarter.
type QuarterOutcome struct {
	Quarter       int                 `json:"quarter"`
	DamageTotal   float64             `json:"damage_total"`
	LeftDamage    int                 `json:"left_damage"`
	RightDamage   int                 `json:"right_damage"`
	LeftHP        int                 `json:"left_hp"`
	RightHP       int                 `json:"right_hp"`
	LeftScore     int                 `json:"left_score"`
	RightScore    int                 `json:"right_score"`
	Status        models.BattleStatus `json:"status"`
	Winner        *models.Winner      `json:"winner,omitempty"`
	FinalBlowSide *models.Side        `json:"final_blow_side,omitempty"`
	Knockout      bool                `json:"knockout"`
}

func outcomeToWire(o *engine.Outcome) QuarterOutcome {
	return QuarterOutcome{
		Quarter:       o.Quarter,
		DamageTotal:   o.Damage.Total,
		LeftDamage:    o.Damage.LeftDamage,
		RightDamage:   o.Damage.RightDamage,
		LeftHP:        o.LeftHP,
		RightHP:       o.RightHP,
		LeftScore:     o.LeftScore,
		RightScore:    o.RightScore,
		Status:        o.Status,
		Winner:        o.Winner,
		FinalBlowSide: o.FinalBlowSide,
		Knockout:      o.Knockout,
	}
}
