package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// StartingHP is the health each capper enters a battle with.
	StartingHP = 100

	// RegulationQuarters have dedicated progress columns on a battle.
	RegulationQuarters = 4

	// MaxQuarter is the last period the state machine accepts (OT4).
	MaxQuarter = 8
)

type BattleStatus string

const (
	BattleStatusScheduled    BattleStatus = "SCHEDULED"
	BattleStatusQ2InProgress BattleStatus = "Q2_IN_PROGRESS"
	BattleStatusHalftime     BattleStatus = "HALFTIME"
	BattleStatusQ4InProgress BattleStatus = "Q4_IN_PROGRESS"

	// OT1 is never produced by quarter resolution. An operator sets it to
	// reopen a battle that ended level after regulation.
	BattleStatusOT1InProgress BattleStatus = "OT1_IN_PROGRESS"
	BattleStatusOT2InProgress BattleStatus = "OT2_IN_PROGRESS"
	BattleStatusOT3InProgress BattleStatus = "OT3_IN_PROGRESS"
	BattleStatusOT4InProgress BattleStatus = "OT4_IN_PROGRESS"
	BattleStatusGameOver      BattleStatus = "GAME_OVER"
)

// Side is one half of a battle. Left is always the home team's backer.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Winner is a Side or a tie.
type Winner string

const (
	WinnerLeft  Winner = "left"
	WinnerRight Winner = "right"
	WinnerTie   Winner = "tie"
)

// QuarterProgress tracks one regulation quarter of a battle.
type QuarterProgress struct {
	Complete bool          `json:"complete"`
	Stats    *QuarterStats `json:"stats,omitempty"`
	EndTime  *time.Time    `json:"end_time,omitempty"`
}

// BattleMatchup is a head-to-head battle between two cappers who took
// opposite sides of the same spread.
type BattleMatchup struct {
	ID     uuid.UUID `json:"id"`
	GameID uuid.UUID `json:"game_id"`
	Sport  string    `json:"sport"`

	LeftCapperID  uuid.UUID `json:"left_capper_id"`
	RightCapperID uuid.UUID `json:"right_capper_id"`
	LeftTeam      string    `json:"left_team"`
	RightTeam     string    `json:"right_team"`
	LeftPickID    uuid.UUID `json:"left_pick_id"`
	RightPickID   uuid.UUID `json:"right_pick_id"`

	Spread        decimal.NullDecimal `json:"spread"`
	GameStartTime time.Time           `json:"game_start_time"`

	LeftHP     int `json:"left_hp"`
	RightHP    int `json:"right_hp"`
	LeftScore  int `json:"left_score"`
	RightScore int `json:"right_score"`

	Quarters       [RegulationQuarters]QuarterProgress `json:"quarters"`
	Overtime       map[int]QuarterStats                `json:"overtime,omitempty"`
	CurrentQuarter int                                 `json:"current_quarter"`

	Status        BattleStatus `json:"status"`
	Winner        *Winner      `json:"winner,omitempty"`
	FinalBlowSide *Side        `json:"final_blow_side,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snapshot returns the stored stats for quarter n, or nil when none were
// captured.
func (b *BattleMatchup) Snapshot(n int) *QuarterStats {
	if n >= 1 && n <= RegulationQuarters {
		return b.Quarters[n-1].Stats
	}
	if s, ok := b.Overtime[n]; ok {
		return &s
	}
	return nil
}

// QuarterComplete reports whether quarter n has been resolved.
func (b *BattleMatchup) QuarterComplete(n int) bool {
	if n >= 1 && n <= RegulationQuarters {
		return b.Quarters[n-1].Complete
	}
	return n <= b.CurrentQuarter
}

func (b *BattleMatchup) IsOver() bool {
	return b.Status == BattleStatusGameOver
}
