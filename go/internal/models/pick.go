package models

import (
	"time"

	"github.com/google/uuid"
)

type PickType string

const (
	PickTypeSpread    PickType = "spread"
	PickTypeMoneyline PickType = "moneyline"
	PickTypeTotal     PickType = "total"
)

type PickStatus string

const (
	PickStatusPending PickStatus = "pending"
	PickStatusWon     PickStatus = "won"
	PickStatusLost    PickStatus = "lost"
	PickStatusPush    PickStatus = "push"
)

// PickSide is the explicit side a pick was placed on, when the pick
// service recorded one.
type PickSide string

const (
	PickSideHome PickSide = "home"
	PickSideAway PickSide = "away"
)

// Pick is a capper's wager on a game. Battles only read picks.
type Pick struct {
	ID        uuid.UUID  `json:"id"`
	GameID    uuid.UUID  `json:"game_id"`
	CapperID  uuid.UUID  `json:"capper_id"`
	PickType  PickType   `json:"pick_type"`
	Selection string     `json:"selection"`
	Side      *PickSide  `json:"side,omitempty"`
	Status    PickStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}
