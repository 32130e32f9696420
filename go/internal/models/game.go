package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type GameStatus string

const (
	GameStatusScheduled GameStatus = "scheduled"
	GameStatusLive      GameStatus = "live"
	GameStatusFinal     GameStatus = "final"
)

// GameTeam identifies one side of a game.
type GameTeam struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// Game is a real-world fixture that picks and battles hang off of.
type Game struct {
	ID        uuid.UUID           `json:"id"`
	Sport     string              `json:"sport"`
	HomeTeam  GameTeam            `json:"home_team"`
	AwayTeam  GameTeam            `json:"away_team"`
	StartTime time.Time           `json:"start_time"`
	Status    GameStatus          `json:"status"`
	Spread    decimal.NullDecimal `json:"spread"`
}
