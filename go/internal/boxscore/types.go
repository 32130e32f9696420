// Package boxscore turns provider feeds into one cumulative box score
// shape the quarter tracker can read.
package boxscore

import (
	"context"
	"errors"
	"strings"

	"github.com/mcdev12/pickbattle/go/clients"
	"github.com/mcdev12/pickbattle/go/internal/models"
)

var (
	// ErrUnavailable means the provider could not be reached or refused.
	ErrUnavailable = errors.New("stats provider unavailable")

	// ErrPeriodMissing means the box score has no entry for the period yet.
	ErrPeriodMissing = errors.New("period not in box score")

	// ErrMalformed means the box score could not be mapped onto the game.
	ErrMalformed = errors.New("malformed box score")
)

// PlayerCounters are a player's cumulative provider counters for a game.
type PlayerCounters struct {
	Name              string `json:"name"`
	FieldGoalsMade    int    `json:"fgm"`
	ThreePointersMade int    `json:"tpm"`
	FreeThrowsMade    int    `json:"ftm"`
	Rebounds          int    `json:"reb"`
	Assists           int    `json:"ast"`
	Blocks            int    `json:"blk"`
}

// BoxScore is a provider-neutral cumulative box score.
type BoxScore struct {
	Source      clients.ExternalSource `json:"source"`
	GameID      string                 `json:"game_id"`
	HomeAbbr    string                 `json:"home_abbr"`
	AwayAbbr    string                 `json:"away_abbr"`
	HomePeriods map[int]int            `json:"home_periods"`
	AwayPeriods map[int]int            `json:"away_periods"`
	HomePlayers []PlayerCounters       `json:"home_players"`
	AwayPlayers []PlayerCounters       `json:"away_players"`
}

// Period returns each team's points in period n.
func (b *BoxScore) Period(n int) (home, away int, ok bool) {
	home, hok := b.HomePeriods[n]
	away, aok := b.AwayPeriods[n]
	return home, away, hok && aok
}

// IsHome reports whether abbr names the home team. The second result is
// false when abbr names neither team.
func (b *BoxScore) IsHome(abbr string) (home bool, known bool) {
	switch {
	case strings.EqualFold(abbr, b.HomeAbbr):
		return true, true
	case strings.EqualFold(abbr, b.AwayAbbr):
		return false, true
	}
	return false, false
}

// Provider fetches box scores from one upstream.
type Provider interface {
	Source() clients.ExternalSource
	// GameID derives the provider's identifier for a game.
	GameID(game models.Game) string
	FetchBoxScore(ctx context.Context, gameID string) (*BoxScore, error)
}
