// Package matchmaking pairs cappers who took opposite sides of the same
// spread into battles.
package matchmaking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/pickbattle/go/internal/battle/events"
	"github.com/mcdev12/pickbattle/go/internal/models"
)

// Repository defines what the matchmaker needs from persistence
type Repository interface {
	ListUpcomingGames(ctx context.Context, sport string, after time.Time) ([]models.Game, error)
	ListPendingSpreadPicks(ctx context.Context, gameID uuid.UUID) ([]models.Pick, error)
	BattleExists(ctx context.Context, gameID, capperA, capperB uuid.UUID) (bool, error)
	CreateBattle(ctx context.Context, b *models.BattleMatchup, evts []events.Envelope) (bool, error)
}

// RunResult aggregates one matchmaking pass.
type RunResult struct {
	GamesScanned    int `json:"games_scanned"`
	PairsConsidered int `json:"pairs_considered"`
	Created         int `json:"created"`
	Skipped         int `json:"skipped"`
	Errors          int `json:"errors"`
}

type Matchmaker struct {
	repo  Repository
	clock clockwork.Clock
}

func New(repo Repository, clock clockwork.Clock) *Matchmaker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Matchmaker{repo: repo, clock: clock}
}

// Run scans the sport's scheduled future games and creates a battle for
// every home/away pair of opposing pending spread picks that doesn't have
// one yet. Failures are counted per game and per pair; the scan goes on.
func (m *Matchmaker) Run(ctx context.Context, sport string) (*RunResult, error) {
	games, err := m.repo.ListUpcomingGames(ctx, sport, m.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming games: %w", err)
	}

	result := &RunResult{}
	for i := range games {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.GamesScanned++
		m.matchGame(ctx, &games[i], result)
	}

	log.Info().
		Str("sport", sport).
		Int("games", result.GamesScanned).
		Int("pairs", result.PairsConsidered).
		Int("created", result.Created).
		Int("skipped", result.Skipped).
		Int("errors", result.Errors).
		Msg("matchmaking run finished")
	return result, nil
}

func (m *Matchmaker) matchGame(ctx context.Context, game *models.Game, result *RunResult) {
	picks, err := m.repo.ListPendingSpreadPicks(ctx, game.ID)
	if err != nil {
		result.Errors++
		log.Error().Err(err).Str("game_id", game.ID.String()).Msg("failed to load picks for game")
		return
	}

	home, away := PartitionPicks(game, picks)
	if len(home) == 0 || len(away) == 0 {
		return
	}

	// Catches pairs repeated within this run, e.g. a capper with two
	// picks on the same side.
	seen := make(map[pairKey]struct{})
	for _, h := range home {
		for _, a := range away {
			if h.CapperID == a.CapperID {
				continue
			}
			result.PairsConsidered++

			key := newPairKey(h.CapperID, a.CapperID)
			if _, dup := seen[key]; dup {
				result.Skipped++
				continue
			}
			seen[key] = struct{}{}

			created, err := m.createPair(ctx, game, h, a)
			switch {
			case err != nil:
				result.Errors++
				log.Error().
					Err(err).
					Str("game_id", game.ID.String()).
					Str("home_capper", h.CapperID.String()).
					Str("away_capper", a.CapperID.String()).
					Msg("failed to create battle")
			case created:
				result.Created++
			default:
				result.Skipped++
			}
		}
	}
}

func (m *Matchmaker) createPair(ctx context.Context, game *models.Game, home, away models.Pick) (bool, error) {
	exists, err := m.repo.BattleExists(ctx, game.ID, home.CapperID, away.CapperID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	b := NewBattle(game, home, away, m.clock.Now().UTC())
	evt, err := battleCreatedEvent(b)
	if err != nil {
		return false, err
	}

	created, err := m.repo.CreateBattle(ctx, b, []events.Envelope{evt})
	if err != nil {
		return false, err
	}
	if created {
		log.Info().
			Str("battle_id", b.ID.String()).
			Str("game_id", game.ID.String()).
			Str("left_capper", b.LeftCapperID.String()).
			Str("right_capper", b.RightCapperID.String()).
			Msg("battle created")
	}
	return created, nil
}

// NewBattle seats the home backer on the left and the away backer on the
// right at full health.
func NewBattle(game *models.Game, home, away models.Pick, now time.Time) *models.BattleMatchup {
	return &models.BattleMatchup{
		ID:            uuid.New(),
		GameID:        game.ID,
		Sport:         game.Sport,
		LeftCapperID:  home.CapperID,
		RightCapperID: away.CapperID,
		LeftTeam:      game.HomeTeam.Abbreviation,
		RightTeam:     game.AwayTeam.Abbreviation,
		LeftPickID:    home.ID,
		RightPickID:   away.ID,
		Spread:        game.Spread,
		GameStartTime: game.StartTime,
		LeftHP:        models.StartingHP,
		RightHP:       models.StartingHP,
		Status:        models.BattleStatusScheduled,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// PartitionPicks splits picks into home and away backers. An explicit side
// wins; otherwise a selection naming a team's abbreviation backs it, and
// one naming both lands on both sides.
func PartitionPicks(game *models.Game, picks []models.Pick) (home, away []models.Pick) {
	for _, p := range picks {
		if p.Side != nil {
			switch *p.Side {
			case models.PickSideHome:
				home = append(home, p)
			case models.PickSideAway:
				away = append(away, p)
			}
			continue
		}
		if game.HomeTeam.Abbreviation != "" && strings.Contains(p.Selection, game.HomeTeam.Abbreviation) {
			home = append(home, p)
		}
		if game.AwayTeam.Abbreviation != "" && strings.Contains(p.Selection, game.AwayTeam.Abbreviation) {
			away = append(away, p)
		}
	}
	return home, away
}

type pairKey [2]uuid.UUID

func newPairKey(a, b uuid.UUID) pairKey {
	if strings.Compare(a.String(), b.String()) > 0 {
		a, b = b, a
	}
	return pairKey{a, b}
}

func battleCreatedEvent(b *models.BattleMatchup) (events.Envelope, error) {
	var spread *string
	if b.Spread.Valid {
		s := b.Spread.Decimal.String()
		spread = &s
	}
	return events.New(events.EventTypeBattleCreated, events.BattleCreatedPayload{
		BattleID:      b.ID.String(),
		GameID:        b.GameID.String(),
		LeftCapperID:  b.LeftCapperID.String(),
		RightCapperID: b.RightCapperID.String(),
		LeftTeam:      b.LeftTeam,
		RightTeam:     b.RightTeam,
		Spread:        spread,
		GameStartTime: b.GameStartTime,
		CreatedAt:     b.CreatedAt,
	})
}
