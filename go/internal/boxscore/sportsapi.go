package boxscore

import (
	"context"
	"fmt"

	"github.com/mcdev12/pickbattle/go/clients"
	sportsapi "github.com/mcdev12/pickbattle/go/clients/sports_api_client"
	"github.com/mcdev12/pickbattle/go/internal/models"
)

type tank01Client interface {
	GetNBABoxScore(ctx context.Context, gameID string) (*sportsapi.BoxScore, error)
}

// SportsAPIProvider reads Tank01 box scores.
type SportsAPIProvider struct {
	client tank01Client
}

func NewSportsAPIProvider(client tank01Client) *SportsAPIProvider {
	return &SportsAPIProvider{client: client}
}

func (p *SportsAPIProvider) Source() clients.ExternalSource {
	return clients.ExternalSourceSportsAPI
}

func (p *SportsAPIProvider) GameID(game models.Game) string {
	return sportsapi.GameID(LocalDate(game.StartTime), game.AwayTeam.Abbreviation, game.HomeTeam.Abbreviation)
}

func (p *SportsAPIProvider) FetchBoxScore(ctx context.Context, gameID string) (*BoxScore, error) {
	raw, err := p.client.GetNBABoxScore(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	home, away := raw.LineScore[sportsapi.LineScoreHomeKey], raw.LineScore[sportsapi.LineScoreAwayKey]
	if home == nil || away == nil {
		return nil, fmt.Errorf("%w: %s has no line score", ErrMalformed, gameID)
	}
	homePeriods, err := home.Periods()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	awayPeriods, err := away.Periods()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	box := &BoxScore{
		Source:      p.Source(),
		GameID:      gameID,
		HomeAbbr:    firstNonEmpty(home.TeamAbv(), raw.Home),
		AwayAbbr:    firstNonEmpty(away.TeamAbv(), raw.Away),
		HomePeriods: homePeriods,
		AwayPeriods: awayPeriods,
	}

	for _, ps := range raw.PlayerStats {
		line := PlayerCounters{
			Name:              ps.LongName,
			FieldGoalsMade:    int(ps.Fgm),
			ThreePointersMade: int(ps.Tptfgm),
			FreeThrowsMade:    int(ps.Ftm),
			Rebounds:          int(ps.Reb),
			Assists:           int(ps.Ast),
			Blocks:            int(ps.Blk),
		}
		isHome, known := box.IsHome(ps.Abbreviation())
		switch {
		case !known:
			continue
		case isHome:
			box.HomePlayers = append(box.HomePlayers, line)
		default:
			box.AwayPlayers = append(box.AwayPlayers, line)
		}
	}

	sortPlayers(box.HomePlayers)
	sortPlayers(box.AwayPlayers)
	return box, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
