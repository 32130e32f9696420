package boxscore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mcdev12/pickbattle/go/clients"
	espn "github.com/mcdev12/pickbattle/go/clients/espn_client"
	"github.com/mcdev12/pickbattle/go/internal/models"
)

type espnClient interface {
	FetchScoreboard(ctx context.Context, sportPath string, date time.Time) (map[string]interface{}, error)
	FetchGameSummary(ctx context.Context, sportPath, eventID string) (map[string]interface{}, error)
}

// ESPNProvider resolves a game on ESPN's scoreboard and reads its summary.
// Its game ids look like 20240115:BOS@LAL.
type ESPNProvider struct {
	client    espnClient
	sportPath string
}

func NewESPNProvider(client espnClient) *ESPNProvider {
	return &ESPNProvider{client: client, sportPath: espn.NBASportPath}
}

func (p *ESPNProvider) Source() clients.ExternalSource {
	return clients.ExternalSourceESPN
}

func (p *ESPNProvider) GameID(game models.Game) string {
	return fmt.Sprintf("%s:%s@%s",
		LocalDate(game.StartTime).Format(espn.ScoreboardDateLayout),
		game.AwayTeam.Abbreviation,
		game.HomeTeam.Abbreviation,
	)
}

func (p *ESPNProvider) FetchBoxScore(ctx context.Context, gameID string) (*BoxScore, error) {
	date, away, home, err := splitESPNGameID(gameID)
	if err != nil {
		return nil, err
	}

	scoreboard, err := p.client.FetchScoreboard(ctx, p.sportPath, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	eventID, err := espn.FindEvent(scoreboard, home, away)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	raw, err := p.client.FetchGameSummary(ctx, p.sportPath, eventID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	summary, err := espn.ParseSummary(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	box := &BoxScore{
		Source:      p.Source(),
		GameID:      gameID,
		HomeAbbr:    summary.HomeAbbr,
		AwayAbbr:    summary.AwayAbbr,
		HomePeriods: summary.HomePeriods,
		AwayPeriods: summary.AwayPeriods,
	}
	for _, a := range summary.Athletes {
		line := PlayerCounters{
			Name:              a.Name,
			FieldGoalsMade:    a.FieldGoalsMade,
			ThreePointersMade: a.ThreePointersMade,
			FreeThrowsMade:    a.FreeThrowsMade,
			Rebounds:          a.Rebounds,
			Assists:           a.Assists,
			Blocks:            a.Blocks,
		}
		isHome, known := box.IsHome(a.TeamAbbr)
		switch {
		case !known:
			continue
		case isHome:
			box.HomePlayers = append(box.HomePlayers, line)
		default:
			box.AwayPlayers = append(box.AwayPlayers, line)
		}
	}
	return box, nil
}

func splitESPNGameID(gameID string) (date time.Time, away, home string, err error) {
	datePart, matchup, ok := strings.Cut(gameID, ":")
	if !ok {
		return time.Time{}, "", "", fmt.Errorf("%w: bad espn game id %q", ErrMalformed, gameID)
	}
	away, home, ok = strings.Cut(matchup, "@")
	if !ok || away == "" || home == "" {
		return time.Time{}, "", "", fmt.Errorf("%w: bad espn game id %q", ErrMalformed, gameID)
	}
	date, err = time.Parse(espn.ScoreboardDateLayout, datePart)
	if err != nil {
		return time.Time{}, "", "", fmt.Errorf("%w: bad espn game date %q", ErrMalformed, datePart)
	}
	return date, away, home, nil
}

// sortPlayers orders lines by name so map-backed feeds stay deterministic.
func sortPlayers(lines []PlayerCounters) {
	sort.Slice(lines, func(i, j int) bool { return lines[i].Name < lines[j].Name })
}
