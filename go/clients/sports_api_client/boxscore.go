package sports_api_client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Count is a stat counter. Tank01 sends most numbers as strings.
type Count int

func (c *Count) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*c = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("count %q: %w", s, err)
	}
	*c = Count(f)
	return nil
}

// PlayerStat is one player's cumulative line for the game.
type PlayerStat struct {
	PlayerID string `json:"playerID"`
	LongName string `json:"longName"`
	TeamAbv  string `json:"teamAbv"`
	Team     string `json:"team"`
	Mins     Count  `json:"mins"`
	Pts      Count  `json:"pts"`
	Reb      Count  `json:"reb"`
	Ast      Count  `json:"ast"`
	Blk      Count  `json:"blk"`
	Fgm      Count  `json:"fgm"`
	Tptfgm   Count  `json:"tptfgm"`
	Ftm      Count  `json:"ftm"`
}

// Abbreviation returns the player's team code.
func (p PlayerStat) Abbreviation() string {
	if p.TeamAbv != "" {
		return p.TeamAbv
	}
	return p.Team
}

// LineScoreSide holds per-period points keyed "1Q".."4Q", "OT"... plus
// teamAbv and totalPts.
type LineScoreSide map[string]json.RawMessage

// TeamAbv returns the side's team code.
func (l LineScoreSide) TeamAbv() string {
	var s string
	if raw, ok := l["teamAbv"]; ok {
		_ = json.Unmarshal(raw, &s)
	}
	return s
}

// Periods maps period number to points. Overtimes follow regulation, so
// the first overtime is period 5.
func (l LineScoreSide) Periods() (map[int]int, error) {
	out := make(map[int]int)
	for key, raw := range l {
		n, ok := periodNumber(key)
		if !ok || unplayed(raw) {
			continue
		}
		var c Count
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("period %s: %w", key, err)
		}
		out[n] = int(c)
	}
	return out, nil
}

// unplayed reports whether a period cell is blank, which Tank01 sends for
// periods that have not started.
func unplayed(raw json.RawMessage) bool {
	v := strings.TrimSpace(string(raw))
	return v == `""` || v == "null"
}

func periodNumber(key string) (int, bool) {
	switch {
	case strings.HasSuffix(key, "Q"):
		n, err := strconv.Atoi(strings.TrimSuffix(key, "Q"))
		return n, err == nil && n > 0
	case strings.Contains(key, "OT"):
		rest := strings.Replace(key, "OT", "", 1)
		if rest == "" {
			return 5, true
		}
		n, err := strconv.Atoi(rest)
		return 4 + n, err == nil && n > 0
	}
	return 0, false
}

type BoxScore struct {
	GameID      string                   `json:"gameID"`
	GameStatus  string                   `json:"gameStatus"`
	Home        string                   `json:"home"`
	Away        string                   `json:"away"`
	LineScore   map[string]LineScoreSide `json:"lineScore"`
	PlayerStats map[string]PlayerStat    `json:"playerStats"`
	Error       string                   `json:"error"`
}

type BoxScoreResponse struct {
	StatusCode int      `json:"statusCode"`
	Body       BoxScore `json:"body"`
}

// GameID builds Tank01's game identifier, YYYYMMDD_AWAY@HOME. The date is
// the game's local calendar date.
func GameID(date time.Time, away, home string) string {
	return fmt.Sprintf("%s_%s@%s", date.Format(GameIDDateLayout), away, home)
}

// GetNBABoxScore fetches the live or final box score for a game.
func (c *SportsApiClient) GetNBABoxScore(ctx context.Context, gameID string) (*BoxScore, error) {
	endpoint := fmt.Sprintf("%s?gameID=%s", BoxScoreEndpoint, url.QueryEscape(gameID))
	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get box score: %w", err)
	}

	var response BoxScoreResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}

	if response.StatusCode != 0 && response.StatusCode != StatusCodeAccepted {
		return nil, fmt.Errorf("API returned status %d for game %s", response.StatusCode, gameID)
	}
	if response.Body.Error != "" {
		return nil, fmt.Errorf("API returned error for game %s: %s", gameID, response.Body.Error)
	}

	return &response.Body, nil
}
