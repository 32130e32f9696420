package espn_client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scoreboardFixture = `{
  "events": [
    {"id": "401", "competitions": [{"competitors": [
      {"homeAway": "home", "team": {"abbreviation": "MIA"}},
      {"homeAway": "away", "team": {"abbreviation": "NYK"}}
    ]}]},
    {"id": "402", "competitions": [{"competitors": [
      {"homeAway": "home", "team": {"abbreviation": "LAL"}},
      {"homeAway": "away", "team": {"abbreviation": "BOS"}}
    ]}]}
  ]
}`

const summaryFixture = `{
  "header": {"competitions": [{"competitors": [
    {"homeAway": "home", "team": {"abbreviation": "LAL"}, "linescores": [{"displayValue": "28"}, {"displayValue": "31"}]},
    {"homeAway": "away", "team": {"abbreviation": "BOS"}, "linescores": [{"displayValue": "24"}, {"displayValue": "30"}]}
  ]}]},
  "boxscore": {"players": [
    {"team": {"abbreviation": "LAL"}, "statistics": [{"athletes": [
      {"athlete": {"displayName": "LeBron James"}, "stats": ["20", "14", "1", "5", "6", "5", "1", "1", "2", "5-9", "55.6", "2-4", "50.0", "2-2", "100.0", "1", "+6"]},
      {"athlete": {"displayName": "Bench Guy"}, "didNotPlay": true, "stats": []}
    ]}]},
    {"team": {"abbreviation": "BOS"}, "statistics": [{"athletes": [
      {"athlete": {"displayName": "Jayson Tatum"}, "stats": ["19", "11", "0", "4", "4", "2", "0", "0", "1", "4-10", "40.0", "1-5", "20.0", "2-3", "66.7", "2", "-6"]}
    ]}]}
  ]}
}`

func decode(t *testing.T, s string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(s), &m))
	return m
}

func TestFindEvent(t *testing.T) {
	sb := decode(t, scoreboardFixture)

	id, err := FindEvent(sb, "LAL", "BOS")
	require.NoError(t, err)
	assert.Equal(t, "402", id)

	_, err = FindEvent(sb, "BOS", "LAL")
	assert.Error(t, err)
}

func TestParseSummary(t *testing.T) {
	s, err := ParseSummary(decode(t, summaryFixture))
	require.NoError(t, err)

	assert.Equal(t, "LAL", s.HomeAbbr)
	assert.Equal(t, "BOS", s.AwayAbbr)
	assert.Equal(t, map[int]int{1: 28, 2: 31}, s.HomePeriods)
	assert.Equal(t, map[int]int{1: 24, 2: 30}, s.AwayPeriods)

	require.Len(t, s.Athletes, 2)
	lebron := s.Athletes[0]
	assert.Equal(t, "LeBron James", lebron.Name)
	assert.Equal(t, "LAL", lebron.TeamAbbr)
	assert.Equal(t, 5, lebron.FieldGoalsMade)
	assert.Equal(t, 2, lebron.ThreePointersMade)
	assert.Equal(t, 2, lebron.FreeThrowsMade)
	assert.Equal(t, 6, lebron.Rebounds)
	assert.Equal(t, 1, lebron.Blocks)
}

func TestParseSummaryMissingTeams(t *testing.T) {
	_, err := ParseSummary(decode(t, `{"header": {"competitions": [{"competitors": []}]}}`))
	assert.Error(t, err)

	_, err = ParseSummary(map[string]interface{}{})
	assert.Error(t, err)
}

func TestParseMadeAttempted(t *testing.T) {
	m, a := parseMadeAttempted("10-18")
	assert.Equal(t, 10, m)
	assert.Equal(t, 18, a)

	m, a = parseMadeAttempted("--")
	assert.Zero(t, m)
	assert.Zero(t, a)
}

func TestClientPaths(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.String())
		assert.True(t, strings.HasPrefix(r.Header.Get(UserAgentHeader), "Mozilla"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewEspnClientWithBaseURL(srv.URL)
	_, err := c.FetchScoreboard(context.Background(), NBASportPath, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = c.FetchGameSummary(context.Background(), NBASportPath, "402")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/basketball/nba/scoreboard?dates=20240115",
		"/basketball/nba/summary?event=402",
	}, paths)
}
