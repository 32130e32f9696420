package boxscore

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/pickbattle/go/clients"
	sportsapi "github.com/mcdev12/pickbattle/go/clients/sports_api_client"
	"github.com/mcdev12/pickbattle/go/internal/models"
)

func testGame() models.Game {
	return models.Game{
		ID:        uuid.New(),
		Sport:     "basketball_nba",
		HomeTeam:  models.GameTeam{Name: "Los Angeles Lakers", Abbreviation: "LAL"},
		AwayTeam:  models.GameTeam{Name: "Boston Celtics", Abbreviation: "BOS"},
		StartTime: time.Date(2024, 1, 16, 3, 30, 0, 0, time.UTC), // 10:30pm ET on the 15th
		Status:    models.GameStatusScheduled,
	}
}

type fakeTank01 struct {
	box *sportsapi.BoxScore
	err error
	ids []string
}

func (f *fakeTank01) GetNBABoxScore(_ context.Context, gameID string) (*sportsapi.BoxScore, error) {
	f.ids = append(f.ids, gameID)
	return f.box, f.err
}

func tank01Box(t *testing.T) *sportsapi.BoxScore {
	t.Helper()
	var resp sportsapi.BoxScoreResponse
	require.NoError(t, json.Unmarshal([]byte(`{"statusCode":200,"body":{
		"home":"LAL","away":"BOS",
		"lineScore":{"home":{"1Q":"28","teamAbv":"LAL"},"away":{"1Q":"24","teamAbv":"BOS"}},
		"playerStats":{
			"b":{"longName":"Z Player","teamAbv":"LAL","fgm":"3","tptfgm":"1","ftm":"2","reb":"4","ast":"1","blk":"0"},
			"a":{"longName":"A Player","teamAbv":"LAL","fgm":"1","tptfgm":"0","ftm":"0","reb":"1","ast":"0","blk":"2"},
			"c":{"longName":"Jayson Tatum","teamAbv":"BOS","fgm":"4","tptfgm":"2","ftm":"1","reb":"5","ast":"3","blk":"1"},
			"d":{"longName":"Stray","teamAbv":"NYK","fgm":"9"}
		}}}`), &resp))
	return &resp.Body
}

func TestSportsAPIProviderGameIDUsesLeagueDate(t *testing.T) {
	p := NewSportsAPIProvider(&fakeTank01{})
	assert.Equal(t, "20240115_BOS@LAL", p.GameID(testGame()))
}

func TestSportsAPIProviderFetch(t *testing.T) {
	fake := &fakeTank01{box: tank01Box(t)}
	p := NewSportsAPIProvider(fake)

	box, err := p.FetchBoxScore(context.Background(), "20240115_BOS@LAL")
	require.NoError(t, err)

	assert.Equal(t, clients.ExternalSourceSportsAPI, box.Source)
	home, away, ok := box.Period(1)
	require.True(t, ok)
	assert.Equal(t, 28, home)
	assert.Equal(t, 24, away)
	_, _, ok = box.Period(2)
	assert.False(t, ok)

	require.Len(t, box.HomePlayers, 2)
	assert.Equal(t, "A Player", box.HomePlayers[0].Name)
	assert.Equal(t, 3, box.HomePlayers[1].FieldGoalsMade)
	require.Len(t, box.AwayPlayers, 1)
	assert.Equal(t, 2, box.AwayPlayers[0].ThreePointersMade)
}

func TestSportsAPIProviderErrors(t *testing.T) {
	_, err := NewSportsAPIProvider(&fakeTank01{err: errors.New("timeout")}).
		FetchBoxScore(context.Background(), "x")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = NewSportsAPIProvider(&fakeTank01{box: &sportsapi.BoxScore{}}).
		FetchBoxScore(context.Background(), "x")
	assert.ErrorIs(t, err, ErrMalformed)
}

type fakeESPN struct {
	scoreboard map[string]interface{}
	summary    map[string]interface{}
	dates      []time.Time
	events     []string
}

func (f *fakeESPN) FetchScoreboard(_ context.Context, _ string, date time.Time) (map[string]interface{}, error) {
	f.dates = append(f.dates, date)
	return f.scoreboard, nil
}

func (f *fakeESPN) FetchGameSummary(_ context.Context, _ string, eventID string) (map[string]interface{}, error) {
	f.events = append(f.events, eventID)
	return f.summary, nil
}

func decodeMap(t *testing.T, s string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(s), &m))
	return m
}

func TestESPNProvider(t *testing.T) {
	fake := &fakeESPN{
		scoreboard: decodeMap(t, `{"events":[{"id":"402","competitions":[{"competitors":[
			{"homeAway":"home","team":{"abbreviation":"LAL"}},
			{"homeAway":"away","team":{"abbreviation":"BOS"}}]}]}]}`),
		summary: decodeMap(t, `{
			"header":{"competitions":[{"competitors":[
				{"homeAway":"home","team":{"abbreviation":"LAL"},"linescores":[{"displayValue":"28"}]},
				{"homeAway":"away","team":{"abbreviation":"BOS"},"linescores":[{"displayValue":"24"}]}]}]},
			"boxscore":{"players":[{"team":{"abbreviation":"BOS"},"statistics":[{"athletes":[
				{"athlete":{"displayName":"Jayson Tatum"},"stats":["19","11","0","4","4","2","0","0","1","4-10","40.0","1-5","20.0","2-3","66.7","2","-6"]}]}]}]}}`),
	}
	p := NewESPNProvider(fake)

	id := p.GameID(testGame())
	assert.Equal(t, "20240115:BOS@LAL", id)

	box, err := p.FetchBoxScore(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []string{"402"}, fake.events)
	assert.Equal(t, "2024-01-15", fake.dates[0].Format("2006-01-02"))

	home, away, ok := box.Period(1)
	require.True(t, ok)
	assert.Equal(t, 28, home)
	assert.Equal(t, 24, away)
	require.Len(t, box.AwayPlayers, 1)
	assert.Equal(t, 4, box.AwayPlayers[0].FieldGoalsMade)
	assert.Empty(t, box.HomePlayers)
}

func TestESPNProviderBadGameID(t *testing.T) {
	p := NewESPNProvider(&fakeESPN{})
	for _, id := range []string{"nope", "20240115:BOSLAL", "2024-01-15:BOS@LAL"} {
		_, err := p.FetchBoxScore(context.Background(), id)
		assert.ErrorIs(t, err, ErrMalformed, id)
	}
}

func TestIsHome(t *testing.T) {
	box := &BoxScore{HomeAbbr: "LAL", AwayAbbr: "BOS"}

	home, known := box.IsHome("lal")
	assert.True(t, home)
	assert.True(t, known)

	home, known = box.IsHome("BOS")
	assert.False(t, home)
	assert.True(t, known)

	_, known = box.IsHome("NYK")
	assert.False(t, known)
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider("", "")
	require.NoError(t, err)
	assert.Equal(t, clients.ExternalSourceESPN, p.Source())

	p, err = NewProvider("", "key")
	require.NoError(t, err)
	assert.Equal(t, clients.ExternalSourceSportsAPI, p.Source())

	_, err = NewProvider(clients.ExternalSourceSportsAPI, "")
	assert.Error(t, err)

	_, err = NewProvider("sportradar", "key")
	assert.Error(t, err)
}
