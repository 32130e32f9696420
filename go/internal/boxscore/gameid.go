package boxscore

import (
	"time"
	_ "time/tzdata"

	"github.com/rs/zerolog/log"
)

// leagueLocation is where NBA schedules put their calendar dates.
var leagueLocation = loadLocation("America/New_York")

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warn().Err(err).Str("location", name).Msg("falling back to UTC for game dates")
		return time.UTC
	}
	return loc
}

// LocalDate returns the league calendar date a game starts on. A 7:30pm ET
// tip is 00:30 UTC the next day but belongs to the earlier date.
func LocalDate(start time.Time) time.Time {
	return start.In(leagueLocation)
}
