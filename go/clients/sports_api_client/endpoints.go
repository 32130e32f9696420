package sports_api_client

const (
	// Base URL
	BaseURL = "https://tank01-fantasy-stats.p.rapidapi.com"

	// API Endpoints
	BoxScoreEndpoint   = "/getNBABoxScore"
	ScheduleEndpoint   = "/getNBAGamesForDate"
	LineScoreHomeKey   = "home"
	LineScoreAwayKey   = "away"
	GameIDDateLayout   = "20060102"
	StatusCodeAccepted = 200

	// Headers
	RapidAPIKeyHeader  = "X-RapidAPI-Key"
	RapidAPIHostHeader = "X-RapidAPI-Host"
	RapidAPIHost       = "tank01-fantasy-stats.p.rapidapi.com"
)
