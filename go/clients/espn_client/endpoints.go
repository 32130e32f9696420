package espn_client

const (
	BaseURL = "https://site.api.espn.com/apis/site/v2/sports"

	NBASportPath = "basketball/nba"

	ScoreboardEndpoint = "/%s/scoreboard?dates=%s"
	SummaryEndpoint    = "/%s/summary?event=%s"

	ScoreboardDateLayout = "20060102"

	UserAgentHeader = "User-Agent"
	UserAgent       = "Mozilla/5.0 (compatible; PickBattleBot/1.0)"
)

// ESPN stat indices for NBA athletes
// MIN, PTS, OREB, DREB, REB, AST, STL, BLK, TO, FG, FG%, 3PT, 3PT%, FT, FT%, PF, +/-
const (
	idxMinutes = 0
	idxPoints  = 1
	idxReb     = 4
	idxAst     = 5
	idxBlk     = 7
	idxFG      = 9
	idx3PT     = 11
	idxFT      = 13
)
