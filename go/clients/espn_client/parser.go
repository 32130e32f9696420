package espn_client

import (
	"fmt"
	"strconv"
	"strings"
)

// Athlete is one player's cumulative box score line.
type Athlete struct {
	Name              string
	TeamAbbr          string
	Points            int
	Rebounds          int
	Assists           int
	Blocks            int
	FieldGoalsMade    int
	ThreePointersMade int
	FreeThrowsMade    int
}

// Summary is the part of an ESPN game summary a box score needs.
type Summary struct {
	HomeAbbr    string
	AwayAbbr    string
	HomePeriods map[int]int
	AwayPeriods map[int]int
	Athletes    []Athlete
}

// FindEvent returns the id of the scoreboard event between home and away.
func FindEvent(scoreboard map[string]interface{}, home, away string) (string, error) {
	for _, ev := range extractArray(scoreboard, "events") {
		event, ok := ev.(map[string]interface{})
		if !ok {
			continue
		}
		competitions := extractArray(event, "competitions")
		if len(competitions) == 0 {
			continue
		}
		comp, ok := competitions[0].(map[string]interface{})
		if !ok {
			continue
		}
		h, a := competitorAbbrs(comp)
		if strings.EqualFold(h, home) && strings.EqualFold(a, away) {
			return extractString(event, "id"), nil
		}
	}
	return "", fmt.Errorf("no event for %s@%s on scoreboard", away, home)
}

// ParseSummary extracts team line scores and athlete lines.
func ParseSummary(raw map[string]interface{}) (*Summary, error) {
	header := extractMap(raw, "header")
	competitions := extractArray(header, "competitions")
	if len(competitions) == 0 {
		return nil, fmt.Errorf("no competitions found in summary")
	}
	comp, ok := competitions[0].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("malformed competition")
	}

	s := &Summary{HomePeriods: map[int]int{}, AwayPeriods: map[int]int{}}
	for _, c := range extractArray(comp, "competitors") {
		competitor, ok := c.(map[string]interface{})
		if !ok {
			continue
		}
		abbr := extractString(extractMap(competitor, "team"), "abbreviation")
		periods := parseLinescores(extractArray(competitor, "linescores"))
		switch extractString(competitor, "homeAway") {
		case "home":
			s.HomeAbbr, s.HomePeriods = abbr, periods
		case "away":
			s.AwayAbbr, s.AwayPeriods = abbr, periods
		}
	}
	if s.HomeAbbr == "" || s.AwayAbbr == "" {
		return nil, fmt.Errorf("missing team abbreviations")
	}

	s.Athletes = parseAthletes(extractArray(extractMap(raw, "boxscore"), "players"))
	return s, nil
}

func competitorAbbrs(comp map[string]interface{}) (home, away string) {
	for _, c := range extractArray(comp, "competitors") {
		competitor, ok := c.(map[string]interface{})
		if !ok {
			continue
		}
		abbr := extractString(extractMap(competitor, "team"), "abbreviation")
		switch extractString(competitor, "homeAway") {
		case "home":
			home = abbr
		case "away":
			away = abbr
		}
	}
	return home, away
}

// parseLinescores reads period scores in order. Summary entries carry
// displayValue, scoreboard entries carry value.
func parseLinescores(lines []interface{}) map[int]int {
	out := make(map[int]int, len(lines))
	for i, l := range lines {
		m, ok := l.(map[string]interface{})
		if !ok {
			continue
		}
		if v, ok := m["displayValue"]; ok {
			out[i+1] = parseInt(v)
			continue
		}
		out[i+1] = extractInt(m, "value")
	}
	return out
}

func parseAthletes(teams []interface{}) []Athlete {
	var all []Athlete
	for _, t := range teams {
		teamData, ok := t.(map[string]interface{})
		if !ok {
			continue
		}
		teamAbbr := extractString(extractMap(teamData, "team"), "abbreviation")

		statistics := extractArray(teamData, "statistics")
		if len(statistics) == 0 {
			continue
		}
		// First group has player stats
		group, ok := statistics[0].(map[string]interface{})
		if !ok {
			continue
		}

		for _, a := range extractArray(group, "athletes") {
			athleteData, ok := a.(map[string]interface{})
			if !ok {
				continue
			}
			if didNotPlay, ok := athleteData["didNotPlay"].(bool); ok && didNotPlay {
				continue
			}
			stats := extractArray(athleteData, "stats")
			if len(stats) <= idxFT {
				continue
			}

			fgm, _ := parseMadeAttempted(fmt.Sprint(stats[idxFG]))
			tpm, _ := parseMadeAttempted(fmt.Sprint(stats[idx3PT]))
			ftm, _ := parseMadeAttempted(fmt.Sprint(stats[idxFT]))

			all = append(all, Athlete{
				Name:              extractString(extractMap(athleteData, "athlete"), "displayName"),
				TeamAbbr:          teamAbbr,
				Points:            parseInt(stats[idxPoints]),
				Rebounds:          parseInt(stats[idxReb]),
				Assists:           parseInt(stats[idxAst]),
				Blocks:            parseInt(stats[idxBlk]),
				FieldGoalsMade:    fgm,
				ThreePointersMade: tpm,
				FreeThrowsMade:    ftm,
			})
		}
	}
	return all
}

// parseMadeAttempted splits ESPN's "10-18" shooting format.
func parseMadeAttempted(s string) (made, attempted int) {
	parts := strings.SplitN(s, "-", 2)
	made, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	if len(parts) == 2 {
		attempted, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	return made, attempted
}

// parseInt parses an int from interface{}
func parseInt(v interface{}) int {
	switch val := v.(type) {
	case float64:
		return int(val)
	case string:
		i, _ := strconv.Atoi(val)
		return i
	case int:
		return val
	default:
		return 0
	}
}

// extractString safely extracts a string from a map
func extractString(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if str, ok := v.(string); ok {
			return str
		}
	}
	return ""
}

// extractInt safely extracts an int from a map
func extractInt(m map[string]interface{}, key string) int {
	if v, ok := m[key]; ok {
		return parseInt(v)
	}
	return 0
}

// extractMap safely extracts a map from a map
func extractMap(m map[string]interface{}, key string) map[string]interface{} {
	if v, ok := m[key]; ok {
		if mapVal, ok := v.(map[string]interface{}); ok {
			return mapVal
		}
	}
	return map[string]interface{}{}
}

// extractArray safely extracts an array from a map
func extractArray(m map[string]interface{}, key string) []interface{} {
	if v, ok := m[key]; ok {
		if arrVal, ok := v.([]interface{}); ok {
			return arrVal
		}
	}
	return []interface{}{}
}
