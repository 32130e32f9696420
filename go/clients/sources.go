package clients

// ExternalSource represents different box score providers
type ExternalSource string

const (
	// ExternalSourceSportsAPI is the Tank01 NBA feed served through RapidAPI
	ExternalSourceSportsAPI ExternalSource = "sportsapi"

	// ExternalSourceESPN is ESPN's public site API
	ExternalSourceESPN ExternalSource = "espn"
)

// ExternalSourceConfig holds configuration for external sources
type ExternalSourceConfig struct {
	Source      ExternalSource `json:"source"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Priority    int            `json:"priority"` // Higher priority sources are tried first
	NeedsAPIKey bool           `json:"needs_api_key"`
}

// GetExternalSources returns all known box score sources
func GetExternalSources() map[ExternalSource]ExternalSourceConfig {
	return map[ExternalSource]ExternalSourceConfig{
		ExternalSourceSportsAPI: {
			Source:      ExternalSourceSportsAPI,
			Name:        "Tank01 NBA",
			Description: "Tank01 fantasy stats API via RapidAPI",
			Priority:    100,
			NeedsAPIKey: true,
		},
		ExternalSourceESPN: {
			Source:      ExternalSourceESPN,
			Name:        "ESPN API",
			Description: "ESPN site API scoreboard and summaries",
			Priority:    80,
		},
	}
}

// ValidateExternalSource checks if the source is valid
func ValidateExternalSource(source ExternalSource) bool {
	_, exists := GetExternalSources()[source]
	return exists
}

// GetHighestPrioritySource returns the highest priority source that can
// run with the given credentials.
func GetHighestPrioritySource(haveAPIKey bool) ExternalSource {
	var highest ExternalSource
	var highestPriority int

	for source, config := range GetExternalSources() {
		if config.NeedsAPIKey && !haveAPIKey {
			continue
		}
		if config.Priority > highestPriority {
			highest = source
			highestPriority = config.Priority
		}
	}

	return highest
}
