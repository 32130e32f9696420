package boxscore

import (
	"fmt"

	"github.com/mcdev12/pickbattle/go/clients"
	espn "github.com/mcdev12/pickbattle/go/clients/espn_client"
	sportsapi "github.com/mcdev12/pickbattle/go/clients/sports_api_client"
)

// NewProvider builds the provider for a configured source. An empty source
// picks the highest priority one the credentials allow.
func NewProvider(source clients.ExternalSource, apiKey string) (Provider, error) {
	if source == "" {
		source = clients.GetHighestPrioritySource(apiKey != "")
	}
	if !clients.ValidateExternalSource(source) {
		return nil, fmt.Errorf("unknown stats source %q", source)
	}

	switch source {
	case clients.ExternalSourceSportsAPI:
		if apiKey == "" {
			return nil, fmt.Errorf("stats source %q needs SPORTS_API_KEY", source)
		}
		return NewSportsAPIProvider(sportsapi.NewSportsApiClient(apiKey)), nil
	case clients.ExternalSourceESPN:
		return NewESPNProvider(espn.NewEspnClient()), nil
	}
	return nil, fmt.Errorf("stats source %q has no provider", source)
}
