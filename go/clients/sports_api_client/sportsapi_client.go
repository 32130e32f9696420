package sports_api_client

import (
	"github.com/mcdev12/pickbattle/go/clients"
)

type SportsApiClient struct {
	*clients.BaseClient
}

func NewSportsApiClient(apiKey string) *SportsApiClient {
	return NewSportsApiClientWithBaseURL(BaseURL, apiKey)
}

// NewSportsApiClientWithBaseURL points the client at another host, used
// by tests and proxies.
func NewSportsApiClientWithBaseURL(baseURL, apiKey string) *SportsApiClient {
	client := &SportsApiClient{
		BaseClient: clients.NewBaseClient(baseURL),
	}

	client.SetHeader(RapidAPIKeyHeader, apiKey)
	client.SetHeader(RapidAPIHostHeader, RapidAPIHost)

	return client
}
