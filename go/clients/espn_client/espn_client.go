package espn_client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mcdev12/pickbattle/go/clients"
)

// EspnClient reads ESPN's public site API.
type EspnClient struct {
	*clients.BaseClient
}

func NewEspnClient() *EspnClient {
	return NewEspnClientWithBaseURL(BaseURL)
}

func NewEspnClientWithBaseURL(baseURL string) *EspnClient {
	client := &EspnClient{
		BaseClient: clients.NewBaseClient(baseURL),
	}
	client.SetHeader(UserAgentHeader, UserAgent)
	client.SetTimeout(15 * time.Second)
	return client
}

// FetchScoreboard fetches the games for a sport on a calendar date.
func (c *EspnClient) FetchScoreboard(ctx context.Context, sportPath string, date time.Time) (map[string]interface{}, error) {
	return c.fetch(ctx, fmt.Sprintf(ScoreboardEndpoint, sportPath, date.Format(ScoreboardDateLayout)))
}

// FetchGameSummary fetches detailed game summary with box scores.
func (c *EspnClient) FetchGameSummary(ctx context.Context, sportPath, eventID string) (map[string]interface{}, error) {
	return c.fetch(ctx, fmt.Sprintf(SummaryEndpoint, sportPath, eventID))
}

func (c *EspnClient) fetch(ctx context.Context, endpoint string) (map[string]interface{}, error) {
	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("ESPN request %s: %w", endpoint, err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return result, nil
}
