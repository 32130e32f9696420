package boxscore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/pickbattle/go/clients"
	"github.com/mcdev12/pickbattle/go/internal/models"
)

type countingProvider struct {
	calls int
	box   *BoxScore
}

func (p *countingProvider) Source() clients.ExternalSource { return "test" }

func (p *countingProvider) GameID(models.Game) string { return "g" }

func (p *countingProvider) FetchBoxScore(context.Context, string) (*BoxScore, error) {
	p.calls++
	return p.box, nil
}

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skip("Redis not available:", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestCachedProvider(t *testing.T) {
	client := setupRedis(t)
	ctx := context.Background()

	next := &countingProvider{box: &BoxScore{
		GameID:      "cache-test",
		HomeAbbr:    "LAL",
		AwayAbbr:    "BOS",
		HomePeriods: map[int]int{1: 28},
		AwayPeriods: map[int]int{1: 24},
		HomePlayers: []PlayerCounters{{Name: "LeBron James", FieldGoalsMade: 5}},
	}}
	cached := NewCachedProvider(next, client, time.Minute)
	require.NoError(t, client.Del(ctx, cached.key("cache-test")).Err())

	first, err := cached.FetchBoxScore(ctx, "cache-test")
	require.NoError(t, err)
	second, err := cached.FetchBoxScore(ctx, "cache-test")
	require.NoError(t, err)

	assert.Equal(t, 1, next.calls)
	assert.Equal(t, first, second)

	ttl, err := client.TTL(ctx, cached.key("cache-test")).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}
