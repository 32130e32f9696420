package boxscore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/pickbattle/go/clients"
	"github.com/mcdev12/pickbattle/go/internal/models"
)

// DefaultCacheTTL keeps a fetched box score long enough for one tracker
// tick across every process, and short enough that live games move on.
const DefaultCacheTTL = 60 * time.Second

// CachedProvider is a Redis read-through cache in front of a Provider.
// Only successful fetches are cached. Redis failures fall through to the
// provider.
type CachedProvider struct {
	next   Provider
	client *redis.Client
	ttl    time.Duration
}

func NewCachedProvider(next Provider, client *redis.Client, ttl time.Duration) *CachedProvider {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedProvider{next: next, client: client, ttl: ttl}
}

func (c *CachedProvider) Source() clients.ExternalSource { return c.next.Source() }

func (c *CachedProvider) GameID(game models.Game) string { return c.next.GameID(game) }

func (c *CachedProvider) FetchBoxScore(ctx context.Context, gameID string) (*BoxScore, error) {
	key := c.key(gameID)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var box BoxScore
		if uerr := json.Unmarshal(data, &box); uerr == nil {
			return &box, nil
		}
		log.Warn().Str("key", key).Msg("discarding unreadable cached box score")
	case !errors.Is(err, redis.Nil):
		log.Warn().Err(err).Str("key", key).Msg("box score cache read failed")
	}

	box, err := c.next.FetchBoxScore(ctx, gameID)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(box)
	if err != nil {
		return box, nil
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("box score cache write failed")
	}
	return box, nil
}

func (c *CachedProvider) key(gameID string) string {
	return fmt.Sprintf("boxscore:%s:%s", c.next.Source(), gameID)
}
