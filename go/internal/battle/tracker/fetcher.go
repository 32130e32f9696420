package tracker

import (
	"context"
	"sync"
	"time"

	"github.com/mcdev12/pickbattle/go/internal/boxscore"
)

// tickFetcher shares one box score fetch per provider game id within a
// tick. Battles on the same game reuse the result, errors included.
type tickFetcher struct {
	provider boxscore.Provider
	timeout  time.Duration

	mu    sync.Mutex
	calls map[string]*fetchCall
}

type fetchCall struct {
	once sync.Once
	box  *boxscore.BoxScore
	err  error
}

func newTickFetcher(provider boxscore.Provider, timeout time.Duration) *tickFetcher {
	return &tickFetcher{
		provider: provider,
		timeout:  timeout,
		calls:    make(map[string]*fetchCall),
	}
}

func (f *tickFetcher) fetch(ctx context.Context, gameID string) (*boxscore.BoxScore, error) {
	f.mu.Lock()
	call, ok := f.calls[gameID]
	if !ok {
		call = &fetchCall{}
		f.calls[gameID] = call
	}
	f.mu.Unlock()

	call.once.Do(func() {
		fetchCtx, cancel := context.WithTimeout(ctx, f.timeout)
		defer cancel()
		call.box, call.err = f.provider.FetchBoxScore(fetchCtx, gameID)
	})
	return call.box, call.err
}
