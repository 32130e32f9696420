package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/pickbattle/go/internal/battle"
	"github.com/mcdev12/pickbattle/go/internal/battle/engine"
	"github.com/mcdev12/pickbattle/go/internal/battle/matchmaking"
	"github.com/mcdev12/pickbattle/go/internal/battle/tracker"
	"github.com/mcdev12/pickbattle/go/internal/models"
)

type stubMatchmaker struct{ sport string }

func (s *stubMatchmaker) Run(_ context.Context, sport string) (*matchmaking.RunResult, error) {
	s.sport = sport
	return &matchmaking.RunResult{GamesScanned: 2, PairsConsidered: 6, Created: 6}, nil
}

type stubTracker struct{}

func (stubTracker) Tick(context.Context) (*tracker.TickResult, error) {
	return &tracker.TickResult{BattlesChecked: 3, QuartersResolved: 1}, nil
}

type stubResolver struct {
	err       error
	withStats *models.QuarterStats
}

func (s *stubResolver) ResolveQuarter(_ context.Context, _ uuid.UUID, q int) (*engine.Outcome, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &engine.Outcome{Quarter: q, LeftHP: 100, RightHP: 97, Status: models.BattleStatusQ2InProgress}, nil
}

func (s *stubResolver) ResolveWithSnapshot(_ context.Context, _ uuid.UUID, stats models.QuarterStats) (*engine.Outcome, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.withStats = &stats
	return &engine.Outcome{Quarter: stats.Quarter, Status: models.BattleStatusOT2InProgress}, nil
}

type stubBattles map[uuid.UUID]*models.BattleMatchup

func (s stubBattles) GetBattle(_ context.Context, id uuid.UUID) (*models.BattleMatchup, error) {
	if b, ok := s[id]; ok {
		return b, nil
	}
	return nil, battle.ErrNotFound
}

func newTestClient(t *testing.T, svc *Service) *BattleServiceClient {
	t.Helper()
	mux := http.NewServeMux()
	path, handler := NewBattleServiceHandler(svc)
	mux.Handle(path, handler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return NewBattleServiceClient(srv.Client(), srv.URL)
}

func TestRunMatchmakingDefaultsSport(t *testing.T) {
	mm := &stubMatchmaker{}
	client := newTestClient(t, NewService(mm, stubTracker{}, &stubResolver{}, stubBattles{}, "basketball_nba"))

	resp, err := client.RunMatchmaking(context.Background(), connect.NewRequest(&RunMatchmakingRequest{}))
	require.NoError(t, err)
	assert.Equal(t, "basketball_nba", mm.sport)
	assert.Equal(t, 6, resp.Msg.Result.Created)
}

func TestRunQuarterTracker(t *testing.T) {
	client := newTestClient(t, NewService(&stubMatchmaker{}, stubTracker{}, &stubResolver{}, stubBattles{}, ""))

	resp, err := client.RunQuarterTracker(context.Background(), connect.NewRequest(&RunQuarterTrackerRequest{}))
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Msg.Result.BattlesChecked)
	assert.Equal(t, 1, resp.Msg.Result.QuartersResolved)
}

func TestResolveQuarter(t *testing.T) {
	res := &stubResolver{}
	client := newTestClient(t, NewService(&stubMatchmaker{}, stubTracker{}, res, stubBattles{}, ""))
	ctx := context.Background()

	resp, err := client.ResolveQuarter(ctx, connect.NewRequest(&ResolveQuarterRequest{
		BattleID: uuid.NewString(),
		Quarter:  1,
	}))
	require.NoError(t, err)
	assert.Equal(t, 97, resp.Msg.Outcome.RightHP)
	assert.Nil(t, res.withStats)

	resp, err = client.ResolveQuarter(ctx, connect.NewRequest(&ResolveQuarterRequest{
		BattleID: uuid.NewString(),
		Quarter:  5,
		Stats:    &models.QuarterStats{LeftScore: 9, RightScore: 7},
	}))
	require.NoError(t, err)
	require.NotNil(t, res.withStats)
	assert.Equal(t, 5, res.withStats.Quarter)
	assert.Equal(t, models.BattleStatusOT2InProgress, resp.Msg.Outcome.Status)

	_, err = client.ResolveQuarter(ctx, connect.NewRequest(&ResolveQuarterRequest{
		BattleID: uuid.NewString(),
		Quarter:  2,
		Stats:    &models.QuarterStats{Quarter: 3},
	}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestResolveQuarterErrorCodes(t *testing.T) {
	cases := map[error]connect.Code{
		battle.ErrNotFound:          connect.CodeNotFound,
		battle.ErrInvalidQuarter:    connect.CodeInvalidArgument,
		battle.ErrMissingStats:      connect.CodeInvalidArgument,
		battle.ErrQuarterOutOfOrder: connect.CodeInvalidArgument,
		battle.ErrQuarterResolved:   connect.CodeFailedPrecondition,
		battle.ErrBattleOver:        connect.CodeFailedPrecondition,
		assert.AnError:              connect.CodeInternal,
	}
	for cause, code := range cases {
		res := &stubResolver{err: cause}
		client := newTestClient(t, NewService(&stubMatchmaker{}, stubTracker{}, res, stubBattles{}, ""))

		_, err := client.ResolveQuarter(context.Background(), connect.NewRequest(&ResolveQuarterRequest{
			BattleID: uuid.NewString(),
			Quarter:  1,
		}))
		assert.Equal(t, code, connect.CodeOf(err), cause.Error())
	}
}

func TestGetBattle(t *testing.T) {
	b := &models.BattleMatchup{ID: uuid.New(), LeftHP: 71, Status: models.BattleStatusHalftime}
	client := newTestClient(t, NewService(&stubMatchmaker{}, stubTracker{}, &stubResolver{}, stubBattles{b.ID: b}, ""))
	ctx := context.Background()

	resp, err := client.GetBattle(ctx, connect.NewRequest(&GetBattleRequest{BattleID: b.ID.String()}))
	require.NoError(t, err)
	assert.Equal(t, 71, resp.Msg.Battle.LeftHP)

	_, err = client.GetBattle(ctx, connect.NewRequest(&GetBattleRequest{BattleID: uuid.NewString()}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = client.GetBattle(ctx, connect.NewRequest(&GetBattleRequest{BattleID: "nope"}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}
