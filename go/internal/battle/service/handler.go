package service

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// BattleServiceName is the fully-qualified name of the trigger service.
const BattleServiceName = "battle.v1.BattleService"

const (
	BattleServiceRunMatchmakingProcedure    = "/battle.v1.BattleService/RunMatchmaking"
	BattleServiceRunQuarterTrackerProcedure = "/battle.v1.BattleService/RunQuarterTracker"
	BattleServiceResolveQuarterProcedure    = "/battle.v1.BattleService/ResolveQuarter"
	BattleServiceGetBattleProcedure         = "/battle.v1.BattleService/GetBattle"
)

// BattleServiceHandler is the server side of battle.v1.BattleService.
type BattleServiceHandler interface {
	RunMatchmaking(context.Context, *connect.Request[RunMatchmakingRequest]) (*connect.Response[RunMatchmakingResponse], error)
	RunQuarterTracker(context.Context, *connect.Request[RunQuarterTrackerRequest]) (*connect.Response[RunQuarterTrackerResponse], error)
	ResolveQuarter(context.Context, *connect.Request[ResolveQuarterRequest]) (*connect.Response[ResolveQuarterResponse], error)
	GetBattle(context.Context, *connect.Request[GetBattleRequest]) (*connect.Response[GetBattleResponse], error)
}

// NewBattleServiceHandler builds an HTTP handler for svc and returns the
// path to mount it on.
func NewBattleServiceHandler(svc BattleServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	runMatchmaking := connect.NewUnaryHandler(BattleServiceRunMatchmakingProcedure, svc.RunMatchmaking, opts...)
	runQuarterTracker := connect.NewUnaryHandler(BattleServiceRunQuarterTrackerProcedure, svc.RunQuarterTracker, opts...)
	resolveQuarter := connect.NewUnaryHandler(BattleServiceResolveQuarterProcedure, svc.ResolveQuarter, opts...)
	getBattle := connect.NewUnaryHandler(BattleServiceGetBattleProcedure, svc.GetBattle, opts...)

	return "/" + BattleServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case BattleServiceRunMatchmakingProcedure:
			runMatchmaking.ServeHTTP(w, r)
		case BattleServiceRunQuarterTrackerProcedure:
			runQuarterTracker.ServeHTTP(w, r)
		case BattleServiceResolveQuarterProcedure:
			resolveQuarter.ServeHTTP(w, r)
		case BattleServiceGetBattleProcedure:
			getBattle.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// BattleServiceClient calls battle.v1.BattleService.
type BattleServiceClient struct {
	runMatchmaking    *connect.Client[RunMatchmakingRequest, RunMatchmakingResponse]
	runQuarterTracker *connect.Client[RunQuarterTrackerRequest, RunQuarterTrackerResponse]
	resolveQuarter    *connect.Client[ResolveQuarterRequest, ResolveQuarterResponse]
	getBattle         *connect.Client[GetBattleRequest, GetBattleResponse]
}

func NewBattleServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *BattleServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)
	return &BattleServiceClient{
		runMatchmaking:    connect.NewClient[RunMatchmakingRequest, RunMatchmakingResponse](httpClient, baseURL+BattleServiceRunMatchmakingProcedure, opts...),
		runQuarterTracker: connect.NewClient[RunQuarterTrackerRequest, RunQuarterTrackerResponse](httpClient, baseURL+BattleServiceRunQuarterTrackerProcedure, opts...),
		resolveQuarter:    connect.NewClient[ResolveQuarterRequest, ResolveQuarterResponse](httpClient, baseURL+BattleServiceResolveQuarterProcedure, opts...),
		getBattle:         connect.NewClient[GetBattleRequest, GetBattleResponse](httpClient, baseURL+BattleServiceGetBattleProcedure, opts...),
	}
}

func (c *BattleServiceClient) RunMatchmaking(ctx context.Context, req *connect.Request[RunMatchmakingRequest]) (*connect.Response[RunMatchmakingResponse], error) {
	return c.runMatchmaking.CallUnary(ctx, req)
}

func (c *BattleServiceClient) RunQuarterTracker(ctx context.Context, req *connect.Request[RunQuarterTrackerRequest]) (*connect.Response[RunQuarterTrackerResponse], error) {
	return c.runQuarterTracker.CallUnary(ctx, req)
}

func (c *BattleServiceClient) ResolveQuarter(ctx context.Context, req *connect.Request[ResolveQuarterRequest]) (*connect.Response[ResolveQuarterResponse], error) {
	return c.resolveQuarter.CallUnary(ctx, req)
}

func (c *BattleServiceClient) GetBattle(ctx context.Context, req *connect.Request[GetBattleRequest]) (*connect.Response[GetBattleResponse], error) {
	return c.getBattle.CallUnary(ctx, req)
}
