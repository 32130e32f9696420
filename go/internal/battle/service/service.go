// Package service exposes the battle engine's triggers over Connect.
package service

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/pickbattle/go/internal/battle"
	"github.com/mcdev12/pickbattle/go/internal/battle/engine"
	"github.com/mcdev12/pickbattle/go/internal/battle/matchmaking"
	"github.com/mcdev12/pickbattle/go/internal/battle/tracker"
	"github.com/mcdev12/pickbattle/go/internal/models"
)

type Matchmaker interface {
	Run(ctx context.Context, sport string) (*matchmaking.RunResult, error)
}

type QuarterTracker interface {
	Tick(ctx context.Context) (*tracker.TickResult, error)
}

type Resolver interface {
	ResolveQuarter(ctx context.Context, battleID uuid.UUID, quarter int) (*engine.Outcome, error)
	ResolveWithSnapshot(ctx context.Context, battleID uuid.UUID, stats models.QuarterStats) (*engine.Outcome, error)
}

type BattleReader interface {
	GetBattle(ctx context.Context, id uuid.UUID) (*models.BattleMatchup, error)
}

// Service implements BattleServiceHandler
type Service struct {
	matchmaker Matchmaker
	tracker    QuarterTracker
	resolver   Resolver
	battles    BattleReader
	// sport used when RunMatchmaking names none
	defaultSport string
}

func NewService(mm Matchmaker, tr QuarterTracker, res Resolver, battles BattleReader, defaultSport string) *Service {
	return &Service{
		matchmaker:   mm,
		tracker:      tr,
		resolver:     res,
		battles:      battles,
		defaultSport: defaultSport,
	}
}

var _ BattleServiceHandler = (*Service)(nil)

// RunMatchmaking runs one matchmaking pass for a sport
func (s *Service) RunMatchmaking(ctx context.Context, req *connect.Request[RunMatchmakingRequest]) (*connect.Response[RunMatchmakingResponse], error) {
	sport := req.Msg.Sport
	if sport == "" {
		sport = s.defaultSport
	}
	if sport == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("sport is required"))
	}

	result, err := s.matchmaker.Run(ctx, sport)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&RunMatchmakingResponse{Result: *result}), nil
}

// RunQuarterTracker runs one tracker tick
func (s *Service) RunQuarterTracker(ctx context.Context, _ *connect.Request[RunQuarterTrackerRequest]) (*connect.Response[RunQuarterTrackerResponse], error) {
	result, err := s.tracker.Tick(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&RunQuarterTrackerResponse{Result: *result}), nil
}

// ResolveQuarter resolves one quarter of a battle by hand
func (s *Service) ResolveQuarter(ctx context.Context, req *connect.Request[ResolveQuarterRequest]) (*connect.Response[ResolveQuarterResponse], error) {
	battleID, err := uuid.Parse(req.Msg.BattleID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invalid battle_id: %w", err))
	}

	var out *engine.Outcome
	if req.Msg.Stats != nil {
		stats := *req.Msg.Stats
		if stats.Quarter == 0 {
			stats.Quarter = req.Msg.Quarter
		}
		if stats.Quarter != req.Msg.Quarter {
			return nil, connect.NewError(connect.CodeInvalidArgument,
				fmt.Errorf("stats are for quarter %d, not %d", stats.Quarter, req.Msg.Quarter))
		}
		out, err = s.resolver.ResolveWithSnapshot(ctx, battleID, stats)
	} else {
		out, err = s.resolver.ResolveQuarter(ctx, battleID, req.Msg.Quarter)
	}
	if err != nil {
		return nil, toConnectError(err)
	}

	log.Info().
		Str("battle_id", battleID.String()).
		Int("quarter", out.Quarter).
		Msg("quarter resolved by operator")

	return connect.NewResponse(&ResolveQuarterResponse{Outcome: outcomeToWire(out)}), nil
}

// GetBattle retrieves a battle by ID
func (s *Service) GetBattle(ctx context.Context, req *connect.Request[GetBattleRequest]) (*connect.Response[GetBattleResponse], error) {
	battleID, err := uuid.Parse(req.Msg.BattleID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invalid battle_id: %w", err))
	}

	b, err := s.battles.GetBattle(ctx, battleID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&GetBattleResponse{Battle: b}), nil
}

// toConnectError maps the battle error taxonomy onto Connect codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, battle.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, battle.ErrInvalidQuarter),
		errors.Is(err, battle.ErrMissingStats),
		errors.Is(err, battle.ErrQuarterOutOfOrder):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, battle.ErrQuarterResolved),
		errors.Is(err, battle.ErrBattleOver):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		log.Error().Err(err).Msg("battle service call failed")
		return connect.NewError(connect.CodeInternal, err)
	}
}
