package repository

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/pickbattle/go/internal/battle/db"
	"github.com/mcdev12/pickbattle/go/internal/models"
	"github.com/mcdev12/pickbattle/go/internal/sqlutil"
)

func dbGameToModel(g db.Game) *models.Game {
	return &models.Game{
		ID:        g.ID,
		Sport:     g.Sport,
		HomeTeam:  models.GameTeam{Name: g.HomeTeamName, Abbreviation: g.HomeTeamAbbr},
		AwayTeam:  models.GameTeam{Name: g.AwayTeamName, Abbreviation: g.AwayTeamAbbr},
		StartTime: g.StartTime,
		Status:    models.GameStatus(g.Status),
		Spread:    g.Spread,
	}
}

func dbPickToModel(p db.Pick) models.Pick {
	pick := models.Pick{
		ID:        p.ID,
		GameID:    p.GameID,
		CapperID:  p.CapperID,
		PickType:  models.PickType(p.PickType),
		Selection: p.Selection,
		Status:    models.PickStatus(p.Status),
		CreatedAt: p.CreatedAt,
	}
	if p.Side.Valid {
		side := models.PickSide(p.Side.String)
		pick.Side = &side
	}
	return pick
}

// decodeBattles converts rows one by one. A row whose stored stats do not
// decode is skipped and counted.
func decodeBattles(rows []db.BattleMatchup) ([]models.BattleMatchup, int) {
	battles := make([]models.BattleMatchup, 0, len(rows))
	bad := 0
	for _, row := range rows {
		b, err := dbBattleToModel(row)
		if err != nil {
			log.Error().
				Err(err).
				Str("battle_id", row.ID.String()).
				Msg("skipping undecodable battle row")
			bad++
			continue
		}
		battles = append(battles, *b)
	}
	return battles, bad
}

func dbBattleToModel(b db.BattleMatchup) (*models.BattleMatchup, error) {
	m := &models.BattleMatchup{
		ID:             b.ID,
		GameID:         b.GameID,
		Sport:          b.Sport,
		LeftCapperID:   b.LeftCapperID,
		RightCapperID:  b.RightCapperID,
		LeftTeam:       b.LeftTeam,
		RightTeam:      b.RightTeam,
		LeftPickID:     b.LeftPickID,
		RightPickID:    b.RightPickID,
		Spread:         b.Spread,
		GameStartTime:  b.GameStartTime,
		LeftHP:         int(b.LeftHp),
		RightHP:        int(b.RightHp),
		LeftScore:      int(b.LeftScore),
		RightScore:     int(b.RightScore),
		CurrentQuarter: int(b.CurrentQuarter),
		Status:         models.BattleStatus(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
	if w := sqlutil.FromSqlStringPtr(b.Winner); w != nil {
		winner := models.Winner(*w)
		m.Winner = &winner
	}
	if s := sqlutil.FromSqlStringPtr(b.FinalBlowSide); s != nil {
		side := models.Side(*s)
		m.FinalBlowSide = &side
	}

	complete := [models.RegulationQuarters]bool{b.Q1Complete, b.Q2Complete, b.Q3Complete, b.Q4Complete}
	stats := [models.RegulationQuarters]json.RawMessage{
		sqlutil.FromNullRawMessage(b.Q1Stats),
		sqlutil.FromNullRawMessage(b.Q2Stats),
		sqlutil.FromNullRawMessage(b.Q3Stats),
		sqlutil.FromNullRawMessage(b.Q4Stats),
	}
	ends := [models.RegulationQuarters]*time.Time{
		sqlutil.FromSqlTime(b.Q1EndTime),
		sqlutil.FromSqlTime(b.Q2EndTime),
		sqlutil.FromSqlTime(b.Q3EndTime),
		sqlutil.FromSqlTime(b.Q4EndTime),
	}
	for i := range m.Quarters {
		m.Quarters[i].Complete = complete[i]
		m.Quarters[i].EndTime = ends[i]
		if len(stats[i]) == 0 {
			continue
		}
		var qs models.QuarterStats
		if err := json.Unmarshal(stats[i], &qs); err != nil {
			return nil, fmt.Errorf("battle %s q%d stats: %w", b.ID, i+1, err)
		}
		m.Quarters[i].Stats = &qs
	}

	if len(b.OvertimeStats) > 0 {
		var raw map[string]models.QuarterStats
		if err := json.Unmarshal(b.OvertimeStats, &raw); err != nil {
			return nil, fmt.Errorf("battle %s overtime stats: %w", b.ID, err)
		}
		for k, v := range raw {
			n, err := strconv.Atoi(k)
			if err != nil {
				return nil, fmt.Errorf("battle %s overtime key %q: %w", b.ID, k, err)
			}
			if m.Overtime == nil {
				m.Overtime = make(map[int]models.QuarterStats)
			}
			m.Overtime[n] = v
		}
	}
	return m, nil
}

func marshalStats(stats models.QuarterStats) (json.RawMessage, error) {
	raw, err := json.Marshal(stats)
	if err != nil {
		return nil, fmt.Errorf("marshal q%d stats: %w", stats.Quarter, err)
	}
	return raw, nil
}
