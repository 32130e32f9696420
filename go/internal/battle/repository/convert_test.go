package repository

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/pickbattle/go/internal/battle/db"
	"github.com/mcdev12/pickbattle/go/internal/models"
)

func battleRow() db.BattleMatchup {
	now := time.Date(2026, 1, 10, 1, 0, 0, 0, time.UTC)
	return db.BattleMatchup{
		ID:            uuid.New(),
		GameID:        uuid.New(),
		Sport:         "basketball_nba",
		LeftCapperID:  uuid.New(),
		RightCapperID: uuid.New(),
		LeftTeam:      "LAL",
		RightTeam:     "BOS",
		LeftPickID:    uuid.New(),
		RightPickID:   uuid.New(),
		GameStartTime: now,
		LeftHp:        100,
		RightHp:       100,
		OvertimeStats: json.RawMessage(`{}`),
		Status:        string(models.BattleStatusScheduled),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestDecodeBattlesSkipsCorruptRows(t *testing.T) {
	good := battleRow()
	good.Q1Complete = true
	good.CurrentQuarter = 1
	good.Q1Stats = pqtype.NullRawMessage{RawMessage: json.RawMessage(`{"quarter":1,"leftScore":30,"rightScore":22}`), Valid: true}

	badQuarter := battleRow()
	badQuarter.Q2Stats = pqtype.NullRawMessage{RawMessage: json.RawMessage(`{"quarter":`), Valid: true}

	badOvertime := battleRow()
	badOvertime.OvertimeStats = json.RawMessage(`{"five":{}}`)

	battles, bad := decodeBattles([]db.BattleMatchup{badQuarter, good, badOvertime})
	assert.Equal(t, 2, bad)
	require.Len(t, battles, 1)
	assert.Equal(t, good.ID, battles[0].ID)
	require.NotNil(t, battles[0].Quarters[0].Stats)
	assert.Equal(t, 30, battles[0].Quarters[0].Stats.LeftScore)
}

func TestDecodeBattlesOvertime(t *testing.T) {
	row := battleRow()
	row.CurrentQuarter = 5
	row.OvertimeStats = json.RawMessage(`{"5":{"quarter":5,"leftScore":9,"rightScore":7}}`)

	battles, bad := decodeBattles([]db.BattleMatchup{row})
	require.Zero(t, bad)
	require.Len(t, battles, 1)
	snap := battles[0].Snapshot(5)
	require.NotNil(t, snap)
	assert.Equal(t, 9, snap.LeftScore)
}
