package engine

import (
	"fmt"

	"github.com/mcdev12/pickbattle/go/internal/battle"
	"github.com/mcdev12/pickbattle/go/internal/models"
)

// nextStatus is the status a battle moves to once quarter n resolves
// without a knockout. Periods 5 through 8 are overtime; 8 is a hard cap.
var nextStatus = map[int]models.BattleStatus{
	1: models.BattleStatusQ2InProgress,
	2: models.BattleStatusHalftime,
	3: models.BattleStatusQ4InProgress,
	4: models.BattleStatusGameOver,
	5: models.BattleStatusOT2InProgress,
	6: models.BattleStatusOT3InProgress,
	7: models.BattleStatusOT4InProgress,
	8: models.BattleStatusGameOver,
}

// NextStatus returns the table transition for a resolved quarter.
func NextStatus(quarter int) (models.BattleStatus, error) {
	s, ok := nextStatus[quarter]
	if !ok {
		return "", fmt.Errorf("quarter %d: %w", quarter, battle.ErrInvalidQuarter)
	}
	return s, nil
}

// ValidQuarter reports whether the state machine accepts quarter n.
func ValidQuarter(n int) bool {
	_, ok := nextStatus[n]
	return ok
}
