package engine

import (
	"github.com/mcdev12/pickbattle/go/internal/models"
)

// CombatState is the part of a battle a quarter resolution reads.
type CombatState struct {
	LeftHP     int
	RightHP    int
	LeftScore  int
	RightScore int
}

// Outcome is everything a quarter resolution writes back.
type Outcome struct {
	Quarter       int
	Damage        Damage
	LeftTotals    StatTotals
	RightTotals   StatTotals
	LeftHP        int
	RightHP       int
	LeftScore     int
	RightScore    int
	Status        models.BattleStatus
	Winner        *models.Winner
	FinalBlowSide *models.Side
	Knockout      bool
}

// Resolve applies one quarter's snapshot to a battle's combat state.
//
// Knockouts override the status table. When the table ends the game
// without a knockout, the higher HP wins, then the higher cumulative
// score, else it is a tie.
func Resolve(state CombatState, stats models.QuarterStats) (Outcome, error) {
	status, err := NextStatus(stats.Quarter)
	if err != nil {
		return Outcome{}, err
	}

	left := Totals(stats.LeftPlayers)
	right := Totals(stats.RightPlayers)
	dmg := ComputeDamage(left, right)

	out := Outcome{
		Quarter:     stats.Quarter,
		Damage:      dmg,
		LeftTotals:  left,
		RightTotals: right,
		LeftHP:      ApplyDamage(state.LeftHP, dmg.LeftDamage),
		RightHP:     ApplyDamage(state.RightHP, dmg.RightDamage),
		LeftScore:   state.LeftScore + stats.LeftScore,
		RightScore:  state.RightScore + stats.RightScore,
		Status:      status,
	}

	switch {
	case out.LeftHP == 0 && out.RightHP == 0:
		out.Knockout = true
		out.Status = models.BattleStatusGameOver
		switch {
		case stats.LeftScore > stats.RightScore:
			out.Winner = winnerPtr(models.WinnerLeft)
			out.FinalBlowSide = sidePtr(models.SideLeft)
		case stats.RightScore > stats.LeftScore:
			out.Winner = winnerPtr(models.WinnerRight)
			out.FinalBlowSide = sidePtr(models.SideRight)
		default:
			out.Winner = winnerPtr(models.WinnerTie)
		}
	case out.RightHP == 0:
		out.Knockout = true
		out.Status = models.BattleStatusGameOver
		out.Winner = winnerPtr(models.WinnerLeft)
		out.FinalBlowSide = sidePtr(models.SideRight)
	case out.LeftHP == 0:
		out.Knockout = true
		out.Status = models.BattleStatusGameOver
		out.Winner = winnerPtr(models.WinnerRight)
		out.FinalBlowSide = sidePtr(models.SideLeft)
	case status == models.BattleStatusGameOver:
		out.Winner = winnerPtr(decide(out))
	}

	return out, nil
}

func decide(o Outcome) models.Winner {
	switch {
	case o.LeftHP > o.RightHP:
		return models.WinnerLeft
	case o.RightHP > o.LeftHP:
		return models.WinnerRight
	case o.LeftScore > o.RightScore:
		return models.WinnerLeft
	case o.RightScore > o.LeftScore:
		return models.WinnerRight
	default:
		return models.WinnerTie
	}
}

func winnerPtr(w models.Winner) *models.Winner { return &w }

func sidePtr(s models.Side) *models.Side { return &s }
