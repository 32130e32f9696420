package tracker

import (
	"fmt"
	"time"

	"github.com/mcdev12/pickbattle/go/internal/boxscore"
	"github.com/mcdev12/pickbattle/go/internal/models"
)

// BuildSnapshot extracts quarter n of a battle from a cumulative box score.
// Player lines are the production since the previous snapshot.
func BuildSnapshot(box *boxscore.BoxScore, b *models.BattleMatchup, n int, at time.Time) (models.QuarterStats, error) {
	homePts, awayPts, ok := box.Period(n)
	if !ok {
		return models.QuarterStats{}, fmt.Errorf("game %s period %d: %w", box.GameID, n, boxscore.ErrPeriodMissing)
	}

	leftHome, known := box.IsHome(b.LeftTeam)
	if !known {
		return models.QuarterStats{}, fmt.Errorf("team %q not in game %s: %w", b.LeftTeam, box.GameID, boxscore.ErrMalformed)
	}
	rightHome, known := box.IsHome(b.RightTeam)
	if !known || rightHome == leftHome {
		return models.QuarterStats{}, fmt.Errorf("team %q not opposite %q in game %s: %w", b.RightTeam, b.LeftTeam, box.GameID, boxscore.ErrMalformed)
	}

	leftCounters, rightCounters := box.AwayPlayers, box.HomePlayers
	leftScore, rightScore := awayPts, homePts
	if leftHome {
		leftCounters, rightCounters = box.HomePlayers, box.AwayPlayers
		leftScore, rightScore = homePts, awayPts
	}

	leftCum := cumulativeLines(leftCounters)
	rightCum := cumulativeLines(rightCounters)
	prevLeft, prevRight := baseline(b, n)

	return models.QuarterStats{
		Quarter:         n,
		LeftScore:       leftScore,
		RightScore:      rightScore,
		LeftPlayers:     deltaLines(leftCum, prevLeft),
		RightPlayers:    deltaLines(rightCum, prevRight),
		LeftCumulative:  leftCum,
		RightCumulative: rightCum,
		CapturedAt:      at,
	}, nil
}

// PlayerPoints scores a provider line: 2 per two, 3 per three, 1 per free throw.
func PlayerPoints(c boxscore.PlayerCounters) int {
	twos := c.FieldGoalsMade - c.ThreePointersMade
	if twos < 0 {
		twos = 0
	}
	return twos*2 + c.ThreePointersMade*3 + c.FreeThrowsMade
}

func cumulativeLines(counters []boxscore.PlayerCounters) []models.PlayerLine {
	lines := make([]models.PlayerLine, len(counters))
	for i, c := range counters {
		lines[i] = models.PlayerLine{
			Name:          c.Name,
			Points:        PlayerPoints(c),
			Rebounds:      c.Rebounds,
			Assists:       c.Assists,
			Blocks:        c.Blocks,
			ThreePointers: c.ThreePointersMade,
		}
	}
	return lines
}

// baseline returns the cumulative lines quarter n's deltas start from.
// Snapshots stored without cumulative lines are summed instead.
func baseline(b *models.BattleMatchup, n int) (left, right []models.PlayerLine) {
	if n <= 1 {
		return nil, nil
	}
	if prev := b.Snapshot(n - 1); prev != nil && (prev.LeftCumulative != nil || prev.RightCumulative != nil) {
		return prev.LeftCumulative, prev.RightCumulative
	}

	leftSum := make(map[string]models.PlayerLine)
	rightSum := make(map[string]models.PlayerLine)
	for q := 1; q < n; q++ {
		s := b.Snapshot(q)
		if s == nil {
			continue
		}
		addLines(leftSum, s.LeftPlayers)
		addLines(rightSum, s.RightPlayers)
	}
	return flatten(leftSum), flatten(rightSum)
}

func addLines(into map[string]models.PlayerLine, lines []models.PlayerLine) {
	for _, l := range lines {
		acc := into[l.Name]
		acc.Name = l.Name
		acc.Points += l.Points
		acc.Rebounds += l.Rebounds
		acc.Assists += l.Assists
		acc.Blocks += l.Blocks
		acc.ThreePointers += l.ThreePointers
		into[l.Name] = acc
	}
}

func flatten(m map[string]models.PlayerLine) []models.PlayerLine {
	if len(m) == 0 {
		return nil
	}
	out := make([]models.PlayerLine, 0, len(m))
	for _, l := range m {
		out = append(out, l)
	}
	return out
}

func deltaLines(current, previous []models.PlayerLine) []models.PlayerLine {
	prev := make(map[string]models.PlayerLine, len(previous))
	for _, p := range previous {
		prev[p.Name] = p
	}

	out := make([]models.PlayerLine, len(current))
	for i, c := range current {
		p := prev[c.Name]
		out[i] = models.PlayerLine{
			Name:          c.Name,
			Points:        nonNegative(c.Points - p.Points),
			Rebounds:      nonNegative(c.Rebounds - p.Rebounds),
			Assists:       nonNegative(c.Assists - p.Assists),
			Blocks:        nonNegative(c.Blocks - p.Blocks),
			ThreePointers: nonNegative(c.ThreePointers - p.ThreePointers),
		}
	}
	return out
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
