package models

import "time"

// PlayerLine is one player's contribution to a quarter.
type PlayerLine struct {
	Name          string `json:"name"`
	Points        int    `json:"points"`
	Rebounds      int    `json:"rebounds"`
	Assists       int    `json:"assists"`
	Blocks        int    `json:"blocks"`
	ThreePointers int    `json:"threePointers"`
}

// QuarterStats is the snapshot a quarter is resolved from. Player lines
// hold the quarter's production; the cumulative lines are the provider
// counters they were derived from and seed the next quarter's deltas.
type QuarterStats struct {
	Quarter         int          `json:"quarter"`
	LeftScore       int          `json:"leftScore"`
	RightScore      int          `json:"rightScore"`
	LeftPlayers     []PlayerLine `json:"leftPlayers"`
	RightPlayers    []PlayerLine `json:"rightPlayers"`
	LeftCumulative  []PlayerLine `json:"leftCumulative,omitempty"`
	RightCumulative []PlayerLine `json:"rightCumulative,omitempty"`
	CapturedAt      time.Time    `json:"capturedAt"`
}
