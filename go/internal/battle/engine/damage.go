package engine

import (
	"math"

	"github.com/mcdev12/pickbattle/go/internal/models"
)

// BaseDamagePerUnit scales a raw stat differential into damage.
const BaseDamagePerUnit = 0.1

// Category weights. They sum to 1.
const (
	WeightPoints        = 0.40
	WeightRebounds      = 0.20
	WeightAssists       = 0.20
	WeightBlocks        = 0.10
	WeightThreePointers = 0.10
)

// StatTotals are one side's summed player lines for a quarter.
type StatTotals struct {
	Points        int `json:"points"`
	Rebounds      int `json:"rebounds"`
	Assists       int `json:"assists"`
	Blocks        int `json:"blocks"`
	ThreePointers int `json:"threePointers"`
}

// Totals sums player lines.
func Totals(players []models.PlayerLine) StatTotals {
	var t StatTotals
	for _, p := range players {
		t.Points += p.Points
		t.Rebounds += p.Rebounds
		t.Assists += p.Assists
		t.Blocks += p.Blocks
		t.ThreePointers += p.ThreePointers
	}
	return t
}

// Damage is the outcome of one quarter's stat comparison.
type Damage struct {
	// Total is the signed weighted differential, left minus right.
	Total       float64 `json:"total"`
	LeftDamage  int     `json:"left_damage"`
	RightDamage int     `json:"right_damage"`
}

// ComputeDamage compares two sides' quarter totals. A positive total hurts
// the right side, a negative one hurts the left; at most one side takes
// damage.
func ComputeDamage(left, right StatTotals) Damage {
	total := weighted(left.Points-right.Points, WeightPoints) +
		weighted(left.Rebounds-right.Rebounds, WeightRebounds) +
		weighted(left.Assists-right.Assists, WeightAssists) +
		weighted(left.Blocks-right.Blocks, WeightBlocks) +
		weighted(left.ThreePointers-right.ThreePointers, WeightThreePointers)

	d := Damage{Total: total}
	switch {
	case total > 0:
		d.RightDamage = int(math.Round(total))
	case total < 0:
		d.LeftDamage = int(math.Round(-total))
	}
	return d
}

func weighted(diff int, weight float64) float64 {
	return float64(diff) * BaseDamagePerUnit * weight
}

// ApplyDamage lowers hp by damage, never below zero.
func ApplyDamage(hp, damage int) int {
	if damage <= 0 {
		return hp
	}
	if hp-damage < 0 {
		return 0
	}
	return hp - damage
}
