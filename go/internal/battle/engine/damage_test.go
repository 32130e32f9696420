package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcdev12/pickbattle/go/internal/models"
)

func TestTotals(t *testing.T) {
	players := []models.PlayerLine{
		{Name: "A", Points: 10, Rebounds: 3, Assists: 2, Blocks: 1, ThreePointers: 2},
		{Name: "B", Points: 4, Rebounds: 5, Assists: 0, Blocks: 2, ThreePointers: 0},
	}
	assert.Equal(t, StatTotals{Points: 14, Rebounds: 8, Assists: 2, Blocks: 3, ThreePointers: 2}, Totals(players))
	assert.Equal(t, StatTotals{}, Totals(nil))
}

func TestComputeDamage(t *testing.T) {
	tests := []struct {
		name        string
		left, right StatTotals
		wantLeft    int
		wantRight   int
	}{
		{
			name:  "even quarter",
			left:  StatTotals{Points: 20, Rebounds: 8, Assists: 4},
			right: StatTotals{Points: 20, Rebounds: 8, Assists: 4},
		},
		{
			name:  "small edge rounds to nothing",
			left:  StatTotals{Points: 25, Blocks: 3},
			right: StatTotals{Points: 20},
		},
		{
			name:      "left dominates",
			left:      StatTotals{Points: 130},
			right:     StatTotals{Points: 30},
			wantRight: 4,
		},
		{
			name:     "right dominates",
			left:     StatTotals{Points: 10},
			right:    StatTotals{Points: 60},
			wantLeft: 2,
		},
		{
			name:      "every category counts",
			left:      StatTotals{Points: 60, Rebounds: 40, Assists: 40, Blocks: 20, ThreePointers: 20},
			right:     StatTotals{},
			wantRight: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ComputeDamage(tt.left, tt.right)
			assert.Equal(t, tt.wantLeft, d.LeftDamage)
			assert.Equal(t, tt.wantRight, d.RightDamage)
			assert.False(t, d.LeftDamage > 0 && d.RightDamage > 0, "only one side takes damage")
		})
	}
}

func TestComputeDamageTotal(t *testing.T) {
	d := ComputeDamage(StatTotals{Points: 25, Blocks: 3}, StatTotals{Points: 20})
	assert.InDelta(t, 0.23, d.Total, 1e-9)
	assert.Zero(t, d.LeftDamage)
	assert.Zero(t, d.RightDamage)
}

func TestComputeDamageMixedDifferentials(t *testing.T) {
	left := StatTotals{Points: 30, Rebounds: 10, Assists: 8, Blocks: 2, ThreePointers: 5}
	right := StatTotals{Points: 25, Rebounds: 12, Assists: 6, Blocks: 1, ThreePointers: 3}

	// 0.2 - 0.04 + 0.04 + 0.01 + 0.02
	d := ComputeDamage(left, right)
	assert.InDelta(t, 0.23, d.Total, 1e-9)
	assert.Zero(t, d.LeftDamage)
	assert.Zero(t, d.RightDamage)

	mirrored := ComputeDamage(right, left)
	assert.InDelta(t, -0.23, mirrored.Total, 1e-9)
	assert.Zero(t, mirrored.LeftDamage)
	assert.Zero(t, mirrored.RightDamage)
}

func TestApplyDamage(t *testing.T) {
	assert.Equal(t, 96, ApplyDamage(100, 4))
	assert.Equal(t, 0, ApplyDamage(3, 10))
	assert.Equal(t, 50, ApplyDamage(50, 0))
	assert.Equal(t, 50, ApplyDamage(50, -3))
}
