// Package battle holds the error taxonomy shared by the battle engine,
// its persistence layer and the trigger surface.
package battle

import "errors"

var (
	// ErrNotFound means the battle or its game does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidQuarter is returned for quarter numbers outside 1..8.
	ErrInvalidQuarter = errors.New("invalid quarter")

	// ErrMissingStats means no snapshot is stored for the quarter.
	ErrMissingStats = errors.New("quarter stats missing")

	// ErrQuarterResolved means damage for the quarter was already applied,
	// either earlier or by a concurrent resolver that won the write.
	ErrQuarterResolved = errors.New("quarter already resolved")

	// ErrQuarterOutOfOrder means an earlier quarter is still unresolved.
	ErrQuarterOutOfOrder = errors.New("quarter out of order")

	// ErrBattleOver is returned for any mutation of a finished battle.
	ErrBattleOver = errors.New("battle is over")
)

// IsSkippable reports whether err is a guard outcome that a batch job
// should skip quietly rather than count as a failure.
func IsSkippable(err error) bool {
	return errors.Is(err, ErrQuarterResolved) || errors.Is(err, ErrBattleOver)
}
