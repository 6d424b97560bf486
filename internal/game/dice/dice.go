// Package dice provides the randomness abstraction used by every chance-based
// mechanic in the game: enemy movement, hiding rolls, defense-word sampling,
// and random area selection.
package dice

import "fmt"

// Source is the randomness provider.
//
// Implementations need not be safe for concurrent use; the game loop is the
// only caller.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// Result holds the audit trail for a single expression evaluation.
//
// Postcondition: Total() == sum(Dice) + Modifier.
type Result struct {
	Expression string // original expression string, e.g. "1d100"
	Dice       []int  // individual die results before modifier
	Modifier   int    // flat modifier (may be negative)
}

// Total returns the sum of all die results plus the modifier.
func (r Result) Total() int {
	total := r.Modifier
	for _, d := range r.Dice {
		total += d
	}
	return total
}

// String returns a human-readable audit string in the format:
//
//	"1d100 → [42] +0 = 42"
func (r Result) String() string {
	return fmt.Sprintf("%s → %v %+d = %d", r.Expression, r.Dice, r.Modifier, r.Total())
}
