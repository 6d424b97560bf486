package dice

import "go.uber.org/zap"

// Roll evaluates an Expression using the given Source.
//
// Precondition: expr must come from Parse; src must be non-nil.
// Postcondition: len(result.Dice) == expr.Count; every die is in [1, expr.Sides].
func Roll(expr Expression, src Source) Result {
	rolled := make([]int, expr.Count)
	for i := range rolled {
		rolled[i] = src.Intn(expr.Sides) + 1
	}
	return Result{Expression: expr.Raw, Dice: rolled, Modifier: expr.Modifier}
}

// Roller wraps a Source and logger. Every draw is logged at debug level.
// Roller itself satisfies Source so it can be handed to any consumer of
// randomness.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that draws from src and logs to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Intn draws from the underlying source and logs the draw.
//
// Precondition: n > 0.
func (r *Roller) Intn(n int) int {
	v := r.src.Intn(n)
	r.logger.Debug("random draw", zap.Int("n", n), zap.Int("value", v))
	return v
}

// Roll evaluates expr and logs the result at debug level.
func (r *Roller) Roll(expr Expression) Result {
	result := Roll(expr, r.src)
	r.logger.Debug("dice roll",
		zap.String("expression", result.Expression),
		zap.Ints("dice", result.Dice),
		zap.Int("modifier", result.Modifier),
		zap.Int("total", result.Total()),
	)
	return result
}

// Chance reports whether a percentile roll exceeds threshold. A threshold of
// 0 always succeeds and a threshold of 100 never does.
//
// Postcondition: Returns true iff the 1d100 total is strictly greater than threshold.
func (r *Roller) Chance(threshold int) bool {
	return r.Roll(Percentile).Total() > threshold
}

// Sample draws k distinct elements from items without replacement, preserving
// draw order. If k >= len(items), every element is returned in a shuffled order.
//
// Postcondition: len(result) == min(k, len(items)); items is not modified.
func Sample[T any](src Source, items []T, k int) []T {
	pool := make([]T, len(items))
	copy(pool, items)
	if k > len(pool) {
		k = len(pool)
	}
	if k < 0 {
		k = 0
	}
	for i := 0; i < k; i++ {
		j := i + src.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
