package dice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/nightfall/internal/game/dice"
)

// fixedSource always returns val, clamped to n-1.
type fixedSource struct{ val int }

func (f fixedSource) Intn(n int) int {
	if f.val >= n {
		return n - 1
	}
	return f.val
}

func TestResult_Total(t *testing.T) {
	r := dice.Result{Expression: "2d6+3", Dice: []int{4, 5}, Modifier: 3}
	assert.Equal(t, 12, r.Total())
}

func TestResult_String(t *testing.T) {
	r := dice.Result{Expression: "2d6+3", Dice: []int{4, 5}, Modifier: 3}
	assert.Equal(t, "2d6+3 → [4 5] +3 = 12", r.String())
}

func TestResult_Total_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ds := rapid.SliceOf(rapid.IntRange(1, 20)).Draw(rt, "dice")
		modifier := rapid.IntRange(-100, 100).Draw(rt, "modifier")
		expected := modifier
		for _, d := range ds {
			expected += d
		}
		r := dice.Result{Expression: "Nd6+M", Dice: ds, Modifier: modifier}
		assert.Equal(rt, expected, r.Total())
	})
}

func TestParse(t *testing.T) {
	cases := []struct {
		in       string
		count    int
		sides    int
		modifier int
	}{
		{"d20", 1, 20, 0},
		{"2d6", 2, 6, 0},
		{"2d6+3", 2, 6, 3},
		{"4d8-2", 4, 8, -2},
		{"1D100", 1, 100, 0},
	}
	for _, tc := range cases {
		e, err := dice.Parse(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.count, e.Count, tc.in)
		assert.Equal(t, tc.sides, e.Sides, tc.in)
		assert.Equal(t, tc.modifier, e.Modifier, tc.in)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "20", "0d6", "2d1", "2dx", "2d6+y"} {
		_, err := dice.Parse(in)
		assert.Error(t, err, "expected %q to fail", in)
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { dice.MustParse("nope") })
}

func TestRoll_InRange_Property(t *testing.T) {
	src := dice.NewSeededSource(7)
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(1, 10).Draw(rt, "count")
		sides := rapid.IntRange(2, 100).Draw(rt, "sides")
		expr := dice.Expression{Raw: "x", Count: count, Sides: sides}
		res := dice.Roll(expr, src)
		require.Len(rt, res.Dice, count)
		for _, d := range res.Dice {
			assert.GreaterOrEqual(rt, d, 1)
			assert.LessOrEqual(rt, d, sides)
		}
	})
}

func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

func TestCryptoSource_Intn_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { dice.NewCryptoSource().Intn(0) })
}

func TestSeededSource_Deterministic(t *testing.T) {
	a := dice.NewSeededSource(42)
	b := dice.NewSeededSource(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestRoller_Chance(t *testing.T) {
	logger := zaptest.NewLogger(t)

	// fixed 49 → d100 total 50
	r := dice.NewLoggedRoller(fixedSource{val: 49}, logger)
	assert.True(t, r.Chance(0))
	assert.True(t, r.Chance(49))
	assert.False(t, r.Chance(50))
	assert.False(t, r.Chance(100))
}

func TestRoller_ChanceExtremes_Property(t *testing.T) {
	r := dice.NewLoggedRoller(dice.NewSeededSource(1), zaptest.NewLogger(t))
	rapid.Check(t, func(rt *rapid.T) {
		assert.True(rt, r.Chance(0))
		assert.False(rt, r.Chance(100))
	})
}

func TestSample_Distinct_Property(t *testing.T) {
	src := dice.NewSeededSource(3)
	rapid.Check(t, func(rt *rapid.T) {
		items := rapid.SliceOfDistinct(rapid.StringMatching(`[a-z]{1,6}`), func(s string) string { return s }).Draw(rt, "items")
		k := rapid.IntRange(0, len(items)+2).Draw(rt, "k")
		before := strings.Join(items, ",")

		got := dice.Sample(src, items, k)

		assert.Len(rt, got, min(k, len(items)))
		seen := map[string]bool{}
		for _, g := range got {
			assert.False(rt, seen[g], "duplicate %q", g)
			seen[g] = true
			assert.Contains(rt, items, g)
		}
		assert.Equal(rt, before, strings.Join(items, ","), "input must not be modified")
	})
}
