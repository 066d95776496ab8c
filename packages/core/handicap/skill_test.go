package handicap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLearningRate(t *testing.T) {
	assert.InDelta(t, 1.0/3, LearningRate(0), 1e-12)
	assert.InDelta(t, 1.0/8, LearningRate(5), 1e-12)
	assert.InDelta(t, 1.0/3, LearningRate(-4), 1e-12)
	assert.Less(t, LearningRate(500), LearningRate(50))
}

func TestRoundWeight(t *testing.T) {
	assert.InDelta(t, 1.0, RoundWeight(18), 1e-12)
	assert.InDelta(t, 0.5, RoundWeight(9), 1e-12)
}

func TestAdjustSkillIndex(t *testing.T) {
	tests := []struct {
		name          string
		current       float64
		matchesPlayed int
		differential  float64
		holes         int
		want          float64
	}{
		{name: "winner of first match", current: 10.0, differential: -8, holes: 18, want: 8.7},
		{name: "loser of first match", current: 20.0, differential: 8, holes: 18, want: 21.3},
		{name: "nine holes halves the move", current: 10.0, differential: -8, holes: 9, want: 9.3},
		{name: "veteran moves slower", current: 10.0, matchesPlayed: 5, differential: -8, holes: 18, want: 9.5},
		{name: "blowout loss is clamped", current: 15.0, differential: 60, holes: 18, want: 17.0},
		{name: "blowout win is clamped", current: 15.0, differential: -60, holes: 18, want: 13.0},
		{name: "tie leaves index alone", current: 12.3, differential: 0, holes: 18, want: 12.3},
		{name: "plus handicap improves further", current: -1.0, differential: -3, holes: 18, want: -1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdjustSkillIndex(tt.current, tt.matchesPlayed, tt.differential, tt.holes)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestAdjustSkillIndex_Properties(t *testing.T) {
	for _, current := range []float64{-5.0, 0, 12.3, 27.8, 40.0} {
		for _, played := range []int{0, 1, 5, 50} {
			for _, diff := range []float64{-100, -8, -0.5, 0, 0.5, 8, 100} {
				for _, holes := range []int{9, 18} {
					got := AdjustSkillIndex(current, played, diff, holes)

					assert.LessOrEqual(t, math.Abs(got-current), MaxAdjustment+1e-9,
						"current=%v played=%v diff=%v holes=%v", current, played, diff, holes)

					switch {
					case diff < 0:
						assert.LessOrEqual(t, got, current+1e-9)
					case diff > 0:
						assert.GreaterOrEqual(t, got, current-1e-9)
					default:
						assert.InDelta(t, current, got, 1e-9)
					}
				}
			}
		}
	}
}

func TestClassifyOutcome(t *testing.T) {
	t.Run("two sides", func(t *testing.T) {
		outcome := ClassifyOutcome([]int{82, 90})
		two, ok := outcome.(TwoSidedOutcome)
		require.True(t, ok)
		assert.Equal(t, 8, two.Margin)
		assert.Equal(t, 2, outcome.Sides())

		d0, err := outcome.Differential(0)
		require.NoError(t, err)
		assert.Equal(t, -8.0, d0)

		d1, err := outcome.Differential(1)
		require.NoError(t, err)
		assert.Equal(t, 8.0, d1)

		_, err = outcome.Differential(2)
		assert.Error(t, err)
	})

	t.Run("second side wins", func(t *testing.T) {
		outcome := ClassifyOutcome([]int{75, 71})
		d0, _ := outcome.Differential(0)
		d1, _ := outcome.Differential(1)
		assert.Equal(t, 4.0, d0)
		assert.Equal(t, -4.0, d1)
	})

	t.Run("three sides are unsupported", func(t *testing.T) {
		outcome := ClassifyOutcome([]int{70, 72, 74})
		_, ok := outcome.(MultiSidedOutcome)
		require.True(t, ok)
		assert.Equal(t, 3, outcome.Sides())

		_, err := outcome.Differential(0)
		assert.ErrorIs(t, err, ErrUnsupportedSides)
	})

	t.Run("single side is unsupported", func(t *testing.T) {
		_, err := ClassifyOutcome([]int{70}).Differential(0)
		assert.ErrorIs(t, err, ErrUnsupportedSides)
	})
}
