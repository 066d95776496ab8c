package handicap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var neutralCourse = Course{Par: 72, Rating: 72.0, Slope: 113}

func TestStatus_CanTransition(t *testing.T) {
	assert.True(t, StatusPending.CanTransition(StatusTeamsReady))
	assert.True(t, StatusTeamsReady.CanTransition(StatusCompleted))

	assert.False(t, StatusPending.CanTransition(StatusCompleted))
	assert.False(t, StatusTeamsReady.CanTransition(StatusPending))
	assert.False(t, StatusCompleted.CanTransition(StatusPending))
	assert.False(t, StatusCompleted.CanTransition(StatusTeamsReady))
}

func TestPlanTeams(t *testing.T) {
	tests := []struct {
		name         string
		format       Format
		holes        int
		course       Course
		sides        [][]float64
		override     []int
		wantPlayers  [][]float64
		wantHandicap []float64
		wantStrokes  []int
		wantErr      error
	}{
		{
			name:         "stroke play head to head",
			format:       FormatStrokePlay,
			holes:        18,
			course:       neutralCourse,
			sides:        [][]float64{{10}, {20}},
			wantPlayers:  [][]float64{{10}, {20}},
			wantHandicap: []float64{10, 20},
			wantStrokes:  []int{0, 10},
		},
		{
			name:         "nine hole stroke play",
			format:       FormatStrokePlay,
			holes:        9,
			course:       neutralCourse,
			sides:        [][]float64{{15}, {8}},
			wantPlayers:  [][]float64{{7.5}, {4}},
			wantHandicap: []float64{7.5, 4},
			wantStrokes:  []int{4, 0},
		},
		{
			name:         "scramble pairs",
			format:       FormatScramble,
			holes:        18,
			course:       neutralCourse,
			sides:        [][]float64{{10, 20}, {4, 30}},
			wantPlayers:  [][]float64{{10, 20}, {4, 30}},
			wantHandicap: []float64{6.5, 5.9},
			wantStrokes:  []int{1, 0},
		},
		{
			name:         "best ball two against one",
			format:       FormatBestBall,
			holes:        18,
			course:       neutralCourse,
			sides:        [][]float64{{20, 10}, {11}},
			wantPlayers:  [][]float64{{20, 10}, {11}},
			wantHandicap: []float64{12, 11},
			wantStrokes:  []int{1, 0},
		},
		{
			name:         "override replaces computed strokes",
			format:       FormatMatchPlay,
			holes:        18,
			course:       neutralCourse,
			sides:        [][]float64{{10}, {20}},
			override:     []int{3, 0},
			wantPlayers:  [][]float64{{10}, {20}},
			wantHandicap: []float64{10, 20},
			wantStrokes:  []int{3, 0},
		},
		{
			name:     "override length mismatch",
			format:   FormatMatchPlay,
			holes:    18,
			course:   neutralCourse,
			sides:    [][]float64{{10}, {20}},
			override: []int{3},
			wantErr:  ErrInvalidOverride,
		},
		{
			name:     "negative override",
			format:   FormatMatchPlay,
			holes:    18,
			course:   neutralCourse,
			sides:    [][]float64{{10}, {20}},
			override: []int{0, -1},
			wantErr:  ErrInvalidOverride,
		},
		{
			name:    "bad holes",
			format:  FormatStrokePlay,
			holes:   12,
			course:  neutralCourse,
			sides:   [][]float64{{10}},
			wantErr: ErrInvalidHoles,
		},
		{
			name:    "team shape violated",
			format:  FormatMatchPlay,
			holes:   18,
			course:  neutralCourse,
			sides:   [][]float64{{10}, {20}, {30}},
			wantErr: ErrInvalidTeamShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := PlanTeams(tt.format, tt.holes, tt.course, tt.sides, tt.override)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, plan.Sides, len(tt.wantStrokes))
			assert.Equal(t, tt.override != nil, plan.Overridden)

			for i, side := range plan.Sides {
				require.Len(t, side.PlayerHandicaps, len(tt.wantPlayers[i]))
				for j, h := range side.PlayerHandicaps {
					assert.InDelta(t, tt.wantPlayers[i][j], h, 1e-9)
				}
				assert.InDelta(t, tt.wantHandicap[i], side.Handicap, 1e-9)
				assert.Equal(t, tt.wantStrokes[i], side.Strokes)
			}
		})
	}
}

func TestSettle(t *testing.T) {
	t.Run("lowest net wins", func(t *testing.T) {
		settled, err := Settle([]SideScore{{Gross: 82, Strokes: 0}, {Gross: 100, Strokes: 10}})
		require.NoError(t, err)

		assert.Equal(t, []SettledSide{
			{Gross: 82, Net: 82, Winner: true},
			{Gross: 100, Net: 90, Winner: false},
		}, settled.Sides)
		assert.Equal(t, TwoSidedOutcome{Margin: 8}, settled.Outcome)
	})

	t.Run("strokes can flip the result", func(t *testing.T) {
		settled, err := Settle([]SideScore{{Gross: 80, Strokes: 0}, {Gross: 85, Strokes: 6}})
		require.NoError(t, err)
		assert.False(t, settled.Sides[0].Winner)
		assert.True(t, settled.Sides[1].Winner)
	})

	t.Run("ties mark every lowest side", func(t *testing.T) {
		settled, err := Settle([]SideScore{{Gross: 80, Strokes: 2}, {Gross: 78, Strokes: 0}})
		require.NoError(t, err)
		assert.True(t, settled.Sides[0].Winner)
		assert.True(t, settled.Sides[1].Winner)
		assert.Equal(t, TwoSidedOutcome{Margin: 0}, settled.Outcome)
	})

	t.Run("four way stroke play", func(t *testing.T) {
		settled, err := Settle([]SideScore{{Gross: 90, Strokes: 8}, {Gross: 84}, {Gross: 95, Strokes: 12}, {Gross: 88, Strokes: 3}})
		require.NoError(t, err)
		winners := 0
		for _, s := range settled.Sides {
			if s.Winner {
				winners++
			}
		}
		assert.Equal(t, 1, winners)
		assert.True(t, settled.Sides[0].Winner)
		assert.Equal(t, MultiSidedOutcome{SideCount: 4}, settled.Outcome)
	})

	t.Run("negative gross rejected", func(t *testing.T) {
		_, err := Settle([]SideScore{{Gross: 82}, {Gross: -1}})
		assert.ErrorIs(t, err, ErrInvalidGrossScore)
	})
}

func TestMatchScenario_EndToEnd(t *testing.T) {
	plan, err := PlanTeams(FormatStrokePlay, 18, neutralCourse, [][]float64{{10.0}, {20.0}}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, plan.Sides[0].Strokes)
	assert.Equal(t, 10, plan.Sides[1].Strokes)

	settled, err := Settle([]SideScore{
		{Gross: 82, Strokes: plan.Sides[0].Strokes},
		{Gross: 100, Strokes: plan.Sides[1].Strokes},
	})
	require.NoError(t, err)
	assert.True(t, settled.Sides[0].Winner)

	d0, err := settled.Outcome.Differential(0)
	require.NoError(t, err)
	d1, err := settled.Outcome.Differential(1)
	require.NoError(t, err)

	assert.InDelta(t, 8.7, AdjustSkillIndex(10.0, 0, d0, 18), 1e-9)
	assert.InDelta(t, 21.3, AdjustSkillIndex(20.0, 0, d1, 18), 1e-9)
}

func TestMatchScenario_Blowout(t *testing.T) {
	outcome := ClassifyOutcome([]int{70, 130})
	d1, err := outcome.Differential(1)
	require.NoError(t, err)
	assert.InDelta(t, 12.0, AdjustSkillIndex(10.0, 0, d1, 18), 1e-9)
}
