package handicap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrambleHandicap(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want float64
	}{
		{name: "two players", in: []float64{20, 10}, want: 6.5},
		{name: "two players sorted", in: []float64{10, 20}, want: 6.5},
		{name: "four players", in: []float64{20, 5, 15, 10}, want: 5.0},
		{name: "three players fall back to mean", in: []float64{10, 12, 14}, want: 12.0},
		{name: "single player mean", in: []float64{9.4}, want: 9.4},
		{name: "empty", in: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ScrambleHandicap(tt.in), 1e-9)
		})
	}
}

func TestBestBallHandicap(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want float64
	}{
		{name: "two players", in: []float64{20, 10}, want: 12.0},
		{name: "four players", in: []float64{20, 5, 15, 10}, want: 20.0},
		{name: "three players fall back to lowest", in: []float64{14, 9.5, 22}, want: 9.5},
		{name: "single player", in: []float64{7.2}, want: 7.2},
		{name: "empty", in: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, BestBallHandicap(tt.in), 1e-9)
		})
	}
}

func TestAggregators_DoNotReorderInput(t *testing.T) {
	in := []float64{20, 10}
	ScrambleHandicap(in)
	BestBallHandicap(in)
	assert.Equal(t, []float64{20, 10}, in)
}

func TestIndividualHandicap(t *testing.T) {
	assert.InDelta(t, 14.2, IndividualHandicap([]float64{14.2}), 1e-9)
	assert.InDelta(t, 14.2, IndividualHandicap([]float64{14.2, 3}), 1e-9)
	assert.InDelta(t, 0, IndividualHandicap(nil), 1e-9)
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats() {
		got, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
		assert.True(t, got.Valid())
	}

	_, err := ParseFormat("skins")
	assert.ErrorIs(t, err, ErrInvalidFormat)
	assert.False(t, Format("skins").Valid())
}

func TestFormat_TeamHandicap(t *testing.T) {
	pair := []float64{20, 10}
	assert.InDelta(t, 20.0, FormatStrokePlay.TeamHandicap(pair), 1e-9)
	assert.InDelta(t, 20.0, FormatMatchPlay.TeamHandicap(pair), 1e-9)
	assert.InDelta(t, 6.5, FormatScramble.TeamHandicap(pair), 1e-9)
	assert.InDelta(t, 12.0, FormatBestBall.TeamHandicap(pair), 1e-9)
	assert.InDelta(t, 12.0, FormatShamble.TeamHandicap(pair), 1e-9)
	assert.InDelta(t, 0, Format("skins").TeamHandicap(pair), 1e-9)
}

func TestFormat_ValidateSides(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		sizes   []int
		wantErr error
	}{
		{name: "stroke play single player", format: FormatStrokePlay, sizes: []int{1}},
		{name: "stroke play four players", format: FormatStrokePlay, sizes: []int{1, 1, 1, 1}},
		{name: "stroke play five sides", format: FormatStrokePlay, sizes: []int{1, 1, 1, 1, 1}, wantErr: ErrInvalidTeamShape},
		{name: "stroke play pair on one side", format: FormatStrokePlay, sizes: []int{2, 1}, wantErr: ErrInvalidTeamShape},
		{name: "match play one on one", format: FormatMatchPlay, sizes: []int{1, 1}},
		{name: "scramble two on one", format: FormatScramble, sizes: []int{2, 1}},
		{name: "best ball two on two", format: FormatBestBall, sizes: []int{2, 2}},
		{name: "shamble three sides", format: FormatShamble, sizes: []int{2, 2, 2}, wantErr: ErrInvalidTeamShape},
		{name: "best ball three players", format: FormatBestBall, sizes: []int{3, 2}, wantErr: ErrInvalidTeamShape},
		{name: "scramble empty side", format: FormatScramble, sizes: []int{2, 0}, wantErr: ErrInvalidTeamShape},
		{name: "match play single side", format: FormatMatchPlay, sizes: []int{1}, wantErr: ErrInvalidTeamShape},
		{name: "unknown format", format: Format("skins"), sizes: []int{1, 1}, wantErr: ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.format.ValidateSides(tt.sizes)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRelativeStrokes(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []int
	}{
		{name: "equal sides", in: []float64{10.0, 10.0}, want: []int{0, 0}},
		{name: "two sides", in: []float64{8.0, 12.0}, want: []int{0, 4}},
		{name: "best side last", in: []float64{12.4, 10.0, 15.6}, want: []int{2, 0, 6}},
		{name: "half stroke rounds up", in: []float64{10.0, 10.5}, want: []int{0, 1}},
		{name: "plus handicaps", in: []float64{-1.2, 3.4}, want: []int{0, 5}},
		{name: "empty", in: nil, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeStrokes(tt.in)
			assert.Equal(t, tt.want, got)
			for _, s := range got {
				assert.GreaterOrEqual(t, s, 0)
			}
		})
	}
}

func TestNetScore(t *testing.T) {
	assert.Equal(t, 82, NetScore(82, 0))
	assert.Equal(t, 90, NetScore(100, 10))
}
