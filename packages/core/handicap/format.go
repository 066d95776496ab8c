package handicap

import (
	"errors"
	"fmt"
)

// Format is the game format of a match. It fixes the team shape for the
// lifetime of the match.
type Format string

const (
	FormatStrokePlay Format = "stroke_play"
	FormatMatchPlay  Format = "match_play"
	FormatScramble   Format = "2v2_scramble"
	FormatBestBall   Format = "best_ball"
	FormatShamble    Format = "shamble"
)

var (
	ErrInvalidFormat    = errors.New("invalid match format")
	ErrInvalidTeamShape = errors.New("teams do not fit the match format")
)

// TeamShape describes how many sides a format allows, how many players each
// side may hold and how their handicaps are combined.
type TeamShape struct {
	MinSides   int
	MaxSides   int
	MinPlayers int
	MaxPlayers int
	Aggregate  Aggregator
}

var teamShapes = map[Format]TeamShape{
	FormatStrokePlay: {MinSides: 1, MaxSides: 4, MinPlayers: 1, MaxPlayers: 1, Aggregate: IndividualHandicap},
	FormatMatchPlay:  {MinSides: 2, MaxSides: 2, MinPlayers: 1, MaxPlayers: 2, Aggregate: IndividualHandicap},
	FormatScramble:   {MinSides: 2, MaxSides: 2, MinPlayers: 1, MaxPlayers: 2, Aggregate: ScrambleHandicap},
	FormatBestBall:   {MinSides: 2, MaxSides: 2, MinPlayers: 1, MaxPlayers: 2, Aggregate: BestBallHandicap},
	FormatShamble:    {MinSides: 2, MaxSides: 2, MinPlayers: 1, MaxPlayers: 2, Aggregate: BestBallHandicap},
}

// Formats lists every supported format in a stable order.
func Formats() []Format {
	return []Format{FormatStrokePlay, FormatMatchPlay, FormatScramble, FormatBestBall, FormatShamble}
}

// ParseFormat maps the stored string form onto a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if _, ok := teamShapes[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return f, nil
}

// Valid reports whether f is one of the known formats.
func (f Format) Valid() bool {
	_, ok := teamShapes[f]
	return ok
}

// Shape returns the team shape of f. Unknown formats get the zero shape.
func (f Format) Shape() TeamShape {
	return teamShapes[f]
}

// TeamHandicap combines a side's course handicaps using the format's aggregator.
func (f Format) TeamHandicap(handicaps []float64) float64 {
	shape, ok := teamShapes[f]
	if !ok {
		return 0
	}
	return shape.Aggregate(handicaps)
}

// ValidateSides checks a list of side sizes against the format's team shape.
func (f Format) ValidateSides(sizes []int) error {
	shape, ok := teamShapes[f]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(f))
	}
	if len(sizes) < shape.MinSides || len(sizes) > shape.MaxSides {
		return fmt.Errorf("%w: %s needs %d-%d teams, got %d",
			ErrInvalidTeamShape, f, shape.MinSides, shape.MaxSides, len(sizes))
	}
	for i, n := range sizes {
		if n < shape.MinPlayers || n > shape.MaxPlayers {
			return fmt.Errorf("%w: team %d of %s needs %d-%d players, got %d",
				ErrInvalidTeamShape, i+1, f, shape.MinPlayers, shape.MaxPlayers, n)
		}
	}
	return nil
}
