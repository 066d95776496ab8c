package handicap

import (
	"errors"
	"fmt"
)

const (
	// MaxAdjustment bounds how far one match may move a skill index.
	MaxAdjustment = 2.0

	adjustmentDampening = 0.5
	learningRateOffset  = 3
)

var ErrUnsupportedSides = errors.New("skill index adjustment needs exactly two sides")

// LearningRate shrinks as a player completes more matches in a group.
func LearningRate(matchesPlayed int) float64 {
	if matchesPlayed < 0 {
		matchesPlayed = 0
	}
	return 1 / float64(matchesPlayed+learningRateOffset)
}

// RoundWeight scales an adjustment by the share of a full round played.
func RoundWeight(holes int) float64 {
	return float64(holes) / FullRound
}

// AdjustSkillIndex returns the new skill index after a match. A negative
// differential (the player's side won by that many net strokes) lowers the
// index; a positive one raises it. The move is clamped to MaxAdjustment.
func AdjustSkillIndex(current float64, matchesPlayed int, differential float64, holes int) float64 {
	raw := differential * LearningRate(matchesPlayed) * RoundWeight(holes) * adjustmentDampening
	return Round1(current + clamp(raw, -MaxAdjustment, MaxAdjustment))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Outcome is the shape of a settled match as far as skill adjustment is
// concerned.
type Outcome interface {
	// Differential returns the score differential for the side at index side.
	Differential(side int) (float64, error)
	Sides() int
}

// TwoSidedOutcome carries the margin between exactly two sides.
// Margin is net[1] - net[0]; side 0 receives -Margin and side 1 +Margin.
type TwoSidedOutcome struct {
	Margin int
}

func (o TwoSidedOutcome) Sides() int { return 2 }

func (o TwoSidedOutcome) Differential(side int) (float64, error) {
	switch side {
	case 0:
		return float64(-o.Margin), nil
	case 1:
		return float64(o.Margin), nil
	}
	return 0, fmt.Errorf("side %d out of range for a two-sided match", side)
}

// MultiSidedOutcome is any match that does not have exactly two sides. No
// adjustment rule is defined for it.
type MultiSidedOutcome struct {
	SideCount int
}

func (o MultiSidedOutcome) Sides() int { return o.SideCount }

func (o MultiSidedOutcome) Differential(int) (float64, error) {
	return 0, fmt.Errorf("%w: match has %d sides", ErrUnsupportedSides, o.SideCount)
}

// ClassifyOutcome picks the outcome variant for a list of net scores ordered
// by team number.
func ClassifyOutcome(net []int) Outcome {
	if len(net) != 2 {
		return MultiSidedOutcome{SideCount: len(net)}
	}
	return TwoSidedOutcome{Margin: net[1] - net[0]}
}
