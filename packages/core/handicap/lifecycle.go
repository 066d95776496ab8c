package handicap

import (
	"errors"
	"fmt"
)

// Status is the lifecycle state of a match.
type Status string

const (
	StatusPending    Status = "pending"
	StatusTeamsReady Status = "teams_ready"
	StatusCompleted  Status = "completed"
)

var (
	ErrInvalidOverride   = errors.New("invalid stroke override")
	ErrInvalidGrossScore = errors.New("gross score must be a non-negative integer")
)

// CanTransition reports whether a match may move from s to next.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusTeamsReady
	case StatusTeamsReady:
		return next == StatusCompleted
	}
	return false
}

// PlannedSide is one side of a match after team assignment.
type PlannedSide struct {
	// PlayerHandicaps are the course handicaps frozen for each player, in input
	// order, already scaled to the holes being played.
	PlayerHandicaps []float64
	Handicap        float64
	Strokes         int
}

// TeamPlan is the result of assigning teams to a match.
type TeamPlan struct {
	Sides      []PlannedSide
	Overridden bool
}

// PlanTeams computes every handicap that is frozen at team-assignment time.
// sides holds the skill index of each player per side. When override is
// non-nil its values replace the computed relative strokes.
func PlanTeams(format Format, holes int, course Course, sides [][]float64, override []int) (TeamPlan, error) {
	if err := ValidateHoles(holes); err != nil {
		return TeamPlan{}, err
	}

	sizes := make([]int, len(sides))
	for i, side := range sides {
		sizes[i] = len(side)
	}
	if err := format.ValidateSides(sizes); err != nil {
		return TeamPlan{}, err
	}

	if override != nil {
		if len(override) != len(sides) {
			return TeamPlan{}, fmt.Errorf("%w: %d values for %d teams", ErrInvalidOverride, len(override), len(sides))
		}
		for i, strokes := range override {
			if strokes < 0 {
				return TeamPlan{}, fmt.Errorf("%w: team %d has %d strokes", ErrInvalidOverride, i+1, strokes)
			}
		}
	}

	plan := TeamPlan{Sides: make([]PlannedSide, len(sides)), Overridden: override != nil}
	teamHandicaps := make([]float64, len(sides))
	for i, side := range sides {
		players := make([]float64, len(side))
		for j, index := range side {
			players[j] = PartialHandicap(course.Handicap(index), holes)
		}
		teamHandicaps[i] = format.TeamHandicap(players)
		plan.Sides[i] = PlannedSide{PlayerHandicaps: players, Handicap: teamHandicaps[i]}
	}

	strokes := override
	if strokes == nil {
		strokes = RelativeStrokes(teamHandicaps)
	}
	for i := range plan.Sides {
		plan.Sides[i].Strokes = strokes[i]
	}
	return plan, nil
}

// SideScore is the input to settlement for one side.
type SideScore struct {
	Gross   int
	Strokes int
}

// SettledSide is one side's result.
type SettledSide struct {
	Gross  int
	Net    int
	Winner bool
}

// Settlement is the full result of a match.
type Settlement struct {
	Sides   []SettledSide
	Outcome Outcome
}

// Settle validates gross scores, computes net scores and marks every side with
// the lowest net score as a winner. Ties therefore produce several winners.
func Settle(sides []SideScore) (Settlement, error) {
	for i, s := range sides {
		if s.Gross < 0 {
			return Settlement{}, fmt.Errorf("%w: team %d has %d", ErrInvalidGrossScore, i+1, s.Gross)
		}
	}

	net := make([]int, len(sides))
	best := 0
	for i, s := range sides {
		net[i] = NetScore(s.Gross, s.Strokes)
		if i == 0 || net[i] < best {
			best = net[i]
		}
	}

	settled := Settlement{Sides: make([]SettledSide, len(sides)), Outcome: ClassifyOutcome(net)}
	for i, s := range sides {
		settled.Sides[i] = SettledSide{Gross: s.Gross, Net: net[i], Winner: net[i] == best}
	}
	return settled, nil
}
