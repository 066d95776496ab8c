package handicap

import (
	"database/sql"
	"errors"
	"fmt"
)

const (
	// NeutralSlope is the slope rating of a course of average difficulty.
	NeutralSlope = 113

	// DefaultSkillIndex is used when neither a group nor a profile index exists.
	DefaultSkillIndex = 20.0

	// FullRound is the number of holes a course handicap is expressed for.
	FullRound = 18
)

var ErrInvalidHoles = errors.New("holes played must be 9 or 18")

// Course carries the immutable rating attributes of a course.
type Course struct {
	Par    int
	Rating float64
	Slope  int
}

// Handicap returns the full-round course handicap for index on this course.
func (c Course) Handicap(index float64) float64 {
	return CourseHandicap(index, c.Slope, c.Rating, c.Par)
}

// CourseHandicap converts a skill index into expected strokes over par.
func CourseHandicap(index float64, slope int, rating float64, par int) float64 {
	return Round1(index*float64(slope)/NeutralSlope + (rating - float64(par)))
}

// PartialHandicap scales a full 18-hole handicap to the holes actually played.
func PartialHandicap(full float64, holes int) float64 {
	return Round1(full * float64(holes) / FullRound)
}

// ValidateHoles accepts the two supported round lengths.
func ValidateHoles(holes int) error {
	if holes != 9 && holes != FullRound {
		return fmt.Errorf("%w: got %d", ErrInvalidHoles, holes)
	}
	return nil
}

// ResolveSkillIndex picks the group index, falling back to the profile index
// and finally to DefaultSkillIndex when both are absent.
func ResolveSkillIndex(group, profile sql.NullFloat64) float64 {
	if group.Valid {
		return group.Float64
	}
	if profile.Valid {
		return profile.Float64
	}
	return DefaultSkillIndex
}
