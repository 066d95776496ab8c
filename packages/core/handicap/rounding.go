// Package handicap holds the pure golf handicap calculations: course handicaps,
// partial-round scaling, team aggregation per format, relative strokes and the
// post-match skill index adjustment.
//
// Nothing in this package touches storage. Callers resolve inputs (see
// ResolveSkillIndex) and persist the returned values themselves.
package handicap

import "math"

// roundingTolerance absorbs binary representation error on exact halves,
// e.g. 6.45*10 evaluating to 64.4999999.
const roundingTolerance = 1e-9

// Round1 rounds half-up to one decimal place.
func Round1(x float64) float64 {
	return math.Floor(x*10+0.5+roundingTolerance) / 10
}

// RoundInt rounds half-up to the nearest integer.
func RoundInt(x float64) int {
	return int(math.Floor(x + 0.5 + roundingTolerance))
}
