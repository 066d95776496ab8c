package handicap

import "sort"

// Aggregator combines individual course handicaps into one team handicap.
type Aggregator func(handicaps []float64) float64

var (
	scrambleWeights2 = []float64{0.35, 0.15}
	scrambleWeights4 = []float64{0.20, 0.15, 0.10, 0.05}
	bestBallWeights2 = []float64{0.80, 0.20}
	bestBallWeights4 = []float64{0.80, 0.60, 0.40, 0.20}
)

// ScrambleHandicap blends a scramble team. Sizes other than 2 or 4 use the mean.
func ScrambleHandicap(handicaps []float64) float64 {
	if len(handicaps) == 0 {
		return 0
	}
	sorted := sortedCopy(handicaps)
	switch len(sorted) {
	case 2:
		return Round1(weighted(sorted, scrambleWeights2))
	case 4:
		return Round1(weighted(sorted, scrambleWeights4))
	}

	var sum float64
	for _, h := range sorted {
		sum += h
	}
	return Round1(sum / float64(len(sorted)))
}

// BestBallHandicap blends a best ball or shamble team. Sizes other than 2 or 4
// use the single lowest handicap.
func BestBallHandicap(handicaps []float64) float64 {
	if len(handicaps) == 0 {
		return 0
	}
	sorted := sortedCopy(handicaps)
	switch len(sorted) {
	case 2:
		return Round1(weighted(sorted, bestBallWeights2))
	case 4:
		return Round1(weighted(sorted, bestBallWeights4))
	}
	return Round1(sorted[0])
}

// IndividualHandicap is the team handicap for one-player sides. If more than one
// handicap is passed the first one wins.
func IndividualHandicap(handicaps []float64) float64 {
	if len(handicaps) == 0 {
		return 0
	}
	return Round1(handicaps[0])
}

func sortedCopy(in []float64) []float64 {
	out := make([]float64, len(in))
	copy(out, in)
	sort.Float64s(out)
	return out
}

func weighted(sorted, weights []float64) float64 {
	var total float64
	for i, w := range weights {
		total += sorted[i] * w
	}
	return total
}
