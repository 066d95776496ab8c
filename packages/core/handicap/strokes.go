package handicap

// RelativeStrokes converts absolute team handicaps into strokes given relative
// to the best side. The lowest side(s) get 0 and every value is >= 0.
func RelativeStrokes(handicaps []float64) []int {
	strokes := make([]int, len(handicaps))
	if len(handicaps) == 0 {
		return strokes
	}

	lowest := handicaps[0]
	for _, h := range handicaps[1:] {
		if h < lowest {
			lowest = h
		}
	}

	for i, h := range handicaps {
		strokes[i] = RoundInt(h - lowest)
	}
	return strokes
}

// NetScore is the gross score less the strokes a side was given.
func NetScore(gross, strokes int) int {
	return gross - strokes
}
