package levels

import "StockPulse/internal/domain/models"

// MinBars is the shortest series with an interior fractal position.
const MinBars = 5

// Candidate is a raw support/resistance price found at bar Index.
type Candidate struct {
	Index int
	Kind  models.LevelKind
	Value float64
}

// DetectFractals scans every bar with two neighbours on each side for a
// 5-bar fractal. Support is checked first and wins when both patterns hold.
// Candidates come back in chronological order.
func DetectFractals(s *models.PriceSeries) []Candidate {
	if s == nil || s.Len() < MinBars {
		return nil
	}
	lows, highs := s.Lows(), s.Highs()
	out := make([]Candidate, 0, s.Len()/5)
	for i := 2; i <= s.Len()-3; i++ {
		if isSupport(lows, i) {
			out = append(out, Candidate{Index: i, Kind: models.LevelSupport, Value: lows[i]})
		} else if isResistance(highs, i) {
			out = append(out, Candidate{Index: i, Kind: models.LevelResistance, Value: highs[i]})
		}
	}
	return out
}

// two higher lows on each side
func isSupport(lows []float64, i int) bool {
	return lows[i] < lows[i-1] &&
		lows[i] < lows[i+1] &&
		lows[i+1] < lows[i+2] &&
		lows[i-1] < lows[i-2]
}

// two lower highs on each side
func isResistance(highs []float64, i int) bool {
	return highs[i] > highs[i-1] &&
		highs[i] > highs[i+1] &&
		highs[i+1] > highs[i+2] &&
		highs[i-1] > highs[i-2]
}
