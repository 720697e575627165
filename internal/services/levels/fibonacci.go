package levels

import (
	"math"

	"StockPulse/internal/domain/models"
)

// FibRatios are the retracement ratios, in output order.
var FibRatios = []float64{0.236, 0.382, 0.5, 0.618, 0.786, 1.0}

// ExtensionFactor projects one level above the 1.0 retracement.
const ExtensionFactor = 1.17

// HighestClose returns the maximum close, or 0 for an empty series.
func HighestClose(s *models.PriceSeries) float64 {
	if s == nil || s.Len() == 0 {
		return 0
	}
	max := math.Inf(-1)
	for _, b := range s.Bars {
		if b.Close > max {
			max = b.Close
		}
	}
	return max
}

// LowestClose returns the minimum close, or 0 for an empty series.
func LowestClose(s *models.PriceSeries) float64 {
	if s == nil || s.Len() == 0 {
		return 0
	}
	low := math.Inf(1)
	for _, b := range s.Bars {
		if b.Close < low {
			low = b.Close
		}
	}
	return low
}

// FibonacciLevels scales (max - low) by each ratio. A degenerate range
// (max <= low) is not rejected; it yields zero or negative levels.
// The extension level is appended only when it stays below max.
func FibonacciLevels(max, low float64) []models.Level {
	rng := max - low
	out := make([]models.Level, 0, len(FibRatios)+1)
	for _, r := range FibRatios {
		out = append(out, newLevel(rng*r, models.LevelFibonacci))
	}

	last := out[len(out)-1].Value
	fractal := last * ExtensionFactor
	if last < fractal && fractal < max {
		out = append(out, newLevel(fractal, models.LevelFibonacci))
	}
	return out
}
