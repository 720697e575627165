package levels

import (
	"fmt"
	"math"
	"sort"

	"StockPulse/internal/domain/models"
)

// ToleranceLowFactor scales each bar's low before taking the high-low spread.
// Roughly .88 suits longer horizons and .97 short ones.
const ToleranceLowFactor = 0.89

// Tolerance returns mean(high - low*ToleranceLowFactor) across the series.
func Tolerance(s *models.PriceSeries) (float64, error) {
	if s == nil || s.Len() < MinBars {
		return 0, fmt.Errorf("tolerance: %w", ErrTooShortSeries)
	}
	sum := 0.0
	for _, b := range s.Bars {
		sum += b.High - b.Low*ToleranceLowFactor
	}
	return sum / float64(s.Len()), nil
}

// Deduplicate admits candidates in the given order, dropping any that sits
// closer than tolerance to an already admitted level. The result is sorted
// ascending by value.
func Deduplicate(candidates []Candidate, tolerance float64) []models.Level {
	accepted := make([]models.Level, 0, len(candidates))
	for _, c := range candidates {
		if !isFarFromLevels(c.Value, accepted, tolerance) {
			continue
		}
		accepted = append(accepted, newLevel(c.Value, c.Kind))
	}
	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].Value < accepted[j].Value
	})
	return accepted
}

func isFarFromLevels(v float64, accepted []models.Level, tolerance float64) bool {
	for _, a := range accepted {
		if math.Abs(v-a.Value) < tolerance {
			return false
		}
	}
	return true
}
