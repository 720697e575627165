package levels

import (
	"errors"
	"fmt"

	"StockPulse/internal/domain/models"

	"github.com/shopspring/decimal"
)

// ErrTooShortSeries means the series has fewer than MinBars bars.
var ErrTooShortSeries = errors.New("series too short for level detection")

// Analysis is the level set plus the series figures it was derived from.
type Analysis struct {
	Levels     models.LevelSet
	Candidates int
	Tolerance  float64
	MaxClose   float64
	MinClose   float64
}

// Analyze runs the fractal scan, deduplication and Fibonacci generator.
func Analyze(s *models.PriceSeries) (*Analysis, error) {
	if s == nil || s.Len() < MinBars {
		n := 0
		if s != nil {
			n = s.Len()
		}
		return nil, fmt.Errorf("%d bars, need %d: %w", n, MinBars, ErrTooShortSeries)
	}

	tol, err := Tolerance(s)
	if err != nil {
		return nil, err
	}
	candidates := DetectFractals(s)
	max, low := HighestClose(s), LowestClose(s)

	return &Analysis{
		Levels: models.LevelSet{
			Fractal:   Deduplicate(candidates, tol),
			Fibonacci: FibonacciLevels(max, low),
		},
		Candidates: len(candidates),
		Tolerance:  tol,
		MaxClose:   max,
		MinClose:   low,
	}, nil
}

// Build returns only the level set of Analyze.
func Build(s *models.PriceSeries) (models.LevelSet, error) {
	a, err := Analyze(s)
	if err != nil {
		return models.LevelSet{}, err
	}
	return a.Levels, nil
}

// Label renders a price rounded to cents, without trailing zeros.
func Label(v float64) string {
	return decimal.NewFromFloat(v).Round(2).String()
}

func newLevel(v float64, kind models.LevelKind) models.Level {
	return models.Level{Value: v, Kind: kind, Label: Label(v)}
}
