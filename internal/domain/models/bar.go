package models

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnorderedBars = errors.New("bars must be strictly increasing by date")
	ErrInvalidPrice  = errors.New("bar prices must be positive")
)

// Bar represents a single trading day.
type Bar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// PriceSeries is an ordered run of daily bars for one symbol.
// It is built once per refresh and never mutated afterwards.
type PriceSeries struct {
	Symbol string
	Bars   []Bar
}

// NewPriceSeries validates bars and wraps them into a series.
func NewPriceSeries(symbol string, bars []Bar) (*PriceSeries, error) {
	s := &PriceSeries{Symbol: symbol, Bars: bars}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks chronological order and price sanity.
func (s *PriceSeries) Validate() error {
	for i, b := range s.Bars {
		if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
			return fmt.Errorf("bar %d (%s): %w", i, b.Date.Format(time.DateOnly), ErrInvalidPrice)
		}
		if i > 0 && !b.Date.After(s.Bars[i-1].Date) {
			return fmt.Errorf("bar %d (%s): %w", i, b.Date.Format(time.DateOnly), ErrUnorderedBars)
		}
	}
	return nil
}

func (s *PriceSeries) Len() int { return len(s.Bars) }

// Last returns the most recent bar. Callers must check Len first.
func (s *PriceSeries) Last() Bar { return s.Bars[len(s.Bars)-1] }

func (s *PriceSeries) Opens() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Open
	}
	return out
}

func (s *PriceSeries) Highs() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.High
	}
	return out
}

func (s *PriceSeries) Lows() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Low
	}
	return out
}

func (s *PriceSeries) Closes() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Close
	}
	return out
}

func (s *PriceSeries) Volumes() []int64 {
	out := make([]int64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Volume
	}
	return out
}

// Dates returns bar dates formatted as YYYY-MM-DD.
func (s *PriceSeries) Dates() []string {
	out := make([]string, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Date.Format(time.DateOnly)
	}
	return out
}
