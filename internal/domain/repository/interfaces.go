package repository

import (
	"context"
	"errors"
	"time"

	"StockPulse/internal/domain/models"
)

// ErrDataUnavailable is returned by providers when a ticker has no data
// for the requested range or the upstream call failed.
var ErrDataUnavailable = errors.New("upstream data unavailable")

// PriceProvider retrieves daily bars for a ticker over a date range.
type PriceProvider interface {
	DailySeries(ctx context.Context, symbol string, from, to time.Time) (*models.PriceSeries, error)
	Name() string
}

type Metrics interface {
	RecordRequest(op, symbol string)
	RecordError(kind string)
	RecordLevels(symbol string, kind models.LevelKind, n int)
	RecordLastPrice(symbol string, price float64)
	RecordLatency(op string, seconds float64)
}
