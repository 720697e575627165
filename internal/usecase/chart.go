package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"StockPulse/internal/domain/models"
	domrepo "StockPulse/internal/domain/repository"
	"StockPulse/internal/services/chart"
	"StockPulse/internal/services/indicators"
	"StockPulse/internal/services/levels"
	applogger "StockPulse/pkg/logger"
	"StockPulse/pkg/util"
)

const (
	opChart  = "chart"
	opLevels = "levels"
)

// ChartConfig holds the fetch window and defaults.
type ChartConfig struct {
	StartDate     time.Time
	DefaultSymbol string
	Timeout       time.Duration
}

// ChartUseCase fetches a fresh daily series and derives levels, indicators
// and the figure from it. Nothing is cached between calls.
type ChartUseCase struct {
	provider domrepo.PriceProvider
	metrics  domrepo.Metrics
	logger   *applogger.Logger
	cfg      ChartConfig
	now      func() time.Time
}

func NewChartUseCase(provider domrepo.PriceProvider, metrics domrepo.Metrics, logger *applogger.Logger, cfg ChartConfig) *ChartUseCase {
	if logger == nil {
		logger = applogger.Nop()
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if cfg.DefaultSymbol == "" {
		cfg.DefaultSymbol = "AAPL"
	}
	return &ChartUseCase{provider: provider, metrics: metrics, logger: logger, cfg: cfg, now: time.Now}
}

// NormalizeSymbol trims and upper-cases a ticker, falling back to def.
func NormalizeSymbol(symbol, def string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if s == "" {
		return strings.ToUpper(def)
	}
	return s
}

// Build returns the four-row chart figure for symbol.
func (u *ChartUseCase) Build(ctx context.Context, symbol string) (*chart.Figure, error) {
	start := u.now()
	symbol = NormalizeSymbol(symbol, u.cfg.DefaultSymbol)
	u.metrics.RecordRequest(opChart, symbol)
	defer func() { u.metrics.RecordLatency(opChart, time.Since(start).Seconds()) }()

	series, err := u.fetch(ctx, symbol)
	if err != nil {
		return nil, u.fail(opChart, symbol, err)
	}

	ls, err := levels.Build(series)
	if err != nil {
		return nil, u.fail(opChart, symbol, err)
	}
	u.observe(symbol, series, ls)

	fig := chart.Build(chart.Input{
		Series:     series,
		Indicators: indicators.Compute(series),
		Levels:     ls,
	})

	u.logger.Debug("chart built",
		applogger.String("symbol", symbol),
		applogger.Int("bars", series.Len()),
		applogger.Int("levels", ls.Len()),
		applogger.Int("traces", len(fig.Data)),
	)
	return fig, nil
}

// Levels returns the level set together with the series stats it was derived from.
func (u *ChartUseCase) Levels(ctx context.Context, symbol string) (*models.LevelsResponse, error) {
	start := u.now()
	symbol = NormalizeSymbol(symbol, u.cfg.DefaultSymbol)
	u.metrics.RecordRequest(opLevels, symbol)
	defer func() { u.metrics.RecordLatency(opLevels, time.Since(start).Seconds()) }()

	series, err := u.fetch(ctx, symbol)
	if err != nil {
		return nil, u.fail(opLevels, symbol, err)
	}

	a, err := levels.Analyze(series)
	if err != nil {
		return nil, u.fail(opLevels, symbol, err)
	}
	u.observe(symbol, series, a.Levels)

	return &models.LevelsResponse{
		Symbol:    symbol,
		Bars:      series.Len(),
		From:      series.Bars[0].Date.Format(time.DateOnly),
		To:        series.Last().Date.Format(time.DateOnly),
		Tolerance: a.Tolerance,
		MaxClose:  a.MaxClose,
		MinClose:  a.MinClose,
		Levels:    a.Levels.All(),
	}, nil
}

func (u *ChartUseCase) fetch(ctx context.Context, symbol string) (*models.PriceSeries, error) {
	if u.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.cfg.Timeout)
		defer cancel()
	}

	to := util.EndOfDay(u.now().UTC())
	series, err := u.provider.DailySeries(ctx, symbol, u.cfg.StartDate, to)
	if err != nil {
		return nil, err
	}
	if series == nil || series.Len() < levels.MinBars {
		n := 0
		if series != nil {
			n = series.Len()
		}
		return nil, fmt.Errorf("%s has %d bars: %w", symbol, n, levels.ErrTooShortSeries)
	}
	return series, nil
}

func (u *ChartUseCase) observe(symbol string, s *models.PriceSeries, ls models.LevelSet) {
	u.metrics.RecordLastPrice(symbol, s.Last().Close)
	counts := map[models.LevelKind]int{
		models.LevelSupport:    0,
		models.LevelResistance: 0,
		models.LevelFibonacci:  0,
	}
	for _, l := range ls.All() {
		counts[l.Kind]++
	}
	for kind, n := range counts {
		u.metrics.RecordLevels(symbol, kind, n)
	}
}

func (u *ChartUseCase) fail(op, symbol string, err error) error {
	kind := "internal"
	switch {
	case errors.Is(err, levels.ErrTooShortSeries):
		kind = "too_short"
	case errors.Is(err, domrepo.ErrDataUnavailable):
		kind = "upstream"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		kind = "timeout"
	}
	u.metrics.RecordError(kind)
	u.logger.Warn(op+" failed",
		applogger.String("symbol", symbol),
		applogger.String("kind", kind),
		applogger.Error(err),
	)
	return err
}

type nopMetrics struct{}

func (nopMetrics) RecordRequest(string, string)               {}
func (nopMetrics) RecordError(string)                         {}
func (nopMetrics) RecordLevels(string, models.LevelKind, int) {}
func (nopMetrics) RecordLastPrice(string, float64)            {}
func (nopMetrics) RecordLatency(string, float64)              {}
