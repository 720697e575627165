package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"StockPulse/internal/domain/models"
	domrepo "StockPulse/internal/domain/repository"
	"StockPulse/internal/services/levels"
)

type fakeProvider struct {
	series  *models.PriceSeries
	err     error
	symbols []string
	from    time.Time
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) DailySeries(_ context.Context, symbol string, from, _ time.Time) (*models.PriceSeries, error) {
	f.symbols = append(f.symbols, symbol)
	f.from = from
	if f.err != nil {
		return nil, f.err
	}
	return f.series, nil
}

type recMetrics struct {
	requests []string
	errors   []string
	levels   map[models.LevelKind]int
	last     float64
}

func (m *recMetrics) RecordRequest(op, symbol string) { m.requests = append(m.requests, op+":"+symbol) }
func (m *recMetrics) RecordError(kind string)         { m.errors = append(m.errors, kind) }
func (m *recMetrics) RecordLevels(_ string, kind models.LevelKind, n int) {
	if m.levels == nil {
		m.levels = map[models.LevelKind]int{}
	}
	m.levels[kind] = n
}
func (m *recMetrics) RecordLastPrice(_ string, price float64) { m.last = price }
func (m *recMetrics) RecordLatency(string, float64)           {}

// zigzag alternates troughs and peaks so the scan finds both kinds.
func zigzag(t *testing.T, n int) *models.PriceSeries {
	t.Helper()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	pattern := []float64{100, 95, 90, 95, 100, 105, 110, 105}
	bars := make([]models.Bar, n)
	for i := range bars {
		mid := pattern[i%len(pattern)] + float64(i/len(pattern))*2
		bars[i] = models.Bar{
			Date:   start.AddDate(0, 0, i),
			Open:   mid,
			High:   mid + 1,
			Low:    mid - 1,
			Close:  mid + 0.5,
			Volume: int64(1000 + i),
		}
	}
	s, err := models.NewPriceSeries("TEST", bars)
	if err != nil {
		t.Fatalf("NewPriceSeries: %v", err)
	}
	return s
}

func newUseCase(p domrepo.PriceProvider, m domrepo.Metrics) *ChartUseCase {
	return NewChartUseCase(p, m, nil, ChartConfig{
		StartDate:     time.Date(2019, 12, 1, 0, 0, 0, 0, time.UTC),
		DefaultSymbol: "AAPL",
		Timeout:       time.Second,
	})
}

func TestNormalizeSymbol(t *testing.T) {
	cases := []struct{ in, want string }{
		{" msft ", "MSFT"},
		{"", "AAPL"},
		{"   ", "AAPL"},
		{"brk.b", "BRK.B"},
	}
	for _, c := range cases {
		if got := NormalizeSymbol(c.in, "aapl"); got != c.want {
			t.Fatalf("NormalizeSymbol(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestBuild(t *testing.T) {
	p := &fakeProvider{series: zigzag(t, 40)}
	m := &recMetrics{}
	uc := newUseCase(p, m)

	fig, err := uc.Build(context.Background(), " tsla")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(p.symbols) != 1 || p.symbols[0] != "TSLA" {
		t.Fatalf("provider called with %v", p.symbols)
	}
	if !p.from.Equal(time.Date(2019, 12, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("from = %v", p.from)
	}
	if len(fig.Data) == 0 {
		t.Fatalf("figure has no traces")
	}
	if m.levels[models.LevelSupport] == 0 || m.levels[models.LevelResistance] == 0 {
		t.Fatalf("expected support and resistance levels, got %v", m.levels)
	}
	if m.last != p.series.Last().Close {
		t.Fatalf("last price = %v", m.last)
	}
	if len(m.errors) != 0 {
		t.Fatalf("unexpected errors %v", m.errors)
	}
}

func TestBuild_EmptySymbolUsesDefault(t *testing.T) {
	p := &fakeProvider{series: zigzag(t, 20)}
	if _, err := newUseCase(p, nil).Build(context.Background(), ""); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.symbols[0] != "AAPL" {
		t.Fatalf("want default symbol, got %s", p.symbols[0])
	}
}

func TestBuild_TooShort(t *testing.T) {
	p := &fakeProvider{series: zigzag(t, 4)}
	m := &recMetrics{}

	_, err := newUseCase(p, m).Build(context.Background(), "X")
	if !errors.Is(err, levels.ErrTooShortSeries) {
		t.Fatalf("want ErrTooShortSeries, got %v", err)
	}
	if len(m.errors) != 1 || m.errors[0] != "too_short" {
		t.Fatalf("errors = %v", m.errors)
	}
}

func TestBuild_ProviderError(t *testing.T) {
	p := &fakeProvider{err: fmt.Errorf("yahoo X: %w", domrepo.ErrDataUnavailable)}
	m := &recMetrics{}

	_, err := newUseCase(p, m).Build(context.Background(), "X")
	if !errors.Is(err, domrepo.ErrDataUnavailable) {
		t.Fatalf("want ErrDataUnavailable, got %v", err)
	}
	if len(m.errors) != 1 || m.errors[0] != "upstream" {
		t.Fatalf("errors = %v", m.errors)
	}
}

func TestLevels(t *testing.T) {
	s := zigzag(t, 40)
	p := &fakeProvider{series: s}

	res, err := newUseCase(p, nil).Levels(context.Background(), "spy")
	if err != nil {
		t.Fatalf("Levels: %v", err)
	}
	if res.Symbol != "SPY" || res.Bars != 40 {
		t.Fatalf("unexpected header %+v", res)
	}
	if res.From != "2024-01-01" || res.To != s.Last().Date.Format(time.DateOnly) {
		t.Fatalf("range %s..%s", res.From, res.To)
	}
	want, _ := levels.Build(s)
	if len(res.Levels) != want.Len() {
		t.Fatalf("got %d levels, want %d", len(res.Levels), want.Len())
	}
	for i, l := range want.All() {
		if res.Levels[i] != l {
			t.Fatalf("level %d = %+v, want %+v", i, res.Levels[i], l)
		}
	}
	if res.Tolerance <= 0 || res.MaxClose <= res.MinClose {
		t.Fatalf("bad stats %+v", res)
	}
}

func TestLevels_FreshFetchEveryCall(t *testing.T) {
	p := &fakeProvider{series: zigzag(t, 20)}
	uc := newUseCase(p, nil)
	for i := 0; i < 3; i++ {
		if _, err := uc.Levels(context.Background(), "AAPL"); err != nil {
			t.Fatalf("Levels: %v", err)
		}
	}
	if len(p.symbols) != 3 {
		t.Fatalf("provider called %d times, want 3", len(p.symbols))
	}
}
