package chart

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"StockPulse/internal/domain/models"
	"StockPulse/internal/services/indicators"
	"StockPulse/internal/services/levels"
)

func sampleSeries(n int) *models.PriceSeries {
	t0 := time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC)
	bars := make([]models.Bar, n)
	for i := range bars {
		p := 100 + float64(i%7)*2 - float64(i%3)
		open := p + 0.5
		if i%2 == 0 {
			open = p - 0.5
		}
		bars[i] = models.Bar{Date: t0.AddDate(0, 0, i), Open: open, High: p + 2, Low: p - 2, Close: p, Volume: int64(1000 + i)}
	}
	return &models.PriceSeries{Symbol: "msft", Bars: bars}
}

func TestBuild(t *testing.T) {
	s := sampleSeries(80)
	ls, err := levels.Build(s)
	if err != nil {
		t.Fatalf("levels: %v", err)
	}
	fig := Build(Input{Series: s, Indicators: indicators.Compute(s), Levels: ls})

	if fig.Layout.Title.Text != "MSFT Price Action" {
		t.Fatalf("title = %q", fig.Layout.Title.Text)
	}
	if fig.Data[0].Type != "candlestick" || len(fig.Data[0].Close) != 80 {
		t.Fatalf("first trace should be the candlestick, got %+v", fig.Data[0].Type)
	}

	names := map[string]Trace{}
	var levelTraces int
	for _, tr := range fig.Data {
		names[tr.Name] = tr
		if strings.HasPrefix(tr.Name, "Sup/Res: ") {
			levelTraces++
			if tr.HoverInfo != "skip" || tr.Opacity != 0.3 {
				t.Fatalf("unexpected level trace style %+v", tr)
			}
		}
	}
	for _, want := range []string{"MA 5", "MA 15", "MA 50", "MA 200", "Volume", "RSI", "Oversold", "Overbought", "Histogram", "MACD", "Signal"} {
		if _, ok := names[want]; !ok {
			t.Fatalf("missing trace %q", want)
		}
	}
	if names["MA 5"].Visible != "legendonly" || names["MA 50"].Visible != nil {
		t.Fatalf("unexpected MA visibility")
	}
	if names["RSI"].YAxis != "y3" || names["Histogram"].YAxis != "y4" || names["Volume"].YAxis != "y2" {
		t.Fatalf("traces on wrong rows")
	}
	if levelTraces != ls.Len() {
		t.Fatalf("level traces = %d, want %d", levelTraces, ls.Len())
	}

	last := s.Last().Close
	if _, ok := names["Current Price: "+levels.Label(last)]; !ok {
		t.Fatalf("missing current price trace")
	}

	b, err := json.Marshal(fig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"rangebreaks":[{"bounds":["sat","mon"]}]`) {
		t.Fatalf("missing weekend range breaks")
	}
}

func TestVolumeColors(t *testing.T) {
	s := &models.PriceSeries{Symbol: "X", Bars: []models.Bar{
		{Date: time.Unix(0, 0), Open: 10, High: 11, Low: 9, Close: 9.5, Volume: 1},
		{Date: time.Unix(86400, 0), Open: 10, High: 11, Low: 9, Close: 10.5, Volume: 1},
		{Date: time.Unix(2*86400, 0), Open: 10, High: 11, Low: 9, Close: 10, Volume: 1},
	}}
	v := volume(s, s.Dates())
	want := []string{"green", "red", "green"}
	for i, c := range want {
		if v.Marker.Color[i] != c {
			t.Fatalf("color %d = %q, want %q", i, v.Marker.Color[i], c)
		}
	}
}

func TestRowDomains(t *testing.T) {
	d := rowDomains()
	if d[0][1] != 1 || d[3][0] != 0 {
		t.Fatalf("domains must span [0,1]: %v", d)
	}
	for i := 1; i < len(d); i++ {
		if d[i][1] >= d[i-1][0] {
			t.Fatalf("row %d overlaps row %d: %v", i, i-1, d)
		}
	}
	if d[0][1]-d[0][0] <= d[1][1]-d[1][0] {
		t.Fatalf("price row should be the tallest: %v", d)
	}
}

func TestLevelLinesOrder(t *testing.T) {
	ls := models.LevelSet{
		Fractal:   []models.Level{{Value: 5, Kind: models.LevelSupport, Label: "5"}, {Value: 9, Kind: models.LevelResistance, Label: "9"}},
		Fibonacci: []models.Level{{Value: 1, Kind: models.LevelFibonacci, Label: "1"}},
	}
	got := levelLines(ls, []string{"a", "b"})
	want := []string{"Sup/Res: 5", "Sup/Res: 9", "Sup/Res: 1"}
	for i, w := range want {
		if got[i].Name != w {
			t.Fatalf("trace %d = %q, want %q", i, got[i].Name, w)
		}
	}
}
