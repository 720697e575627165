package chart

import (
	"strconv"

	"StockPulse/internal/domain/models"
	"StockPulse/internal/services/indicators"
	"StockPulse/internal/services/levels"
)

// Input is everything a figure is drawn from.
type Input struct {
	Series     *models.PriceSeries
	Indicators *indicators.Set
	Levels     models.LevelSet
}

// Build assembles the full figure for one refresh.
func Build(in Input) *Figure {
	x := in.Series.Dates()
	fig := &Figure{Layout: newLayout(in.Series.Symbol)}

	fig.Data = append(fig.Data, candlestick(in.Series, x))
	if in.Indicators != nil {
		fig.Data = append(fig.Data, movingAverages(in.Indicators, x)...)
	}
	fig.Data = append(fig.Data, volume(in.Series, x))
	if in.Indicators != nil {
		fig.Data = append(fig.Data, macd(in.Indicators.MACD, x)...)
		fig.Data = append(fig.Data, rsi(in.Indicators.RSI, x)...)
	}
	if in.Series.Len() > 0 {
		fig.Data = append(fig.Data, currentPrice(in.Series, x))
	}
	fig.Data = append(fig.Data, levelLines(in.Levels, x)...)
	return fig
}

func candlestick(s *models.PriceSeries, x []string) Trace {
	return Trace{
		Type:  "candlestick",
		Name:  "Open/Close",
		X:     x,
		Open:  s.Opens(),
		High:  s.Highs(),
		Low:   s.Lows(),
		Close: s.Closes(),
		XAxis: "x",
		YAxis: yAxisRef(1),
	}
}

type maStyle struct {
	color   string
	opacity float64
	hidden  bool
}

// 50 and 200 are shown by default, 5 and 15 through the legend
var maStyles = map[int]maStyle{
	5:   {color: "blue", opacity: 0.4, hidden: true},
	15:  {color: "orangered", opacity: 0.7, hidden: true},
	50:  {color: "purple", opacity: 0.7},
	200: {color: "black", opacity: 0.7},
}

func movingAverages(set *indicators.Set, x []string) []Trace {
	out := make([]Trace, 0, len(indicators.MAPeriods))
	for _, p := range indicators.MAPeriods {
		st, ok := maStyles[p]
		if !ok {
			st = maStyle{color: "gray", opacity: 0.7, hidden: true}
		}
		t := scatter(maName(p), x, set.MA[p], 1, &Line{Color: st.color, Width: 2})
		t.Opacity = st.opacity
		if st.hidden {
			t.Visible = "legendonly"
		}
		out = append(out, t)
	}
	return out
}

func volume(s *models.PriceSeries, x []string) Trace {
	colors := make([]string, s.Len())
	for i, b := range s.Bars {
		if b.Open-b.Close >= 0 {
			colors[i] = "green"
		} else {
			colors[i] = "red"
		}
	}
	return Trace{
		Type:       "bar",
		Name:       "Volume",
		X:          x,
		Y:          s.Volumes(),
		XAxis:      "x",
		YAxis:      yAxisRef(2),
		Marker:     &Marker{Color: colors},
		ShowLegend: boolPtr(false),
	}
}

func macd(m indicators.MACD, x []string) []Trace {
	colors := make([]string, len(m.Histogram))
	for i, v := range m.Histogram {
		if v != nil && *v >= 0 {
			colors[i] = "green"
		} else {
			colors[i] = "red"
		}
	}
	hist := Trace{
		Type:       "bar",
		Name:       "Histogram",
		X:          x,
		Y:          m.Histogram,
		XAxis:      "x",
		YAxis:      yAxisRef(4),
		Marker:     &Marker{Color: colors},
		ShowLegend: boolPtr(false),
	}
	line := scatter("MACD", x, m.Line, 4, &Line{Color: "red", Width: 1})
	line.ShowLegend = boolPtr(false)
	signal := scatter("Signal", x, m.Signal, 4, &Line{Color: "blue", Width: 2})
	signal.ShowLegend = boolPtr(false)
	return []Trace{hist, line, signal}
}

func rsi(r indicators.Series, x []string) []Trace {
	main := scatter("RSI", x, r, 3, &Line{Color: "black", Width: 2})
	main.ShowLegend = boolPtr(false)
	oversold := scatter("Oversold", x, constant(indicators.RSIOversold, len(x)), 3, &Line{Color: "red", Width: 1})
	oversold.ShowLegend = boolPtr(false)
	overbought := scatter("Overbought", x, constant(indicators.RSIOverbought, len(x)), 3, &Line{Color: "green", Width: 1})
	overbought.ShowLegend = boolPtr(false)
	return []Trace{main, oversold, overbought}
}

func currentPrice(s *models.PriceSeries, x []string) Trace {
	last := s.Last().Close
	t := scatter("Current Price: "+levels.Label(last), x, constant(last, len(x)), 1,
		&Line{Color: "red", Width: 2, Dash: "dot"})
	t.Opacity = 0.7
	return t
}

// levelLines draws one full-width horizontal line per level.
func levelLines(ls models.LevelSet, x []string) []Trace {
	all := ls.All()
	out := make([]Trace, 0, len(all))
	for _, l := range all {
		t := scatter(LevelName(l), x, constant(l.Value, len(x)), 1, &Line{Color: "black"})
		t.HoverInfo = "skip"
		t.Opacity = 0.3
		out = append(out, t)
	}
	return out
}

// LevelName is the legend entry of a level line.
func LevelName(l models.Level) string {
	return "Sup/Res: " + l.Label
}

func scatter(name string, x []string, y any, row int, line *Line) Trace {
	return Trace{
		Type:  "scatter",
		Mode:  "lines",
		Name:  name,
		X:     x,
		Y:     y,
		XAxis: "x",
		YAxis: yAxisRef(row),
		Line:  line,
	}
}

func maName(p int) string { return "MA " + strconv.Itoa(p) }

func constant(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
