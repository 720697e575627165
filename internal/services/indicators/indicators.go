package indicators

import (
	"StockPulse/internal/domain/models"

	"github.com/markcheno/go-talib"
)

// Periods used by the chart overlays.
var MAPeriods = []int{5, 15, 50, 200}

const (
	RSIPeriod     = 14
	RSIOversold   = 30.0
	RSIOverbought = 70.0

	MACDFast   = 12
	MACDSlow   = 26
	MACDSignal = 9
)

// Series is an indicator output aligned with the bars. Nil entries mark
// warm-up positions with no value yet.
type Series []*float64

// MACD groups the three MACD outputs.
type MACD struct {
	Line      Series
	Signal    Series
	Histogram Series
}

// Set holds every overlay computed for one price series.
type Set struct {
	MA   map[int]Series
	RSI  Series
	MACD MACD
}

// Compute derives moving averages, RSI and MACD from closing prices.
func Compute(s *models.PriceSeries) *Set {
	closes := s.Closes()
	set := &Set{MA: make(map[int]Series, len(MAPeriods))}
	for _, p := range MAPeriods {
		set.MA[p] = SMA(closes, p)
	}
	set.RSI = RSI(closes, RSIPeriod)
	set.MACD = ComputeMACD(closes, MACDFast, MACDSlow, MACDSignal)
	return set
}

// SMA is the simple moving average over period bars.
func SMA(closes []float64, period int) Series {
	if len(closes) < period || period < 2 {
		return blank(len(closes))
	}
	return trim(talib.Sma(closes, period), period-1)
}

// RSI is Wilder's relative strength index.
func RSI(closes []float64, period int) Series {
	if len(closes) <= period || period < 2 {
		return blank(len(closes))
	}
	return trim(talib.Rsi(closes, period), period)
}

// ComputeMACD returns MACD line, signal line and histogram.
func ComputeMACD(closes []float64, fast, slow, signal int) MACD {
	lookback := slow - 1 + signal - 1
	if len(closes) <= lookback {
		n := len(closes)
		return MACD{Line: blank(n), Signal: blank(n), Histogram: blank(n)}
	}
	line, sig, hist := talib.Macd(closes, fast, slow, signal)
	return MACD{
		Line:      trim(line, lookback),
		Signal:    trim(sig, lookback),
		Histogram: trim(hist, lookback),
	}
}

// trim converts raw library output into a Series, leaving the first
// warm-up positions empty.
func trim(raw []float64, warmup int) Series {
	out := make(Series, len(raw))
	for i := warmup; i < len(raw); i++ {
		v := raw[i]
		out[i] = &v
	}
	return out
}

func blank(n int) Series { return make(Series, n) }

// Last returns the most recent value, if any.
func (s Series) Last() (float64, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] != nil {
			return *s[i], true
		}
	}
	return 0, false
}
