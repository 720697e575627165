package metrics

import (
	"StockPulse/internal/domain/models"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	requests  *prometheus.CounterVec
	errors    *prometheus.CounterVec
	levels    *prometheus.GaugeVec
	lastPrice *prometheus.GaugeVec
	latency   *prometheus.HistogramVec
}

// New creates a Prometheus recorder registered on reg.
// A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	r := &Recorder{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockpulse_requests_total",
				Help: "Total number of chart and level computations",
			},
			[]string{"op", "symbol"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockpulse_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		levels: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "stockpulse_levels",
				Help: "Number of price levels in the last computed set",
			},
			[]string{"symbol", "kind"},
		),
		lastPrice: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "stockpulse_last_close",
				Help: "Last close seen for a symbol",
			},
			[]string{"symbol"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stockpulse_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
	reg.MustRegister(r.requests, r.errors, r.levels, r.lastPrice, r.latency)
	return r
}

func (r *Recorder) RecordRequest(op, symbol string) {
	r.requests.WithLabelValues(op, symbol).Inc()
}

func (r *Recorder) RecordError(kind string) {
	r.errors.WithLabelValues(kind).Inc()
}

func (r *Recorder) RecordLevels(symbol string, kind models.LevelKind, n int) {
	r.levels.WithLabelValues(symbol, string(kind)).Set(float64(n))
}

func (r *Recorder) RecordLastPrice(symbol string, price float64) {
	r.lastPrice.WithLabelValues(symbol).Set(price)
}

func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
