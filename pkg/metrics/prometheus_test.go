package metrics

import (
	"testing"

	"StockPulse/internal/domain/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)

	r.RecordRequest("chart", "AAPL")
	r.RecordRequest("chart", "AAPL")
	r.RecordError("upstream")
	r.RecordLevels("AAPL", models.LevelSupport, 3)
	r.RecordLastPrice("AAPL", 187.5)
	r.RecordLatency("chart", 0.2)

	if got := testutil.ToFloat64(r.requests.WithLabelValues("chart", "AAPL")); got != 2 {
		t.Fatalf("requests = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.errors.WithLabelValues("upstream")); got != 1 {
		t.Fatalf("errors = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.levels.WithLabelValues("AAPL", "support")); got != 3 {
		t.Fatalf("levels = %v, want 3", got)
	}
	if got := testutil.ToFloat64(r.lastPrice.WithLabelValues("AAPL")); got != 187.5 {
		t.Fatalf("last price = %v", got)
	}
	if n := testutil.CollectAndCount(r.latency); n != 1 {
		t.Fatalf("latency series = %d, want 1", n)
	}
}
