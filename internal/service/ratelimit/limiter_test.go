package ratelimit

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(capacity, rate float64) (*Limiter, *fakeClock) {
	clk := &fakeClock{t: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)}
	l := New(capacity, rate)
	l.now = clk.now
	return l, clk
}

func TestAllowBurstThenReject(t *testing.T) {
	l, _ := newTestLimiter(3, 1)
	for i := 0; i < 3; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i)
		}
	}
	if l.Allow("1.2.3.4") {
		t.Fatalf("fourth request should be rejected")
	}
}

func TestAllowRefills(t *testing.T) {
	l, clk := newTestLimiter(1, 2)
	if !l.Allow("k") {
		t.Fatalf("first request should pass")
	}
	if l.Allow("k") {
		t.Fatalf("bucket should be empty")
	}
	clk.advance(500 * time.Millisecond)
	if !l.Allow("k") {
		t.Fatalf("bucket should have refilled one token")
	}
}

func TestKeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(1, 0)
	if !l.Allow("a") || !l.Allow("b") {
		t.Fatalf("distinct keys should have their own buckets")
	}
	if l.Allow("a") {
		t.Fatalf("key a should be exhausted")
	}
}

func TestSweepDropsIdleBuckets(t *testing.T) {
	l, clk := newTestLimiter(2, 1)
	l.Allow("a")
	clk.advance(11 * time.Minute)
	l.Allow("b")
	if got := l.Sweep(); got != 1 {
		t.Fatalf("Sweep removed %d, want 1", got)
	}
	if l.Len() != 1 {
		t.Fatalf("Len = %d, want 1", l.Len())
	}
}
