package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type denyAfter struct{ left int }

func (d *denyAfter) Allow(string) bool {
	if d.left <= 0 {
		return false
	}
	d.left--
	return true
}

func serve(e *echo.Echo, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequestIDAssignsAndPropagates(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	var seen string
	e.GET("/", func(c echo.Context) error {
		seen = RequestIDFrom(c)
		return c.NoContent(http.StatusOK)
	})

	rec := serve(e, http.MethodGet, "/", nil)
	if seen == "" || rec.Header().Get(echo.HeaderXRequestID) != seen {
		t.Fatalf("expected generated id echoed in header, got %q / %q", seen, rec.Header().Get(echo.HeaderXRequestID))
	}

	rec = serve(e, http.MethodGet, "/", http.Header{echo.HeaderXRequestID: {"abc-123"}})
	if seen != "abc-123" || rec.Header().Get(echo.HeaderXRequestID) != "abc-123" {
		t.Fatalf("incoming id not propagated: %q", seen)
	}
}

func TestRateLimitRejectsAndSkips(t *testing.T) {
	e := echo.New()
	e.Use(RateLimit(&denyAfter{left: 1}, "/healthz"))
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	e.GET("/api", ok)
	e.GET("/healthz", ok)

	if rec := serve(e, http.MethodGet, "/api", nil); rec.Code != http.StatusOK {
		t.Fatalf("first call: %d", rec.Code)
	}
	if rec := serve(e, http.MethodGet, "/api", nil); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second call: want 429, got %d", rec.Code)
	}
	if rec := serve(e, http.MethodGet, "/healthz", nil); rec.Code != http.StatusOK {
		t.Fatalf("skipped path should pass, got %d", rec.Code)
	}
}

func TestRecoverTurnsPanicInto500(t *testing.T) {
	e := echo.New()
	e.Use(Recover(nil))
	e.GET("/boom", func(c echo.Context) error { panic("boom") })

	if rec := serve(e, http.MethodGet, "/boom", nil); rec.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", rec.Code)
	}
}

func TestRequestLoggingWritesHandlerError(t *testing.T) {
	e := echo.New()
	e.Use(RequestLogging(nil, 0))
	e.GET("/err", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, errors.New("short and stout").Error())
	})

	if rec := serve(e, http.MethodGet, "/err", nil); rec.Code != http.StatusTeapot {
		t.Fatalf("want 418, got %d", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	e := echo.New()
	e.Use(CORS(CORSConfig{AllowOrigins: []string{"*"}, AllowMethods: []string{http.MethodGet}}))
	e.OPTIONS("/api", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := serve(e, http.MethodOptions, "/api", http.Header{"Origin": {"http://example.com"}})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("want 204, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://example.com" {
		t.Fatalf("allow-origin = %q", got)
	}
}

func TestStatusClass(t *testing.T) {
	cases := map[int]string{101: "1xx", 200: "2xx", 302: "3xx", 404: "4xx", 502: "5xx"}
	for code, want := range cases {
		if got := statusClass(code); got != want {
			t.Fatalf("statusClass(%d) = %s, want %s", code, got, want)
		}
	}
}
