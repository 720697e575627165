package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"StockPulse/internal/domain/models"
	drepo "StockPulse/internal/domain/repository"
	xhttp "StockPulse/pkg/http"
)

const DefaultBaseURL = "https://query1.finance.yahoo.com"

// Client implements a PriceProvider backed by the Yahoo Finance chart API.
type Client struct {
	baseURL   string
	userAgent string
	http      *xhttp.Client
	attempts  int
	symbolMap map[string]string
}

// Option configures Client.
type Option func(*Client)

// WithRetries sets how many attempts a fetch may take on transient failures.
func WithRetries(attempts int) Option {
	return func(c *Client) {
		if attempts > 0 {
			c.attempts = attempts
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *xhttp.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// New creates a Yahoo PriceProvider.
func New(baseURL, userAgent string, timeout time.Duration, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = "Mozilla/5.0"
	}
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		http:      xhttp.NewClient(xhttp.WithTimeout(timeout)),
		attempts:  1,
		symbolMap: map[string]string{
			"SPX":    "^GSPC",
			"SP500":  "^GSPC",
			"SPX500": "^GSPC",
			"DJI":    "^DJI",
			"NDX":    "^NDX",
			"VIX":    "^VIX",
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ drepo.PriceProvider = (*Client)(nil)

func (c *Client) Name() string { return "yahoo" }

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol    string `json:"symbol"`
				GMTOffset int64  `json:"gmtoffset"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// DailySeries fetches daily bars in [from, to].
func (c *Client) DailySeries(ctx context.Context, symbol string, from, to time.Time) (*models.PriceSeries, error) {
	var resp chartResponse
	err := c.http.SendAndParseWithRetry(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/v8/finance/chart/" + url.PathEscape(c.yahooSymbol(symbol)),
		Headers: map[string]string{
			"User-Agent": c.userAgent,
			"Accept":     "application/json",
		},
		QueryParams: map[string][]string{
			"period1":  {strconv.FormatInt(from.Unix(), 10)},
			"period2":  {strconv.FormatInt(to.Unix(), 10)},
			"interval": {"1d"},
			"events":   {"history"},
		},
	}, &resp, c.attempts)
	if err != nil {
		return nil, fmt.Errorf("yahoo %s: %w: %w", symbol, drepo.ErrDataUnavailable, err)
	}
	if e := resp.Chart.Error; e != nil {
		return nil, fmt.Errorf("yahoo %s: %w: %s", symbol, drepo.ErrDataUnavailable, e.Description)
	}
	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo %s: %w: empty result", symbol, drepo.ErrDataUnavailable)
	}

	res := resp.Chart.Result[0]
	bars := toBars(res.Timestamp, res.Meta.GMTOffset, res.Indicators.Quote[0].Open,
		res.Indicators.Quote[0].High, res.Indicators.Quote[0].Low,
		res.Indicators.Quote[0].Close, res.Indicators.Quote[0].Volume)
	if len(bars) == 0 {
		return nil, fmt.Errorf("yahoo %s: %w: no bars in range", symbol, drepo.ErrDataUnavailable)
	}

	s, err := models.NewPriceSeries(strings.ToUpper(symbol), bars)
	if err != nil {
		return nil, fmt.Errorf("yahoo %s: %w", symbol, err)
	}
	return s, nil
}

func (c *Client) yahooSymbol(symbol string) string {
	if mapped, ok := c.symbolMap[strings.ToUpper(symbol)]; ok {
		return mapped
	}
	return symbol
}

// toBars drops null rows (holidays, halted sessions), keys each bar by its
// exchange-local trading date and keeps the last row seen per date.
func toBars(ts []int64, gmtOffset int64, open, high, low, cls []*float64, vol []*int64) []models.Bar {
	byDate := make(map[time.Time]models.Bar, len(ts))
	for i, t := range ts {
		o, h, l, c := at(open, i), at(high, i), at(low, i), at(cls, i)
		if o == nil || h == nil || l == nil || c == nil {
			continue
		}
		if *o <= 0 || *h <= 0 || *l <= 0 || *c <= 0 {
			continue
		}
		local := time.Unix(t+gmtOffset, 0).UTC()
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
		var v int64
		if i < len(vol) && vol[i] != nil {
			v = *vol[i]
		}
		byDate[day] = models.Bar{Date: day, Open: *o, High: *h, Low: *l, Close: *c, Volume: v}
	}

	bars := make([]models.Bar, 0, len(byDate))
	for _, b := range byDate {
		bars = append(bars, b)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars
}

func at(xs []*float64, i int) *float64 {
	if i >= len(xs) {
		return nil
	}
	return xs[i]
}
