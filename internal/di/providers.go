package di

import (
	"fmt"

	"StockPulse/internal/domain/repository"
	"StockPulse/internal/handler/api"
	"StockPulse/internal/service/ratelimit"
	"StockPulse/internal/service/yahoo"
	"StockPulse/internal/usecase"
	"StockPulse/pkg/config"
	xhttp "StockPulse/pkg/http"
	applogger "StockPulse/pkg/logger"
	"StockPulse/pkg/metrics"
	"StockPulse/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l.With(applogger.String("env", cfg.Environment)), nil
}

// ProvideMetrics creates a Prometheus metrics recorder on the default registry.
func ProvideMetrics() repository.Metrics {
	return metrics.New(nil)
}

// ProvidePriceProvider creates the Yahoo daily bar client.
func ProvidePriceProvider(cfg *config.Config) repository.PriceProvider {
	return yahoo.New(cfg.Yahoo.BaseURL, cfg.Yahoo.UserAgent, cfg.Yahoo.Timeout, yahoo.WithRetries(cfg.Yahoo.Retries))
}

// ProvideChartUseCase creates the chart use case.
func ProvideChartUseCase(cfg *config.Config, provider repository.PriceProvider, m repository.Metrics, l *applogger.Logger) (*usecase.ChartUseCase, error) {
	start, err := cfg.StartDate()
	if err != nil {
		return nil, err
	}
	return usecase.NewChartUseCase(provider, m, l, usecase.ChartConfig{
		StartDate:     start,
		DefaultSymbol: cfg.Chart.DefaultSymbol,
		Timeout:       cfg.Yahoo.Timeout,
	}), nil
}

// ProvideRateLimiter returns nil when rate limiting is disabled.
func ProvideRateLimiter(cfg *config.Config) *ratelimit.Limiter {
	if !cfg.RateLimit.Enabled {
		return nil
	}
	return ratelimit.New(cfg.RateLimit.Burst, cfg.RateLimit.PerSecond)
}

// ProvideHTTPHandler creates the Echo route handler.
func ProvideHTTPHandler(cfg *config.Config, l *applogger.Logger, uc *usecase.ChartUseCase) xhttp.Handler {
	return api.NewChartEchoHandler(l, uc, cfg.Chart.DefaultSymbol)
}

// ProvideHTTPServer creates the Echo server with middleware and the page renderer.
func ProvideHTTPServer(cfg *config.Config, l *applogger.Logger, h xhttp.Handler, limiter *ratelimit.Limiter) (*xhttp.Server, error) {
	renderer, err := api.NewTemplateRenderer()
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}

	opts := []xhttp.ServerOption{
		xhttp.WithHost(cfg.Server.Host),
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithCORS(cfg.Server.CORS),
		xhttp.WithSlowRequest(cfg.Server.SlowRequest),
		xhttp.WithMetrics(cfg.Metrics.Enabled, cfg.Metrics.Path),
		xhttp.WithLogger(l),
		xhttp.WithRenderer(renderer),
	}
	if limiter != nil {
		opts = append(opts, xhttp.WithRateLimiter(limiter))
	}
	return xhttp.NewServer(h, opts...), nil
}

// ProvideApp creates the App instance.
func ProvideApp(l *applogger.Logger, srv *xhttp.Server, limiter *ratelimit.Limiter) *server.App {
	return server.New(l, srv, limiter)
}
