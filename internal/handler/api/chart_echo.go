package api

import (
	"context"
	"errors"
	"net/http"

	models "StockPulse/internal/domain/models"
	domrepo "StockPulse/internal/domain/repository"
	"StockPulse/internal/services/chart"
	"StockPulse/internal/services/levels"
	xhttp "StockPulse/pkg/http"
	xlogger "StockPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

const chartPath = "/api/chart"

// ChartService is the use case surface the handler needs.
type ChartService interface {
	Build(ctx context.Context, symbol string) (*chart.Figure, error)
	Levels(ctx context.Context, symbol string) (*models.LevelsResponse, error)
}

// ChartEchoHandler serves the page and the chart/levels JSON endpoints.
type ChartEchoHandler struct {
	logger        *xlogger.Logger
	svc           ChartService
	defaultSymbol string
}

func NewChartEchoHandler(logger *xlogger.Logger, svc ChartService, defaultSymbol string) *ChartEchoHandler {
	if logger == nil {
		logger = xlogger.Nop()
	}
	return &ChartEchoHandler{logger: logger, svc: svc, defaultSymbol: defaultSymbol}
}

func (h *ChartEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Index)
	g := e.Group("/api")
	g.GET("/chart", h.Chart)
	g.GET("/levels", h.Levels)
}

type indexData struct {
	Symbol    string
	ChartPath string
}

func (h *ChartEchoHandler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", indexData{Symbol: h.defaultSymbol, ChartPath: chartPath})
}

func (h *ChartEchoHandler) Chart(c echo.Context) error {
	req := &models.ChartRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	fig, err := h.svc.Build(c.Request().Context(), req.Symbol)
	if err != nil {
		return xhttp.AppErrorResponse(c, h.mapError(err))
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return xhttp.SuccessResponse(c, fig)
}

func (h *ChartEchoHandler) Levels(c echo.Context) error {
	req := &models.LevelsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.svc.Levels(c.Request().Context(), req.Symbol)
	if err != nil {
		return xhttp.AppErrorResponse(c, h.mapError(err))
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return xhttp.SuccessResponse(c, res)
}

func (h *ChartEchoHandler) mapError(err error) error {
	switch {
	case errors.Is(err, levels.ErrTooShortSeries):
		return xhttp.UnprocessableError("ERR_SERIES_TOO_SHORT", "not enough daily bars to compute levels").WithError(err)
	case errors.Is(err, context.DeadlineExceeded):
		return xhttp.GatewayTimeoutError("price provider timed out").WithError(err)
	case errors.Is(err, domrepo.ErrDataUnavailable):
		return xhttp.BadGatewayError("ERR_UPSTREAM_UNAVAILABLE", "price data unavailable for symbol").WithError(err)
	}
	h.logger.Error("chart handler error", xlogger.Error(err))
	return xhttp.InternalError("failed to build chart").WithError(err)
}
