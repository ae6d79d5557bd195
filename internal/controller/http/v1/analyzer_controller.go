package httpv1

import (
	"errors"
	"net/http"
	"strconv"

	logginghelper "github.com/egz13/logprobe/internal/controller/common/logging"
	"github.com/egz13/logprobe/internal/controller/http/validators"
	"github.com/egz13/logprobe/internal/metrics"
	"github.com/egz13/logprobe/internal/resolver"
	"github.com/egz13/logprobe/internal/service"
	"github.com/labstack/echo/v4"
)

type AnalyzerController struct {
	analyzer service.Analyzer
	counters *metrics.Counters
}

func NewAnalyzerController(a service.Analyzer, cnt *metrics.Counters) *AnalyzerController {
	return &AnalyzerController{
		analyzer: a,
		counters: cnt,
	}
}

func (c *AnalyzerController) AnalyzeLogs(ctx echo.Context) error {
	var req analyzeRequest
	if err := ctx.Bind(&req); err != nil {
		c.counters.HTTPRequests.Inc("AnalyzeLogs", "failed")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.LogLevel == "" {
		req.LogLevel = string(resolver.KindError)
	}

	c.counters.HTTPRequests.Inc("AnalyzeLogs", "received")
	if err := validators.ValidateAnalyze(req.LogLevel, req.MaxLines); err != nil {
		c.counters.HTTPRequests.Inc("AnalyzeLogs", "failed")
		logginghelper.LogError("AnalyzeLogs", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	report, err := c.analyzer.AnalyzeLogs(ctx.Request().Context(), toAnalyzeParams(req))
	if err != nil {
		c.counters.HTTPRequests.Inc("AnalyzeLogs", "failed")
		logginghelper.LogError("AnalyzeLogs", err)
		return httpError(err)
	}

	logginghelper.LogAnalyzed(req.LogLevel, report.TotalDefects, report.LogPath)
	c.counters.HTTPRequests.Inc("AnalyzeLogs", "ok")

	return ctx.JSON(http.StatusOK, toAnalyzeResponse(report))
}

func (c *AnalyzerController) SearchLogs(ctx echo.Context) error {
	keyword := ctx.QueryParam("keyword")
	logLevel := ctx.QueryParam("log_level")

	c.counters.HTTPRequests.Inc("SearchLogs", "received")
	if err := validators.ValidateSearch(keyword, logLevel); err != nil {
		c.counters.HTTPRequests.Inc("SearchLogs", "failed")
		logginghelper.LogError("SearchLogs", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	maxResults := 0
	if raw := ctx.QueryParam("max_results"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.counters.HTTPRequests.Inc("SearchLogs", "failed")
			return echo.NewHTTPError(http.StatusBadRequest, "max_results must be an integer")
		}
		maxResults = parsed
	}

	report, err := c.analyzer.SearchLogs(ctx.Request().Context(), service.SearchParams{
		Keyword:    keyword,
		Kind:       resolver.Kind(logLevel),
		MaxResults: maxResults,
		LogPath:    ctx.QueryParam("log_path"),
	})
	if err != nil {
		c.counters.HTTPRequests.Inc("SearchLogs", "failed")
		logginghelper.LogError("SearchLogs", err)
		return httpError(err)
	}

	logginghelper.LogSearched(keyword, report.TotalMatches, report.LogPath)
	c.counters.HTTPRequests.Inc("SearchLogs", "ok")

	return ctx.JSON(http.StatusOK, toSearchResponse(report))
}

func (c *AnalyzerController) LogConfig(ctx echo.Context) error {
	c.counters.HTTPRequests.Inc("LogConfig", "received")

	report, err := c.analyzer.LogConfig(ctx.Request().Context())
	if err != nil {
		c.counters.HTTPRequests.Inc("LogConfig", "failed")
		logginghelper.LogError("LogConfig", err)
		return httpError(err)
	}

	c.counters.HTTPRequests.Inc("LogConfig", "ok")
	return ctx.JSON(http.StatusOK, toConfigResponse(report))
}

func (c *AnalyzerController) SuggestFix(ctx echo.Context) error {
	var req fixRequest
	if err := ctx.Bind(&req); err != nil {
		c.counters.HTTPRequests.Inc("SuggestFix", "failed")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	c.counters.HTTPRequests.Inc("SuggestFix", "received")

	suggestion, err := c.analyzer.SuggestFix(ctx.Request().Context(), toDefectInput(req))
	if err != nil {
		c.counters.HTTPRequests.Inc("SuggestFix", "failed")
		logginghelper.LogError("SuggestFix", err)
		return httpError(err)
	}

	c.counters.HTTPRequests.Inc("SuggestFix", "ok")
	return ctx.JSON(http.StatusOK, toFixResponse(suggestion))
}

// httpError maps service error kinds to HTTP statuses without leaking
// internal state.
func httpError(err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConfig):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "unknown error")
	}
}
